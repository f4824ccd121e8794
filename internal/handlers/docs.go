package handlers

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v3"

	"dashboard/internal/config"
	"dashboard/internal/markdown"
)

// DocHandler serves Markdown documents rendered to HTML.
type DocHandler struct {
	cfg      *config.Config
	renderer *markdown.Renderer
}

// NewDocHandler creates a new document handler.
func NewDocHandler(cfg *config.Config, renderer *markdown.Renderer) *DocHandler {
	return &DocHandler{cfg: cfg, renderer: renderer}
}

// Show renders the document for the requested slug.
func (h *DocHandler) Show(c fiber.Ctx) error {
	slug := markdown.SanitizeSlug(c.Params("slug"))

	body, err := h.renderer.Render(slug)
	if err != nil {
		if errors.Is(err, markdown.ErrDocNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "document not found")
		}
		return err
	}

	return c.Render("doc", fiber.Map{
		"Title":       markdown.Title(slug),
		"SiteTitle":   h.cfg.SiteTitle,
		"SiteTagline": h.cfg.SiteTagline,
		"SiteFooter":  h.cfg.SiteFooter,
		// Rendered from trusted repository content, not user input.
		"Content": template.HTML(body),
	})
}
