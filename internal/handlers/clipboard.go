package handlers

import (
	"github.com/gofiber/fiber/v3"

	"dashboard/internal/clipboard"
	"dashboard/internal/config"
)

// ClipboardHandler renders the clipboard share page.
type ClipboardHandler struct {
	cfg *config.Config
}

// NewClipboardHandler creates a new clipboard page handler.
func NewClipboardHandler(cfg *config.Config) *ClipboardHandler {
	return &ClipboardHandler{cfg: cfg}
}

// Show renders the clipboard page with the browser-side composer.
func (h *ClipboardHandler) Show(c fiber.Ctx) error {
	return c.Render("clipboard", fiber.Map{
		"Title":           "Clipboard",
		"SiteTitle":       h.cfg.SiteTitle,
		"SiteTagline":     h.cfg.SiteTagline,
		"SiteFooter":      h.cfg.SiteFooter,
		"StoreConfigured": h.cfg.StoreConfigured(),
		"MaxFileSize":     clipboard.MaxFileSize,
		"MaxShareSize":    clipboard.MaxShareSize,
	})
}
