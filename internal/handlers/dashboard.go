// Package handlers contains the HTML page handlers.
package handlers

import (
	"github.com/gofiber/fiber/v3"

	"dashboard/internal/config"
	"dashboard/internal/content"
)

// DashboardHandler renders the dashboard home page.
type DashboardHandler struct {
	cfg     *config.Config
	content *content.Dashboard
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, dashboard *content.Dashboard) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, content: dashboard}
}

// Index renders the home page: useful links, projects and teaching sequences.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":       h.cfg.SiteTitle,
		"SiteTitle":   h.cfg.SiteTitle,
		"SiteTagline": h.cfg.SiteTagline,
		"SiteFooter":  h.cfg.SiteFooter,
		"Links":       h.content.Links,
		"Projects":    h.content.Projects,
		"Sequences":   h.content.Sequences,
	})
}
