package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard/internal/clipboard"
	"dashboard/internal/content"
	"dashboard/internal/handlers"
	"dashboard/internal/handlers/api"
	"dashboard/internal/markdown"
	"dashboard/internal/metrics"
	"dashboard/internal/store"
)

// RegisterRoutes registers all application routes. The share service and
// store may be nil when no Redis is configured; share endpoints then report
// a configuration error per request.
func (s *Server) RegisterRoutes(svc *clipboard.Service, st store.Store, dashboard *content.Dashboard) {
	metrics.Register()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, dashboard)
	clipboardHandler := handlers.NewClipboardHandler(s.Cfg)
	docHandler := handlers.NewDocHandler(s.Cfg, markdown.NewRenderer(s.Cfg.ContentDir))
	shareHandler := api.NewShareHandler(svc)
	probeHandler := handlers.NewProbeHandler(st)

	// Pages
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/clipboard", clipboardHandler.Show)
	s.App.Get("/files/:slug", docHandler.Show)

	// Share API
	s.App.Post("/shares", shareHandler.Create)
	s.App.Get("/shares/:code", shareHandler.Get)
	s.App.Delete("/shares/:code", shareHandler.Delete)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
