package handlers

import (
	"github.com/gofiber/fiber/v3"

	"dashboard/internal/store"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store store.Store
}

// NewProbeHandler creates a new probe handler. The store may be nil when the
// clipboard feature is not configured; readiness then depends only on the
// process itself.
func NewProbeHandler(s store.Store) *ProbeHandler {
	return &ProbeHandler{store: s}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK if the application can serve traffic (store reachable when
// configured).
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.store != nil {
		if _, err := h.store.Exists(c.Context(), "clipboard:__ready__"); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "store unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
