// Package api contains the JSON API handlers.
package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"dashboard/internal/clipboard"
	"dashboard/internal/metrics"
	"dashboard/internal/models"
)

// ShareHandler handles ephemeral share operations via JSON API.
type ShareHandler struct {
	svc *clipboard.Service
}

// NewShareHandler creates a new share handler. The service may be nil when
// the store is not configured; every endpoint then reports a configuration
// error without touching the store.
func NewShareHandler(svc *clipboard.Service) *ShareHandler {
	return &ShareHandler{svc: svc}
}

// ready reports a configuration error when no share service is available.
func (h *ShareHandler) ready(c fiber.Ctx, operation string) bool {
	if h.svc != nil {
		return true
	}
	metrics.RecordShareOp(operation, metrics.OutcomeError)
	_ = jsonError(c, fiber.StatusInternalServerError,
		"share store is not configured: set REDIS_URL and REDIS_TOKEN")
	return false
}

// Create creates a new share from the submitted items and returns its code.
func (h *ShareHandler) Create(c fiber.Ctx) error {
	if !h.ready(c, "create") {
		return nil
	}

	var body struct {
		Items []models.ShareItem `json:"items"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		metrics.RecordShareOp("create", metrics.OutcomeRejected)
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	code, err := h.svc.Create(c.Context(), body.Items)
	if err != nil {
		switch {
		case errors.Is(err, clipboard.ErrEmptyShare),
			errors.Is(err, clipboard.ErrPayloadTooLarge),
			errors.Is(err, clipboard.ErrItemTooLarge):
			metrics.RecordShareOp("create", metrics.OutcomeRejected)
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			metrics.RecordShareOp("create", metrics.OutcomeError)
			return jsonError(c, fiber.StatusInternalServerError, "failed to create share")
		}
	}

	var total int64
	for _, item := range body.Items {
		total += item.Size()
	}
	metrics.RecordShareOp("create", metrics.OutcomeOK)
	metrics.RecordSharePayload(total)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"code":      code,
		"expiresIn": "24 heures",
	})
}

// Get returns a share by its code.
func (h *ShareHandler) Get(c fiber.Ctx) error {
	if !h.ready(c, "retrieve") {
		return nil
	}

	share, err := h.svc.Retrieve(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, clipboard.ErrShareNotFound) {
			metrics.RecordShareOp("retrieve", metrics.OutcomeNotFound)
			return jsonError(c, fiber.StatusNotFound, "share not found or expired")
		}
		metrics.RecordShareOp("retrieve", metrics.OutcomeError)
		return jsonError(c, fiber.StatusInternalServerError, "failed to retrieve share")
	}

	metrics.RecordShareOp("retrieve", metrics.OutcomeOK)
	return c.JSON(fiber.Map{
		"success": true,
		"share":   share,
	})
}

// Delete removes a share by its code. No ownership check: anyone who knows
// the code may delete it.
func (h *ShareHandler) Delete(c fiber.Ctx) error {
	if !h.ready(c, "delete") {
		return nil
	}

	if err := h.svc.Delete(c.Context(), c.Params("code")); err != nil {
		if errors.Is(err, clipboard.ErrShareNotFound) {
			metrics.RecordShareOp("delete", metrics.OutcomeNotFound)
			return jsonError(c, fiber.StatusNotFound, "share not found or already deleted")
		}
		metrics.RecordShareOp("delete", metrics.OutcomeError)
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete share")
	}

	metrics.RecordShareOp("delete", metrics.OutcomeOK)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "share deleted successfully",
	})
}
