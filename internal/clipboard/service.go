// Package clipboard implements the ephemeral share service: code generation,
// size-limited payload aggregation and TTL-backed persistence.
package clipboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dashboard/internal/models"
	"dashboard/internal/store"
)

const (
	// keyPrefix namespaces share keys so they cannot collide with other
	// uses of the same store.
	keyPrefix = "clipboard:"

	// ShareTTL is the lifetime of a share, fixed at write time and never
	// refreshed on read.
	ShareTTL = 24 * time.Hour

	// MaxShareSize is the aggregate payload ceiling per share.
	MaxShareSize = 4 * 1024 * 1024

	// MaxFileSize is the per-file ceiling. The browser composer enforces
	// it too, but the boundary does not trust client-side limits.
	MaxFileSize = 2 * 1024 * 1024

	// maxCodeAttempts bounds the collision-avoidance loop. After the last
	// colliding attempt the share is written unconditionally, silently
	// overwriting the existing one. At one collision per ~10^9 draws this
	// is an accepted risk.
	maxCodeAttempts = 10
)

// Service orchestrates share creation, retrieval and deletion against an
// injected key-value store. It holds no other state; every call is
// independent.
type Service struct {
	store store.Store
}

// NewService creates a share service backed by the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Create validates the submitted items, stamps them with server-assigned IDs
// and a shared creation timestamp, and persists the share under a fresh code
// with a 24-hour expiry. Returns the code. Nothing is written on a
// validation failure.
func (s *Service) Create(ctx context.Context, items []models.ShareItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyShare
	}

	var total int64
	for _, item := range items {
		if item.Kind == models.KindFile && item.FileSize > MaxFileSize {
			return "", fmt.Errorf("%w: %s", ErrItemTooLarge, item.FileName)
		}
		total += item.Size()
	}
	if total > MaxShareSize {
		return "", ErrPayloadTooLarge
	}

	now := time.Now().UTC()

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := generateCode()

		share := models.Share{
			Code:      code,
			Items:     make([]models.ShareItem, len(items)),
			CreatedAt: now,
		}
		for i, item := range items {
			item.ID = fmt.Sprintf("%s-%d", code, i)
			item.CreatedAt = now
			share.Items[i] = item
		}

		blob, err := json.Marshal(share)
		if err != nil {
			return "", fmt.Errorf("failed to encode share: %w", err)
		}

		if attempt == maxCodeAttempts {
			// Out of attempts: write unconditionally (last-writer-wins).
			slog.Warn("share code collision limit reached, overwriting", "code", code)
			if err := s.store.Set(ctx, keyPrefix+code, blob, ShareTTL); err != nil {
				return "", fmt.Errorf("failed to store share: %w", err)
			}
			return code, nil
		}

		ok, err := s.store.SetIfNotExists(ctx, keyPrefix+code, blob, ShareTTL)
		if err != nil {
			return "", fmt.Errorf("failed to store share: %w", err)
		}
		if ok {
			return code, nil
		}
	}

	// Unreachable: the final attempt always writes.
	return "", fmt.Errorf("failed to allocate share code")
}

// Retrieve looks up a share by code (case-insensitive) and returns it
// verbatim, items in original order. A missing, expired or deleted code is
// ErrShareNotFound; a corrupt stored value is a distinct store error.
func (s *Service) Retrieve(ctx context.Context, code string) (*models.Share, error) {
	code = NormalizeCode(code)

	blob, err := s.store.Get(ctx, keyPrefix+code)
	if err != nil {
		return nil, fmt.Errorf("failed to read share: %w", err)
	}
	if blob == nil {
		return nil, ErrShareNotFound
	}

	var share models.Share
	if err := json.Unmarshal(blob, &share); err != nil {
		return nil, fmt.Errorf("failed to decode stored share: %w", err)
	}

	return &share, nil
}

// Delete removes a share by code. Deleting an absent code is
// ErrShareNotFound, so a repeated delete is not a silent success. Anyone who
// knows the code may delete it.
func (s *Service) Delete(ctx context.Context, code string) error {
	code = NormalizeCode(code)

	exists, err := s.store.Exists(ctx, keyPrefix+code)
	if err != nil {
		return fmt.Errorf("failed to check share: %w", err)
	}
	if !exists {
		return ErrShareNotFound
	}

	if err := s.store.Delete(ctx, keyPrefix+code); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}
	return nil
}

// NormalizeCode uppercases a code so lookups are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
