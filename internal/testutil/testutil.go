// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/base64"
	"testing"

	"dashboard/internal/clipboard"
	"dashboard/internal/models"
	"dashboard/internal/store"
)

// NewShareService creates a share service backed by a fresh in-memory store.
func NewShareService(t *testing.T) (*clipboard.Service, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemory()
	return clipboard.NewService(st), st
}

// TextItem builds a client-side text item, as submitted before the server
// assigns ID and CreatedAt.
func TextItem(content string) models.ShareItem {
	return models.ShareItem{
		Kind:    models.KindText,
		Content: content,
	}
}

// FileItem builds a client-side file item with data-URL encoded content.
func FileItem(name, mimeType string, data []byte) models.ShareItem {
	return models.ShareItem{
		Kind:     models.KindFile,
		Content:  "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		FileName: name,
		FileType: mimeType,
		FileSize: int64(len(data)),
	}
}
