// Package composer aggregates user-entered text and files into a pending
// item list before submission to the share service. It is the Go counterpart
// of the browser-side composer in static/clipboard.js and backs the CLI
// client.
package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"dashboard/internal/clipboard"
	"dashboard/internal/models"
)

// Composer error sentinels.
var (
	ErrEmptyText = errors.New("nothing to add: text is empty")
	ErrNoItems   = errors.New("add at least one item before sharing")
)

// Creator is the share-creation capability the composer submits to. It is
// satisfied by *clipboard.Service directly and by the HTTP API client.
type Creator interface {
	Create(ctx context.Context, items []models.ShareItem) (string, error)
}

// File is one user-selected file to encode and append.
type File struct {
	Name string
	Type string // MIME type; defaults to application/octet-stream
	Data []byte
}

// FileError reports a per-file rejection. Other files in the same batch are
// still processed.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Composer maintains an ordered, in-memory list of pending items. Appends
// are keyed by a locally unique ID, never by positional index, so
// concurrently encoded files may land in any order without clobbering each
// other.
type Composer struct {
	creator Creator

	mu    sync.Mutex
	items []models.ShareItem
}

// New creates an empty composer that submits through the given creator.
func New(creator Creator) *Composer {
	return &Composer{creator: creator}
}

// AddText trims and appends one text item, returning its local ID.
// Empty or whitespace-only input is rejected without side effect.
func (c *Composer) AddText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	item := models.ShareItem{
		ID:      "text-" + uuid.NewString(),
		Kind:    models.KindText,
		Content: text,
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	return item.ID, nil
}

// AddFiles encodes the given files concurrently, one goroutine per file, and
// appends each as it completes. Files over the per-file ceiling are rejected
// individually; the rest of the batch still goes through. Returns the
// per-file rejections once every file has settled.
func (c *Composer) AddFiles(files []File) []FileError {
	var (
		wg     sync.WaitGroup
		failed []FileError
	)

	for _, f := range files {
		if int64(len(f.Data)) > clipboard.MaxFileSize {
			failed = append(failed, FileError{
				Name: f.Name,
				Err:  clipboard.ErrItemTooLarge,
			})
			continue
		}

		wg.Add(1)
		go func(f File) {
			defer wg.Done()

			item := models.ShareItem{
				ID:       "file-" + uuid.NewString(),
				Kind:     models.KindFile,
				Content:  EncodeDataURL(f.Type, f.Data),
				FileName: f.Name,
				FileType: f.Type,
				FileSize: int64(len(f.Data)),
			}

			c.mu.Lock()
			c.items = append(c.items, item)
			c.mu.Unlock()
		}(f)
	}

	wg.Wait()
	return failed
}

// Remove drops the pending item with the given local ID, reporting whether
// it was present.
func (c *Composer) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a snapshot of the pending items in append order.
func (c *Composer) Items() []models.ShareItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.ShareItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of pending items.
func (c *Composer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Submit sends the full pending list to the share service and returns the
// issued code. The pending list is cleared on success only; a failed submit
// leaves it intact for retry.
func (c *Composer) Submit(ctx context.Context) (string, error) {
	items := c.Items()
	if len(items) == 0 {
		return "", ErrNoItems
	}

	code, err := c.creator.Create(ctx, items)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	return code, nil
}
