// Package markdown renders the dynamic Markdown documents served under
// /files/:slug.
package markdown

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrDocNotFound is returned when no document exists for a slug.
var ErrDocNotFound = errors.New("document not found")

// slugPattern strips anything outside [a-zA-Z0-9_-], which also blocks path
// traversal through the slug.
var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Renderer converts Markdown documents from a content directory to HTML.
type Renderer struct {
	dir string
	md  goldmark.Markdown
}

// NewRenderer creates a renderer reading .md files from <dir>/docs.
func NewRenderer(dir string) *Renderer {
	return &Renderer{
		dir: filepath.Join(dir, "docs"),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// SanitizeSlug removes every character outside the allowed slug set.
func SanitizeSlug(slug string) string {
	return slugPattern.ReplaceAllString(slug, "")
}

// Title derives a display title from a slug: "my-doc" becomes "My Doc".
func Title(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Render loads <slug>.md and converts it to HTML. The slug is sanitized
// before touching the filesystem. A missing document is ErrDocNotFound.
func (r *Renderer) Render(slug string) (string, error) {
	slug = SanitizeSlug(slug)
	if slug == "" {
		return "", ErrDocNotFound
	}

	source, err := os.ReadFile(filepath.Join(r.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrDocNotFound
		}
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
