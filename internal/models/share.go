package models

import "time"

// Item kind constants
const (
	KindText = "text"
	KindFile = "file"
)

// ShareItem is one unit of shared content: plain text or an encoded file.
// File content is a data URL (base64 with embedded MIME type), so it is
// ASCII-safe and self-describing. FileSize is the decoded byte length of the
// original file, not the length of the encoded string.
type ShareItem struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	FileName  string    `json:"fileName,omitempty"`
	FileType  string    `json:"fileType,omitempty"`
	FileSize  int64     `json:"fileSize,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Size returns the bytes this item counts against the aggregate payload
// ceiling: the original file size for files, the content length for text.
func (i ShareItem) Size() int64 {
	if i.Kind == KindFile {
		return i.FileSize
	}
	return int64(len(i.Content))
}

// Share is a code-addressable, immutable bundle of items with a 24-hour
// lifetime. All items carry the same CreatedAt as the share itself.
type Share struct {
	Code      string      `json:"code"`
	Items     []ShareItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}
