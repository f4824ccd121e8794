package models

// Sequence status constants
const (
	SequenceAvailable  = "available"
	SequenceComingSoon = "coming-soon"
)

// SiteLink is an external bookmark shown on the dashboard.
type SiteLink struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// Project is a deployed project card shown on the dashboard.
type Project struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

// Sequence is a teaching sequence entry, either a served document or a
// coming-soon placeholder.
type Sequence struct {
	Title       string `json:"title" yaml:"title"`
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
	Status      string `json:"status" yaml:"status"`
}
