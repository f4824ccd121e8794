// Package content loads the dashboard content file: useful links, projects
// and teaching sequences.
package content

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"dashboard/internal/models"
)

// Dashboard represents the structure of the dashboard.yaml content file.
type Dashboard struct {
	Links     []models.SiteLink `yaml:"links"`
	Projects  []models.Project  `yaml:"projects"`
	Sequences []models.Sequence `yaml:"sequences"`
}

// LoadDashboard loads <dir>/dashboard.yaml. Returns an empty dashboard
// without error if the file doesn't exist, so the app still serves pages
// before any content is written.
func LoadDashboard(dir string) (*Dashboard, error) {
	data, err := os.ReadFile(filepath.Join(dir, "dashboard.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Dashboard{}, nil
		}
		return nil, err
	}

	var d Dashboard
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}

	// Set defaults
	for i := range d.Sequences {
		if d.Sequences[i].Status == "" {
			d.Sequences[i].Status = models.SequenceAvailable
		}
	}

	return &d, nil
}
