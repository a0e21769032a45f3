package eda

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/titanic-eda/internal/utils"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestFile is written next to the figures.
const ManifestFile = "manifest.yaml"

// Manifest indexes the figures written by one run.
type Manifest struct {
	RunID     string        `yaml:"run_id"`
	Source    string        `yaml:"source"`
	Rows      int           `yaml:"rows"`
	CreatedAt time.Time     `yaml:"created_at"`
	Figures   []FigureEntry `yaml:"figures"`
}

// FigureEntry is one rendered figure.
type FigureEntry struct {
	Step  string   `yaml:"step"`
	Title string   `yaml:"title,omitempty"`
	File  string   `yaml:"file"`
	Notes []string `yaml:"notes,omitempty"`
}

// NewManifest starts a manifest with a fresh run ID.
func NewManifest(source string, rows int) *Manifest {
	return &Manifest{
		RunID:     uuid.NewString(),
		Source:    source,
		Rows:      rows,
		CreatedAt: time.Now().UTC(),
	}
}

// Save writes the manifest into dir.
func (m *Manifest) Save(dir string) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return utils.SafeWriteFile(filepath.Join(dir, ManifestFile), b)
}

// LoadManifest reads a manifest from dir.
func LoadManifest(dir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
