package unlock

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed features.yaml
var defaultFeaturesYAML []byte

// Feature is one catalog entry.
type Feature struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Criteria    Criterion `yaml:"criteria" json:"criteria"`
}

// Catalog is the ordered feature list.
type Catalog struct {
	Features []Feature `yaml:"features"`
}

// ParseCatalog decodes and validates a YAML catalog. Duplicate IDs and
// unknown criterion kinds are load errors.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode feature catalog: %w", err)
	}
	if len(c.Features) == 0 {
		return nil, fmt.Errorf("feature catalog is empty")
	}
	seen := make(map[string]bool, len(c.Features))
	for i, f := range c.Features {
		if f.ID == "" {
			return nil, fmt.Errorf("feature %d missing id", i)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("duplicate feature id %q", f.ID)
		}
		seen[f.ID] = true
		if f.Name == "" {
			return nil, fmt.Errorf("feature %q missing name", f.ID)
		}
		if err := f.Criteria.Validate(); err != nil {
			return nil, fmt.Errorf("feature %q: %w", f.ID, err)
		}
	}
	return &c, nil
}

// DefaultCatalog returns the embedded feature catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultFeaturesYAML)
}

// Get returns the catalog entry for a feature ID.
func (c *Catalog) Get(id string) (Feature, bool) {
	for _, f := range c.Features {
		if f.ID == id {
			return f, true
		}
	}
	return Feature{}, false
}
