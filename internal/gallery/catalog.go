package gallery

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no sections")
	ErrEmptySection = errors.New("section has no items")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrMissingImage = errors.New("item has no image url")
)

//go:embed default_catalog.toml
var defaultCatalog []byte

// DefaultCatalog returns the catalog bundled with the binary.
func DefaultCatalog() (*Catalog, error) {
	cat, err := ParseTOML(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return cat, nil
}

// LoadCatalog reads a catalog file. The format is picked from the extension:
// .yaml/.yml are YAML, anything else is TOML.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat *Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cat, err = ParseYAML(data)
	default:
		cat, err = ParseTOML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseTOML decodes and validates a TOML catalog.
func ParseTOML(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// ParseYAML decodes and validates a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate rejects catalogs the slider cannot be mounted with. Untitled
// sections get a positional title instead of failing.
func (c *Catalog) Validate() error {
	if len(c.Sections) == 0 {
		return ErrEmptyCatalog
	}
	for i := range c.Sections {
		s := &c.Sections[i]
		if strings.TrimSpace(s.Title) == "" {
			s.Title = fmt.Sprintf("Section %d", i+1)
		}
		if len(s.Items) == 0 {
			return fmt.Errorf("%q: %w", s.Title, ErrEmptySection)
		}
		seen := make(map[int]bool, len(s.Items))
		for _, it := range s.Items {
			if seen[it.ID] {
				return fmt.Errorf("%q: %w %d", s.Title, ErrDuplicateID, it.ID)
			}
			seen[it.ID] = true
			if strings.TrimSpace(it.ImageURL) == "" {
				return fmt.Errorf("%q item %d: %w", s.Title, it.ID, ErrMissingImage)
			}
		}
	}
	return nil
}
