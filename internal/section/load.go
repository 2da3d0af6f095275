package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gorcx/internal/material"
)

// LoadFromFile loads a section definition from a JSON or YAML file and
// recomputes its derived state. Sections without a units field get
// defaultUnits.
func LoadFromFile(path string, defaultUnits material.Units) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading section file: %w", err)
	}
	return Parse(data, filepath.Ext(path), defaultUnits)
}

// Parse decodes a section definition. ext selects the format: ".yaml" or
// ".yml" for YAML, anything else for JSON.
func Parse(data []byte, ext string, defaultUnits material.Units) (*Section, error) {
	var s Section
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing section YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing section JSON: %w", err)
		}
	}

	if s.Units == "" {
		s.Units = defaultUnits
	}
	u, err := material.ParseUnits(string(s.Units))
	if err != nil {
		return nil, &ValidationError{msg: err.Error()}
	}
	s.Units = u

	if err := s.Recompute(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Rectangle returns the counter-clockwise shape of a b x h rectangle with
// its lower-left corner at the origin.
func Rectangle(b, h float64) Shape {
	return Shape{Vertices: []Point{{0, 0}, {b, 0}, {b, h}, {0, h}, {0, 0}}}
}
