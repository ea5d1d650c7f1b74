package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kleafrog-source/research-resin/internal/recommend"
)

// Overrides carries optional user-supplied tweaks loaded from a YAML file:
// resin property values and requirement ranges for the custom
// recommendation profile.
type Overrides struct {
	ResinProps         map[string]float64         `yaml:"resin_props"`
	CustomRequirements map[string]recommend.Range `yaml:"custom_requirements"`
}

// LoadOverrides reads an overrides file. An empty path yields zero overrides.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("read overrides file: %w", err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Overrides{}, fmt.Errorf("parse overrides file %s: %w", path, err)
	}

	for name, r := range overrides.CustomRequirements {
		if r.Min > r.Max {
			return Overrides{}, fmt.Errorf("custom requirement %s: min %g exceeds max %g", name, r.Min, r.Max)
		}
	}
	return overrides, nil
}

// ApplyResinProps merges override values over a base property map. The base
// map is not modified.
func (o Overrides) ApplyResinProps(base map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(o.ResinProps))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range o.ResinProps {
		merged[k] = v
	}
	return merged
}
