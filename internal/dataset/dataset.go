// Package dataset loads the reference resin dataset: a JSON array of
// commercial resin records. Loading is strict; a malformed file or a missing
// required field fails the whole load.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kleafrog-source/research-resin/internal/model"
)

// Load reads and validates a resin dataset file.
func Load(path string) ([]model.Resin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resin dataset: %w", err)
	}
	resins, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse resin dataset %s: %w", path, err)
	}
	return resins, nil
}

// Parse decodes a JSON array of resin records, validating required fields.
func Parse(data []byte) ([]model.Resin, error) {
	var resins []model.Resin
	if err := json.Unmarshal(data, &resins); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	for idx, r := range resins {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
	}
	return resins, nil
}

func validate(r model.Resin) error {
	required := []struct {
		field string
		value string
	}{
		{"name", r.Name},
		{"manufacturer", r.Manufacturer},
		{"type", r.Type},
		{"structure", r.Structure},
		{"functional_group", r.FunctionalGroup},
		{"ionic_form", r.IonicForm},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing required field %q", f.field)
		}
	}
	return nil
}

// FilterByStructure keeps the resins with the given structure.
func FilterByStructure(resins []model.Resin, structure string) []model.Resin {
	var out []model.Resin
	for _, r := range resins {
		if r.Structure == structure {
			out = append(out, r)
		}
	}
	return out
}
