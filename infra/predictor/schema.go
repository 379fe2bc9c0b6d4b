// Package predictor loads the persisted model and feature-column artifacts
// and adapts them to the core scoring interface.
package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	corepredictor "github.com/kilianp07/opforecast/core/predictor"
)

// LoadSchema reads a feature-column artifact: a JSON array with the ordered
// field names the model was trained on.
func LoadSchema(path string) (corepredictor.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return corepredictor.Schema{}, fmt.Errorf("read schema %s: %w", path, err)
	}
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return corepredictor.Schema{}, fmt.Errorf("parse schema %s: %w", path, err)
	}
	schema, err := corepredictor.NewSchema(fields)
	if err != nil {
		return corepredictor.Schema{}, fmt.Errorf("schema %s: %w", path, err)
	}
	return schema, nil
}
