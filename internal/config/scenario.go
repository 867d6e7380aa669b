package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tea-engine/internal/model"
)

// Scenario is the on-disk configuration shape (YAML) consumed by the CLI.
// Technology selects a catalog preset; Project holds per-project overrides
// applied on top of it (absent fields keep the preset/default values).
type Scenario struct {
	Technology  string               `yaml:"technology"`
	Project     model.InputOverrides `yaml:"project"`
	Sensitivity *SensitivityConfig   `yaml:"sensitivity"`
}

// SensitivityConfig configures an optional sensitivity run alongside the
// main calculation.
type SensitivityConfig struct {
	Parameter     string    `yaml:"parameter"`
	VariationsPct []float64 `yaml:"variations_pct"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Sensitivity != nil {
		if s.Sensitivity.Parameter == "" {
			return nil, fmt.Errorf("scenario %s: sensitivity.parameter is required", path)
		}
		if len(s.Sensitivity.VariationsPct) == 0 {
			return nil, fmt.Errorf("scenario %s: sensitivity.variations_pct is empty", path)
		}
	}
	return &s, nil
}
