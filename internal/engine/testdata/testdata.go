package testdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/crimson-sun/petsignal/internal/model"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// Scenario is a labelled observation for interpretation validation.
type Scenario struct {
	Name          string                       `yaml:"name"`
	Observation   model.ObservationDescription `yaml:"observation"`
	Emotion       string                       `yaml:"emotion"`
	Rule          string                       `yaml:"rule"`
	MinConfidence int                          `yaml:"min_confidence"`
	MaxConfidence int                          `yaml:"max_confidence"` // 0 means 100
}

// LoadScenarios parses the embedded scenarios.yaml and returns all entries.
func LoadScenarios() ([]Scenario, error) {
	var doc struct {
		Scenarios []Scenario `yaml:"scenarios"`
	}
	if err := yaml.Unmarshal(scenariosYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse scenarios.yaml: %w", err)
	}
	return doc.Scenarios, nil
}
