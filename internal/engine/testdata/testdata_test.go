package testdata

import (
	"testing"

	"github.com/crimson-sun/petsignal/internal/model"
)

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios()
	if err != nil {
		t.Fatalf("LoadScenarios() error: %v", err)
	}
	if len(scenarios) == 0 {
		t.Fatal("corpus is empty")
	}
	t.Logf("Total scenarios: %d", len(scenarios))

	names := make(map[string]bool)
	for i, s := range scenarios {
		if s.Name == "" {
			t.Errorf("scenario[%d] has empty name", i)
		}
		if names[s.Name] {
			t.Errorf("scenario[%d] duplicates name %q", i, s.Name)
		}
		names[s.Name] = true
		if s.Emotion == "" {
			t.Errorf("scenario %q has empty emotion", s.Name)
		}
		if s.Rule == "" {
			t.Errorf("scenario %q has empty rule", s.Name)
		}
		if s.MaxConfidence != 0 && s.MaxConfidence < s.MinConfidence {
			t.Errorf("scenario %q: max_confidence %d < min_confidence %d", s.Name, s.MaxConfidence, s.MinConfidence)
		}
		if s.Observation == (model.ObservationDescription{}) {
			t.Errorf("scenario %q has no observation", s.Name)
		}
	}
}

func TestScenarioCoverage(t *testing.T) {
	scenarios, err := LoadScenarios()
	if err != nil {
		t.Fatalf("LoadScenarios() error: %v", err)
	}

	rules := map[string]bool{
		model.RulePlayBowDetector: false,
		model.RuleAggression:      false,
		model.RuleBucketScore:     false,
		model.RuleNoSignals:       false,
	}
	for _, s := range scenarios {
		if _, ok := rules[s.Rule]; !ok {
			t.Errorf("scenario %q has unknown rule %q", s.Name, s.Rule)
			continue
		}
		rules[s.Rule] = true
	}
	for rule, seen := range rules {
		if !seen {
			t.Errorf("no scenario exercises rule %q", rule)
		}
	}
}
