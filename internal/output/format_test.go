package output

import (
	"encoding/json"
	"testing"

	"github.com/crimson-sun/petsignal/internal/model"
)

func baseRecord() Record {
	desc := model.ObservationDescription{Mouth: "baring teeth", Sounds: "growling"}
	res := model.InterpretationResult{
		Translation: "Back off! This is your last warning.",
		Confidence:  95,
		Emotion:     model.EmotionAggressive,
		Behavior:    "Mouth: baring teeth. Sounds: growling.",
		Context:     "aggression",
		Success:     true,
		Rule:        model.RuleAggression,
		SignalCount: 2,
	}
	matched := []model.MatchedSignal{{
		Record:     model.SignalRecord{ID: 21, Label: "Bared teeth", ProbableEmotion: "aggression, warning", Intensity: 5},
		MatchScore: 5,
		GameBonus:  1,
		Hits:       []model.Hit{{Field: model.FieldMouth, Policy: model.PolicyExact}},
	}}
	return NewRecord(desc, res, matched)
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		input   string
		want    Verbosity
		wantErr bool
	}{
		{"minimal", Minimal, false},
		{"Standard", Standard, false},
		{"", Standard, false},
		{"FULL", Full, false},
		{"verbose", Standard, true},
	}
	for _, tt := range tests {
		got, err := ParseVerbosity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVerbosity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewRecordSignals(t *testing.T) {
	rec := baseRecord()
	if len(rec.Signals) != 1 {
		t.Fatalf("Signals = %d, want 1", len(rec.Signals))
	}
	s := rec.Signals[0]
	if s.ID != 21 || s.Score != 5 || s.Emotion != "aggression, warning" {
		t.Errorf("Signal = %+v", s)
	}
	if len(s.Hits) != 1 || s.Hits[0] != "mouth:exact" {
		t.Errorf("Hits = %v, want [mouth:exact]", s.Hits)
	}
	if Signals(nil) != nil {
		t.Error("Signals(nil) should be nil")
	}
}

func TestFormatRecordMinimal(t *testing.T) {
	rec := FormatRecord(baseRecord(), Minimal)

	if rec.Observation != nil {
		t.Fatal("Observation should be nil at Minimal")
	}
	if rec.Result.Behavior != "" {
		t.Fatal("Behavior should be empty at Minimal")
	}
	if rec.Signals != nil {
		t.Fatal("Signals should be nil at Minimal")
	}
	if rec.Result.Emotion != model.EmotionAggressive {
		t.Fatal("Emotion should be preserved")
	}
	if rec.Result.Translation == "" {
		t.Fatal("Translation should be preserved")
	}
}

func TestFormatRecordStandard(t *testing.T) {
	rec := FormatRecord(baseRecord(), Standard)

	if rec.Observation == nil {
		t.Fatal("Observation should be preserved at Standard")
	}
	if rec.Result.Behavior == "" {
		t.Fatal("Behavior should be preserved at Standard")
	}
	if rec.Signals != nil {
		t.Fatal("Signals should be nil at Standard")
	}
}

func TestFormatRecordFull(t *testing.T) {
	orig := baseRecord()
	rec := FormatRecord(orig, Full)

	if len(rec.Signals) != 1 {
		t.Fatalf("Signals = %d, want 1 at Full", len(rec.Signals))
	}
	if rec.Observation == nil || rec.Result.Behavior != orig.Result.Behavior {
		t.Fatal("all fields should be preserved at Full")
	}
}

func TestFormatRecordDoesNotMutate(t *testing.T) {
	orig := baseRecord()
	_ = FormatRecord(orig, Minimal)

	if orig.Observation == nil || orig.Result.Behavior == "" || orig.Signals == nil {
		t.Fatal("FormatRecord should not mutate the original record")
	}
}

func TestFormatRecordMinimalJSON(t *testing.T) {
	data, err := json.Marshal(FormatRecord(baseRecord(), Minimal))
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	for _, key := range []string{"observation", "signals", "count", "seq"} {
		if _, ok := m[key]; ok {
			t.Errorf("%s should be omitted at Minimal", key)
		}
	}
	result, ok := m["result"].(map[string]any)
	if !ok {
		t.Fatalf("result missing: %s", data)
	}
	if _, ok := result["behavior"]; ok {
		t.Error("behavior should be omitted at Minimal")
	}
	if result["emotion"] != "aggressive" {
		t.Errorf("emotion = %v, want aggressive", result["emotion"])
	}
}
