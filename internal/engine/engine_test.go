package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/crimson-sun/petsignal/internal/engine/signaldb"
	"github.com/crimson-sun/petsignal/internal/engine/testdata"
	"github.com/crimson-sun/petsignal/internal/model"
)

// newTestEngine creates an engine over the embedded default catalogue.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	db, err := signaldb.Default()
	if err != nil {
		t.Fatalf("signaldb.Default() error: %v", err)
	}
	return New(db, nil, nil)
}

var (
	scenarioA = model.ObservationDescription{
		Posture: "tense rigid body", Tail: "rigid held high", Ears: "back", Eyes: "fixed stare",
		Mouth: "baring teeth", Movements: "frozen", Sounds: "growling",
	}
	scenarioB = model.ObservationDescription{
		Posture: "crouched low", Tail: "tucked between legs", Ears: "pinned back",
		Eyes: "half-closed avoiding contact", Mouth: "closed tense", Movements: "still", Sounds: "none",
	}
	scenarioC = model.ObservationDescription{
		Posture: "chest down, hips up", Tail: "wagging side to side", Ears: "forward", Eyes: "bright",
		Mouth: "open tongue out", Movements: "bouncy", Sounds: "none",
	}
	scenarioD = model.ObservationDescription{
		Posture: "undetermined", Tail: "undetermined", Ears: "undetermined", Eyes: "undetermined",
		Mouth: "undetermined", Movements: "undetermined", Sounds: "undetermined",
	}
)

func TestInterpretScenarioA(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(scenarioA)
	if res.Emotion != model.EmotionAggressive {
		t.Errorf("Emotion = %q, want aggressive", res.Emotion)
	}
	if res.Confidence <= 80 {
		t.Errorf("Confidence = %d, want > 80", res.Confidence)
	}
	if res.Rule != model.RuleAggression {
		t.Errorf("Rule = %q, want %q", res.Rule, model.RuleAggression)
	}
}

func TestInterpretScenarioB(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(scenarioB)
	if res.Emotion != model.EmotionFearful {
		t.Errorf("Emotion = %q, want fearful", res.Emotion)
	}
	if res.SignalCount != 5 {
		t.Errorf("SignalCount = %d, want 5", res.SignalCount)
	}
	if res.Context != "fear" {
		t.Errorf("Context = %q, want fear", res.Context)
	}
}

func TestInterpretScenarioC(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(scenarioC)
	if res.Emotion != model.EmotionPlayful || res.Confidence != 95 {
		t.Errorf("got %s/%d, want playful/95", res.Emotion, res.Confidence)
	}
	if res.Rule != model.RulePlayBowDetector {
		t.Errorf("Rule = %q, want %q", res.Rule, model.RulePlayBowDetector)
	}
}

func TestInterpretScenarioD(t *testing.T) {
	eng := newTestEngine(t)
	if got := eng.Match(scenarioD); len(got) != 0 {
		t.Errorf("Match() returned %d signals, want 0", len(got))
	}
	res := eng.Interpret(scenarioD)
	if !res.Success {
		t.Error("Success = false, want true")
	}
	if res.Emotion != model.EmotionNeutral {
		t.Errorf("Emotion = %q, want neutral", res.Emotion)
	}
	if res.Confidence < 20 || res.Confidence > 30 {
		t.Errorf("Confidence = %d, want 20..30", res.Confidence)
	}
}

func TestInterpretPlayBowOverridesAggressiveWords(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(model.ObservationDescription{
		Posture: "chest on the ground", Tail: "wagging", Sounds: "growling", Mouth: "teeth visible",
	})
	if res.Emotion != model.EmotionPlayful || res.Confidence != 95 {
		t.Errorf("got %s/%d, want playful/95", res.Emotion, res.Confidence)
	}
}

func TestInterpretPlayBowWithIntenseWording(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(model.ObservationDescription{
		Posture: "chest on the ground", Tail: "wagging", Eyes: "intense excitement",
	})
	if res.Emotion != model.EmotionPlayful || res.Confidence != 95 || res.Rule != model.RulePlayBowDetector {
		t.Errorf("got %s/%d/%s, want playful/95/%s", res.Emotion, res.Confidence, res.Rule, model.RulePlayBowDetector)
	}
}

func TestClassifyIntenseSignalNotAggressive(t *testing.T) {
	db, err := signaldb.New([]model.SignalRecord{
		{ID: 1, Label: "Zoomies", Description: "Intense burst of running in circles", ProbableEmotion: "excited, happy", Intensity: 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	eng := New(db, nil, nil)
	res := eng.Interpret(model.ObservationDescription{Movements: "intense burst of running in circles"})
	if res.Emotion != model.EmotionHappy || res.Rule != model.RuleBucketScore {
		t.Errorf("got %s/%s, want happy/%s", res.Emotion, res.Rule, model.RuleBucketScore)
	}
}

func TestInterpretPlayBowSuppressedByTension(t *testing.T) {
	eng := newTestEngine(t)
	res := eng.Interpret(model.ObservationDescription{
		Posture: "chest on the ground, rigid", Tail: "wagging",
	})
	if res.Rule == model.RulePlayBowDetector {
		t.Fatalf("play bow detector fired despite rigid marker: %+v", res)
	}
	if res.Emotion == model.EmotionPlayful && res.Confidence == 95 {
		t.Errorf("got playful/95, want a non-override result")
	}
}

func TestInterpretIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	for _, desc := range []model.ObservationDescription{scenarioA, scenarioB, scenarioC, scenarioD} {
		first := eng.Interpret(desc)
		second := eng.Interpret(desc)
		if first != second {
			t.Errorf("Interpret() not idempotent:\n first  %+v\n second %+v", first, second)
		}
	}
}

func TestInterpretAllPlaceholdersVariants(t *testing.T) {
	eng := newTestEngine(t)
	for _, ph := range []string{"undetermined", "Undetermined.", "no determinado", "n/a", ""} {
		desc := model.ObservationDescription{
			Posture: ph, Tail: ph, Ears: ph, Eyes: ph, Mouth: ph, Movements: ph, Sounds: ph,
		}
		res := eng.Interpret(desc)
		if res.Confidence > 30 || res.Emotion != model.EmotionNeutral {
			t.Errorf("placeholder %q: got %s/%d, want neutral/<=30", ph, res.Emotion, res.Confidence)
		}
	}
}

func TestInterpretEmptyDatabase(t *testing.T) {
	eng := New(signaldb.Empty(), nil, nil)
	res := eng.Interpret(scenarioA)
	if res.Emotion != model.EmotionNeutral || res.Confidence != 30 || !res.Success {
		t.Errorf("got %+v, want neutral/30 success", res)
	}

	// The play-bow detector does not depend on the database.
	res = eng.Interpret(scenarioC)
	if res.Emotion != model.EmotionPlayful {
		t.Errorf("Emotion = %q, want playful", res.Emotion)
	}
}

func TestNewNilDatabase(t *testing.T) {
	eng := New(nil, nil, nil)
	if eng.Database().Len() != 0 {
		t.Errorf("Database().Len() = %d, want 0", eng.Database().Len())
	}
}

func TestClassifyAggressionOverride(t *testing.T) {
	eng := newTestEngine(t)
	matched := eng.Match(model.ObservationDescription{
		Posture: "rigid, tense", Tail: "wagging side to side", Mouth: "bared teeth",
	})
	c := eng.Classify(matched)
	if c.Dominant == nil || c.Dominant.Emotion != model.EmotionAggressive {
		t.Fatalf("Dominant = %+v, want aggressive", c.Dominant)
	}
}

func TestInterpretBatchPreservesOrder(t *testing.T) {
	eng := newTestEngine(t)
	descs := []model.ObservationDescription{scenarioA, scenarioB, scenarioC, scenarioD}
	for i := 0; i < 20; i++ {
		descs = append(descs, descs[i%4])
	}

	got, err := eng.InterpretBatch(context.Background(), descs, 3)
	if err != nil {
		t.Fatalf("InterpretBatch() error: %v", err)
	}
	if len(got) != len(descs) {
		t.Fatalf("InterpretBatch() returned %d results, want %d", len(got), len(descs))
	}
	for i, desc := range descs {
		if want := eng.Interpret(desc); got[i] != want {
			t.Errorf("result[%d] = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestInterpretBatchEmpty(t *testing.T) {
	eng := newTestEngine(t)
	got, err := eng.InterpretBatch(context.Background(), nil, 0)
	if err != nil {
		t.Fatalf("InterpretBatch() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("InterpretBatch() returned %d results, want 0", len(got))
	}
}

func TestInterpretBatchCancelled(t *testing.T) {
	eng := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.InterpretBatch(ctx, []model.ObservationDescription{scenarioA, scenarioB}, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("InterpretBatch() error = %v, want context.Canceled", err)
	}
}

func TestCorpusScenarios(t *testing.T) {
	scenarios, err := testdata.LoadScenarios()
	if err != nil {
		t.Fatalf("LoadScenarios() error: %v", err)
	}
	eng := newTestEngine(t)

	correct := 0
	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			res := eng.Interpret(s.Observation)
			ok := true
			if res.Emotion != s.Emotion {
				t.Errorf("Emotion = %q, want %q", res.Emotion, s.Emotion)
				ok = false
			}
			if res.Rule != s.Rule {
				t.Errorf("Rule = %q, want %q", res.Rule, s.Rule)
				ok = false
			}
			maxConf := s.MaxConfidence
			if maxConf == 0 {
				maxConf = 100
			}
			if res.Confidence < s.MinConfidence || res.Confidence > maxConf {
				t.Errorf("Confidence = %d, want %d..%d", res.Confidence, s.MinConfidence, maxConf)
				ok = false
			}
			if ok {
				correct++
			}
		})
	}
	t.Logf("corpus accuracy: %d/%d", correct, len(scenarios))
}

func TestExplain(t *testing.T) {
	eng := newTestEngine(t)

	res, matched := eng.Explain(scenarioB)
	if res != eng.Interpret(scenarioB) {
		t.Errorf("Explain() result differs from Interpret()")
	}
	if len(matched) != res.SignalCount {
		t.Errorf("Explain() returned %d signals, result counts %d", len(matched), res.SignalCount)
	}

	_, matched = eng.Explain(scenarioC)
	if matched != nil {
		t.Errorf("Explain() on play bow returned %d signals, want nil", len(matched))
	}
}
