package petsignal

import (
	"github.com/crimson-sun/petsignal/internal/engine/matcher"
	"github.com/crimson-sun/petsignal/internal/model"
)

func (o Observation) toModel() model.ObservationDescription {
	return model.ObservationDescription{
		Posture:   o.Posture,
		Tail:      o.Tail,
		Ears:      o.Ears,
		Eyes:      o.Eyes,
		Mouth:     o.Mouth,
		Movements: o.Movements,
		Sounds:    o.Sounds,
	}
}

func resultFromModel(r model.InterpretationResult) Result {
	return Result{
		Translation: r.Translation,
		Confidence:  r.Confidence,
		Emotion:     r.Emotion,
		Behavior:    r.Behavior,
		Context:     r.Context,
		Success:     r.Success,
		Rule:        r.Rule,
		SignalCount: r.SignalCount,
	}
}

func signalFromModel(r model.SignalRecord) Signal {
	return Signal{
		ID:             r.ID,
		Label:          r.Label,
		Description:    r.Description,
		Emotion:        r.ProbableEmotion,
		Intensity:      r.Intensity,
		Interpretation: r.Interpretation,
	}
}

func (s Signal) toModel() model.SignalRecord {
	return model.SignalRecord{
		ID:              s.ID,
		Label:           s.Label,
		Description:     s.Description,
		ProbableEmotion: s.Emotion,
		Intensity:       s.Intensity,
		Interpretation:  s.Interpretation,
	}
}

func matchedFromModel(ms []model.MatchedSignal) []MatchedSignal {
	out := make([]MatchedSignal, len(ms))
	for i, m := range ms {
		var hits []Hit
		for _, h := range m.Hits {
			hits = append(hits, Hit{Field: string(h.Field), Policy: string(h.Policy)})
		}
		out[i] = MatchedSignal{
			Signal:    signalFromModel(m.Record),
			Score:     m.MatchScore,
			GameBonus: m.GameBonus,
			Hits:      hits,
		}
	}
	return out
}

func matchedToModel(ms []MatchedSignal) []model.MatchedSignal {
	out := make([]model.MatchedSignal, len(ms))
	for i, m := range ms {
		var hits []model.Hit
		for _, h := range m.Hits {
			hits = append(hits, model.Hit{Field: model.Field(h.Field), Policy: model.Policy(h.Policy)})
		}
		rec := m.Signal.toModel()
		bonus := m.GameBonus
		if bonus == 0 {
			bonus = matcher.GameBonus(rec)
		}
		out[i] = model.MatchedSignal{
			Record:     rec,
			MatchScore: m.Score,
			GameBonus:  bonus,
			Hits:       hits,
		}
	}
	return out
}
