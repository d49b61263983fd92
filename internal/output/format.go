package output

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/petsignal/internal/model"
)

// Verbosity controls how much detail a written record retains.
type Verbosity int

const (
	Minimal  Verbosity = iota // result only, no behaviour or signals
	Standard                  // result with behaviour summary and observation
	Full                      // everything, including matched signals
)

// ParseVerbosity maps "minimal", "standard" or "full" to a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return Minimal, nil
	case "standard", "":
		return Standard, nil
	case "full":
		return Full, nil
	default:
		return Standard, fmt.Errorf("unknown verbosity %q", s)
	}
}

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "standard"
	}
}

// Record is one written line: the observation, its interpretation and,
// at full verbosity, the evidence behind it.
type Record struct {
	Seq         int                           `json:"seq,omitempty"`
	Observation *model.ObservationDescription `json:"observation,omitempty"`
	Result      model.InterpretationResult    `json:"result"`
	Signals     []Signal                      `json:"signals,omitempty"`
	Count       int                           `json:"count,omitempty"` // >1 when consecutive repeats were collapsed
}

// Signal is the written form of a matched signal.
type Signal struct {
	ID      int      `json:"id"`
	Label   string   `json:"label"`
	Emotion string   `json:"emotion"`
	Score   int      `json:"score"`
	Hits    []string `json:"hits,omitempty"` // "field:policy"
}

// NewRecord pairs an observation with its result and matched signals.
func NewRecord(desc model.ObservationDescription, res model.InterpretationResult, matched []model.MatchedSignal) Record {
	return Record{
		Observation: &desc,
		Result:      res,
		Signals:     Signals(matched),
	}
}

// Signals converts matched signals to their written form.
func Signals(matched []model.MatchedSignal) []Signal {
	if len(matched) == 0 {
		return nil
	}
	out := make([]Signal, len(matched))
	for i, ms := range matched {
		hits := make([]string, len(ms.Hits))
		for j, h := range ms.Hits {
			hits[j] = string(h.Field) + ":" + string(h.Policy)
		}
		out[i] = Signal{
			ID:      ms.Record.ID,
			Label:   ms.Record.Label,
			Emotion: ms.Record.ProbableEmotion,
			Score:   ms.MatchScore,
			Hits:    hits,
		}
	}
	return out
}

// FormatRecord returns a copy of the record with fields stripped according
// to verbosity. At Minimal the observation, behaviour and signals are
// dropped; at Standard only the signals are.
func FormatRecord(rec Record, verbosity Verbosity) Record {
	switch verbosity {
	case Minimal:
		rec.Observation = nil
		rec.Result.Behavior = ""
		rec.Signals = nil
	case Standard:
		rec.Signals = nil
	}
	return rec
}
