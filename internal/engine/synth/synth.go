package synth

import (
	"strings"

	"github.com/crimson-sun/petsignal/internal/engine/lexicon"
	"github.com/crimson-sun/petsignal/internal/model"
)

const (
	MaxConfidence       = 95
	BlankConfidence     = 20 // no observable field at all
	UnmatchedConfidence = 30 // observable fields, no matching signal

	baseConfidence  = 50
	perSignal       = 10
	perTopScorePt   = 5
	defaultRunnerUp = 2
)

const (
	PlayInvitationTranslation = "Let's play! I'm inviting you to a game."
	UnclearTranslation        = "I can't clearly interpret what I see right now."

	ContextPlayInvitation = "play invitation"
	ContextUnclear        = "unclear"
)

// Synthesizer turns a classification into the final interpretation result.
type Synthesizer struct {
	// RunnerUps is how many signals after the top one contribute to the
	// translation.
	RunnerUps int
}

// New creates a Synthesizer with the default runner-up count.
func New() *Synthesizer {
	return &Synthesizer{RunnerUps: defaultRunnerUp}
}

// Synthesize builds the result for desc from its classification. A
// classification without a dominant bucket yields the fallback result.
func (s *Synthesizer) Synthesize(desc model.ObservationDescription, c model.Classification) model.InterpretationResult {
	if c.Dominant == nil || len(c.Dominant.Signals) == 0 {
		return Fallback(desc)
	}

	evidence := c.Dominant.Signals
	top := evidence[0]

	return model.InterpretationResult{
		Translation: s.translate(evidence),
		Confidence:  Confidence(c.Total, top.MatchScore),
		Emotion:     c.Dominant.Emotion,
		Behavior:    Behavior(desc),
		Context:     contextLabel(top.Record),
		Success:     true,
		Rule:        c.Rule,
		SignalCount: c.Total,
	}
}

// PlayInvitation is the fixed result returned when the play-bow detector
// fires on the raw description.
func PlayInvitation(desc model.ObservationDescription) model.InterpretationResult {
	return model.InterpretationResult{
		Translation: PlayInvitationTranslation,
		Confidence:  MaxConfidence,
		Emotion:     model.EmotionPlayful,
		Behavior:    Behavior(desc),
		Context:     ContextPlayInvitation,
		Success:     true,
		Rule:        model.RulePlayBowDetector,
	}
}

// Fallback is the degraded result for a description that matched nothing.
func Fallback(desc model.ObservationDescription) model.InterpretationResult {
	conf := BlankConfidence
	if len(observed(desc)) > 0 {
		conf = UnmatchedConfidence
	}
	return model.InterpretationResult{
		Translation: UnclearTranslation,
		Confidence:  conf,
		Emotion:     model.EmotionNeutral,
		Behavior:    Behavior(desc),
		Context:     ContextUnclear,
		Success:     true,
		Rule:        model.RuleNoSignals,
	}
}

// Confidence is min(95, 50 + 10*signalCount + 5*topScore).
func Confidence(signalCount, topScore int) int {
	return min(MaxConfidence, baseConfidence+perSignal*signalCount+perTopScorePt*topScore)
}

// Behavior renders every observable field as "Field: value." in canonical
// order, separated by spaces.
func Behavior(desc model.ObservationDescription) string {
	fields := observed(desc)
	parts := make([]string, 0, len(fields))
	for _, fv := range fields {
		parts = append(parts, fv.Field.Title()+": "+fv.Text+".")
	}
	return strings.Join(parts, " ")
}

// translate joins the interpretation of the top evidence signal with up to
// RunnerUps further ones, skipping blanks and repeats.
func (s *Synthesizer) translate(evidence []model.MatchedSignal) string {
	limit := 1 + max(0, s.RunnerUps)
	var parts []string
	seen := make(map[string]bool)
	for _, ms := range evidence {
		if len(parts) == limit {
			break
		}
		text := strings.TrimSpace(ms.Record.Interpretation)
		if text == "" {
			text = strings.TrimSpace(ms.Record.Description)
		}
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return UnclearTranslation
	}
	return strings.Join(parts, " ")
}

func contextLabel(r model.SignalRecord) string {
	if e := r.PrimaryEmotion(); e != "" {
		return e
	}
	return ContextUnclear
}

// observed returns the non-blank, non-placeholder fields with surrounding
// space and trailing full stops removed. Original wording is kept.
func observed(desc model.ObservationDescription) []model.FieldValue {
	var out []model.FieldValue
	for _, fv := range desc.Fields() {
		if lexicon.IsPlaceholder(lexicon.Normalize(fv.Text)) {
			continue
		}
		text := strings.TrimRight(strings.TrimSpace(fv.Text), ". ")
		if text == "" {
			continue
		}
		out = append(out, model.FieldValue{Field: fv.Field, Text: text})
	}
	return out
}
