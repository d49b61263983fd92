// Package detector implements the override rules that must not be diluted
// by generic keyword overlap: the play-bow detector, which inspects the
// raw description before any matching, and the signal-level play-bow and
// aggression tests the classifier applies to matched signals.
package detector

import (
	"strings"

	"github.com/crimson-sun/petsignal/internal/engine/lexicon"
	"github.com/crimson-sun/petsignal/internal/model"
)

// minStructuralCues is how many of chest-down, hips-up and tail-moving must
// co-occur when no explicit play-bow phrase is present.
const minStructuralCues = 2

// PlayBow is the outcome of the play-bow detector.
type PlayBow struct {
	Detected bool
	Marker   string // explicit phrase that fired, if any
	Cues     int    // structural cues present
	Vetoed   string // veto marker that suppressed detection, if any
}

// DetectPlayBow examines posture, tail and movements for a play bow. Any
// rigid, tense or threat marker in any field suppresses detection.
func DetectPlayBow(desc model.ObservationDescription) PlayBow {
	var all []string
	for _, fv := range desc.Fields() {
		all = append(all, lexicon.Normalize(fv.Text))
	}
	if veto, ok := lexicon.PlayBowVetoes.Find(strings.Join(all, " | ")); ok {
		return PlayBow{Vetoed: veto}
	}

	body := lexicon.Normalize(strings.Join([]string{desc.Posture, desc.Tail, desc.Movements}, " | "))
	if marker, ok := lexicon.PlayBowMarkers.Find(body); ok {
		return PlayBow{Detected: true, Marker: marker}
	}

	cues := 0
	for _, set := range []lexicon.Set{lexicon.ChestDownCues, lexicon.HipsUpCues, lexicon.TailMovingCues} {
		if set.Any(body) {
			cues++
		}
	}
	return PlayBow{Detected: cues >= minStructuralCues, Cues: cues}
}

// recordText is the normalised label, description and emotion of r.
func recordText(r model.SignalRecord) string {
	return lexicon.Normalize(r.Label + " " + r.Description + " " + r.ProbableEmotion)
}

// IsPlayBowSignal reports whether a catalogued signal unambiguously names
// a play bow: a play-bow phrase, a chest touching floor or ground, and no
// rigid or threat wording.
func IsPlayBowSignal(r model.SignalRecord) bool {
	text := recordText(r)
	if !lexicon.PlayBowSignalNames.Any(text) {
		return false
	}
	if !strings.Contains(text, "chest") {
		return false
	}
	if !strings.Contains(text, "floor") && !strings.Contains(text, "ground") {
		return false
	}
	return !lexicon.PlayBowSignalVetoes.Any(text)
}

// IsAggressive reports whether a signal carries any aggression marker.
func IsAggressive(r model.SignalRecord) bool {
	return lexicon.AggressionMarkers.Any(recordText(r))
}

// IsPlay reports whether a signal is a play or invitation signal.
func IsPlay(r model.SignalRecord) bool {
	return lexicon.PlayMarkers.Any(recordText(r))
}
