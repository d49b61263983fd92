package model

import "strings"

// SignalRecord is one catalogued behavioural signal. Records are immutable
// once the signal database is built.
type SignalRecord struct {
	ID              int
	Label           string
	Description     string
	ProbableEmotion string // comma-separated emotion tags
	Intensity       int    // 1..5
	Interpretation  string // used verbatim in translations
}

// Emotions splits ProbableEmotion into trimmed, lowercase tags.
func (r SignalRecord) Emotions() []string {
	parts := strings.Split(r.ProbableEmotion, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// PrimaryEmotion returns the first emotion tag, or "" if there is none.
func (r SignalRecord) PrimaryEmotion() string {
	tags := r.Emotions()
	if len(tags) == 0 {
		return ""
	}
	return tags[0]
}

// Policy names the match policy that made a field hit a record.
type Policy string

const (
	PolicyExact      Policy = "exact"
	PolicySubPhrase  Policy = "sub_phrase"
	PolicyPhrase     Policy = "domain_phrase"
	PolicyVocabulary Policy = "vocabulary"
)

// Hit records which field matched a record and through which policy.
type Hit struct {
	Field  Field
	Policy Policy
}

// MatchedSignal is a SignalRecord scored against one description.
type MatchedSignal struct {
	Record     SignalRecord
	MatchScore int
	GameBonus  int // 1, or 2 for play/invitation signals
	Hits       []Hit
}
