package matcher

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/crimson-sun/petsignal/internal/engine/detector"
	"github.com/crimson-sun/petsignal/internal/engine/lexicon"
	"github.com/crimson-sun/petsignal/internal/engine/signaldb"
	"github.com/crimson-sun/petsignal/internal/model"
)

// maxSubPhraseWords is the word count a comma-separated sub-phrase must
// exceed before it is tested on its own.
const maxSubPhraseWords = 5

// entry is a signal record with its text pre-normalised.
type entry struct {
	record      model.SignalRecord
	label       string
	description string
	text        string // label + description
	gameBonus   int
}

// Matcher scores observation descriptions against a signal database.
type Matcher struct {
	entries []entry
}

// New pre-normalises every record of db. The database is only read here.
func New(db *signaldb.Database) *Matcher {
	records := db.All()
	entries := make([]entry, len(records))
	for i, r := range records {
		label := lexicon.Normalize(r.Label)
		desc := lexicon.Normalize(r.Description)
		entries[i] = entry{
			record:      r,
			label:       label,
			description: desc,
			text:        label + " " + desc,
			gameBonus:   GameBonus(r),
		}
	}
	return &Matcher{entries: entries}
}

// GameBonus returns 2 for play or invitation signals, 1 otherwise.
func GameBonus(r model.SignalRecord) int {
	if detector.IsPlay(r) {
		return 2
	}
	return 1
}

// Match returns every record hit by at least one observable field, ranked
// by score descending. Ties keep catalogue order.
func (m *Matcher) Match(desc model.ObservationDescription) []model.MatchedSignal {
	fields := Observable(desc)
	matched := []model.MatchedSignal{}
	if len(fields) == 0 {
		return matched
	}

	for _, e := range m.entries {
		ms := model.MatchedSignal{Record: e.record, GameBonus: e.gameBonus}
		for _, f := range fields {
			policy, ok := e.match(f.Text)
			if !ok {
				continue
			}
			ms.MatchScore += e.record.Intensity * e.gameBonus
			ms.Hits = append(ms.Hits, model.Hit{Field: f.Field, Policy: policy})
		}
		if ms.MatchScore > 0 {
			matched = append(matched, ms)
		}
	}

	slices.SortStableFunc(matched, func(a, b model.MatchedSignal) int {
		return b.MatchScore - a.MatchScore
	})
	return matched
}

// Observable returns the normalised, non-placeholder fields of desc in
// canonical order.
func Observable(desc model.ObservationDescription) []model.FieldValue {
	var out []model.FieldValue
	for _, fv := range desc.Fields() {
		text := lexicon.Normalize(fv.Text)
		if lexicon.IsPlaceholder(text) {
			continue
		}
		out = append(out, model.FieldValue{Field: fv.Field, Text: lexicon.TrimPunct(text)})
	}
	return out
}

// match applies the layered policy to one normalised field. The first
// policy that holds wins.
func (e entry) match(field string) (model.Policy, bool) {
	switch {
	case e.matchExact(field):
		return model.PolicyExact, true
	case e.matchSubPhrase(field):
		return model.PolicySubPhrase, true
	case e.matchDomainPhrase(field):
		return model.PolicyPhrase, true
	case e.matchVocabulary(field):
		return model.PolicyVocabulary, true
	}
	return "", false
}

func (e entry) matchExact(field string) bool {
	for _, s := range []string{e.label, e.description} {
		if s == "" {
			continue
		}
		if strings.Contains(s, field) || strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func (e entry) matchSubPhrase(field string) bool {
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if len(strings.Fields(part)) > maxSubPhraseWords && strings.Contains(e.text, part) {
			return true
		}
	}
	return false
}

func (e entry) matchDomainPhrase(field string) bool {
	for _, p := range lexicon.DomainPhrases {
		if strings.Contains(field, p) && strings.Contains(e.text, p) {
			return true
		}
	}
	return false
}

func (e entry) matchVocabulary(field string) bool {
	for _, w := range lexicon.Words(field) {
		if utf8.RuneCountInString(w) < lexicon.MinVocabularyWordLen {
			continue
		}
		if lexicon.Stopwords.Has(w) || !lexicon.SpecificVocabulary.Has(w) {
			continue
		}
		if strings.Contains(e.text, w) {
			return true
		}
	}
	return false
}
