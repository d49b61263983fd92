package classifier

import (
	"github.com/crimson-sun/petsignal/internal/engine/detector"
	"github.com/crimson-sun/petsignal/internal/engine/lexicon"
	"github.com/crimson-sun/petsignal/internal/model"
)

// bucketSpec maps an emotion bucket to the keywords that route a signal
// into it. Order matters: a signal joins the first bucket it matches.
type bucketSpec struct {
	emotion  string
	keywords lexicon.Set
}

var bucketTable = []bucketSpec{
	{model.EmotionFearful, lexicon.Set{"fear", "submissi", "appeasement", "scared", "miedo", "sumis"}},
	{model.EmotionAnxious, lexicon.Set{"anxi", "stress", "nervous", "uneasy", "discomfort", "ansiedad", "estres"}},
	{model.EmotionPlayful, lexicon.Set{"play", "invit", "juego"}},
	{model.EmotionHappy, lexicon.Set{"happy", "joy", "content", "relaxed", "friendly", "excite", "affection", "trust", "feliz", "alegr"}},
	{model.EmotionCurious, lexicon.Set{"curio", "alert", "interest", "attentive", "arousal"}},
	{model.EmotionDemanding, lexicon.Set{"demand", "attention", "request", "frustrat", "exig"}},
}

// Buckets partitions signals into emotion buckets, returned in the order
// they were first populated. Every signal lands in exactly one bucket.
// Fear and submission signals count as neutral when a play signal is also
// present, so play is not double counted as fear.
func Buckets(signals []model.MatchedSignal) []model.EmotionBucket {
	play := false
	for _, ms := range signals {
		if ms.GameBonus > 1 || detector.IsPlay(ms.Record) {
			play = true
			break
		}
	}

	var order []string
	byName := make(map[string]*model.EmotionBucket)
	for _, ms := range signals {
		name := bucketFor(ms.Record)
		if name == model.EmotionFearful && play {
			name = model.EmotionNeutral
		}
		b, ok := byName[name]
		if !ok {
			b = &model.EmotionBucket{Emotion: name}
			byName[name] = b
			order = append(order, name)
		}
		b.Signals = append(b.Signals, ms)
		b.Score += ms.MatchScore
	}

	out := make([]model.EmotionBucket, len(order))
	for i, name := range order {
		out[i] = *byName[name]
	}
	return out
}

// bucketFor routes a record by its emotion tags first, then by its label
// and description, defaulting to neutral.
func bucketFor(r model.SignalRecord) string {
	for _, text := range []string{
		lexicon.Normalize(r.ProbableEmotion),
		lexicon.Normalize(r.Label + " " + r.Description),
	} {
		for _, spec := range bucketTable {
			if spec.keywords.Any(text) {
				return spec.emotion
			}
		}
	}
	return model.EmotionNeutral
}
