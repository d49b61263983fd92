package classifier

import (
	"github.com/crimson-sun/petsignal/internal/engine/detector"
	"github.com/crimson-sun/petsignal/internal/model"
)

// Rule is one step of the override hierarchy. Apply returns the dominant
// bucket when the rule decides, or false to defer to the next rule.
type Rule interface {
	Name() string
	Apply(signals []model.MatchedSignal) (model.EmotionBucket, bool)
}

// DefaultRules returns the rules in priority order: play bow beats
// aggression, aggression beats aggregate bucket scoring.
func DefaultRules() []Rule {
	return []Rule{
		PlayBowRule{},
		AggressionRule{},
		BucketRule{},
	}
}

// Classifier selects one dominant emotion bucket from a ranked match set.
type Classifier struct {
	rules []Rule
}

// New creates a Classifier evaluating rules in the given order. With no
// rules it uses DefaultRules.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Rules returns the configured rule order.
func (c *Classifier) Rules() []Rule {
	return c.rules
}

// Classify runs the rules in order; the first one that decides wins.
// Dominant is nil when signals is empty.
func (c *Classifier) Classify(signals []model.MatchedSignal) model.Classification {
	result := model.Classification{
		Rule:    model.RuleNoSignals,
		Matched: signals,
		Total:   len(signals),
	}
	if len(signals) == 0 {
		return result
	}

	for _, rule := range c.rules {
		bucket, ok := rule.Apply(signals)
		if !ok {
			continue
		}
		result.Dominant = &bucket
		result.Rule = rule.Name()
		return result
	}
	return result
}

// PlayBowRule fires on any unambiguous play-bow signal.
type PlayBowRule struct{}

func (PlayBowRule) Name() string { return model.RulePlayBowSignal }

func (PlayBowRule) Apply(signals []model.MatchedSignal) (model.EmotionBucket, bool) {
	return collect(model.EmotionPlayful, signals, func(ms model.MatchedSignal) bool {
		return detector.IsPlayBowSignal(ms.Record)
	})
}

// AggressionRule fires on any signal carrying aggression markers,
// whatever the totals of the other buckets.
type AggressionRule struct{}

func (AggressionRule) Name() string { return model.RuleAggression }

func (AggressionRule) Apply(signals []model.MatchedSignal) (model.EmotionBucket, bool) {
	return collect(model.EmotionAggressive, signals, func(ms model.MatchedSignal) bool {
		return detector.IsAggressive(ms.Record)
	})
}

// BucketRule partitions signals into the generic buckets and picks the
// highest total. Ties go to the bucket populated first.
type BucketRule struct{}

func (BucketRule) Name() string { return model.RuleBucketScore }

func (BucketRule) Apply(signals []model.MatchedSignal) (model.EmotionBucket, bool) {
	buckets := Buckets(signals)
	if len(buckets) == 0 {
		return model.EmotionBucket{}, false
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.Score > best.Score {
			best = b
		}
	}
	return best, true
}

// collect gathers the signals satisfying keep into one bucket.
func collect(emotion string, signals []model.MatchedSignal, keep func(model.MatchedSignal) bool) (model.EmotionBucket, bool) {
	b := model.EmotionBucket{Emotion: emotion}
	for _, ms := range signals {
		if keep(ms) {
			b.Signals = append(b.Signals, ms)
			b.Score += ms.MatchScore
		}
	}
	return b, len(b.Signals) > 0
}
