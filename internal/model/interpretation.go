package model

// Emotion bucket names.
const (
	EmotionPlayful    = "playful"
	EmotionAggressive = "aggressive"
	EmotionFearful    = "fearful"
	EmotionAnxious    = "anxious"
	EmotionHappy      = "happy"
	EmotionCurious    = "curious"
	EmotionDemanding  = "demanding"
	EmotionNeutral    = "neutral"
)

// Decision rule names reported on classifications and results.
const (
	RulePlayBowDetector = "play_bow_detector"
	RulePlayBowSignal   = "play_bow_signal"
	RuleAggression      = "aggression"
	RuleBucketScore     = "bucket_score"
	RuleNoSignals       = "no_signals"
)

// EmotionBucket groups matched signals under one emotion.
type EmotionBucket struct {
	Emotion string
	Signals []MatchedSignal // ranked by MatchScore, descending
	Score   int             // sum of member MatchScores
}

// Classification is the classifier's verdict over a matched signal set.
type Classification struct {
	Dominant *EmotionBucket // nil when nothing matched
	Rule     string
	Matched  []MatchedSignal
	Total    int
}

// InterpretationResult is the engine's output for one description.
type InterpretationResult struct {
	Translation string `json:"translation"`
	Confidence  int    `json:"confidence"` // 0..100
	Emotion     string `json:"emotion"`
	Behavior    string `json:"behavior,omitempty"`
	Context     string `json:"context"`
	Success     bool   `json:"success"`
	Rule        string `json:"rule"`
	SignalCount int    `json:"signal_count"`
}
