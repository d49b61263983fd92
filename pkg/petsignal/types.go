package petsignal

// Observation is a per-body-part description of an animal. Empty fields
// and "undetermined" placeholders are ignored.
type Observation struct {
	Posture   string `json:"posture,omitempty"`
	Tail      string `json:"tail,omitempty"`
	Ears      string `json:"ears,omitempty"`
	Eyes      string `json:"eyes,omitempty"`
	Mouth     string `json:"mouth,omitempty"`
	Movements string `json:"movements,omitempty"`
	Sounds    string `json:"sounds,omitempty"`
}

// Result is the interpretation of one Observation.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Result struct {
	Translation string `json:"translation"`            // First-person reading of the animal
	Confidence  int    `json:"confidence"`             // 0-100
	Emotion     string `json:"emotion"`                // playful, aggressive, fearful, anxious, happy, curious, demanding, neutral
	Behavior    string `json:"behavior,omitempty"`     // "Field: value." summary of the observation
	Context     string `json:"context"`                // Primary emotion tag of the top signal, or "unclear"
	Success     bool   `json:"success"`                // Always true
	Rule        string `json:"rule"`                   // Decision path that produced the emotion
	SignalCount int    `json:"signal_count,omitempty"` // Matched signals considered
}

// Signal is one catalogued behavioural signal.
type Signal struct {
	ID             int    `json:"id"`
	Label          string `json:"label"`
	Description    string `json:"description"`
	Emotion        string `json:"emotion"` // comma-separated tags
	Intensity      int    `json:"intensity"`
	Interpretation string `json:"interpretation,omitempty"`
}

// Hit explains why one observation field matched a signal.
type Hit struct {
	Field  string `json:"field"`
	Policy string `json:"policy"` // exact, sub_phrase, domain_phrase, vocabulary
}

// MatchedSignal is a Signal scored against one Observation.
type MatchedSignal struct {
	Signal    Signal `json:"signal"`
	Score     int    `json:"score"`
	GameBonus int    `json:"game_bonus"` // 0 means derive from the signal text
	Hits      []Hit  `json:"hits,omitempty"`
}

// Bucket is the dominant emotion group chosen by Classify.
type Bucket struct {
	Emotion string          `json:"emotion"`
	Score   int             `json:"score"`
	Rule    string          `json:"rule"`
	Signals []MatchedSignal `json:"signals"`
}
