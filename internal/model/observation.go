package model

// Field names an observation slot. The order of AllFields is the order in
// which fields are matched and rendered.
type Field string

const (
	FieldPosture   Field = "posture"
	FieldTail      Field = "tail"
	FieldEars      Field = "ears"
	FieldEyes      Field = "eyes"
	FieldMouth     Field = "mouth"
	FieldMovements Field = "movements"
	FieldSounds    Field = "sounds"
)

// AllFields lists every observation field in canonical order.
var AllFields = []Field{
	FieldPosture, FieldTail, FieldEars, FieldEyes, FieldMouth, FieldMovements, FieldSounds,
}

// Title returns the capitalised field name used in behaviour summaries.
func (f Field) Title() string {
	switch f {
	case FieldPosture:
		return "Posture"
	case FieldTail:
		return "Tail"
	case FieldEars:
		return "Ears"
	case FieldEyes:
		return "Eyes"
	case FieldMouth:
		return "Mouth"
	case FieldMovements:
		return "Movements"
	case FieldSounds:
		return "Sounds"
	default:
		return string(f)
	}
}

// ObservationDescription is the per-body-part description of an animal
// produced upstream by the captioning service. Any field may be empty or
// hold an "undetermined" placeholder.
type ObservationDescription struct {
	Posture   string `json:"posture,omitempty" yaml:"posture"`
	Tail      string `json:"tail,omitempty" yaml:"tail"`
	Ears      string `json:"ears,omitempty" yaml:"ears"`
	Eyes      string `json:"eyes,omitempty" yaml:"eyes"`
	Mouth     string `json:"mouth,omitempty" yaml:"mouth"`
	Movements string `json:"movements,omitempty" yaml:"movements"`
	Sounds    string `json:"sounds,omitempty" yaml:"sounds"`
}

// FieldValue pairs a field with its raw text.
type FieldValue struct {
	Field Field
	Text  string
}

// Fields returns all seven slots in canonical order, including empty ones.
func (d ObservationDescription) Fields() []FieldValue {
	return []FieldValue{
		{FieldPosture, d.Posture},
		{FieldTail, d.Tail},
		{FieldEars, d.Ears},
		{FieldEyes, d.Eyes},
		{FieldMouth, d.Mouth},
		{FieldMovements, d.Movements},
		{FieldSounds, d.Sounds},
	}
}

// Get returns the text of a single field.
func (d ObservationDescription) Get(f Field) string {
	switch f {
	case FieldPosture:
		return d.Posture
	case FieldTail:
		return d.Tail
	case FieldEars:
		return d.Ears
	case FieldEyes:
		return d.Eyes
	case FieldMouth:
		return d.Mouth
	case FieldMovements:
		return d.Movements
	case FieldSounds:
		return d.Sounds
	default:
		return ""
	}
}
