package lexicon

// All patterns are stored already normalised: lowercase, no accents.

// Placeholders are whole-field values that carry no observation.
var Placeholders = Set{
	"undetermined", "not determined", "cannot be determined", "unknown",
	"unclear", "not visible", "not observable", "n/a", "na", "-",
	"indeterminado", "no determinado", "desconocido", "no visible",
	"no se puede determinar", "no se observa",
}

var placeholderPrefixes = []string{"undetermined", "indeterminad", "no determinad"}

// PlayMarkers flag a signal as a play or invitation signal, doubling its
// contribution to the match score.
var PlayMarkers = Set{
	"play", "invit", "game", "juego", "jugar",
}

// AggressionMarkers force the aggressive verdict whenever a matched
// signal carries one.
var AggressionMarkers = Set{
	"aggress", "defens", "threat", "growl", "teeth", "warning", "dominan",
	"intimidat", "rigid", "tense", "menacing", "intense stare",
	"agresi", "amenaz", "grunid", "dientes", "advertencia", "tenso",
}

// PlayBowSignalNames identify a catalogued play-bow signal.
var PlayBowSignalNames = Set{
	"play bow", "play-bow", "chest to floor", "chest to the floor", "hips up",
}

// PlayBowSignalVetoes disqualify a catalogued signal from the play-bow rule.
var PlayBowSignalVetoes = Set{
	"rigid", "tense", "threat", "dominan", "erect", "menacing", "intense stare",
}

// PlayBowMarkers are explicit descriptions of a play bow.
var PlayBowMarkers = Set{
	"play bow", "play-bow", "playbow", "play bowing",
	"chest on the ground", "chest to the ground", "chest on the floor", "chest to the floor",
	"reverencia de juego", "pecho en el suelo", "pecho contra el suelo",
}

// Structural play-bow cues; two of the three must co-occur.
var (
	ChestDownCues = Set{
		"chest down", "chest low", "chest lowered", "chest near the ground",
		"front end down", "front legs stretched", "elbows on the ground", "elbows down",
		"pecho abajo", "pecho bajo",
	}
	HipsUpCues = Set{
		"hips up", "hips raised", "hips high", "rear up", "rear end up", "rear in the air",
		"butt up", "bottom up", "rump up", "rump raised",
		"cadera arriba", "caderas arriba", "cadera levantada", "trasero arriba", "trasero levantado",
	}
	TailMovingCues = Set{
		"wag", "tail moving", "swishing", "meneando", "moviendo la cola", "mueve la cola",
	}
)

// PlayBowVetoes in any observation field suppress the play-bow detector.
var PlayBowVetoes = Set{
	"rigid", "tense", "threat", "menacing", "dominan", "hard stare", "intense stare",
	"rigido", "tenso", "amenaz",
}

// DomainPhrases match when both the field and the signal text contain them.
var DomainPhrases = Set{
	// play bow
	"play bow", "chest down", "chest to the floor", "hips up", "rear end up",
	// submission
	"tail tucked", "belly up", "rolling over", "ears back", "ears pinned",
	"avoiding eye contact", "looking away", "lip licking",
	// aggression
	"bared teeth", "baring teeth", "showing teeth", "hackles raised",
	"hard stare", "fixed stare", "rigid body", "stiff body", "low growl",
	// joy
	"tail wagging", "wagging tail", "loose body", "relaxed body", "soft eyes",
	"open mouth", "tongue out",
}

// MinVocabularyWordLen is the minimum rune length for single-word matches.
const MinVocabularyWordLen = 7

// SpecificVocabulary lists single words specific enough to match alone.
var SpecificVocabulary = Set{
	"growling", "snarling", "whining", "whimpering", "barking", "yelping",
	"howling", "trembling", "shaking", "panting", "crouched", "crouching",
	"cowering", "flattened", "wagging", "stalking", "freezing", "hackles",
	"piloerection", "yawning", "licking", "sniffing", "dilated", "squinting",
	"avoiding", "staring", "pouncing", "zoomies", "bouncing", "spinning",
	"scratching", "kneading", "purring", "hissing", "nudging",
	"snapping", "lunging", "rolling", "stretched", "blinking",
	"temblando", "gruniendo", "ladrando", "jadeando", "agachado", "encogido",
}

// Stopwords are common long words never used for single-word matches.
var Stopwords = Set{
	"because", "through", "between", "without", "slightly", "somewhat",
	"another", "looking", "appears", "appearing", "towards", "forward",
	"position", "possibly", "probably", "several", "although", "whether",
	"something", "however", "perhaps", "visible", "clearly", "currently",
	"mientras", "tambien", "posiblemente", "probablemente", "ligeramente",
}
