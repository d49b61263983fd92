// Package petsignal interprets structured descriptions of pet body language.
//
// A description has seven free-text fields (posture, tail, ears, eyes,
// mouth, movements, sounds), typically produced by a vision captioning
// service. The engine matches them against a catalogue of behavioural
// signals and returns a dominant emotion, a confidence and a short
// first-person translation.
//
// Quick start:
//
//	e, err := petsignal.New()
//	if err != nil {
//	    log.Printf("signal catalogue: %v", err) // e is still usable
//	}
//
//	res := e.Interpret(petsignal.Observation{
//	    Posture: "chest down, hips up",
//	    Tail:    "wagging side to side",
//	})
//	fmt.Println(res.Emotion, res.Confidence) // playful 95
//
// Interpretation never fails. An Engine is immutable after New and safe for
// concurrent use; create once and share it.
package petsignal
