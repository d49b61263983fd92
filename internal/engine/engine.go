package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/crimson-sun/petsignal/internal/engine/classifier"
	"github.com/crimson-sun/petsignal/internal/engine/detector"
	"github.com/crimson-sun/petsignal/internal/engine/matcher"
	"github.com/crimson-sun/petsignal/internal/engine/signaldb"
	"github.com/crimson-sun/petsignal/internal/engine/synth"
	"github.com/crimson-sun/petsignal/internal/model"
)

// DefaultWorkers bounds InterpretBatch when the caller passes workers <= 0.
const DefaultWorkers = 4

// Engine orchestrates the detect → match → classify → synthesize pipeline.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	db          *signaldb.Database
	matcher     *matcher.Matcher
	classifier  *classifier.Classifier
	synthesizer *synth.Synthesizer
}

// New creates an Engine over db. A nil db behaves as an empty database.
func New(db *signaldb.Database, cls *classifier.Classifier, syn *synth.Synthesizer) *Engine {
	if db == nil {
		db = signaldb.Empty()
	}
	if cls == nil {
		cls = classifier.New()
	}
	if syn == nil {
		syn = synth.New()
	}
	return &Engine{
		db:          db,
		matcher:     matcher.New(db),
		classifier:  cls,
		synthesizer: syn,
	}
}

// Database returns the signal database the engine matches against.
func (e *Engine) Database() *signaldb.Database {
	return e.db
}

// Interpret produces the interpretation of a single description. It never
// fails: unmatched or unreadable input degrades to a low-confidence result.
func (e *Engine) Interpret(desc model.ObservationDescription) model.InterpretationResult {
	res, _ := e.Explain(desc)
	return res
}

// Explain is Interpret that also returns the ranked signals behind the
// result. The signals are nil when the play-bow detector short-circuits.
func (e *Engine) Explain(desc model.ObservationDescription) (model.InterpretationResult, []model.MatchedSignal) {
	if pb := detector.DetectPlayBow(desc); pb.Detected {
		slog.Debug("play bow detected", "component", "engine", "marker", pb.Marker, "cues", pb.Cues)
		return synth.PlayInvitation(desc), nil
	} else if pb.Vetoed != "" {
		slog.Debug("play bow vetoed", "component", "engine", "veto", pb.Vetoed)
	}

	matched := e.Match(desc)
	res := e.synthesizer.Synthesize(desc, e.Classify(matched))

	slog.Debug("interpreted",
		"component", "engine",
		"rule", res.Rule,
		"emotion", res.Emotion,
		"confidence", res.Confidence,
		"signals", res.SignalCount,
	)
	return res, matched
}

// Match returns the ranked signals matching desc.
func (e *Engine) Match(desc model.ObservationDescription) []model.MatchedSignal {
	return e.matcher.Match(desc)
}

// Classify selects the dominant bucket for a matched signal set.
func (e *Engine) Classify(signals []model.MatchedSignal) model.Classification {
	return e.classifier.Classify(signals)
}

// Explanation is one result of ExplainBatch.
type Explanation struct {
	Result  model.InterpretationResult
	Signals []model.MatchedSignal
}

// InterpretBatch interprets descs concurrently with at most workers in
// flight. Results keep input order. The only error is ctx's.
func (e *Engine) InterpretBatch(ctx context.Context, descs []model.ObservationDescription, workers int) ([]model.InterpretationResult, error) {
	explained, err := e.ExplainBatch(ctx, descs, workers)
	if err != nil {
		return nil, err
	}
	results := make([]model.InterpretationResult, len(explained))
	for i, ex := range explained {
		results[i] = ex.Result
	}
	return results, nil
}

// ExplainBatch is InterpretBatch keeping the matched signals of each result.
func (e *Engine) ExplainBatch(ctx context.Context, descs []model.ObservationDescription, workers int) ([]Explanation, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	out := make([]Explanation, len(descs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, desc := range descs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, signals := e.Explain(desc)
			out[i] = Explanation{Result: res, Signals: signals}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
