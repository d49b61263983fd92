package petsignal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/petsignal/internal/engine"
	"github.com/crimson-sun/petsignal/internal/engine/classifier"
	"github.com/crimson-sun/petsignal/internal/engine/signaldb"
	"github.com/crimson-sun/petsignal/internal/engine/synth"
	"github.com/crimson-sun/petsignal/internal/model"
)

// Engine interprets observations against a signal catalogue.
// Safe for concurrent use.
type Engine struct {
	engine  *engine.Engine
	workers int
}

// New builds an Engine. When the catalogue cannot be loaded, New still
// returns a usable Engine over an empty catalogue together with the load
// error; every interpretation then degrades to the low-confidence result.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	db, err := loadDatabase(o)
	if err != nil {
		slog.Warn("signal catalogue unavailable, continuing with empty catalogue",
			"component", "petsignal", "error", err)
		err = fmt.Errorf("petsignal: %w", err)
	}

	eng := engine.New(db, classifier.New(), &synth.Synthesizer{RunnerUps: o.runnerUps})
	return &Engine{engine: eng, workers: o.workers}, err
}

func loadDatabase(o options) (*signaldb.Database, error) {
	switch {
	case o.signals != nil:
		records := make([]model.SignalRecord, len(o.signals))
		for i, s := range o.signals {
			records[i] = s.toModel()
		}
		return signaldb.New(records)
	case o.signalFile != "":
		return signaldb.Load(o.signalFile)
	default:
		return signaldb.Default()
	}
}

// Interpret returns the interpretation of a single observation.
func (e *Engine) Interpret(obs Observation) Result {
	return resultFromModel(e.engine.Interpret(obs.toModel()))
}

// InterpretBatch interprets observations concurrently. Results keep input
// order. The only possible error is ctx's.
func (e *Engine) InterpretBatch(ctx context.Context, obs []Observation) ([]Result, error) {
	descs := make([]model.ObservationDescription, len(obs))
	for i, o := range obs {
		descs[i] = o.toModel()
	}
	res, err := e.engine.InterpretBatch(ctx, descs, e.workers)
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(res))
	for i, r := range res {
		out[i] = resultFromModel(r)
	}
	return out, nil
}

// Match returns the catalogue signals matching obs, highest score first.
func (e *Engine) Match(obs Observation) []MatchedSignal {
	return matchedFromModel(e.engine.Match(obs.toModel()))
}

// Classify selects the dominant emotion bucket for a matched set, or nil
// when signals is empty.
func (e *Engine) Classify(signals []MatchedSignal) *Bucket {
	c := e.engine.Classify(matchedToModel(signals))
	if c.Dominant == nil {
		return nil
	}
	return &Bucket{
		Emotion: c.Dominant.Emotion,
		Score:   c.Dominant.Score,
		Rule:    c.Rule,
		Signals: matchedFromModel(c.Dominant.Signals),
	}
}

// Signals returns the catalogue in order.
func (e *Engine) Signals() []Signal {
	records := e.engine.Database().All()
	out := make([]Signal, len(records))
	for i, r := range records {
		out[i] = signalFromModel(r)
	}
	return out
}

// Categories returns the distinct emotion tags of the catalogue in order
// of first appearance.
func (e *Engine) Categories() []string {
	return e.engine.Database().Categories()
}
