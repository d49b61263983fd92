package multi

import (
	"context"
	"errors"
	"fmt"

	"github.com/crimson-sun/petsignal/internal/output"
)

// Multi delivers each interpretation record to several sinks, for
// example an NDJSON file and a terminal summary. Sinks are written in
// order; one failing sink does not stop the others.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over the given sinks. Nil sinks are dropped so
// callers can pass optional outputs unconditionally.
func New(outputs ...output.Output) *Multi {
	m := &Multi{outputs: make([]output.Output, 0, len(outputs))}
	for _, o := range outputs {
		if o != nil {
			m.outputs = append(m.outputs, o)
		}
	}
	return m
}

// Len returns the number of sinks.
func (m *Multi) Len() int {
	return len(m.outputs)
}

// Write hands rec to every sink and joins their errors, each tagged with
// the record's input line.
func (m *Multi) Write(ctx context.Context, rec output.Record) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, rec); err != nil {
			errs = append(errs, fmt.Errorf("multi output: record %d: %w", rec.Seq, err))
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink, even after a failure.
func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
