package pipeline

import (
	"context"

	"github.com/crimson-sun/petsignal/internal/output"
)

// writer delivers records to an output, reporting how many were written.
type writer interface {
	write(ctx context.Context, rec output.Record) (int, error)
	finish(ctx context.Context) (int, error)
}

type direct struct {
	out output.Output
}

func (d direct) write(ctx context.Context, rec output.Record) (int, error) {
	if err := d.out.Write(ctx, rec); err != nil {
		return 0, err
	}
	return 1, nil
}

func (direct) finish(context.Context) (int, error) { return 0, nil }

// collapser holds back one record and merges following records with the
// same interpretation into it, as happens when consecutive frames of a
// clip show the same behaviour. The held record is written when a
// different interpretation arrives or the stream ends.
type collapser struct {
	out     output.Output
	pending *output.Record
}

func newCollapser(out output.Output) *collapser {
	return &collapser{out: out}
}

func (c *collapser) write(ctx context.Context, rec output.Record) (int, error) {
	if c.pending != nil && sameInterpretation(*c.pending, rec) {
		c.pending.Count++
		return 0, nil
	}
	n, err := c.finish(ctx)
	if err != nil {
		return n, err
	}
	rec.Count = 1
	c.pending = &rec
	return n, nil
}

func (c *collapser) finish(ctx context.Context) (int, error) {
	if c.pending == nil {
		return 0, nil
	}
	rec := *c.pending
	c.pending = nil
	if rec.Count == 1 {
		rec.Count = 0
	}
	if err := c.out.Write(ctx, rec); err != nil {
		return 0, err
	}
	return 1, nil
}

func sameInterpretation(a, b output.Record) bool {
	return a.Result.Emotion == b.Result.Emotion &&
		a.Result.Rule == b.Result.Rule &&
		a.Result.Translation == b.Result.Translation
}
