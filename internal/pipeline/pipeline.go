package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/crimson-sun/petsignal/internal/engine"
	"github.com/crimson-sun/petsignal/internal/model"
	"github.com/crimson-sun/petsignal/internal/output"
)

const (
	defaultBatchSize = 64
	maxLineSize      = 1 << 20
)

// Interpreter is the engine surface the pipeline needs.
type Interpreter interface {
	ExplainBatch(ctx context.Context, descs []model.ObservationDescription, workers int) ([]engine.Explanation, error)
}

// Stats summarises one Run.
type Stats struct {
	Read    int // non-blank lines read
	Skipped int // lines that failed to decode
	Written int // records delivered to the output
	Dropped int // decoded lines left uninterpreted by cancellation
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithBatchSize sets how many observations are interpreted together.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithWorkers bounds the concurrency of each batch.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// WithCollapse merges consecutive records that carry the same
// interpretation into one record with a Count.
func WithCollapse(enabled bool) Option {
	return func(p *Pipeline) { p.collapse = enabled }
}

// Pipeline streams NDJSON observations through an interpreter into an
// output.
type Pipeline struct {
	interp    Interpreter
	output    output.Output
	batchSize int
	workers   int
	collapse  bool
}

// New creates a Pipeline from the given components.
func New(interp Interpreter, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		interp:    interp,
		output:    out,
		batchSize: defaultBatchSize,
		workers:   engine.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type line struct {
	seq  int
	desc model.ObservationDescription
}

// Run reads one JSON observation per line from r until EOF or
// cancellation. Undecodable lines are logged and skipped; output errors
// stop the run. On cancellation the record held by the collapser is still
// written, while lines of the batch not yet interpreted are counted as
// Dropped.
func (p *Pipeline) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	var w writer
	if p.collapse {
		w = newCollapser(p.output)
	} else {
		w = direct{p.output}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	batch := make([]line, 0, p.batchSize)
	seq := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			stats.Dropped += len(batch)
			return stats, p.drain(ctx, w, &stats, err)
		}
		seq++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		stats.Read++

		var desc model.ObservationDescription
		if err := json.Unmarshal(raw, &desc); err != nil {
			stats.Skipped++
			slog.Warn("skipping undecodable line", "component", "pipeline", "line", seq, "error", err)
			continue
		}
		batch = append(batch, line{seq: seq, desc: desc})
		if len(batch) == p.batchSize {
			if err := p.flush(ctx, w, batch, &stats); err != nil {
				return stats, p.abort(ctx, w, batch, &stats, err)
			}
			batch = batch[:0]
		}
	}
	if err := sc.Err(); err != nil {
		return stats, fmt.Errorf("pipeline read: %w", err)
	}
	if err := p.flush(ctx, w, batch, &stats); err != nil {
		return stats, p.abort(ctx, w, batch, &stats, err)
	}
	n, err := w.finish(ctx)
	stats.Written += n
	if err != nil {
		return stats, fmt.Errorf("pipeline output: %w", err)
	}
	return stats, nil
}

func (p *Pipeline) flush(ctx context.Context, w writer, batch []line, stats *Stats) error {
	if len(batch) == 0 {
		return nil
	}
	descs := make([]model.ObservationDescription, len(batch))
	for i, l := range batch {
		descs[i] = l.desc
	}
	explained, err := p.interp.ExplainBatch(ctx, descs, p.workers)
	if err != nil {
		return fmt.Errorf("pipeline interpret: %w", err)
	}
	for i, ex := range explained {
		rec := output.NewRecord(batch[i].desc, ex.Result, ex.Signals)
		rec.Seq = batch[i].seq
		n, err := w.write(ctx, rec)
		stats.Written += n
		if err != nil {
			return fmt.Errorf("pipeline output: %w", err)
		}
	}
	return nil
}

// abort handles a failed flush. A cancelled batch is dropped and the
// collapser drained; any other error is returned as is.
func (p *Pipeline) abort(ctx context.Context, w writer, batch []line, stats *Stats, err error) error {
	if ctx.Err() == nil || !errors.Is(err, ctx.Err()) {
		return err
	}
	stats.Dropped += len(batch)
	return p.drain(ctx, w, stats, err)
}

// drain writes the record held back by w after ctx was cancelled.
func (p *Pipeline) drain(ctx context.Context, w writer, stats *Stats, cause error) error {
	n, err := w.finish(context.WithoutCancel(ctx))
	stats.Written += n
	if err != nil {
		return errors.Join(cause, fmt.Errorf("pipeline output: %w", err))
	}
	return cause
}

// Close shuts down the output.
func (p *Pipeline) Close() error {
	return p.output.Close()
}
