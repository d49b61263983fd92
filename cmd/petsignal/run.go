package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/petsignal/internal/pipeline"
)

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Interpret a stream of NDJSON observations",
	Long: `Run reads one JSON observation per line from the given files, or from
stdin when none is given or the file is -, and writes one result per
observation to the configured output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		return streamFiles(cmd, args)
	},
}

func init() {
	runCmd.Flags().Int("batch-size", 0, "observations interpreted together (default 64)")
	runCmd.Flags().Bool("collapse", false, "merge consecutive identical interpretations")
}

// streamFiles runs every input through one pipeline until the inputs end
// or the process is interrupted. Closing the output flushes it, so its
// error is part of the result.
func streamFiles(cmd *cobra.Command, paths []string) (err error) {
	opts := []pipeline.Option{
		pipeline.WithWorkers(cfg.Engine.Workers),
		pipeline.WithCollapse(cfg.Engine.Collapse),
	}
	if f := cmd.Flags().Lookup("collapse"); f != nil && f.Changed {
		collapse, _ := cmd.Flags().GetBool("collapse")
		opts = append(opts, pipeline.WithCollapse(collapse))
	}
	if n, err := cmd.Flags().GetInt("batch-size"); err == nil {
		opts = append(opts, pipeline.WithBatchSize(n))
	}

	out, err := newOutput(cmd)
	if err != nil {
		return err
	}
	p := pipeline.New(newEngine(), out, opts...)
	defer func() {
		if cerr := p.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close output: %w", cerr))
		}
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var total pipeline.Stats
	for _, path := range paths {
		stats, err := runOne(ctx, p, path)
		total.Read += stats.Read
		total.Skipped += stats.Skipped
		total.Written += stats.Written
		total.Dropped += stats.Dropped
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
	}

	slog.Info("run complete",
		"component", "cli",
		"read", total.Read,
		"skipped", total.Skipped,
		"written", total.Written,
		"dropped", total.Dropped,
	)
	return nil
}

func runOne(ctx context.Context, p *pipeline.Pipeline, path string) (pipeline.Stats, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return pipeline.Stats{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return p.Run(ctx, r)
}
