package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/petsignal/internal/config"
	"github.com/crimson-sun/petsignal/internal/engine"
	"github.com/crimson-sun/petsignal/internal/engine/signaldb"
	"github.com/crimson-sun/petsignal/internal/logging"
	"github.com/crimson-sun/petsignal/internal/output"
	"github.com/crimson-sun/petsignal/internal/output/file"
	"github.com/crimson-sun/petsignal/internal/output/multi"
	"github.com/crimson-sun/petsignal/internal/output/pretty"
	"github.com/crimson-sun/petsignal/internal/output/stdout"
)

var rootCmd = &cobra.Command{
	Use:   "petsignal",
	Short: "Interpret pet body language descriptions",
	Long: `petsignal matches per-body-part descriptions of an animal against a
catalogue of behavioural signals and reports the dominant emotion, a
confidence and a first-person translation.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// cfg is resolved once per invocation by loadConfig.
var cfg config.Config

func main() {
	rootCmd.AddCommand(interpretCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(signalsCmd)
	rootCmd.AddCommand(categoriesCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("signals", "", "YAML signal catalogue (default: embedded)")
	flags.String("log-level", "", "log level (debug|info|warn|error)")
	flags.String("output", "", "output sink (stdout|pretty|file)")
	flags.String("output-path", "", "NDJSON path for the file sink")
	flags.String("verbosity", "", "output verbosity (minimal|standard|full)")
	flags.Bool("tee", false, "with the file sink, also print a summary to the terminal")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig builds the configuration from env and file, applies explicitly
// set global flags on top, and installs the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Root().PersistentFlags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("signals", &cfg.Engine.SignalsPath)
	override("log-level", &cfg.Logging.Level)
	override("output", &cfg.Output.Format)
	override("output-path", &cfg.Output.Path)
	override("verbosity", &cfg.Output.Verbosity)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Machine-readable results on stdout pair with machine-readable logs.
	logging.Init(cfg.Output.Format == "stdout", logging.ParseLevel(cfg.Logging.Level))
	return nil
}

// newEngine loads the configured catalogue. A catalogue that fails to load
// leaves the engine running over an empty database.
func newEngine() *engine.Engine {
	var (
		db  *signaldb.Database
		err error
	)
	if cfg.Engine.SignalsPath != "" {
		db, err = signaldb.Load(cfg.Engine.SignalsPath)
	} else {
		db, err = signaldb.Default()
	}
	if err != nil {
		slog.Warn("signal catalogue unavailable, continuing with empty catalogue",
			"component", "cli", "path", cfg.Engine.SignalsPath, "error", err)
	} else {
		slog.Debug("signal catalogue loaded", "component", "cli", "signals", db.Len())
	}
	return engine.New(db, nil, nil)
}

func verbosity() output.Verbosity {
	// Validate has already rejected unknown values.
	v, _ := output.ParseVerbosity(cfg.Output.Verbosity)
	return v
}

// newOutput builds the configured sink.
func newOutput(cmd *cobra.Command) (output.Output, error) {
	v := verbosity()
	switch cfg.Output.Format {
	case "pretty":
		return pretty.New(v), nil
	case "file":
		f, err := file.New(cfg.Output.Path, v, file.WithMaxSize(cfg.Output.MaxSize))
		if err != nil {
			return nil, err
		}
		if tee, _ := cmd.Root().PersistentFlags().GetBool("tee"); tee {
			return multi.New(f, pretty.New(v)), nil
		}
		return f, nil
	case "stdout":
		return stdout.New(v, cfg.Output.Pretty), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Output.Format)
	}
}
