package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/petsignal/internal/output"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags]",
	Short: "List the signals an observation matches",
	Long:  `Match prints the catalogue signals matched by an observation, highest score first, with the field and policy behind each hit.`,
	Args:  cobra.NoArgs,
	RunE:  runMatch,
}

func init() {
	addObservationFlags(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	desc, ok := observationFromFlags(cmd)
	if !ok {
		return errors.New("no observation given: set at least one body-part flag")
	}
	signals := output.Signals(newEngine().Match(desc))

	if cfg.Output.Format == "stdout" {
		enc := json.NewEncoder(os.Stdout)
		if cfg.Output.Pretty {
			enc.SetIndent("", "  ")
		}
		if signals == nil {
			signals = []output.Signal{}
		}
		return enc.Encode(signals)
	}

	if len(signals) == 0 {
		fmt.Println("no signals matched")
		return nil
	}
	for _, s := range signals {
		fmt.Printf("#%-3d %-28s score %-2d %-24s %s\n", s.ID, s.Label, s.Score, s.Emotion, strings.Join(s.Hits, " "))
	}
	return nil
}
