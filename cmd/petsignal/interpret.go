package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/petsignal/internal/model"
	"github.com/crimson-sun/petsignal/internal/output"
)

var interpretCmd = &cobra.Command{
	Use:   "interpret [flags]",
	Short: "Interpret one observation",
	Long: `Interpret builds an observation from the body-part flags and prints its
interpretation. With --input it streams NDJSON observations instead, as
the run command does.`,
	Args: cobra.NoArgs,
	RunE: runInterpret,
}

func init() {
	addObservationFlags(interpretCmd)
	interpretCmd.Flags().String("input", "", "NDJSON observation file, or - for stdin")
}

// addObservationFlags registers one flag per observation field.
func addObservationFlags(cmd *cobra.Command) {
	for _, f := range model.AllFields {
		cmd.Flags().String(string(f), "", fmt.Sprintf("%s description", f))
	}
}

// observationFromFlags reads the observation flags. ok is false when none
// was set.
func observationFromFlags(cmd *cobra.Command) (desc model.ObservationDescription, ok bool) {
	values := make(map[model.Field]string, len(model.AllFields))
	for _, f := range model.AllFields {
		if cmd.Flags().Changed(string(f)) {
			ok = true
		}
		values[f], _ = cmd.Flags().GetString(string(f))
	}
	desc = model.ObservationDescription{
		Posture:   values[model.FieldPosture],
		Tail:      values[model.FieldTail],
		Ears:      values[model.FieldEars],
		Eyes:      values[model.FieldEyes],
		Mouth:     values[model.FieldMouth],
		Movements: values[model.FieldMovements],
		Sounds:    values[model.FieldSounds],
	}
	return desc, ok
}

func runInterpret(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	desc, ok := observationFromFlags(cmd)

	switch {
	case input != "" && ok:
		return errors.New("--input cannot be combined with observation flags")
	case input != "":
		return streamFiles(cmd, []string{input})
	case !ok:
		return errors.New("no observation given: set at least one body-part flag or --input")
	}

	out, err := newOutput(cmd)
	if err != nil {
		return err
	}
	eng := newEngine()
	res, matched := eng.Explain(desc)
	rec := output.NewRecord(desc, res, matched)
	rec.Seq = 1
	if err := out.Write(cmd.Context(), rec); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
