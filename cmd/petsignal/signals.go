package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "List the signal catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		type entry struct {
			ID             int    `json:"id"`
			Label          string `json:"label"`
			Emotion        string `json:"emotion"`
			Intensity      int    `json:"intensity"`
			Interpretation string `json:"interpretation,omitempty"`
		}
		records := newEngine().Database().All()

		if cfg.Output.Format == "stdout" {
			enc := json.NewEncoder(os.Stdout)
			for _, r := range records {
				if err := enc.Encode(entry{r.ID, r.Label, r.ProbableEmotion, r.Intensity, r.Interpretation}); err != nil {
					return err
				}
			}
			return nil
		}
		for _, r := range records {
			fmt.Printf("#%-3d %-28s %d  %s\n", r.ID, r.Label, r.Intensity, r.ProbableEmotion)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the emotion tags used by the catalogue",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, c := range newEngine().Database().Categories() {
			fmt.Println(c)
		}
		return nil
	},
}
