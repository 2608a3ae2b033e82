package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/game"
	"github.com/vovakirdan/chicken-run/internal/replay"
)

var (
	flagSteps int
	flagEvery int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headlessly and print snapshots",
	Long: `Advance a fresh game without input and print state snapshots as
YAML documents. The output is fully determined by --seed and can be
used as a golden reference.

With --every K a snapshot is printed after every K-th frame;
without it only the final frame is printed.

Examples:
  chickenrun sim --seed 2024
  chickenrun sim --seed 7 --steps 300 --every 50`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSteps, "steps", 1000, "Number of frames to simulate")
	simCmd.Flags().IntVar(&flagEvery, "every", 0, "Print a snapshot every N frames (0 = final only)")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSteps < 0 {
		return fmt.Errorf("--steps must not be negative, got %d", flagSteps)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}
	seed := resolveSeed(flagSeed)

	return writeSim(cmd.OutOrStdout(), rules, seed, flagSteps, flagEvery)
}

// writeSim prints the seed followed by the selected snapshots.
func writeSim(w io.Writer, rules config.Game, seed int64, steps, every int) error {
	if _, err := fmt.Fprintf(w, "# seed: %d\n", seed); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	var encErr error
	replay.Run(rules, seed, steps, every, func(s game.Snapshot) {
		if encErr == nil {
			encErr = enc.Encode(s)
		}
	})
	if encErr != nil {
		return fmt.Errorf("writing snapshot: %w", encErr)
	}
	return enc.Close()
}
