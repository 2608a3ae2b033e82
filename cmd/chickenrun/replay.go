package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/chicken-run/internal/replay"
	"github.com/vovakirdan/chicken-run/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded game",
	Long: `Feed a recorded game's input back into a fresh simulation with the
same seed and print the final state as YAML. Because the game is
deterministic, the result matches the original session.

Examples:
  chickenrun replay 3`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q: %w", args[0], err)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	rec, err := store.Recording(id)
	if err != nil {
		return fmt.Errorf("loading recording: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("recording %d not found; run 'chickenrun replays' to list recordings", id)
	}

	snap := replay.Simulate(rules, *rec)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# recording: %d\n# seed: %d\n# backend: %s\n# events: %d\n",
		rec.ID, rec.Seed, rec.Backend, rec.EventCount())

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return enc.Close()
}
