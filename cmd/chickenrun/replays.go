package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-run/internal/storage"
)

var flagLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List recorded games",
	Long: `Display the most recent recorded games, newest first.

Examples:
  chickenrun replays
  chickenrun replays --limit 5
  chickenrun replays delete 3`,
	Args: cobra.NoArgs,
	RunE: runReplays,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded game",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysDelete,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of recordings to show")
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func runReplaysDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid recording id %q: %w", args[0], err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	if err := store.DeleteRecording(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("recording %d not found; run 'chickenrun replays' to list recordings", id)
		}
		return fmt.Errorf("deleting recording: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recording %d deleted.\n", id)
	return nil
}

func runReplays(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening recordings database: %w", err)
	}
	defer store.Close()

	infos, err := store.RecentRecordings(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving recordings: %w", err)
	}

	fmt.Println("Recorded games")
	fmt.Println()

	if len(infos) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'chickenrun play' to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-16s  %-7s  %-12s  %7s  %6s  %s\n", "ID", "Date", "Backend", "Player", "Frames", "Events", "Seed")
	fmt.Printf("  %-5s  %-16s  %-7s  %-12s  %7s  %6s  %s\n", "--", "----", "-------", "------", "------", "------", "----")

	for _, info := range infos {
		player := info.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-5d  %-16s  %-7s  %-12s  %7d  %6d  %d\n",
			info.ID,
			info.CreatedAt.Format("2006-01-02 15:04"),
			info.Backend,
			player,
			info.Frames,
			info.Events,
			info.Seed,
		)
	}

	fmt.Println()
	fmt.Println("Run 'chickenrun replay <id>' to re-simulate a game.")
	return nil
}
