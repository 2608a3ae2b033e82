package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/registry"
	"github.com/vovakirdan/chicken-run/internal/replay"
	"github.com/vovakirdan/chicken-run/internal/storage"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Chicken Run",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Move the chicken
  Ctrl+S       - Save a screenshot (tea backend)
  Q/Esc/Ctrl+C - Quit

Every game is recorded to the database and can be replayed
headlessly with 'chickenrun replay <id>'.

Examples:
  chickenrun play
  chickenrun play --backend tcell
  chickenrun play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Presentation backend (see 'chickenrun backends')")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q; run 'chickenrun backends' to see available backends", flagBackend)
	}

	logger, err := newLogger("chickenrun")
	if err != nil {
		return err
	}

	session, err := newSession(logger)
	if err != nil {
		return err
	}

	checkTerminalSize(session.Rules, logger)

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	logger.Debug("starting game", "backend", backend.Name(), "seed", session.Seed)

	rec, err := backend.Play(session)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	saveRecording(rec, logger)
	return nil
}

// checkTerminalSize warns when the terminal cannot show the whole field.
func checkTerminalSize(rules config.Game, logger *log.Logger) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Debug("cannot read terminal size", "error", err)
		return
	}

	// Title and help lines surround the field
	cols, rows := rules.GridSize()
	if width < cols || height < rows+2 {
		logger.Warn("terminal smaller than the game field",
			"need", fmt.Sprintf("%dx%d", cols, rows+2),
			"have", fmt.Sprintf("%dx%d", width, height),
		)
	}
}

// saveRecording stores a finished game. Failures are warnings; the game
// already ran.
func saveRecording(rec replay.Recording, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open recordings database", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRecording(rec)
	if err != nil {
		logger.Warn("could not save recording", "error", err)
		return
	}

	fmt.Printf("Recording %d saved (%d frames, seed %d).\n", id, len(rec.Frames), rec.Seed)
	fmt.Printf("Replay it with 'chickenrun replay %d'.\n", id)
}
