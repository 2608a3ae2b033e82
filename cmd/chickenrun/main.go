// chickenrun is a terminal rendition of the Chicken Run arcade game: walk the
// chicken from the bottom bar to the top bar without touching the patrolling
// enemies.
//
// Usage:
//
//	chickenrun play              - Play locally
//	chickenrun serve             - Start SSH server for remote play
//	chickenrun sim               - Run the simulation headlessly and print snapshots
//	chickenrun replays           - List recorded games
//	chickenrun replays delete <id> - Delete a recorded game
//	chickenrun replay <id>       - Re-simulate a recorded game
//	chickenrun backends          - List available presentation backends
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for a reproducible layout
//	--db <path>         - Set recordings database path (default: ~/.chickenrun/recordings.db)
//	--assets <dir>      - Directory searched for resources/ images before the built-in copies
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chicken-run/internal/assets"
	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/registry"

	// Import backends to register them
	_ "github.com/vovakirdan/chicken-run/internal/platform/term"
	_ "github.com/vovakirdan/chicken-run/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagAssets   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chickenrun",
	Short: "Chicken Run - cross the road in your terminal",
	Long: `Chicken Run is a tiny arcade game: move the chicken from the bottom
bar to the top bar while enemies patrol the rows in between. Touching
an enemy or reaching the top sends the chicken back to the start.

Available commands:
  play      - Play locally
  serve     - Start SSH server for remote play
  sim       - Headless run printing state snapshots
  replays   - List recorded games
  replay    - Re-simulate a recorded game
  backends  - List presentation backends

Examples:
  chickenrun play
  chickenrun play --backend tcell --seed 42
  chickenrun serve --ssh :2222
  chickenrun sim --steps 1000 --seed 2024 --every 100
  chickenrun replay 3`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chickenrun/recordings.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", ".", "Directory searched for resources/ images before the built-in copies")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(backendsCmd)
}

// newLogger builds the stderr logger at the level chosen by --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// resolveSeed maps the "random" seed 0 to a time-based seed.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// loadRules returns the embedded game constants.
func loadRules() (config.Game, error) {
	rules, err := config.Load()
	if err != nil {
		return config.Game{}, fmt.Errorf("loading game config: %w", err)
	}
	return rules, nil
}

// newSession loads the rules and textures shared by every game.
func newSession(logger *log.Logger) (registry.Session, error) {
	rules, err := loadRules()
	if err != nil {
		return registry.Session{}, err
	}

	textures := assets.NewLoader(flagAssets, logger).LoadSet(rules.Assets)

	return registry.Session{
		Rules:    rules,
		Seed:     resolveSeed(flagSeed),
		Textures: textures,
		Logger:   logger,
	}, nil
}
