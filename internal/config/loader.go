package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid game config")

// Default returns the embedded game constants.
func Default() Game {
	cfg, err := Parse(defaultGameYAML)
	if err != nil {
		return fallbackGame() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Load parses the embedded game constants and reports any error.
// Callers that can fail at startup prefer it to Default.
func Load() (Game, error) {
	return Parse(defaultGameYAML)
}

// Parse decodes and validates a game config document.
// Fields missing from the document keep their default values.
func Parse(data []byte) (Game, error) {
	cfg := fallbackGame()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("config: cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Validate checks that every rectangle the scene builds has a positive size
// and that the loop can make progress.
func (g Game) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"window.width", g.Window.Width},
		{"window.height", g.Window.Height},
		{"bars.height", g.Bars.Height},
		{"player.size", g.Player.Size},
		{"player.speed", g.Player.Speed},
		{"enemies.size", g.Enemies.Size},
		{"enemies.speed", g.Enemies.Speed},
		{"loop.frame_delay_ms", g.Loop.FrameDelayMS},
		{"render.cell_width", g.Render.CellWidth},
		{"render.cell_height", g.Render.CellHeight},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d: %w", c.name, c.value, ErrInvalid)
		}
	}

	if g.Enemies.Count < 0 {
		return fmt.Errorf("config: enemies.count must not be negative, got %d: %w", g.Enemies.Count, ErrInvalid)
	}
	if 2*g.Bars.Height >= g.Window.Height {
		return fmt.Errorf("config: bars (2x%d) leave no arena in a window of height %d: %w",
			g.Bars.Height, g.Window.Height, ErrInvalid)
	}
	return nil
}

// GridSize returns the terminal grid (columns, rows) needed to show the window.
func (g Game) GridSize() (cols, rows int) {
	cols = (g.Window.Width + g.Render.CellWidth - 1) / g.Render.CellWidth
	rows = (g.Window.Height + g.Render.CellHeight - 1) / g.Render.CellHeight
	return cols, rows
}
