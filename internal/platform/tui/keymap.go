package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chicken-run/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings: arrows or WASD to move.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Event translates a key message into a game input event.
// Returns false for keys the game ignores, including Screenshot.
func (k KeyMap) Event(msg tea.KeyMsg) (core.Event, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.QuitEvent(), true
	case key.Matches(msg, k.Up):
		return core.KeyDownEvent(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.KeyDownEvent(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.KeyDownEvent(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.KeyDownEvent(core.KeyRight), true
	}
	return core.Event{}, false
}
