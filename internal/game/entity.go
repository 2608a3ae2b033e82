// Package game implements the Chicken Run simulation: a player crossing a field of
// horizontally patrolling enemies between two boundary bars.
//
// The package has no dependency on any terminal or graphics binding. Platforms
// feed it input through an EventSource and display it through a Renderer.
package game

import (
	"fmt"

	"github.com/vovakirdan/chicken-run/internal/core"
)

// Direction is the fixed patrol direction of an enemy.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == DirRight {
		return "right"
	}
	return "left"
}

// MarshalText encodes the direction for YAML snapshots.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes "left" or "right".
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*d = DirLeft
	case "right":
		*d = DirRight
	default:
		return fmt.Errorf("game: unknown direction %q", text)
	}
	return nil
}

// Enemy is a patrolling obstacle. Only Pos.X changes after creation.
type Enemy struct {
	Pos   core.Rect
	Speed int // Pixels per frame, always positive
	Dir   Direction
}
