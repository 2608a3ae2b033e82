package game

import (
	"math/rand"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
)

// GameContext owns the whole world state of one game.
// It is created once by NewContext and mutated only by its Controller.
type GameContext struct {
	Player     core.Rect
	Enemies    []Enemy // Setup order
	TopBar     core.Rect
	BottomBar  core.Rect
	Background core.Rect

	rules      config.Game
	rng        *rand.Rand
	nextEnemyY int // Vertical offset for the next enemy; only used during setup
}

// Rules returns the constants this context was built with.
func (c *GameContext) Rules() config.Game {
	return c.rules
}

// SpawnPosition returns the rectangle the player starts at and returns to on reset:
// horizontally centered, resting on the bottom bar.
func (c *GameContext) SpawnPosition() core.Rect {
	size := c.rules.Player.Size
	return core.NewRect(
		c.rules.Window.Width/2-size/2,
		c.rules.Window.Height-c.rules.Bars.Height,
		size,
		size,
	)
}

// ResetPlayer moves the player back to the spawn position.
func (c *GameContext) ResetPlayer() {
	c.Player = c.SpawnPosition()
}

// ApplyKey moves the player by one step for a directional key.
// The delta is instantaneous; there is no velocity. Other keys are ignored.
func (c *GameContext) ApplyKey(k core.Key) {
	step := c.rules.Player.Speed
	switch k {
	case core.KeyUp:
		c.Player.Y -= step
	case core.KeyDown:
		c.Player.Y += step
	case core.KeyLeft:
		c.Player.X -= step
	case core.KeyRight:
		c.Player.X += step
	}
}

// Frame returns the current state in the form renderers consume.
// The enemy slice is a copy, so renderers may keep it.
func (c *GameContext) Frame() Frame {
	enemies := make([]Enemy, len(c.Enemies))
	copy(enemies, c.Enemies)
	return Frame{
		Background: c.Background,
		TopBar:     c.TopBar,
		BottomBar:  c.BottomBar,
		Player:     c.Player,
		Enemies:    enemies,
	}
}
