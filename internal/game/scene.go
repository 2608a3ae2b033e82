package game

import (
	"math/rand"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
)

// NewContext builds the initial scene: background, both bars, the enemy
// population and the player at spawn. The rng decides each enemy's direction
// and horizontal start; passing a seeded generator makes the layout reproducible.
func NewContext(rules config.Game, rng *rand.Rand) *GameContext {
	w, h := rules.Window.Width, rules.Window.Height
	barH := rules.Bars.Height

	c := &GameContext{
		Background: core.NewRect(0, 0, w, h),
		TopBar:     core.NewRect(0, 0, w, barH),
		BottomBar:  core.NewRect(0, h-barH, w, barH),
		Enemies:    make([]Enemy, 0, rules.Enemies.Count),
		rules:      rules,
		rng:        rng,
		nextEnemyY: rules.Enemies.StartY,
	}

	for i := 0; i < rules.Enemies.Count; i++ {
		c.addEnemy()
	}

	c.ResetPlayer()
	return c
}

// NewSeededContext is NewContext with a math/rand source seeded by seed.
func NewSeededContext(rules config.Game, seed int64) *GameContext {
	return NewContext(rules, rand.New(rand.NewSource(seed)))
}

// addEnemy appends one enemy at the next vertical slot.
// Direction is drawn before the x position.
func (c *GameContext) addEnemy() {
	dir := DirRight
	if c.rng.Intn(2) == 0 {
		dir = DirLeft
	}
	x := c.rng.Intn(c.rules.Window.Width)
	size := c.rules.Enemies.Size

	c.Enemies = append(c.Enemies, Enemy{
		Pos:   core.NewRect(x, c.nextEnemyY, size, size),
		Speed: c.rules.Enemies.Speed,
		Dir:   dir,
	})
	c.nextEnemyY += c.rules.Enemies.StepY
}
