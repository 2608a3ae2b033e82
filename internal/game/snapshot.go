package game

// Point is an x/y position in window pixels.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// EnemySnapshot is the observable state of one enemy.
type EnemySnapshot struct {
	X   int       `yaml:"x"`
	Y   int       `yaml:"y"`
	Dir Direction `yaml:"dir"`
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frame   uint64          `yaml:"frame"`
	State   string          `yaml:"state"`
	Outcome string          `yaml:"outcome"`
	Player  Point           `yaml:"player"`
	Enemies []EnemySnapshot `yaml:"enemies"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (c *Controller) Snapshot() Snapshot {
	enemies := make([]EnemySnapshot, len(c.ctx.Enemies))
	for i, e := range c.ctx.Enemies {
		enemies[i] = EnemySnapshot{X: e.Pos.X, Y: e.Pos.Y, Dir: e.Dir}
	}

	return Snapshot{
		Frame:   c.frames,
		State:   c.state.String(),
		Outcome: c.lastOutcome.String(),
		Player:  Point{X: c.ctx.Player.X, Y: c.ctx.Player.Y},
		Enemies: enemies,
	}
}
