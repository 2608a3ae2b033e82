package game

// AdvanceEnemy moves e one simulation step along its patrol.
// A left-moving enemy whose right edge reaches the window's left edge reappears
// flush with the right edge; a right-moving enemy whose left edge reaches the
// window width reappears at x = 0.
func AdvanceEnemy(e Enemy, windowW int) Enemy {
	switch e.Dir {
	case DirLeft:
		e.Pos.X -= e.Speed
		if e.Pos.Right() <= 0 {
			e.Pos.X = windowW - e.Pos.W
		}
	case DirRight:
		e.Pos.X += e.Speed
		if e.Pos.X >= windowW {
			e.Pos.X = 0
		}
	}
	return e
}

// AdvanceEnemies moves every enemy one step.
func (c *GameContext) AdvanceEnemies() {
	for i := range c.Enemies {
		c.Enemies[i] = AdvanceEnemy(c.Enemies[i], c.rules.Window.Width)
	}
}
