package game

import "github.com/vovakirdan/chicken-run/internal/core"

// Outcome reports which rule, if any, sent the player back to spawn this frame.
type Outcome int

const (
	OutcomeNone   Outcome = iota
	OutcomeHit            // Player touched an enemy
	OutcomeBreach         // Player reached the top bar
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeBreach:
		return "breach"
	default:
		return "none"
	}
}

// AnyEnemyCollides reports whether any enemy overlaps the player.
func AnyEnemyCollides(enemies []Enemy, player core.Rect) bool {
	for _, e := range enemies {
		if core.Overlaps(e.Pos, player) {
			return true
		}
	}
	return false
}

// BreachedTop reports whether the player has crossed the top bar's lower edge.
func BreachedTop(player, topBar core.Rect) bool {
	return player.Y < topBar.Bottom()
}

// EvaluateOutcome applies the outcome rules: touching an enemy or breaching the
// top bar both return the player to spawn. Enemies are unaffected.
func (c *GameContext) EvaluateOutcome() Outcome {
	outcome := OutcomeNone
	switch {
	case AnyEnemyCollides(c.Enemies, c.Player):
		outcome = OutcomeHit
	case BreachedTop(c.Player, c.TopBar):
		outcome = OutcomeBreach
	}

	if outcome != OutcomeNone {
		c.ResetPlayer()
	}
	return outcome
}
