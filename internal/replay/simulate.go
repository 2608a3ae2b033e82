package replay

import (
	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/game"
)

// Simulate replays rec from a fresh scene and returns the snapshot after the
// last recorded frame, or after the frame that drained a quit event.
func Simulate(rules config.Game, rec Recording) game.Snapshot {
	ctrl := game.NewController(game.NewSeededContext(rules, rec.Seed))
	script := NewScript(rec.Frames)
	for script.Remaining() > 0 {
		if ctrl.Frame(script, game.NopRenderer) == game.StateStopped {
			break
		}
	}
	return ctrl.Snapshot()
}

// Run advances a fresh scene by steps frames with no input and calls visit
// with every snapshot for which (frame % every == 0). every <= 0 visits only
// the final frame.
func Run(rules config.Game, seed int64, steps, every int, visit func(game.Snapshot)) game.Snapshot {
	ctrl := game.NewController(game.NewSeededContext(rules, seed))
	idle := NewScript(nil)
	for i := 0; i < steps; i++ {
		ctrl.Frame(idle, game.NopRenderer)
		if every > 0 && ctrl.Frames()%uint64(every) == 0 && visit != nil {
			visit(ctrl.Snapshot())
		}
	}
	final := ctrl.Snapshot()
	if every <= 0 && visit != nil {
		visit(final)
	}
	return final
}
