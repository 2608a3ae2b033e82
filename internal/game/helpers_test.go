package game

import (
	"time"

	"github.com/vovakirdan/chicken-run/internal/config"
	"github.com/vovakirdan/chicken-run/internal/core"
)

// testRules returns the default constants with the given enemy population.
func testRules(enemies int) config.Game {
	rules := config.Default()
	rules.Enemies.Count = enemies
	return rules
}

// recordingRenderer keeps every frame it is asked to draw.
type recordingRenderer struct {
	frames []Frame
}

func (r *recordingRenderer) Render(f Frame) {
	r.frames = append(r.frames, f)
}

// scriptedSleeper records sleeps and can inject events between frames.
type scriptedSleeper struct {
	queue  *core.EventQueue
	quitAt int // push a quit event on this sleep call (1-based); 0 = never
	delays []time.Duration
}

func (s *scriptedSleeper) Sleep(d time.Duration) {
	s.delays = append(s.delays, d)
	if len(s.delays) == s.quitAt {
		s.queue.Push(core.QuitEvent())
	}
}

func queueOf(events ...core.Event) *core.EventQueue {
	q := core.NewEventQueue()
	for _, e := range events {
		q.Push(e)
	}
	return q
}
