// Package replay records the input of a game and plays it back headlessly.
//
// A Recording is the seed plus the events drained in every frame. Because the
// simulation is deterministic, re-running it reproduces the game exactly.
package replay

import (
	"time"

	"github.com/vovakirdan/chicken-run/internal/core"
	"github.com/vovakirdan/chicken-run/internal/game"
)

// Recording is a complete input log of one game.
type Recording struct {
	ID        int64
	Seed      int64
	Backend   string
	Player    string // User name for SSH sessions, empty locally
	Frames    [][]core.Event
	CreatedAt time.Time
}

// EventCount returns the total number of recorded events.
func (r Recording) EventCount() int {
	n := 0
	for _, f := range r.Frames {
		n += len(f)
	}
	return n
}

// Recorder wraps an EventSource and logs everything it yields.
// Each time the wrapped source reports it is drained, the current frame closes.
type Recorder struct {
	src     game.EventSource
	frames  [][]core.Event
	current []core.Event
}

// NewRecorder wraps src.
func NewRecorder(src game.EventSource) *Recorder {
	return &Recorder{src: src}
}

// Poll implements game.EventSource.
func (r *Recorder) Poll() (core.Event, bool) {
	ev, ok := r.src.Poll()
	if !ok {
		r.frames = append(r.frames, r.current)
		r.current = nil
		return ev, false
	}
	r.current = append(r.current, ev)
	return ev, true
}

// Frames returns the per-frame events recorded so far.
func (r *Recorder) Frames() [][]core.Event {
	return r.frames
}

// Recording packages what was recorded.
func (r *Recorder) Recording(seed int64, backend, player string) Recording {
	return Recording{
		Seed:    seed,
		Backend: backend,
		Player:  player,
		Frames:  r.frames,
	}
}
