package replay

import "github.com/vovakirdan/chicken-run/internal/core"

// Script is an EventSource that replays recorded frames in order.
// Each frame's events are yielded until the frame is drained; the next Poll
// after that starts the following frame.
type Script struct {
	frames [][]core.Event
	frame  int
	pos    int
}

// NewScript creates a source over frames.
func NewScript(frames [][]core.Event) *Script {
	return &Script{frames: frames}
}

// Poll implements game.EventSource.
func (s *Script) Poll() (core.Event, bool) {
	if s.frame >= len(s.frames) {
		return core.Event{}, false
	}
	events := s.frames[s.frame]
	if s.pos < len(events) {
		ev := events[s.pos]
		s.pos++
		return ev, true
	}
	s.frame++
	s.pos = 0
	return core.Event{}, false
}

// Remaining returns the number of frames not yet fully drained.
func (s *Script) Remaining() int {
	return len(s.frames) - s.frame
}
