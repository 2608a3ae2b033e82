// Package term runs the game on a raw terminal through tcell, pacing frames
// with a fixed sleep like a classic game loop.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/chicken-run/internal/core"
)

// eventSource turns tcell's blocking PollEvent into a non-blocking Poll.
// A single goroutine forwards events into a buffered channel; Poll drains it.
type eventSource struct {
	events chan tcell.Event
	done   chan struct{}
	resize func()
}

// newEventSource starts the forwarding goroutine. It exits when PollEvent
// returns nil, which happens after the screen is finalized, or once stop is
// called while it waits to hand over an event.
func newEventSource(poll func() tcell.Event, resize func()) *eventSource {
	src := &eventSource{
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
		resize: resize,
	}
	go func() {
		for {
			ev := poll()
			if ev == nil {
				close(src.events)
				return
			}
			select {
			case src.events <- ev:
			case <-src.done:
				return
			}
		}
	}()
	return src
}

// stop releases the forwarding goroutine once nothing drains the source.
func (s *eventSource) stop() {
	close(s.done)
}

// Poll implements game.EventSource.
func (s *eventSource) Poll() (core.Event, bool) {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return core.Event{}, false
			}
			if out, ok := s.translate(ev); ok {
				return out, true
			}
		default:
			return core.Event{}, false
		}
	}
}

// translate maps a tcell event to a game event. Resizes are handled here and
// never reach the game.
func (s *eventSource) translate(ev tcell.Event) (core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return keyEvent(ev)
	case *tcell.EventResize:
		if s.resize != nil {
			s.resize()
		}
	}
	return core.Event{}, false
}

// keyEvent maps arrows and WASD to movement and q, Esc or Ctrl+C to quit.
func keyEvent(ev *tcell.EventKey) (core.Event, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyDownEvent(core.KeyUp), true
	case tcell.KeyDown:
		return core.KeyDownEvent(core.KeyDown), true
	case tcell.KeyLeft:
		return core.KeyDownEvent(core.KeyLeft), true
	case tcell.KeyRight:
		return core.KeyDownEvent(core.KeyRight), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.QuitEvent(), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.QuitEvent(), true
		case 'w', 'W':
			return core.KeyDownEvent(core.KeyUp), true
		case 's', 'S':
			return core.KeyDownEvent(core.KeyDown), true
		case 'a', 'A':
			return core.KeyDownEvent(core.KeyLeft), true
		case 'd', 'D':
			return core.KeyDownEvent(core.KeyRight), true
		}
	}
	return core.Event{}, false
}
