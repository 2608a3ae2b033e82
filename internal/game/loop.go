package game

import "github.com/vovakirdan/chicken-run/internal/core"

// State is the controller's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateStopped       // Terminal: no further frames are simulated
)

// String returns a human-readable name for the state.
func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// Controller drives a GameContext one frame at a time.
// It is the only writer of its context.
type Controller struct {
	ctx         *GameContext
	state       State
	frames      uint64
	lastOutcome Outcome
}

// NewController creates a running controller for ctx.
func NewController(ctx *GameContext) *Controller {
	return &Controller{ctx: ctx}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Frames returns the number of completed frames.
func (c *Controller) Frames() uint64 {
	return c.frames
}

// LastOutcome returns the outcome evaluated in the most recent frame.
func (c *Controller) LastOutcome() Outcome {
	return c.lastOutcome
}

// Frame runs one loop iteration: drain input, advance enemies, evaluate
// outcomes and render. A quit event stops the controller; the current frame
// still completes, and events after the quit are drained without effect.
// Calling Frame on a stopped controller does nothing.
func (c *Controller) Frame(src EventSource, dst Renderer) State {
	if c.state == StateStopped {
		return c.state
	}

	c.drain(src)
	c.ctx.AdvanceEnemies()
	c.lastOutcome = c.ctx.EvaluateOutcome()
	dst.Render(c.ctx.Frame())
	c.frames++

	return c.state
}

// drain consumes every pending event from src.
func (c *Controller) drain(src EventSource) {
	quit := false
	for {
		ev, ok := src.Poll()
		if !ok {
			break
		}
		if quit {
			continue
		}
		switch ev.Kind {
		case core.EventQuit:
			quit = true
			c.state = StateStopped
		case core.EventKeyDown:
			c.ctx.ApplyKey(ev.Key)
		}
	}
}

// Run loops Frame followed by a fixed sleep until a quit event arrives.
// The sleep does not account for time spent in the frame.
func (c *Controller) Run(src EventSource, dst Renderer, pace Sleeper) {
	delay := c.ctx.rules.Loop.FrameDelay()
	for c.Frame(src, dst) == StateRunning {
		pace.Sleep(delay)
	}
}
