package game

import (
	"time"

	"github.com/vovakirdan/chicken-run/internal/core"
)

// EventSource yields the input events that arrived since the last frame.
// Poll returns false once the pending events are exhausted.
type EventSource interface {
	Poll() (core.Event, bool)
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Background core.Rect
	TopBar     core.Rect
	BottomBar  core.Rect
	Player     core.Rect
	Enemies    []Enemy
}

// Renderer draws a frame. It has no effect on the simulation.
type Renderer interface {
	Render(f Frame)
}

// Sleeper paces the loop between frames.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function such as time.Sleep to a Sleeper.
type SleeperFunc func(time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(Frame)

// Render calls f(fr).
func (f RendererFunc) Render(fr Frame) {
	f(fr)
}

// NopRenderer discards frames; used by headless runs.
var NopRenderer Renderer = RendererFunc(func(Frame) {})
