package core

// Key identifies a keyboard key as seen by the simulation.
// Platform layers map their physical keys onto these values.
type Key int

const (
	KeyOther Key = iota // Any key the game does not react to
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// ParseKey is the inverse of Key.String. Unknown names map to KeyOther.
func ParseKey(s string) Key {
	switch s {
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "left":
		return KeyLeft
	case "right":
		return KeyRight
	default:
		return KeyOther
	}
}

// EventKind distinguishes the two kinds of input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventQuit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	if k == EventQuit {
		return "quit"
	}
	return "keydown"
}

// Event is a single discrete input event delivered by the platform.
type Event struct {
	Kind EventKind
	Key  Key // Only meaningful for EventKeyDown
}

// QuitEvent returns a quit request event.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent returns a key press event for k.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// String formats the event for logs and recordings.
func (e Event) String() string {
	if e.Kind == EventQuit {
		return "quit"
	}
	return "keydown:" + e.Key.String()
}

// EventQueue is a FIFO of pending events.
// Platforms push events as they arrive; the game loop drains it once per frame.
// It is not safe for concurrent use.
type EventQueue struct {
	events []Event
	head   int
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 8)}
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Poll removes and returns the oldest pending event.
// The second result is false when the queue is empty.
func (q *EventQueue) Poll() (Event, bool) {
	if q.head == len(q.events) {
		// Drained: reuse the backing array for the next frame
		q.events = q.events[:0]
		q.head = 0
		return Event{}, false
	}
	e := q.events[q.head]
	q.head++
	return e, true
}
