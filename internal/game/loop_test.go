package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/chicken-run/internal/core"
)

func TestControllerStartsRunning(t *testing.T) {
	c := NewController(NewSeededContext(testRules(0), 1))

	if c.State() != StateRunning {
		t.Errorf("initial state = %v, expected running", c.State())
	}
	if c.Frames() != 0 {
		t.Errorf("initial Frames() = %d, expected 0", c.Frames())
	}
}

func TestFrameAppliesKeysAsInstantDeltas(t *testing.T) {
	ctx := NewSeededContext(testRules(0), 1)
	c := NewController(ctx)
	r := &recordingRenderer{}

	q := queueOf(
		core.KeyDownEvent(core.KeyUp),
		core.KeyDownEvent(core.KeyUp),
		core.KeyDownEvent(core.KeyLeft),
		core.KeyDownEvent(core.KeyOther),
	)
	c.Frame(q, r)

	if ctx.Player.X != 125 || ctx.Player.Y != 350 {
		t.Errorf("player at (%d, %d), expected (125, 350)", ctx.Player.X, ctx.Player.Y)
	}

	// No events: no drift, the delta does not persist as a velocity
	c.Frame(q, r)
	if ctx.Player.X != 125 || ctx.Player.Y != 350 {
		t.Errorf("player drifted to (%d, %d) without input", ctx.Player.X, ctx.Player.Y)
	}

	if len(r.frames) != 2 {
		t.Fatalf("rendered %d frames, expected 2", len(r.frames))
	}
	if r.frames[1].Player != ctx.Player {
		t.Errorf("rendered player %+v, expected %+v", r.frames[1].Player, ctx.Player)
	}
}

func TestFrameQuitLatches(t *testing.T) {
	ctx := NewSeededContext(testRules(0), 1)
	c := NewController(ctx)
	r := &recordingRenderer{}

	q := queueOf(
		core.KeyDownEvent(core.KeyLeft),
		core.QuitEvent(),
		core.KeyDownEvent(core.KeyRight),
		core.KeyDownEvent(core.KeyUp),
	)

	if st := c.Frame(q, r); st != StateStopped {
		t.Fatalf("Frame() = %v, expected stopped", st)
	}
	if ev, ok := q.Poll(); ok {
		t.Errorf("events after quit should still be drained, %v left", ev)
	}
	if ctx.Player.X != 125 || ctx.Player.Y != 380 {
		t.Errorf("player at (%d, %d); only the event before quit should apply", ctx.Player.X, ctx.Player.Y)
	}

	// The quitting frame still completes
	if len(r.frames) != 1 || c.Frames() != 1 {
		t.Errorf("quitting frame should render once, got %d renders and %d frames", len(r.frames), c.Frames())
	}

	// Stopped is terminal
	q.Push(core.KeyDownEvent(core.KeyUp))
	c.Frame(q, r)
	if len(r.frames) != 1 || c.Frames() != 1 {
		t.Error("Frame() after stop should do nothing")
	}
}

func TestFrameAdvancesEnemies(t *testing.T) {
	ctx := NewSeededContext(testRules(13), 3)
	c := NewController(ctx)

	before := make([]Enemy, len(ctx.Enemies))
	copy(before, ctx.Enemies)

	c.Frame(core.NewEventQueue(), NopRenderer)

	for i, e := range ctx.Enemies {
		if want := AdvanceEnemy(before[i], 300); e != want {
			t.Errorf("enemy %d = %+v, expected %+v", i, e, want)
		}
	}
}

func TestFrameBreachResetsPlayer(t *testing.T) {
	ctx := NewSeededContext(testRules(0), 1)
	c := NewController(ctx)
	q := core.NewEventQueue()

	// 24 steps of 15 bring the player from y=380 to y=20: flush, not breached
	for i := 0; i < 24; i++ {
		q.Push(core.KeyDownEvent(core.KeyUp))
	}
	c.Frame(q, NopRenderer)
	if ctx.Player.Y != 20 || c.LastOutcome() != OutcomeNone {
		t.Fatalf("player y = %d, outcome %v; expected 20 and none", ctx.Player.Y, c.LastOutcome())
	}

	q.Push(core.KeyDownEvent(core.KeyUp))
	c.Frame(q, NopRenderer)
	if c.LastOutcome() != OutcomeBreach {
		t.Errorf("outcome = %v, expected breach", c.LastOutcome())
	}
	if ctx.Player != ctx.SpawnPosition() {
		t.Errorf("player = %+v, expected spawn", ctx.Player)
	}
	if c.State() != StateRunning {
		t.Error("a breach should not stop the loop")
	}
}

func TestFrameHitOnTouchingEdge(t *testing.T) {
	ctx := NewSeededContext(testRules(0), 1)
	// After one step right the enemy's right edge (120+20) touches the player's left edge (140)
	ctx.Enemies = []Enemy{{Pos: core.NewRect(119, 365, 20, 20), Speed: 1, Dir: DirRight}}
	c := NewController(ctx)

	c.Frame(queueOf(core.KeyDownEvent(core.KeyUp)), NopRenderer)

	if c.LastOutcome() != OutcomeHit {
		t.Fatalf("outcome = %v, expected hit", c.LastOutcome())
	}
	if ctx.Player != ctx.SpawnPosition() {
		t.Errorf("player = %+v, expected spawn", ctx.Player)
	}
	if ctx.Enemies[0].Pos.X != 120 {
		t.Errorf("enemy x = %d, expected 120", ctx.Enemies[0].Pos.X)
	}
}

func TestRunPacesWithFixedSleep(t *testing.T) {
	ctx := NewSeededContext(testRules(13), 5)
	c := NewController(ctx)
	q := core.NewEventQueue()
	r := &recordingRenderer{}
	s := &scriptedSleeper{queue: q, quitAt: 3}

	c.Run(q, r, s)

	if c.State() != StateStopped {
		t.Fatalf("Run() returned in state %v", c.State())
	}
	// Three paced frames, then the frame that drains the quit event
	if c.Frames() != 4 || len(r.frames) != 4 {
		t.Errorf("Frames() = %d, renders = %d, expected 4", c.Frames(), len(r.frames))
	}
	if len(s.delays) != 3 {
		t.Fatalf("slept %d times, expected 3", len(s.delays))
	}
	for i, d := range s.delays {
		if d != 16*time.Millisecond {
			t.Errorf("sleep %d = %v, expected 16ms", i, d)
		}
	}
}

func TestSnapshot(t *testing.T) {
	ctx := NewSeededContext(testRules(2), 11)
	c := NewController(ctx)
	c.Frame(core.NewEventQueue(), NopRenderer)

	snap := c.Snapshot()
	if snap.Frame != 1 || snap.State != "running" || snap.Outcome != "none" {
		t.Errorf("Snapshot() header = %+v", snap)
	}
	if snap.Player != (Point{X: 140, Y: 380}) {
		t.Errorf("Snapshot().Player = %+v", snap.Player)
	}
	if len(snap.Enemies) != 2 {
		t.Fatalf("len(Snapshot().Enemies) = %d, expected 2", len(snap.Enemies))
	}
	for i, e := range ctx.Enemies {
		got := snap.Enemies[i]
		if got.X != e.Pos.X || got.Y != e.Pos.Y || got.Dir != e.Dir {
			t.Errorf("snapshot enemy %d = %+v, expected %+v", i, got, e)
		}
	}
}
