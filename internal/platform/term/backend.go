package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/chicken-run/internal/core"
	"github.com/vovakirdan/chicken-run/internal/game"
	"github.com/vovakirdan/chicken-run/internal/registry"
	"github.com/vovakirdan/chicken-run/internal/render"
	"github.com/vovakirdan/chicken-run/internal/replay"
)

// BackendName identifies this backend in the registry and in recordings.
const BackendName = "tcell"

// helpText is shown below the field.
const helpText = "arrows/wasd move  q quit"

// screenRenderer rasterizes a frame between a title row and a help row and
// copies the result to a tcell screen.
type screenRenderer struct {
	screen tcell.Screen
	raster *render.Rasterizer
	title  string
	field  *core.Screen
	buf    *core.Screen
}

func newScreenRenderer(screen tcell.Screen, raster *render.Rasterizer, title string) *screenRenderer {
	field := raster.NewScreen()
	return &screenRenderer{
		screen: screen,
		raster: raster,
		title:  title,
		field:  field,
		buf:    core.NewScreen(field.Width(), field.Height()+2),
	}
}

// Render implements game.Renderer.
func (r *screenRenderer) Render(f game.Frame) {
	r.raster.Draw(r.field, f)

	r.buf.Clear()
	r.buf.DrawText(0, 0, r.title)
	for y := 0; y < r.field.Height(); y++ {
		for x := 0; x < r.field.Width(); x++ {
			r.buf.SetCell(x, y+1, r.field.GetCell(x, y))
		}
	}
	r.buf.DrawText(0, r.buf.Height()-1, helpText)

	r.screen.Clear()
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, cellStyle(c))
		}
	}
	r.screen.Show()
}

// cellStyle converts cell colors to a tcell style.
func cellStyle(c core.Cell) tcell.Style {
	st := tcell.StyleDefault
	if !c.FG.IsDefault() {
		st = st.Foreground(tcell.NewRGBColor(int32(c.FG.R), int32(c.FG.G), int32(c.FG.B)))
	}
	if !c.BG.IsDefault() {
		st = st.Background(tcell.NewRGBColor(int32(c.BG.R), int32(c.BG.G), int32(c.BG.B)))
	}
	return st
}

// Backend plays the game on a tcell screen.
type Backend struct {
	// newScreen is replaced in tests with a simulation screen.
	newScreen func() (tcell.Screen, error)
	sleep     func(time.Duration)
}

// Name implements registry.Backend.
func (Backend) Name() string { return BackendName }

// Description implements registry.Backend.
func (Backend) Description() string { return "tcell screen, fixed sleep between frames" }

// Play implements registry.Backend. It blocks until the player quits.
func (b Backend) Play(s registry.Session) (replay.Recording, error) {
	newScreen := b.newScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	sleep := b.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	screen, err := newScreen()
	if err != nil {
		return replay.Recording{}, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return replay.Recording{}, fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	raster := render.NewRasterizer(s.Rules, s.Textures)

	src := newEventSource(screen.PollEvent, screen.Sync)
	defer src.stop()
	rec := replay.NewRecorder(src)
	ctrl := game.NewController(game.NewSeededContext(s.Rules, s.Seed))

	ctrl.Run(rec, newScreenRenderer(screen, raster, s.Rules.Window.Title), game.SleeperFunc(sleep))

	if s.Logger != nil {
		s.Logger.Debug("game stopped", "frames", ctrl.Frames())
	}
	return rec.Recording(s.Seed, BackendName, ""), nil
}

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}
