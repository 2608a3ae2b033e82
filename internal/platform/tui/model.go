package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chicken-run/internal/core"
	"github.com/vovakirdan/chicken-run/internal/game"
	"github.com/vovakirdan/chicken-run/internal/registry"
	"github.com/vovakirdan/chicken-run/internal/render"
	"github.com/vovakirdan/chicken-run/internal/replay"
)

// BackendName identifies this backend in the registry and in recordings.
const BackendName = "tea"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))
)

// Model is the Bubble Tea model for one game.
// Key presses are queued and drained by the next tick; each tick runs one frame.
type Model struct {
	ctrl     *game.Controller
	queue    *core.EventQueue
	recorder *replay.Recorder
	screen   *render.ScreenRenderer
	keys     KeyMap
	help     help.Model
	title    string
	delay    time.Duration
	seed     int64
	player   string
	logger   *log.Logger

	// screenshotDir defaults to ~/.chickenrun/screenshots
	screenshotDir string

	width, height int // Terminal size, 0 until the first resize message
	stopped       bool
}

// NewModel creates a model for a fresh game. player is the SSH user name,
// empty for local play.
func NewModel(s registry.Session, player string) Model {
	logger := s.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	queue := core.NewEventQueue()
	h := help.New()
	h.ShowAll = false

	return Model{
		ctrl:     game.NewController(game.NewSeededContext(s.Rules, s.Seed)),
		queue:    queue,
		recorder: replay.NewRecorder(queue),
		screen:   render.NewScreenRenderer(render.NewRasterizer(s.Rules, s.Textures)),
		keys:     DefaultKeyMap(),
		help:     h,
		title:    s.Rules.Window.Title,
		delay:    s.Rules.Loop.FrameDelay(),
		seed:     s.Seed,
		player:   player,
		logger:   logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the game event for a key press.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.queue.Push(ev)
	}
	return m, nil
}

// handleTick runs one frame and schedules the next one while the game runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.stopped {
		return m, nil
	}

	if m.ctrl.Frame(m.recorder, m.screen) == game.StateStopped {
		m.stopped = true
		return m, tea.Quit
	}

	if out := m.ctrl.LastOutcome(); out != game.OutcomeNone {
		m.logger.Debug("player reset", "outcome", out, "frame", m.ctrl.Frames())
	}

	return m, tickCmd(m.delay)
}

// saveScreenshot writes the current screen to a text file.
func (m Model) saveScreenshot() {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("cannot save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".chickenrun", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("chickenrun_%s_%d.txt", timestamp, m.ctrl.Frames()))
	if err := os.WriteFile(path, []byte(m.screen.Screen().String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// Recording returns the input recorded so far.
func (m Model) Recording() replay.Recording {
	return m.recorder.Recording(m.seed, BackendName, m.player)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.stopped {
		return ""
	}

	screen := m.screen.Screen()
	if m.width > 0 && (m.width < screen.Width() || m.height < screen.Height()+2) {
		return warnStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			screen.Width(), screen.Height()+2, m.width, m.height,
		))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Backend plays the game in a Bubble Tea program.
type Backend struct{}

// Name implements registry.Backend.
func (Backend) Name() string { return BackendName }

// Description implements registry.Backend.
func (Backend) Description() string { return "Bubble Tea program, ticks drive frames" }

// Play implements registry.Backend.
func (Backend) Play(s registry.Session) (replay.Recording, error) {
	p := tea.NewProgram(NewModel(s, ""), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return replay.Recording{}, fmt.Errorf("tui: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return replay.Recording{}, fmt.Errorf("tui: unexpected final model %T", final)
	}
	return m.Recording(), nil
}

func init() {
	registry.Register(BackendName, func() registry.Backend { return Backend{} })
}
