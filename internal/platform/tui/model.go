package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
	"github.com/vovakirdan/tui-flappy/internal/replay"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ReplayStore persists finished sessions. *storage.Store implements it.
type ReplayStore interface {
	SaveReplay(e storage.ReplayEntry) (int64, error)
	UpdateReplay(id int64, e storage.ReplayEntry) error
}

// Options configures a game Model.
type Options struct {
	Runtime core.RuntimeConfig
	Game    config.FlappyConfig

	// Sink receives simulation events. Nil means silent.
	Sink audio.Sink
	// Store receives the replay on every game over and on quit. Nil disables recording.
	Store ReplayStore
	// Clock defaults to a wall clock started with the model.
	Clock   core.Clock
	Palette *Palette
	Logger  *log.Logger
}

// Model is the Bubble Tea model that runs one flappy world.
type Model struct {
	world    *flappy.World
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	palette  *Palette
	sink     audio.Sink
	store    ReplayStore
	recorder *replay.Recorder
	replayID int64
	clock    *core.PausableClock
	logger   *log.Logger
	pending  core.InputFrame
	width    int
	height   int
	paused   bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for a fresh world.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = opts.Game.TickRate
	}
	game := opts.Game
	game.TickRate = cfg.TickRate

	m := Model{
		world:   flappy.New(game, core.NewRandom(cfg.Seed)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		palette: opts.Palette,
		sink:    opts.Sink,
		store:   opts.Store,
		logger:  opts.Logger,
		pending: core.NewInputFrame(),
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	if m.palette == nil {
		m.palette = DefaultPalette()
	}
	if m.sink == nil {
		m.sink = audio.Noop{}
	}
	base := opts.Clock
	if base == nil {
		base = core.NewWallClock()
	}
	m.clock = core.NewPausableClock(base)
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	if m.store != nil {
		m.recorder = replay.NewRecorder(cfg.Seed, game)
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.playfieldHeight())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Simulation input is buffered until the
// next tick; pause, help and quit act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	switch action := m.keys.Action(msg, m.world.Terminal()); action {
	case core.ActionQuit:
		m.quitting = true
		m.saveReplay()
		return m, tea.Quit
	case core.ActionPause:
		if !m.world.Terminal() {
			m.setPaused(!m.paused)
		}
	case core.ActionFlap, core.ActionRestart:
		if !m.paused {
			m.pending.Set(action)
		}
	}
	return m, nil
}

// setPaused freezes or resumes the simulation clock, so the first step after
// a pause sees a normal delta and in-flight transitions do not finish while
// paused.
func (m *Model) setPaused(paused bool) {
	m.paused = paused
	if paused {
		m.clock.Pause()
	} else {
		m.clock.Resume()
	}
}

// handleTick advances the world by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	now := m.clock.NowMillis()
	in := m.pending
	m.pending = core.NewInputFrame()

	wasTerminal := m.world.Terminal()
	m.world.Step(in, now)
	for _, e := range m.world.DrainEvents() {
		m.sink.Play(e)
	}
	if m.recorder != nil {
		m.recorder.Record(in, now)
	}

	if !wasTerminal && m.world.Terminal() {
		m.logger.Debug("run over", "score", m.world.Score(), "ticks", m.world.Ticks())
		if m.recorder != nil {
			m.recorder.EndRun(m.world.Score(), m.world.Ticks())
		}
		m.saveReplay()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveReplay writes the session so far. The first save inserts a row, later
// ones update it. Failures are logged and otherwise ignored.
func (m *Model) saveReplay() {
	if m.store == nil || m.recorder == nil || m.recorder.Len() == 0 {
		return
	}

	entry, err := m.recorder.Replay().Entry()
	if err != nil {
		m.logger.Warn("could not encode replay", "error", err)
		return
	}

	if m.replayID == 0 {
		id, err := m.store.SaveReplay(entry)
		if err != nil {
			m.logger.Warn("could not save replay", "error", err)
			return
		}
		m.replayID = id
		m.logger.Debug("replay saved", "id", id, "frames", entry.Ticks)
		return
	}
	if err := m.store.UpdateReplay(m.replayID, entry); err != nil {
		m.logger.Warn("could not update replay", "id", m.replayID, "error", err)
	}
}

// footerStyle renders the help line below the playfield.
var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func (m Model) footer() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// playfieldHeight is the terminal height minus the help footer.
func (m Model) playfieldHeight() int {
	return max(0, m.height-lipgloss.Height(m.footer()))
}

func (m *Model) layout() {
	m.screen.Resize(m.width, m.playfieldHeight())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.world.Snapshot()
	flappy.Render(m.screen, snap)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorAccent)
	}

	return RenderScreen(m.screen, m.palette.Styles(snap.Theme)) + "\n" + m.footer()
}

// World exposes the running simulation.
func (m Model) World() *flappy.World {
	return m.world
}

// Paused reports whether stepping is suspended.
func (m Model) Paused() bool {
	return m.paused
}

// ReplayID returns the stored replay row, or 0 if nothing was saved.
func (m Model) ReplayID() int64 {
	return m.replayID
}

// Seed returns the seed the world was created with.
func (m Model) Seed() int64 {
	return m.config.Seed
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the final model so callers can report the saved replay.
func Run(opts Options) (Model, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
