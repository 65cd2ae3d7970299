package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/config"
	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
	"github.com/vovakirdan/lane-dash/internal/render"
	"github.com/vovakirdan/lane-dash/internal/storage"
)

// Options configures a Model.
type Options struct {
	Game    config.GameConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // May be nil; stats are then not persisted
	Images  render.Images
	Logger  *log.Logger

	// Nickname skips the prompt when valid. SuggestedNickname only
	// pre-fills it.
	Nickname          string
	SuggestedNickname string

	Renderer      *lipgloss.Renderer
	ScreenshotDir string // Defaults to ~/.lanedash/screenshots
}

type stage int

const (
	stageNickname stage = iota
	stagePlaying
)

// Model is the Bubble Tea model for one Lane Dash session.
type Model struct {
	opts     Options
	keys     KeyMap
	help     help.Model
	renderer *ScreenRenderer
	stage    stage
	prompt   nicknamePrompt
	nickname string

	engine   *game.Engine
	ctrl     *game.Controller
	ticker   *TeaTicker
	recorder *runRecorder
	screen   *core.Screen

	stats       statsPanel
	showStats   bool
	pausedByTab bool // The stats panel paused the run and must resume it

	width, height int
	quitting      bool
}

// NewModel creates a session model.
func NewModel(opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = max(opts.Game.TickRate, 1)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Images == nil {
		opts.Images = render.SpriteMap{}
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: NewScreenRenderer(opts.Renderer),
		prompt:   newNicknamePrompt(opts.SuggestedNickname),
		ticker:   NewTeaTicker(opts.Runtime.TickRate),
		width:    opts.Runtime.ScreenW,
		height:   opts.Runtime.ScreenH,
	}
	m.screen = core.NewScreen(m.width, m.canvasRows())

	if name, err := ValidateNickname(opts.Nickname); err == nil {
		m.beginSession(name)
	}
	return m
}

// Init starts the first tick when the run is already live.
func (m Model) Init() tea.Cmd {
	if m.stage == stageNickname {
		return textinput.Blink
	}
	return m.ticker.Cmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		m.ticker.Handle(msg)
		return m, m.ticker.Cmd()

	case tea.KeyMsg:
		if m.stage == stageNickname {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.stage == stageNickname {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		name, ok := m.prompt.submit()
		if !ok {
			return m, nil
		}
		m.beginSession(name)
		return m, m.ticker.Cmd()
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.update(msg)
	return m, cmd
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionStats:
		m.toggleStats()
		return m, m.ticker.Cmd()
	}

	if m.showStats {
		if msg.Type == tea.KeyEsc {
			m.toggleStats()
			return m, m.ticker.Cmd()
		}
		var cmd tea.Cmd
		m.stats, cmd = m.stats.update(msg)
		return m, cmd
	}

	in := core.NewInputFrame()
	in.Push(action)
	m.ctrl.HandleInput(in)
	return m, m.ticker.Cmd()
}

// toggleStats opens or closes the stats panel. Opening pauses a live run;
// closing resumes it only if the panel was what paused it.
func (m *Model) toggleStats() {
	if m.showStats {
		m.showStats = false
		if m.pausedByTab {
			m.ctrl.Resume()
		}
		m.pausedByTab = false
		return
	}

	st := m.engine.State()
	m.pausedByTab = st.Running && !st.Paused
	if m.pausedByTab {
		m.ctrl.Pause()
	}
	m.stats = loadStatsPanel(m.opts.Store, m.nickname, m.height)
	if m.stats.err != nil {
		m.opts.Logger.Warn("failed to load stats", "nickname", m.nickname, "err", m.stats.err)
	}
	m.showStats = true
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.width, m.canvasRows())
	if m.ctrl != nil {
		m.ctrl.Resize(m.viewport())
	}
}

// canvasRows is the screen height left after the help line.
func (m Model) canvasRows() int {
	return max(m.height-1, 1)
}

// viewport is the simulation canvas for the current screen. The renderer
// scales it down when the terminal is smaller.
func (m Model) viewport() game.Viewport {
	w, h := render.CanvasArea(m.width, m.canvasRows())
	return game.PlayViewport(m.opts.Game, w, h)
}

// beginSession binds the player profile, builds the engine and starts the
// first run.
func (m *Model) beginSession(nickname string) {
	m.nickname = nickname
	m.stage = stagePlaying
	logger := m.opts.Logger.With("nickname", nickname)

	var stats game.StatsRecorder = game.NopStats{}
	if store := m.opts.Store; store != nil {
		if profile, err := store.Profile(nickname); err != nil {
			logger.Warn("failed to open profile, stats will not be saved", "err", err)
		} else {
			stats = profile
		}
		if err := store.SetLastNickname(nickname); err != nil {
			logger.Warn("failed to remember nickname", "err", err)
		}
	}

	seed := m.opts.Runtime.Seed
	m.engine = game.NewEngine(m.opts.Game, m.viewport(), game.Options{
		Rand:     game.NewSimpleRNG(seed),
		FXRand:   game.NewSimpleRNG(seed ^ 0x5eed),
		Stats:    stats,
		Logger:   logger,
		TickRate: m.opts.Runtime.TickRate,
	})
	m.recorder = &runRecorder{store: m.opts.Store, nickname: nickname, logger: logger}
	m.engine.Subscribe(m.recorder.onEvent)

	m.ctrl = game.NewController(m.engine, m.ticker)
	m.ctrl.Start()
	logger.Info("session started", "seed", seed, "tick_rate", m.opts.Runtime.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("cannot resolve screenshot directory", "err", err)
			return
		}
		dir = filepath.Join(home, ".lanedash", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	render.Draw(m.screen, m.engine.Snapshot(), m.opts.Images)
	path := filepath.Join(dir, fmt.Sprintf("lanedash_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("failed to save screenshot", "path", path, "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	r := m.opts.Renderer

	if m.stage == stageNickname {
		return m.prompt.view(r, m.width, m.height)
	}

	helpLine := r.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	if m.showStats {
		return m.stats.view(r, m.width, m.canvasRows()) + "\n" + helpLine
	}

	render.Draw(m.screen, m.engine.Snapshot(), m.opts.Images)
	return m.renderer.Render(m.screen) + "\n" + helpLine
}

// Nickname returns the session's player, empty before the prompt is done.
func (m Model) Nickname() string {
	return m.nickname
}

// Engine returns the session engine, nil before the prompt is done.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// runRecorder stores finished runs in the history table.
type runRecorder struct {
	store    *storage.Store
	nickname string
	logger   *log.Logger
}

func (r *runRecorder) onEvent(ev game.Event) {
	if ev.Kind != game.EventRunEnded {
		return
	}
	st := ev.State
	outcome := storage.OutcomeLost
	if st.Phase == game.PhaseWon {
		outcome = storage.OutcomeWon
	}
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRun(storage.Run{
		Nickname:   r.nickname,
		Outcome:    outcome,
		Level:      st.Level,
		TotalCoins: st.TotalCoins,
		Duration:   st.Elapsed,
		NewRecord:  st.NewRecord,
	})
	if err != nil {
		r.logger.Warn("failed to save run", "err", err)
	}
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
