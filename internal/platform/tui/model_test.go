package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/config"
	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
	"github.com/vovakirdan/lane-dash/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store, nickname string) Model {
	t.Helper()
	return NewModel(Options{
		Game:          config.DefaultGameConfig(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 1},
		Store:         store,
		Nickname:      nickname,
		ScreenshotDir: t.TempDir(),
	})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelPromptsForNickname(t *testing.T) {
	store := openStore(t)
	m := newTestModel(t, store, "")

	if m.Engine() != nil {
		t.Fatal("engine created before a nickname was entered")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Engine() != nil {
		t.Fatal("empty nickname accepted")
	}
	if !strings.Contains(m.View(), ErrNicknameEmpty.Error()) {
		t.Error("prompt should show the validation error")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bob")})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Nickname() != "bob" || m.Engine() == nil {
		t.Fatalf("nickname = %q, engine = %v", m.Nickname(), m.Engine())
	}
	if !m.Engine().State().Running {
		t.Error("first run should start after the prompt")
	}
	if last, _ := store.LastNickname(); last != "bob" {
		t.Errorf("last nickname = %q, expected bob", last)
	}
}

func TestModelSkipsPromptWithNickname(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	if m.Engine() == nil || m.Nickname() != "ada" {
		t.Fatal("valid nickname option should skip the prompt")
	}
	if m.Init() == nil {
		t.Error("Init should schedule the first tick")
	}
}

func TestModelTicksAdvanceEngine(t *testing.T) {
	m := newTestModel(t, nil, "ada")

	for range 30 {
		m = send(t, m, TickMsg{gen: m.ticker.gen})
	}
	if got := m.Engine().State().Ticks; got != 30 {
		t.Errorf("ticks = %d, expected 30", got)
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{gen: m.ticker.gen})
	if got := m.Engine().State().Ticks; got != 30 {
		t.Errorf("tick advanced while paused: %d", got)
	}
}

func TestModelMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	start := m.Engine().Snapshot().Player.Lane

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Engine().Snapshot().Player.Lane; got != start-1 {
		t.Errorf("lane = %d after left, expected %d", got, start-1)
	}
}

func TestStatsPanelRestoresPause(t *testing.T) {
	tab := tea.KeyMsg{Type: tea.KeyTab}

	t.Run("running run resumes", func(t *testing.T) {
		m := newTestModel(t, openStore(t), "ada")
		m = send(t, m, tab)
		if !m.showStats || !m.Engine().State().Paused {
			t.Fatal("opening stats should pause the run")
		}
		if !strings.Contains(m.View(), "PLAYER STATS") {
			t.Error("stats panel not rendered")
		}
		m = send(t, m, tab)
		if m.showStats || m.Engine().State().Paused {
			t.Error("closing stats should resume the run")
		}
	})

	t.Run("paused run stays paused", func(t *testing.T) {
		m := newTestModel(t, openStore(t), "ada")
		m = send(t, m, runeKey('p'))
		m = send(t, m, tab)
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.showStats {
			t.Fatal("esc should close the panel")
		}
		if !m.Engine().State().Paused {
			t.Error("run paused before opening stats must stay paused")
		}
	})
}

func TestStatsPanelContents(t *testing.T) {
	store := openStore(t)
	profile, _ := store.Profile("ada")
	_ = profile.IncrementTotalGames()
	_ = profile.IncrementTotalGames()
	_ = profile.IncrementWins()
	_, _ = profile.SetBestTime(61.25)

	p := loadStatsPanel(store, "ada", 40)
	got := map[string]string{}
	for _, kv := range p.statLines() {
		got[kv[0]] = kv[1]
	}

	expected := map[string]string{
		"Nickname":  "ada",
		"Best time": "1:01.25",
		"Games":     "2",
		"Wins":      "1",
		"Win rate":  "50.0%",
		"Max level": "1",
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s = %q, expected %q", k, got[k], v)
		}
	}

	empty := loadStatsPanel(nil, "ghost", 40)
	if empty.stats.BestTimeString() != "N/A" || empty.err != nil {
		t.Errorf("panel without store = %+v", empty.stats)
	}
}

func TestRunRecorderSavesFinishedRuns(t *testing.T) {
	store := openStore(t)
	rec := &runRecorder{store: store, nickname: "ada", logger: log.New(io.Discard)}

	rec.onEvent(game.Event{Kind: game.EventCoinsChanged})
	rec.onEvent(game.Event{
		Kind: game.EventRunEnded,
		State: game.RunState{
			Phase:      game.PhaseWon,
			Level:      5,
			TotalCoins: 310,
			Elapsed:    42,
			NewRecord:  true,
		},
	})

	runs, err := store.RecentRuns("ada", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Outcome != storage.OutcomeWon || r.Level != 5 || r.TotalCoins != 310 || r.Duration != 42 || !r.NewRecord {
		t.Errorf("saved run = %+v", r)
	}
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.opts.ScreenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "lanedash_") {
		t.Fatalf("screenshot files = %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(m.opts.ScreenshotDir, entries[0].Name()))
	if !strings.Contains(string(data), "Level 1/") {
		t.Error("screenshot should contain the HUD")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	before := m.Engine().Viewport()

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	after := m.Engine().Viewport()
	if after.Height <= before.Height {
		t.Errorf("viewport height %v did not grow from %v", after.Height, before.Height)
	}
	if after.Lanes != before.Lanes {
		t.Error("lane count changed on resize")
	}
}

func TestModelSmallTerminal(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	base := game.BaseViewport(m.opts.Game)
	if vp := m.Engine().Viewport(); vp != base {
		t.Errorf("viewport = %+v, expected the base canvas %+v", vp, base)
	}
	if strings.Contains(m.View(), "Window too small") {
		t.Error("80x24 should fit the scaled canvas")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil, "ada")
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
	if m.ticker.Active() {
		t.Error("ticker should stop on quit")
	}
}
