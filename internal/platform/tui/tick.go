// Package tui hosts Lane Dash in a Bubble Tea program, locally or over SSH.
// It schedules engine ticks, maps keys to actions, prompts for a nickname
// and shows the player statistics panel.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. Messages from a stopped or
// restarted ticker carry an old generation and are dropped.
type TickMsg struct {
	gen uint64
}

// TeaTicker implements game.Ticker on top of tea.Tick. The model asks it
// for the next command after every update; at most one tick is in flight.
type TeaTicker struct {
	interval time.Duration
	step     func()
	active   bool
	pending  bool
	gen      uint64
}

// NewTeaTicker creates an inactive ticker firing tickRate times a second.
func NewTeaTicker(tickRate int) *TeaTicker {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TeaTicker{interval: time.Second / time.Duration(tickRate)}
}

// Start arms the ticker with a step function.
func (t *TeaTicker) Start(step func()) {
	t.step = step
	t.active = true
	t.pending = false
	t.gen++
}

// Stop disarms the ticker. A tick already scheduled is discarded on
// arrival.
func (t *TeaTicker) Stop() {
	t.active = false
	t.pending = false
	t.gen++
}

// Active reports whether the ticker is armed.
func (t *TeaTicker) Active() bool {
	return t.active
}

// Cmd schedules the next tick, or returns nil when inactive or a tick is
// already pending.
func (t *TeaTicker) Cmd() tea.Cmd {
	if !t.active || t.pending {
		return nil
	}
	t.pending = true
	gen := t.gen
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

// Handle runs the step for a tick of the current generation and reports
// whether it ran.
func (t *TeaTicker) Handle(msg TickMsg) bool {
	if msg.gen != t.gen {
		return false
	}
	t.pending = false
	if !t.active || t.step == nil {
		return false
	}
	t.step()
	return true
}
