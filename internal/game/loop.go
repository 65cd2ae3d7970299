package game

import "github.com/vovakirdan/lane-dash/internal/core"

// Ticker schedules repeated calls to a step function.
// Stop must cancel any pending step so nothing fires afterwards.
type Ticker interface {
	Start(step func())
	Stop()
	Active() bool
}

// Controller drives an Engine with a Ticker. The ticker runs exactly while
// the engine is running and not paused.
type Controller struct {
	engine *Engine
	ticker Ticker
}

// NewController binds an engine to a ticker.
func NewController(engine *Engine, ticker Ticker) *Controller {
	return &Controller{engine: engine, ticker: ticker}
}

// Engine returns the driven engine.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// Start begins the first run.
func (c *Controller) Start() {
	c.engine.Start()
	c.sync()
}

// Restart forwards to Engine.Restart.
func (c *Controller) Restart() {
	c.engine.Restart()
	c.sync()
}

// Continue forwards to Engine.Continue.
func (c *Controller) Continue() {
	c.engine.Continue()
	c.sync()
}

// TogglePause flips pause and starts or stops the ticker to match.
func (c *Controller) TogglePause() {
	c.engine.TogglePause()
	c.sync()
}

// Pause pauses the run.
func (c *Controller) Pause() {
	c.engine.Pause()
	c.sync()
}

// Resume unpauses the run.
func (c *Controller) Resume() {
	c.engine.Resume()
	c.sync()
}

// Resize forwards a new viewport.
func (c *Controller) Resize(vp Viewport) {
	c.engine.Resize(vp)
}

// Stop halts the ticker regardless of engine state.
func (c *Controller) Stop() {
	if c.ticker.Active() {
		c.ticker.Stop()
	}
}

// HandleInput applies one frame of actions. Continue and restart both go
// through Engine.Restart and only act once the run has stopped, so a stray
// key cannot wipe a live run.
func (c *Controller) HandleInput(in core.InputFrame) {
	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			c.engine.MoveLeft()
		case core.ActionRight:
			c.engine.MoveRight()
		case core.ActionPause:
			c.TogglePause()
		case core.ActionContinue, core.ActionRestart:
			if !c.engine.State().Running {
				c.Restart()
			}
		}
	}
}

func (c *Controller) step() {
	c.engine.Tick()
	c.sync()
}

func (c *Controller) sync() {
	st := c.engine.State()
	want := st.Running && !st.Paused
	switch {
	case want && !c.ticker.Active():
		c.ticker.Start(c.step)
	case !want && c.ticker.Active():
		c.ticker.Stop()
	}
}

// FixedTicker steps manually: Advance runs up to n steps and stops early
// once the ticker is stopped. Used by tests and headless runs.
type FixedTicker struct {
	step   func()
	active bool
}

// NewFixedTicker creates an inactive manual ticker.
func NewFixedTicker() *FixedTicker {
	return &FixedTicker{}
}

// Start arms the ticker.
func (t *FixedTicker) Start(step func()) {
	t.step = step
	t.active = true
}

// Stop disarms the ticker.
func (t *FixedTicker) Stop() {
	t.active = false
}

// Active reports whether the ticker is armed.
func (t *FixedTicker) Active() bool {
	return t.active
}

// Advance runs up to n steps and returns how many ran.
func (t *FixedTicker) Advance(n int) int {
	ran := 0
	for ran < n && t.active && t.step != nil {
		t.step()
		ran++
	}
	return ran
}
