// Package game implements the Lane Dash simulation: the player and falling
// objects, the spawner, collision and scoring, level progression, cosmetic
// effects and the tick loop controller. It draws nothing; presentation
// layers read Snapshots and subscribe to Events.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/config"
)

// Options configures an Engine. Zero values get sensible defaults.
type Options struct {
	Rand     RandSource    // Spawn draws
	FXRand   RandSource    // Particle and shake jitter
	Stats    StatsRecorder // Persistence collaborator
	Logger   *log.Logger
	TickRate int // Ticks per second, drives Elapsed
}

// Engine owns one session: run state, player, objects and effects.
// All methods must be called from a single goroutine.
type Engine struct {
	cfg      config.GameConfig
	vp       Viewport
	catalog  Catalog
	tickRate int

	player  *Player
	objects []*FallingObject
	spawner *Spawner
	fx      *Effects
	state   RunState

	stats  StatsRecorder
	logger *log.Logger

	subs      []subscription
	nextSubID int
}

// NewEngine creates an idle engine. Call Start to begin the first run.
func NewEngine(cfg config.GameConfig, vp Viewport, opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = NewSimpleRNG(1)
	}
	if opts.FXRand == nil {
		opts.FXRand = NewSimpleRNG(2)
	}
	if opts.Stats == nil {
		opts.Stats = NopStats{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.TickRate <= 0 {
		opts.TickRate = max(cfg.TickRate, 1)
	}

	catalog := NewCatalog(cfg.Objects)
	e := &Engine{
		cfg:      cfg,
		vp:       vp,
		catalog:  catalog,
		tickRate: opts.TickRate,
		player:   NewPlayer(vp, cfg.Player),
		objects:  make([]*FallingObject, 0, 32),
		spawner:  NewSpawner(opts.Rand, catalog, vp.Lanes),
		fx:       NewEffects(opts.FXRand),
		stats:    opts.Stats,
		logger:   opts.Logger,
	}
	e.state = RunState{
		Phase: PhaseIdle,
		Level: 1,
		Lives: cfg.Player.StartingLives,
	}
	return e
}

// Start begins the first run. It is a no-op once a run exists.
func (e *Engine) Start() {
	if e.state.Phase != PhaseIdle {
		return
	}
	e.Restart()
}

// Restart is the single restart entry point. From a level transition it
// continues into the already-advanced level, keeping level, total coins,
// lives and elapsed time. From anywhere else it resets to level 1.
func (e *Engine) Restart() {
	continued := e.state.LevelTransition

	if continued {
		e.state.LevelTransition = false
	} else {
		e.state.Level = 1
		e.state.TotalCoins = 0
		e.state.Lives = e.cfg.Player.StartingLives
		e.state.Elapsed = 0
		e.state.Ticks = 0
	}

	e.cfg.MustLevel(e.state.Level)

	e.state.Coins = 0
	e.state.NewRecord = false
	e.objects = e.objects[:0]
	e.fx.Reset()
	e.player.Reset(e.vp)

	e.state.Running = true
	e.state.Paused = false
	e.state.Phase = PhasePlaying

	e.logger.Debug("run started", "level", e.state.Level, "continued", continued)
	e.emit(Event{Kind: EventRunStarted, Level: e.state.Level, Continued: continued})
	e.emit(Event{Kind: EventCoinsChanged})
	e.emit(Event{Kind: EventLivesChanged})
	e.emit(Event{Kind: EventLevelChanged, Level: e.state.Level})
}

// Continue resumes from a level transition. It does nothing in any other
// phase.
func (e *Engine) Continue() {
	if !e.state.LevelTransition {
		return
	}
	e.Restart()
}

// Tick advances the simulation by one step: player, object pass, spawn
// roll, effects. Returns false without touching state when the run is not
// running or is paused.
func (e *Engine) Tick() bool {
	if !e.state.Running || e.state.Paused {
		return false
	}

	e.state.Ticks++
	e.state.Elapsed += 1 / float64(e.tickRate)

	e.player.Update()
	e.updateObjects()

	if e.state.Running {
		if obj, ok := e.spawner.Roll(e.level()); ok {
			e.objects = append(e.objects, obj)
		}
	}

	e.fx.Update()
	return true
}

// updateObjects moves every object and resolves bounds and collisions in
// one pass. Once the run halts, the rest are left untouched.
func (e *Engine) updateObjects() {
	kept := e.objects[:0]
	for i, obj := range e.objects {
		if !e.state.Running {
			// Level-up already cleared the list; an ended run keeps the
			// remaining objects frozen for display.
			if e.state.Phase.Ended() {
				kept = append(kept, e.objects[i:]...)
			}
			break
		}

		obj.Update()
		if obj.OutOfBounds(e.vp.Height) {
			continue
		}
		if PlayerHits(e.player, obj, e.vp) {
			e.resolve(obj)
			continue
		}
		kept = append(kept, obj)
	}

	if e.state.Phase == PhaseLevelTransition {
		clear(e.objects[:cap(e.objects)])
		e.objects = e.objects[:0]
		return
	}
	clear(e.objects[len(kept):])
	e.objects = kept
}

// resolve applies the outcome of one collision.
func (e *Engine) resolve(obj *FallingObject) {
	x, y := obj.CenterX(e.vp), obj.Y

	switch obj.Type.Kind {
	case KindObstacle:
		e.state.Lives = max(e.state.Lives-1, 0)
		e.fx.Hit(x, y)
		e.emit(Event{Kind: EventHit, Object: KindObstacle})
		e.emit(Event{Kind: EventLivesChanged})
		if e.state.Lives == 0 {
			e.finish(false)
		}

	case KindHeart:
		e.state.Lives = min(e.state.Lives+1, e.cfg.Player.StartingLives)
		e.fx.Heal(x, y)
		e.fx.Collect(x, y, obj.Type, e.vp.Width/2, CollectAnchorY)
		e.emit(Event{Kind: EventHealed, Object: KindHeart})
		e.emit(Event{Kind: EventLivesChanged})

	default:
		value := obj.Type.Value
		e.state.Coins += value
		e.state.TotalCoins += value
		if err := e.stats.AddCoins(value); err != nil {
			e.logger.Warn("failed to record coins", "delta", value, "err", err)
		}
		e.fx.Collect(x, y, obj.Type, e.vp.Width/2, CollectAnchorY)
		e.fx.CollectBurst(x, y, obj.Type.Kind)
		e.emit(Event{Kind: EventCollected, Object: obj.Type.Kind, Value: value})
		e.emit(Event{Kind: EventCoinsChanged})

		if e.state.Coins >= e.Goal() {
			e.levelUp()
		}
	}
}

// MoveLeft shifts the player one lane left. Ignored while paused or not
// running.
func (e *Engine) MoveLeft() bool {
	if !e.state.Running || e.state.Paused {
		return false
	}
	return e.player.MoveLeft(e.vp)
}

// MoveRight shifts the player one lane right. Ignored while paused or not
// running.
func (e *Engine) MoveRight() bool {
	if !e.state.Running || e.state.Paused {
		return false
	}
	return e.player.MoveRight(e.vp)
}

// TogglePause flips the pause flag. No-op unless running.
func (e *Engine) TogglePause() {
	if !e.state.Running {
		return
	}
	e.setPaused(!e.state.Paused)
}

// Pause pauses a running game.
func (e *Engine) Pause() {
	if !e.state.Running || e.state.Paused {
		return
	}
	e.setPaused(true)
}

// Resume unpauses a running game.
func (e *Engine) Resume() {
	if !e.state.Running || !e.state.Paused {
		return
	}
	e.setPaused(false)
}

func (e *Engine) setPaused(paused bool) {
	e.state.Paused = paused
	e.emit(Event{Kind: EventPauseChanged})
}

// Resize swaps in a new viewport. Objects keep their lanes; the player
// keeps its lane and snaps to the new slot.
func (e *Engine) Resize(vp Viewport) {
	if vp.Lanes != e.vp.Lanes {
		vp.Lanes = e.vp.Lanes
		vp.LaneWidth = vp.Width / float64(vp.Lanes)
	}
	e.vp = vp
	e.player.Relayout(vp)
}

// State returns a copy of the run state.
func (e *Engine) State() RunState {
	return e.state
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport {
	return e.vp
}

// Config returns the game config.
func (e *Engine) Config() config.GameConfig {
	return e.cfg
}

// Goal returns the coin goal of the current level.
func (e *Engine) Goal() int {
	return e.level().CoinsToWin
}

// ObjectCount returns the number of live objects.
func (e *Engine) ObjectCount() int {
	return len(e.objects)
}

func (e *Engine) level() config.LevelConfig {
	return e.cfg.MustLevel(e.state.Level)
}
