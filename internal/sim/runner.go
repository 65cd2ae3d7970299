package sim

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
)

// Pilot chooses one action per tick.
type Pilot interface {
	Decide(snap game.Snapshot) core.Action
	Reset()
}

// Options configures a headless run.
type Options struct {
	Ticks       int   // Tick budget across all runs
	AutoRestart bool  // Start a new run after a win or loss
	Pilot       Pilot // Defaults to NewAutopilot()
	Logger      *log.Logger
}

// Report summarises a headless session.
type Report struct {
	Ticks         int
	Runs          int
	Wins          int
	Losses        int
	LevelsCleared int
	BestLevel     int
	Coins         int // Coins collected across all runs
	Hits          int
	Final         game.RunState
	Hash          uint64 // Hash of the final snapshot
}

// Run plays the engine with the autopilot on a FixedTicker until the tick
// budget is spent, the context is cancelled, or the run ends without
// AutoRestart. Level transitions are always continued.
func Run(ctx context.Context, engine *game.Engine, opts Options) (Report, error) {
	if opts.Pilot == nil {
		opts.Pilot = NewAutopilot()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	var rep Report
	unsubscribe := engine.Subscribe(func(ev game.Event) {
		switch ev.Kind {
		case game.EventRunStarted:
			if !ev.Continued {
				rep.Runs++
			}
			rep.BestLevel = max(rep.BestLevel, ev.Level)
		case game.EventLevelCompleted:
			rep.LevelsCleared++
		case game.EventCollected:
			rep.Coins += ev.Value
		case game.EventHit:
			rep.Hits++
		case game.EventRunEnded:
			if ev.State.Phase == game.PhaseWon {
				rep.Wins++
			} else {
				rep.Losses++
			}
			opts.Logger.Debug("run finished", "run", rep.Runs, "outcome", ev.State.Phase, "level", ev.Level, "elapsed", core.FormatTime(ev.State.Elapsed))
		}
	})
	defer unsubscribe()

	ticker := game.NewFixedTicker()
	ctrl := game.NewController(engine, ticker)
	defer ctrl.Stop()

	if engine.State().Phase == game.PhaseIdle {
		ctrl.Start()
	}

	for rep.Ticks < opts.Ticks {
		if rep.Ticks%256 == 0 {
			if err := ctx.Err(); err != nil {
				rep.Final = engine.State()
				return rep, err
			}
		}

		st := engine.State()
		if st.Paused {
			ctrl.Resume()
		}
		if !st.Running {
			switch {
			case st.LevelTransition:
				ctrl.Continue()
			case st.Phase.Ended() && opts.AutoRestart:
				opts.Pilot.Reset()
				ctrl.Restart()
			default:
				rep.finish(engine)
				return rep, nil
			}
		}

		in := core.NewInputFrame()
		in.Push(opts.Pilot.Decide(engine.Snapshot()))
		ctrl.HandleInput(in)

		ran := ticker.Advance(1)
		if ran == 0 {
			break
		}
		rep.Ticks += ran
	}

	rep.finish(engine)
	return rep, nil
}

func (r *Report) finish(engine *game.Engine) {
	snap := engine.Snapshot()
	r.Final = snap.State
	r.Hash = snap.Hash()
}
