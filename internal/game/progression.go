package game

// Phase is the progression state of a run.
type Phase int

const (
	PhaseIdle            Phase = iota // Nothing started yet
	PhasePlaying                      // Ticking at some level
	PhaseLevelTransition              // Level cleared, waiting for continue
	PhaseWon                          // Final level cleared
	PhaseLost                         // Out of lives
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Ended reports whether the run is over.
func (p Phase) Ended() bool {
	return p == PhaseWon || p == PhaseLost
}

// RunState is the gameplay state of a session.
type RunState struct {
	Phase      Phase
	Level      int // 1-indexed, survives level-ups
	Coins      int // Coins toward the current level goal
	TotalCoins int // Coins this session, reset only by a full restart
	Lives      int // Within [0, starting lives]

	Running         bool
	Paused          bool
	LevelTransition bool

	Elapsed   float64 // Seconds of simulated play, pauses excluded
	Ticks     uint64
	NewRecord bool // Set when a win beat the stored best time
}

// levelUp moves the run into a level transition, or reports that the
// final level was cleared.
func (e *Engine) levelUp() {
	if e.state.Level >= e.cfg.LevelCount() {
		e.finish(true)
		return
	}

	completed := e.state.Level
	next := completed + 1
	if err := e.stats.SetMaxLevel(next); err != nil {
		e.logger.Warn("failed to record max level", "level", next, "err", err)
	}

	e.state.Level = next
	e.state.Coins = 0
	e.state.Lives = min(e.state.Lives+1, e.cfg.Player.StartingLives)
	e.objects = e.objects[:0]
	e.state.LevelTransition = true
	e.state.Running = false
	e.state.Phase = PhaseLevelTransition

	e.logger.Debug("level complete", "level", completed, "next_goal", e.Goal())
	e.emit(Event{Kind: EventLevelCompleted, Level: completed})
	e.emit(Event{Kind: EventLevelChanged, Level: next})
	e.emit(Event{Kind: EventCoinsChanged})
	e.emit(Event{Kind: EventLivesChanged})
}

// finish ends the run as a win or a loss and records it.
func (e *Engine) finish(won bool) {
	e.state.Running = false
	e.state.Paused = false

	if err := e.stats.IncrementTotalGames(); err != nil {
		e.logger.Warn("failed to record game", "err", err)
	}

	if won {
		e.state.Phase = PhaseWon
		if err := e.stats.IncrementWins(); err != nil {
			e.logger.Warn("failed to record win", "err", err)
		}
		record, err := e.stats.SetBestTime(e.state.Elapsed)
		if err != nil {
			e.logger.Warn("failed to record best time", "seconds", e.state.Elapsed, "err", err)
		}
		e.state.NewRecord = record
	} else {
		e.state.Phase = PhaseLost
	}

	e.logger.Info("run ended",
		"outcome", e.state.Phase,
		"level", e.state.Level,
		"total_coins", e.state.TotalCoins,
		"elapsed", e.state.Elapsed,
		"new_record", e.state.NewRecord,
	)
	e.emit(Event{Kind: EventRunEnded, Level: e.state.Level, NewRecord: e.state.NewRecord})
}
