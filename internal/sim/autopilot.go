// Package sim drives the engine without a terminal: an autopilot that
// plays by reading snapshots, and a runner that steps a fixed-rate loop.
package sim

import (
	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
)

const (
	DefaultLookahead = 260.0 // Pixels above the player the pilot looks at
	DefaultCooldown  = 6     // Ticks between two lane changes
	dangerScore      = -1000.0
	laneChangeCost   = 0.1
)

// Autopilot picks one action per tick from a snapshot. It chases coins
// and gems, takes hearts when hurt and keeps out of lanes with an
// obstacle closing in.
type Autopilot struct {
	Lookahead float64
	Cooldown  int

	wait int
}

// NewAutopilot creates a pilot with default tuning.
func NewAutopilot() *Autopilot {
	return &Autopilot{Lookahead: DefaultLookahead, Cooldown: DefaultCooldown}
}

// Decide returns the next action for the snapshot, or ActionNone.
func (a *Autopilot) Decide(snap game.Snapshot) core.Action {
	if !snap.State.Running || snap.State.Paused {
		return core.ActionNone
	}
	if a.wait > 0 {
		a.wait--
		return core.ActionNone
	}

	scores := a.laneScores(snap)
	cur := snap.Player.Lane
	if cur < 0 || cur >= len(scores) {
		return core.ActionNone
	}

	best, bestScore := cur, scores[cur]
	for lane, s := range scores {
		s -= float64(abs(lane-cur)) * laneChangeCost
		if s > bestScore {
			best, bestScore = lane, s
		}
	}

	var action core.Action
	switch {
	case best < cur && scores[cur-1] > dangerScore/2:
		action = core.ActionLeft
	case best > cur && scores[cur+1] > dangerScore/2:
		action = core.ActionRight
	default:
		return core.ActionNone
	}
	a.wait = a.Cooldown
	return action
}

// laneScores rates every lane by what is falling towards the player.
func (a *Autopilot) laneScores(snap game.Snapshot) []float64 {
	scores := make([]float64, snap.Viewport.Lanes)
	if len(scores) == 0 {
		return scores
	}

	playerTop := snap.Player.Y
	playerBottom := snap.Player.Y + snap.Player.Size
	hurt := snap.State.Lives < snap.StartingLives

	for _, o := range snap.Objects {
		if o.Lane < 0 || o.Lane >= len(scores) {
			continue
		}
		// Already below the player
		if o.Y-o.Size/2 > playerBottom {
			continue
		}
		dist := playerTop - o.Y
		if dist > a.Lookahead {
			continue
		}
		closeness := 1 / (1 + max(dist, 0)/100)

		switch o.Kind {
		case game.KindObstacle:
			if dist < a.Lookahead/2 {
				scores[o.Lane] += dangerScore
			} else {
				scores[o.Lane] -= 10 * closeness
			}
		case game.KindGem:
			scores[o.Lane] += 5 * closeness
		case game.KindCoin:
			scores[o.Lane] += closeness
		case game.KindHeart:
			if hurt {
				scores[o.Lane] += 8 * closeness
			}
		}
	}
	return scores
}

// Reset clears the lane-change cooldown.
func (a *Autopilot) Reset() {
	a.wait = 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
