package game

import (
	"math"

	"github.com/vovakirdan/lane-dash/internal/config"
)

// Spawner injects falling objects: one Bernoulli trial per tick.
type Spawner struct {
	rng     RandSource
	catalog Catalog
	lanes   int
	nextID  uint64
}

// NewSpawner creates a spawner over the given lanes.
func NewSpawner(rng RandSource, catalog Catalog, lanes int) *Spawner {
	return &Spawner{
		rng:     rng,
		catalog: catalog,
		lanes:   max(lanes, 1),
	}
}

// Roll runs the per-tick spawn trial. It creates at most one object.
func (s *Spawner) Roll(level config.LevelConfig) (*FallingObject, bool) {
	if s.rng.Float64() >= level.SpawnChance {
		return nil, false
	}
	return s.Spawn(level), true
}

// Spawn creates one object. Draw order is lane, kind, then speed.
func (s *Spawner) Spawn(level config.LevelConfig) *FallingObject {
	lane := int(math.Floor(s.rng.Float64() * float64(s.lanes)))
	lane = min(max(lane, 0), s.lanes-1)

	kind := PickKind(s.rng.Float64(), level.SpawnWeights)
	speed := level.MinSpeed + s.rng.Float64()*(level.MaxSpeed-level.MinSpeed)

	s.nextID++
	return NewFallingObject(s.nextID, lane, s.catalog.Type(kind), speed)
}

// PickKind maps a draw in [0, 1) to a kind by cumulative thresholds in the
// order coin, gem, heart. Anything left over, including float slack, is
// an obstacle. Weights are never normalized.
func PickKind(r float64, w config.SpawnWeights) ObjectKind {
	cumulative := w.Coin
	if r < cumulative {
		return KindCoin
	}
	cumulative += w.Gem
	if r < cumulative {
		return KindGem
	}
	cumulative += w.Heart
	if r < cumulative {
		return KindHeart
	}
	return KindObstacle
}
