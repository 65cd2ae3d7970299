package game

import (
	"testing"

	"github.com/vovakirdan/lane-dash/internal/config"
)

func runScripted(seed int64, ticks int) Snapshot {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, BaseViewport(cfg), Options{Rand: NewSimpleRNG(seed), FXRand: NewSimpleRNG(seed + 1)})
	e.Start()

	for i := range ticks {
		switch {
		case i%37 == 0:
			e.MoveLeft()
		case i%23 == 0:
			e.MoveRight()
		}
		e.Tick()
		if e.State().Phase == PhaseLevelTransition {
			e.Continue()
		}
	}
	return e.Snapshot()
}

func TestGameDeterminism(t *testing.T) {
	snap1 := runScripted(12345, 3000)
	snap2 := runScripted(12345, 3000)

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.State != snap2.State {
		t.Errorf("Determinism failed: states differ.\n%+v\n%+v", snap1.State, snap2.State)
	}
	if len(snap1.Objects) != len(snap2.Objects) {
		t.Errorf("Determinism failed: object counts differ. Run1=%d, Run2=%d", len(snap1.Objects), len(snap2.Objects))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	snap1 := runScripted(1, 3000)
	snap2 := runScripted(2, 3000)

	if snap1.Hash() == snap2.Hash() {
		t.Error("different seeds should produce different runs")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t, nil)
	dropOnPlayer(e, KindObstacle)
	o := NewFallingObject(7, 0, e.catalog.Type(KindCoin), 1)
	e.objects = append(e.objects, o)
	e.Tick()

	snap := e.Snapshot()
	if len(snap.Objects) != 1 || len(snap.Particles) == 0 {
		t.Fatalf("expected 1 object and hit particles, got %d/%d", len(snap.Objects), len(snap.Particles))
	}

	snap.Objects[0].Y = 9999
	snap.Particles[0].X = 9999
	snap.State.Lives = 42

	again := e.Snapshot()
	if again.Objects[0].Y == 9999 || again.Particles[0].X == 9999 || again.State.Lives == 42 {
		t.Error("mutating a snapshot leaked into the engine")
	}
	if again.Goal != 20 || again.LevelCount != 5 || again.StartingLives != 3 {
		t.Errorf("unexpected snapshot metadata: goal=%d levels=%d lives=%d", again.Goal, again.LevelCount, again.StartingLives)
	}
}
