package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/lane-dash/internal/config"
)

func newTestPlayer() (*Player, Viewport) {
	cfg := config.DefaultGameConfig()
	vp := BaseViewport(cfg)
	return NewPlayer(vp, cfg.Player), vp
}

func TestPlayerStartsInMiddleLane(t *testing.T) {
	p, vp := newTestPlayer()

	if p.Lane != 2 {
		t.Errorf("lane = %d, expected 2", p.Lane)
	}
	if p.X != vp.LaneSlotX(2, p.Size) || p.TargetX != p.X {
		t.Errorf("player should rest on its slot, x=%f target=%f", p.X, p.TargetX)
	}
	if want := vp.Height - 86 - 10; p.Y != want {
		t.Errorf("y = %f, expected %f", p.Y, want)
	}
}

func TestPlayerLaneClamping(t *testing.T) {
	p, vp := newTestPlayer()

	for range 10 {
		p.MoveLeft(vp)
	}
	if p.Lane != 0 {
		t.Errorf("lane = %d after moving left past the edge, expected 0", p.Lane)
	}
	if p.MoveLeft(vp) {
		t.Error("MoveLeft at the edge should report no move")
	}

	for range 10 {
		p.MoveRight(vp)
	}
	if p.Lane != vp.Lanes-1 {
		t.Errorf("lane = %d after moving right past the edge, expected %d", p.Lane, vp.Lanes-1)
	}
}

func TestPlayerGlide(t *testing.T) {
	p, vp := newTestPlayer()
	start := p.X

	p.MoveRight(vp)
	if p.TargetRotation != TiltAngle {
		t.Errorf("target rotation = %f, expected %f", p.TargetRotation, TiltAngle)
	}

	p.Update()
	gap := p.TargetX - start
	if want := start + gap*PlayerSmoothing; math.Abs(p.X-want) > 1e-9 {
		t.Errorf("x after one tick = %f, expected %f", p.X, want)
	}
	if p.Scale == 1 {
		t.Error("sprite should pulse while far from its target")
	}

	for range 60 {
		p.Update()
	}
	if math.Abs(p.TargetX-p.X) > 0.01 {
		t.Errorf("player should settle on its lane, %f from target", p.TargetX-p.X)
	}
	if p.TargetRotation != 0 {
		t.Error("tilt should relax once settled")
	}
	if p.Scale != 1 {
		t.Errorf("scale = %f once settled, expected 1", p.Scale)
	}
	if math.Abs(p.Rotation) > 0.05 {
		t.Errorf("rotation = %f, expected to ease back toward 0", p.Rotation)
	}
}

func TestPlayerRelayoutKeepsLane(t *testing.T) {
	p, vp := newTestPlayer()
	p.MoveLeft(vp)

	small := NewViewport(config.DefaultGameConfig().Canvas, 5, 200, 300)
	p.Relayout(small)

	if p.Lane != 1 {
		t.Errorf("lane = %d after relayout, expected 1", p.Lane)
	}
	if p.X != small.LaneSlotX(1, p.Size) || p.TargetX != p.X {
		t.Error("player should snap to its slot in the new viewport")
	}
}
