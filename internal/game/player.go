package game

import (
	"math"

	"github.com/vovakirdan/lane-dash/internal/config"
	"github.com/vovakirdan/lane-dash/internal/core"
)

// Player motion tuning.
const (
	PlayerSmoothing = 0.25 // Fraction of the lane gap closed per tick
	RotationEasing  = 0.15 // Fraction of the tilt gap closed per tick
	TiltAngle       = 0.2  // Radians of tilt on a lane change
	SettleEpsilon   = 1.0  // Pixels from target at which the tilt relaxes
	BobSpeed        = 0.1  // Bob phase advance per tick
	PulseThreshold  = 5.0  // Pixels from target above which the sprite pulses
	PulseAmplitude  = 0.05
)

// Player is the lane-quantized sprite the user steers.
// X is the left edge; it glides toward TargetX, the slot of Lane.
type Player struct {
	Lane    int
	X       float64
	TargetX float64
	Y       float64 // Top edge, bottom-anchored
	Size    float64

	Rotation       float64
	TargetRotation float64
	Scale          float64
	Bob            float64

	bottomOffset float64
}

// NewPlayer creates a player centered in the middle lane.
func NewPlayer(vp Viewport, pc config.PlayerConfig) *Player {
	p := &Player{
		Size:         pc.Size,
		bottomOffset: pc.BottomOffset,
	}
	p.Reset(vp)
	return p
}

// Reset puts the player back in the middle lane with neutral animation.
func (p *Player) Reset(vp Viewport) {
	p.Lane = vp.Lanes / 2
	p.Rotation = 0
	p.TargetRotation = 0
	p.Scale = 1
	p.Bob = 0
	p.Relayout(vp)
}

// Relayout keeps the lane and snaps the sprite to that lane's slot in a
// new viewport.
func (p *Player) Relayout(vp Viewport) {
	p.Lane = core.Clamp(p.Lane, 0, vp.Lanes-1)
	p.X = vp.LaneSlotX(p.Lane, p.Size)
	p.TargetX = p.X
	p.Y = vp.Height - p.Size - p.bottomOffset
}

// MoveLeft shifts one lane left. Returns false at the left edge.
func (p *Player) MoveLeft(vp Viewport) bool {
	if p.Lane <= 0 {
		return false
	}
	p.Lane--
	p.TargetX = vp.LaneSlotX(p.Lane, p.Size)
	p.TargetRotation = -TiltAngle
	return true
}

// MoveRight shifts one lane right. Returns false at the right edge.
func (p *Player) MoveRight(vp Viewport) bool {
	if p.Lane >= vp.Lanes-1 {
		return false
	}
	p.Lane++
	p.TargetX = vp.LaneSlotX(p.Lane, p.Size)
	p.TargetRotation = TiltAngle
	return true
}

// Update advances the glide, tilt, bob and pulse by one tick.
func (p *Player) Update() {
	dx := p.TargetX - p.X
	p.X += dx * PlayerSmoothing
	p.Rotation = core.Approach(p.Rotation, p.TargetRotation, RotationEasing)

	if math.Abs(dx) < SettleEpsilon {
		p.TargetRotation = 0
	}

	p.Bob += BobSpeed

	if math.Abs(dx) > PulseThreshold {
		p.Scale = 1 + math.Sin(p.Bob*2)*PulseAmplitude
	} else {
		p.Scale = 1
	}
}

// CenterX returns the horizontal center of the sprite.
func (p *Player) CenterX() float64 {
	return p.X + p.Size/2
}

// CenterY returns the vertical center of the sprite.
func (p *Player) CenterY() float64 {
	return p.Y + p.Size/2
}
