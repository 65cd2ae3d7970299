package game

import (
	"math"

	"github.com/vovakirdan/lane-dash/internal/core"
)

// Effect tuning. Values are per tick.
const (
	ParticleGravity   = 0.2
	ParticleDecay     = 0.02
	CollectEasing     = 0.1
	CollectDecay      = 0.015
	CollectAnchorY    = 30.0
	FeedbackDecay     = 0.9
	ShakeCutoff       = 0.5
	FlashCutoff       = 0.01
	HitShake          = 15.0
	HitFlash          = 0.5
	collectBurstCount = 8
	hitBurstCount     = 12
	healBurstCount    = 10
)

// Particle is a short-lived dot thrown by a pickup or hit.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at birth, removed at 0
	Size   float64
	Color  core.Color
}

// CollectAnim is a picked-up sprite flying toward the stats anchor.
type CollectAnim struct {
	X, Y             float64
	TargetX, TargetY float64
	Life             float64
	Alpha            float64
	Scale            float64
	Kind             ObjectKind
	Size             float64
}

// Effects holds the cosmetic feedback state. Nothing in here feeds back
// into gameplay.
type Effects struct {
	Particles []Particle
	Collects  []CollectAnim
	Shake     float64
	Flash     float64
	ShakeX    float64 // Current shake offset, rolled each tick
	ShakeY    float64

	rng RandSource
}

// NewEffects creates an empty effects state drawing jitter from rng.
func NewEffects(rng RandSource) *Effects {
	return &Effects{
		Particles: make([]Particle, 0, 64),
		Collects:  make([]CollectAnim, 0, 8),
		rng:       rng,
	}
}

// Reset drops all effects.
func (fx *Effects) Reset() {
	fx.Particles = fx.Particles[:0]
	fx.Collects = fx.Collects[:0]
	fx.Shake, fx.Flash = 0, 0
	fx.ShakeX, fx.ShakeY = 0, 0
}

// Hit starts the obstacle feedback: shake, red flash and a random burst.
func (fx *Effects) Hit(x, y float64) {
	fx.Shake = HitShake
	fx.Flash = HitFlash
	for range hitBurstCount {
		angle := fx.rng.Float64() * math.Pi * 2
		speedX := fx.rng.Float64()*4 + 2
		speedY := fx.rng.Float64()*4 + 2
		fx.Particles = append(fx.Particles, Particle{
			X: x, Y: y,
			VX:    math.Cos(angle) * speedX,
			VY:    math.Sin(angle) * speedY,
			Life:  1,
			Size:  fx.rng.Float64()*6 + 3,
			Color: core.ColorBrightRed,
		})
	}
}

// Heal throws a ring of pink particles with a slight upward bias.
func (fx *Effects) Heal(x, y float64) {
	for i := range healBurstCount {
		angle := math.Pi * 2 * float64(i) / healBurstCount
		fx.Particles = append(fx.Particles, Particle{
			X: x, Y: y,
			VX:    math.Cos(angle) * 2,
			VY:    math.Sin(angle)*2 - 1,
			Life:  1,
			Size:  fx.rng.Float64()*5 + 2,
			Color: core.ColorPink,
		})
	}
}

// CollectBurst throws a ring of particles colored by kind.
func (fx *Effects) CollectBurst(x, y float64, kind ObjectKind) {
	color := core.ColorBrightYellow
	if kind == KindGem {
		color = core.ColorBrightCyan
	}
	for i := range collectBurstCount {
		angle := math.Pi * 2 * float64(i) / collectBurstCount
		fx.Particles = append(fx.Particles, Particle{
			X: x, Y: y,
			VX:    math.Cos(angle) * 3,
			VY:    math.Sin(angle) * 3,
			Life:  1,
			Size:  fx.rng.Float64()*4 + 2,
			Color: color,
		})
	}
}

// Collect starts a pickup animation toward the anchor.
func (fx *Effects) Collect(x, y float64, t ObjectType, anchorX, anchorY float64) {
	fx.Collects = append(fx.Collects, CollectAnim{
		X: x, Y: y,
		TargetX: anchorX,
		TargetY: anchorY,
		Life:    1,
		Alpha:   1,
		Scale:   1,
		Kind:    t.Kind,
		Size:    t.Size,
	})
}

// Update advances every effect by one tick.
func (fx *Effects) Update() {
	kept := fx.Particles[:0]
	for _, p := range fx.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += ParticleGravity
		p.Life -= ParticleDecay
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	fx.Particles = kept

	anims := fx.Collects[:0]
	for _, a := range fx.Collects {
		a.X = core.Approach(a.X, a.TargetX, CollectEasing)
		a.Y = core.Approach(a.Y, a.TargetY, CollectEasing)
		a.Life -= CollectDecay
		a.Alpha = a.Life
		a.Scale = 1 + (1-a.Life)*0.5
		if a.Life > 0 {
			anims = append(anims, a)
		}
	}
	fx.Collects = anims

	fx.Shake = core.Decay(fx.Shake, FeedbackDecay, ShakeCutoff)
	fx.Flash = core.Decay(fx.Flash, FeedbackDecay, FlashCutoff)

	if fx.Shake > 0 {
		fx.ShakeX = (fx.rng.Float64() - 0.5) * fx.Shake
		fx.ShakeY = (fx.rng.Float64() - 0.5) * fx.Shake
	} else {
		fx.ShakeX, fx.ShakeY = 0, 0
	}
}

// Active reports whether anything is still animating.
func (fx *Effects) Active() bool {
	return len(fx.Particles) > 0 || len(fx.Collects) > 0 || fx.Shake > 0 || fx.Flash > 0
}
