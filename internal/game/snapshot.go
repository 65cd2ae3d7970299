package game

import "math"

// PlayerView is the read-only player state for rendering.
type PlayerView struct {
	Lane     int
	X, Y     float64 // Top-left corner
	Size     float64
	Rotation float64
	Scale    float64
	Bob      float64
	Sprite   string
}

// ObjectView is the read-only state of one falling object.
type ObjectView struct {
	ID     uint64
	Kind   ObjectKind
	Lane   int
	X, Y   float64 // Center
	Size   float64
	Sprite string
}

// Snapshot is a deep copy of everything a renderer needs for one frame.
// Mutating it never affects the engine.
type Snapshot struct {
	Viewport      Viewport
	Player        PlayerView
	Objects       []ObjectView
	Particles     []Particle
	Collects      []CollectAnim
	Shake         float64
	ShakeX        float64
	ShakeY        float64
	Flash         float64
	State         RunState
	Goal          int
	LevelCount    int
	StartingLives int
}

// Snapshot returns the current frame state.
func (e *Engine) Snapshot() Snapshot {
	objects := make([]ObjectView, len(e.objects))
	for i, o := range e.objects {
		objects[i] = ObjectView{
			ID:     o.ID,
			Kind:   o.Type.Kind,
			Lane:   o.Lane,
			X:      o.CenterX(e.vp),
			Y:      o.Y,
			Size:   o.Type.Size,
			Sprite: o.Type.Sprite,
		}
	}

	p := e.player
	return Snapshot{
		Viewport: e.vp,
		Player: PlayerView{
			Lane:     p.Lane,
			X:        p.X,
			Y:        p.Y,
			Size:     p.Size,
			Rotation: p.Rotation,
			Scale:    p.Scale,
			Bob:      p.Bob,
			Sprite:   "player",
		},
		Objects:       objects,
		Particles:     append([]Particle(nil), e.fx.Particles...),
		Collects:      append([]CollectAnim(nil), e.fx.Collects...),
		Shake:         e.fx.Shake,
		ShakeX:        e.fx.ShakeX,
		ShakeY:        e.fx.ShakeY,
		Flash:         e.fx.Flash,
		State:         e.state,
		Goal:          e.Goal(),
		LevelCount:    e.cfg.LevelCount(),
		StartingLives: e.cfg.Player.StartingLives,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	st := snap.State
	h := st.Ticks
	h = h*31 + uint64(st.Phase)         //#nosec G115 -- hash computation
	h = h*31 + uint64(st.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(st.Coins)         //#nosec G115 -- hash computation
	h = h*31 + uint64(st.TotalCoins)    //#nosec G115 -- hash computation
	h = h*31 + uint64(st.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Lane) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Player.X)
	h = h*31 + math.Float64bits(snap.Flash)
	h = h*31 + math.Float64bits(snap.Shake)

	for _, o := range snap.Objects {
		h = h*31 + o.ID
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Lane) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.Y)
	}

	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
	}

	return h
}
