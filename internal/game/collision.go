package game

import "github.com/vovakirdan/lane-dash/internal/core"

// Collides approximates both sprites as circles: centers closer than the
// mean of the two sizes overlap.
func Collides(px, py, psize, ox, oy, osize float64) bool {
	return core.Distance(px, py, ox, oy) < (psize+osize)/2
}

// PlayerHits reports whether the player overlaps an object.
func PlayerHits(p *Player, o *FallingObject, vp Viewport) bool {
	return Collides(p.CenterX(), p.CenterY(), p.Size, o.CenterX(vp), o.Y, o.Type.Size)
}
