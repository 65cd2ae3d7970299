// Package core provides renderer-neutral types and helpers shared by the
// simulation and the presentation layers. It has no external dependencies
// (especially no Bubble Tea) so the game logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// Approach moves current toward target by the given fraction of the gap.
// A factor of 0.25 closes a quarter of the remaining distance per call.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// Decay multiplies v by factor and snaps it to zero once it drops below
// threshold, so geometric decay does not leave an endless tail.
func Decay(v, factor, threshold float64) float64 {
	if v <= 0 {
		return 0
	}
	v *= factor
	if v < threshold {
		return 0
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
