package game

import (
	"math"

	"github.com/vovakirdan/lane-dash/internal/config"
)

// Viewport holds the canvas metrics derived from the host size.
// It is recomputed on resize; the config it came from is never touched.
type Viewport struct {
	Width     float64 // Canvas width in pixels
	Height    float64 // Canvas height in pixels
	Lanes     int
	LaneWidth float64
}

// NewViewport fits the canvas into the available area: full available
// height first, width from the aspect ratio, shrinking to the available
// width when that overflows. Non-positive areas fall back to the base
// canvas size.
func NewViewport(canvas config.CanvasConfig, lanes int, availW, availH float64) Viewport {
	if availW <= 0 || availH <= 0 {
		availW, availH = canvas.BaseWidth, canvas.BaseHeight
	}
	aspect := canvas.AspectRatio
	if aspect <= 0 {
		aspect = canvas.BaseWidth / canvas.BaseHeight
	}

	h := availH
	w := h * aspect
	if w > availW {
		w = availW
		h = w / aspect
	}

	lanes = max(lanes, 1)
	// The epsilon keeps 600 * 2/3 from flooring to 399
	vp := Viewport{
		Width:  math.Floor(w + 1e-9),
		Height: math.Floor(h + 1e-9),
		Lanes:  lanes,
	}
	vp.LaneWidth = vp.Width / float64(lanes)
	return vp
}

// BaseViewport returns the unfitted canvas from the config.
func BaseViewport(cfg config.GameConfig) Viewport {
	return NewViewport(cfg.Canvas, cfg.Lanes.Count, cfg.Canvas.BaseWidth, cfg.Canvas.BaseHeight)
}

// PlayViewport fits the canvas like NewViewport but never below the base
// canvas. Sprite sizes are fixed in pixels, so a lane narrower than the base
// would let sprites in neighbouring lanes overlap.
func PlayViewport(cfg config.GameConfig, availW, availH float64) Viewport {
	vp := NewViewport(cfg.Canvas, cfg.Lanes.Count, availW, availH)
	if vp.Width < cfg.Canvas.BaseWidth || vp.Height < cfg.Canvas.BaseHeight {
		return BaseViewport(cfg)
	}
	return vp
}

// LaneCenterX returns the horizontal center of a lane.
func (v Viewport) LaneCenterX(lane int) float64 {
	return float64(lane)*v.LaneWidth + v.LaneWidth/2
}

// LaneSlotX returns the left edge that centers a sprite of the given size
// in a lane.
func (v Viewport) LaneSlotX(lane int, size float64) float64 {
	return float64(lane)*v.LaneWidth + (v.LaneWidth-size)/2
}

// LaneAt returns the lane containing pixel x, clamped to the lane range.
func (v Viewport) LaneAt(x float64) int {
	if v.LaneWidth <= 0 {
		return 0
	}
	lane := int(math.Floor(x / v.LaneWidth))
	return min(max(lane, 0), v.Lanes-1)
}
