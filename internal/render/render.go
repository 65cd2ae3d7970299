// Package render draws game snapshots into a core.Screen. The canvas is
// scaled to fit the screen, keeping the core.CellPixelW/H cell aspect.
package render

import (
	"math"

	"github.com/vovakirdan/lane-dash/internal/assets"
	"github.com/vovakirdan/lane-dash/internal/core"
	"github.com/vovakirdan/lane-dash/internal/game"
)

// Layout: one HUD row above a bordered canvas.
const (
	HUDRows       = 1
	MinCanvasCols = 15
	MinCanvasRows = 8
)

// Images resolves sprite keys. *assets.Loader and SpriteMap satisfy it.
type Images interface {
	Image(key string) (*assets.Sprite, bool)
}

// SpriteMap adapts the map returned by assets.Loader.LoadAll.
type SpriteMap map[string]*assets.Sprite

// Image returns the sprite for key.
func (m SpriteMap) Image(key string) (*assets.Sprite, bool) {
	s, ok := m[key]
	return s, ok
}

// CanvasArea returns the pixel area available to the canvas on a screen of
// the given size, after the HUD row and the border.
func CanvasArea(cols, rows int) (w, h float64) {
	pw, ph := core.CellsToPixels(max(cols-2, 0), max(rows-HUDRows-2, 0))
	return float64(pw), float64(ph)
}

// canvas maps pixels to screen cells inside the bordered play area.
type canvas struct {
	dst    *core.Screen
	ox, oy int // Screen cell of canvas pixel (0, 0)
	cols   int
	rows   int
	pw, ph float64 // Canvas pixels per cell
	dx, dy float64 // Shake offset in pixels
}

func (c *canvas) cellX(px float64) int {
	return c.ox + int(math.Floor((px+c.dx)/c.pw))
}

func (c *canvas) cellY(py float64) int {
	return c.oy + int(math.Floor((py+c.dy)/c.ph))
}

func (c *canvas) cellSize(wPx, hPx float64) (int, int) {
	wc := max(1, int(math.Round(wPx/c.pw)))
	hc := max(1, int(math.Round(hPx/c.ph)))
	return wc, hc
}

// fitScale returns the factor applied to core.CellPixelW/H so a viewport of
// w x h pixels fits into availCols x availRows cells. Zero means nothing fits.
func fitScale(w, h float64, availCols, availRows int) float64 {
	if availCols <= 0 || availRows <= 0 || w <= 0 || h <= 0 {
		return 0
	}
	return math.Max(
		w/float64(availCols*core.CellPixelW),
		h/float64(availRows*core.CellPixelH),
	)
}

// set writes a cell, clipped to the canvas.
func (c *canvas) set(x, y int, r rune, col core.Color) {
	if x < c.ox || x >= c.ox+c.cols || y < c.oy || y >= c.oy+c.rows {
		return
	}
	c.dst.SetColored(x, y, r, col)
}

// Draw renders one frame. The snapshot is only read.
func Draw(dst *core.Screen, snap game.Snapshot, images Images) {
	dst.Clear()

	vp := snap.Viewport
	scale := fitScale(vp.Width, vp.Height, dst.Width()-2, dst.Height()-HUDRows-2)
	if scale == 0 {
		drawTooSmall(dst)
		return
	}
	pw, ph := core.CellPixelW*scale, core.CellPixelH*scale
	cols := int(vp.Width/pw + 1e-9)
	rows := int(vp.Height/ph + 1e-9)
	if cols < MinCanvasCols || rows < MinCanvasRows {
		drawTooSmall(dst)
		return
	}

	c := &canvas{
		dst:  dst,
		ox:   (dst.Width()-cols-2)/2 + 1,
		oy:   HUDRows + 1,
		cols: cols,
		rows: rows,
		pw:   pw,
		ph:   ph,
		dx:   snap.ShakeX,
		dy:   snap.ShakeY,
	}

	frame := core.NewRect(c.ox-1, c.oy-1, cols+2, rows+2)
	border := core.ColorGray
	if snap.Flash > 0.1 {
		border = core.ColorBrightRed
	}
	dst.DrawBox(frame, border)

	drawFlash(c, snap.Flash)
	drawLanes(c, vp)
	for _, o := range snap.Objects {
		drawObject(c, o, images)
	}
	drawPlayer(c, snap.Player, images)
	drawParticles(c, snap.Particles)
	drawCollects(c, snap.Collects)

	drawHUD(dst, snap, frame)
	drawOverlay(dst, snap, frame)
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y, "Please resize terminal", core.ColorGray)
}

func drawFlash(c *canvas, flash float64) {
	if flash <= 0.25 {
		return
	}
	glyph := '░'
	if flash > 0.4 {
		glyph = '▒'
	}
	for y := c.oy; y < c.oy+c.rows; y++ {
		for x := c.ox; x < c.ox+c.cols; x++ {
			c.dst.SetColored(x, y, glyph, core.ColorRed)
		}
	}
}

func drawLanes(c *canvas, vp game.Viewport) {
	for i := 1; i < vp.Lanes; i++ {
		x := c.ox + int(math.Floor(float64(i)*vp.LaneWidth/c.pw))
		for y := c.oy; y < c.oy+c.rows; y += 2 {
			if c.dst.Get(x, y) == ' ' {
				c.dst.SetColored(x, y, '┆', core.ColorDarkGray)
			}
		}
	}
}

// blit draws a sprite scaled to a pixel box centered on (cx, cy). shear
// shifts rows horizontally, top rows by the most, to suggest a tilt.
func blit(c *canvas, s *assets.Sprite, cx, cy, wPx, hPx float64, shear float64) {
	wc, hc := c.cellSize(wPx, hPx)
	left := c.cellX(cx) - wc/2
	top := c.cellY(cy) - hc/2

	for j := range hc {
		shift := int(math.Round(shear * float64(hc/2-j)))
		for i := range wc {
			r := s.At((float64(i)+0.5)/float64(wc), (float64(j)+0.5)/float64(hc))
			if r == assets.Transparent {
				continue
			}
			c.set(left+i+shift, top+j, r, s.Color)
		}
	}
}

// fillEllipse is the fallback shape for objects without a sprite.
func fillEllipse(c *canvas, cx, cy, wPx, hPx float64, glyph rune, col core.Color) {
	wc, hc := c.cellSize(wPx, hPx)
	left := c.cellX(cx) - wc/2
	top := c.cellY(cy) - hc/2

	for j := range hc {
		ny := (float64(j)+0.5)/float64(hc)*2 - 1
		for i := range wc {
			nx := (float64(i)+0.5)/float64(wc)*2 - 1
			if nx*nx+ny*ny <= 1 {
				c.set(left+i, top+j, glyph, col)
			}
		}
	}
}

// fillBlock is the fallback shape for the player.
func fillBlock(c *canvas, cx, cy, wPx, hPx float64, glyph rune, col core.Color) {
	wc, hc := c.cellSize(wPx, hPx)
	left := c.cellX(cx) - wc/2
	top := c.cellY(cy) - hc/2

	for j := range hc {
		for i := range wc {
			c.set(left+i, top+j, glyph, col)
		}
	}
}

func drawObject(c *canvas, o game.ObjectView, images Images) {
	if s, ok := images.Image(o.Sprite); ok {
		blit(c, s, o.X, o.Y, o.Size, o.Size, 0)
		return
	}
	fillEllipse(c, o.X, o.Y, o.Size, o.Size, '█', core.ColorGray)
}

// Bob amplitude in pixels.
const bobAmplitude = 3.0

func drawPlayer(c *canvas, p game.PlayerView, images Images) {
	cx := p.X + p.Size/2
	cy := p.Y + p.Size/2 + math.Sin(p.Bob)*bobAmplitude
	size := p.Size * p.Scale

	if s, ok := images.Image(p.Sprite); ok {
		blit(c, s, cx, cy, size, size, p.Rotation*5)
		return
	}
	fillBlock(c, cx, cy, size, size, '█', core.ColorBlue)
}

func drawParticles(c *canvas, particles []game.Particle) {
	for _, p := range particles {
		glyph := '·'
		switch {
		case p.Life > 0.6:
			glyph = '●'
		case p.Life > 0.3:
			glyph = '•'
		}
		c.set(c.cellX(p.X), c.cellY(p.Y), glyph, p.Color)
	}
}

func drawCollects(c *canvas, anims []game.CollectAnim) {
	for _, a := range anims {
		glyph, col := collectGlyph(a.Kind)
		if a.Alpha < 0.3 {
			glyph = '·'
		}
		c.set(c.cellX(a.X), c.cellY(a.Y), glyph, col)
	}
}

func collectGlyph(k game.ObjectKind) (rune, core.Color) {
	switch k {
	case game.KindGem:
		return '◆', core.ColorBrightCyan
	case game.KindHeart:
		return '♥', core.ColorPink
	default:
		return '$', core.ColorBrightYellow
	}
}
