package core

// RuntimeConfig describes the host a run is played on.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means seed from the clock
}

// Terminal cells are roughly twice as tall as they are wide. The renderer
// maps canvas pixels to cells with these metrics.
const (
	CellPixelW = 8
	CellPixelH = 16
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// CellsToPixels converts a cell area to the pixel area available to the
// game canvas.
func CellsToPixels(cols, rows int) (w, h int) {
	return cols * CellPixelW, rows * CellPixelH
}
