package core

// Color is a palette index for a cell's foreground. Platforms translate it
// to whatever their terminal supports.
type Color uint8

const (
	ColorDefault Color = iota // Terminal default foreground
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorPink
	ColorOrange
	ColorGray
	ColorDarkGray
)
