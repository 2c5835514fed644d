package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the board and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Semantic aliases for board elements.
const (
	ColorHidden   = ColorGray
	ColorRevealed = ColorCyan
	ColorFlag     = ColorBrightYellow
	ColorBomb     = ColorBrightRed
	ColorCursor   = ColorBrightGreen
)
