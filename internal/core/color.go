package core

// Color represents a foreground color for a screen cell.
// Maps to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the simulation views.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorRed
	ColorBrightRed
	ColorCyan
	ColorGray
	ColorWhite
)
