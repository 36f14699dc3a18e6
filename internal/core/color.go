package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes in the platform renderer.
type Color uint8

// Palette used by the shooter.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightRed
	ColorBrightCyan
	ColorBrightWhite
)
