package core

// Color is the foreground of a screen cell.
// The platform maps each value to an ANSI color when rendering.
type Color uint8

// Predefined cell colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorGray
)
