package core

// Color is the foreground color of a screen cell.
// The platform maps these to ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorWhite
	ColorBrightWhite
	ColorRed
	ColorGray
)
