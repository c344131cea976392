package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements. The GreenFade ramp darkens from
// Fade1 to Fade5 and is used for trailing gradients.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBrightRed
	ColorBrightGreen
	ColorGreenFade1
	ColorGreenFade2
	ColorGreenFade3
	ColorGreenFade4
	ColorGreenFade5
)
