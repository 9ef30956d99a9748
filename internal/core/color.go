package core

// Color represents a foreground color for a screen cell. Hosts map it to
// their own palette, ANSI indices in a terminal.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Pitch roles. Renderers draw these instead of naming raw colors.
const (
	ColorPitchLine    = ColorGray
	ColorTarget       = ColorGray
	ColorBall         = ColorBrightWhite
	ColorPlayer       = ColorBrightYellow
	ColorPlayerGoal   = ColorBrightBlue
	ColorOpponentGoal = ColorBrightRed
)
