package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// ansiColors holds the terminal palette index for each core.Color.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildStyles()

func buildStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range ansiColors {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	// The ball and the player should stand out on any theme
	styles[core.ColorBrightWhite] = styles[core.ColorBrightWhite].Bold(true)
	styles[core.ColorBrightYellow] = styles[core.ColorBrightYellow].Bold(true)
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		start := 0
		for start < s.Width() {
			color := s.GetCell(start, y).Color
			run.Reset()
			end := start
			for end < s.Width() {
				cell := s.GetCell(end, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				end++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
			start = end
		}
	}
	return sb.String()
}
