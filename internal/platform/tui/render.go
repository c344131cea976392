package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zorro5300/snake-game/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. The GreenFade ramp
// uses the 256-color green column so the body darkens smoothly.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDarkGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorGreenFade1:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorGreenFade2:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorGreenFade3:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGreenFade4:  lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorGreenFade5:  lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells sharing a color are emitted as one styled run to keep
// the ANSI escape overhead down.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() && s.GetCell(x, y).Color == color {
				run.WriteRune(s.GetCell(x, y).Rune)
				x++
			}

			if style, ok := colorStyles[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
