package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilesnake/internal/core"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// styleFor returns the foreground style for a palette color.
// ColorNone keeps the terminal's default colors.
func styleFor(c core.Color, cache map[core.Color]lipgloss.Style) lipgloss.Style {
	if c == core.ColorNone {
		return lipgloss.NewStyle()
	}
	if style, ok := cache[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	cache[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := make(map[core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor, styles).Render(run.String()))
		}
	}
	return sb.String()
}
