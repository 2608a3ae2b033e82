package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chicken-run/internal/core"
)

// cellStyle is the color pair shared by a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// lipglossStyle converts a color pair to a lipgloss style.
func (c cellStyle) lipglossStyle() lipgloss.Style {
	style := lipgloss.NewStyle()
	if !c.fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if !c.bg.IsDefault() {
		style = style.Background(lipgloss.Color(c.bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = start.lipglossStyle()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
