package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-hopper/internal/core"
)

// styleFor builds the lipgloss style of a cell style.
func styleFor(st core.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg := st.FG.ANSI(); fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg := st.BG.ANSI(); bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a style are emitted as one run.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Style]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
