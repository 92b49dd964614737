package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// styles is indexed by color role; roles without a style render plain.
// Adjacent cells sharing a role are styled as one run to keep the number of
// escape sequences down.
func RenderScreen(s *core.Screen, styles []lipgloss.Style) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	plain := lipgloss.NewStyle()
	styleOf := func(c core.Color) lipgloss.Style {
		if int(c) < len(styles) {
			return styles[c]
		}
		return plain
	}

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			role := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleOf(role).Render(run.String()))
		}
	}
	return sb.String()
}
