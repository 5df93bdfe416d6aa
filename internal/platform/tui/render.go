package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-centipede/internal/core"
)

var plain = lipgloss.NewStyle()

// styleFor returns the lipgloss style painting c.
func styleFor(c core.Color) lipgloss.Style {
	code := c.ANSI()
	if code == "" {
		return plain
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen turns the screen buffer into styled terminal text, one
// escape sequence per run of same-colored cells. Blank runs stay unstyled.
func RenderScreen(s *core.Screen) string {
	styles := make(map[core.Color]lipgloss.Style)

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			var run strings.Builder
			blank := true
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
			}

			if blank {
				sb.WriteString(run.String())
				continue
			}
			st, ok := styles[color]
			if !ok {
				st = styleFor(color)
				styles[color] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
