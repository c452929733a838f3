package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mobhold/internal/core"
)

// cellStyles is indexed by core.Color.
var cellStyles = newCellStyles()

func newCellStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, core.NumColors)
	for i := range styles {
		styles[i] = lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string, one line per
// row. Each run of same-colored cells is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(runColor).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}
