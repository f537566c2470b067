package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-attackers/internal/core"
)

// run is a horizontal stretch of cells sharing both colours.
type run struct {
	fg, bg core.Color
	text   string
}

// rowRuns splits row y into runs of equal colour.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	var sb strings.Builder
	x := 0
	for x < s.Width() {
		start := s.GetCell(x, y)
		sb.Reset()
		for x < s.Width() {
			c := s.GetCell(x, y)
			if c.FG != start.FG || c.BG != start.BG {
				break
			}
			sb.WriteRune(c.Rune)
			x++
		}
		runs = append(runs, run{fg: start.FG, bg: start.BG, text: sb.String()})
	}
	return runs
}

// styleFor returns the style of a run. Default colours leave the
// terminal's own colours in place.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if !fg.IsDefault() {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colours share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			if r.fg.IsDefault() && r.bg.IsDefault() {
				sb.WriteString(r.text)
				continue
			}
			sb.WriteString(styleFor(r.fg, r.bg).Render(r.text))
		}
	}
	return sb.String()
}
