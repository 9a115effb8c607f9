package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

var (
	stylesMu sync.Mutex
	styles   = map[core.Color]lipgloss.Style{}
)

// styleFor returns the lipgloss style for a cell color, building it once.
func styleFor(c core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if st, ok := styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if code := c.ANSI(); code != "" {
		st = st.Foreground(lipgloss.Color(code))
	}
	styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current && run.Len() > 0 {
				writeRun(&sb, &run, current)
			}
			current = cell.Color
			run.WriteRune(cell.Rune)
		}
		writeRun(&sb, &run, current)
	}
	return sb.String()
}

// writeRun flushes run to sb in color c and empties run.
func writeRun(sb, run *strings.Builder, c core.Color) {
	if run.Len() == 0 {
		return
	}
	if c.IsDefault() {
		sb.WriteString(run.String())
	} else {
		sb.WriteString(styleFor(c).Render(run.String()))
	}
	run.Reset()
}
