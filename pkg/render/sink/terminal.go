package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidertrack/pkg/segment"
)

// DefaultTerminalWidth is the bar width used when RenderTerminal gets a
// non-positive width.
const DefaultTerminalWidth = 40

var (
	termStyles = map[segment.Kind]lipgloss.Style{
		segment.Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		segment.Filled: lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		segment.Handle: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		segment.Jump:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
	termGlyphs = map[segment.Kind]string{
		segment.Empty:  "░",
		segment.Filled: "█",
		segment.Handle: "┃",
		segment.Jump:   "◆",
	}
)

// RenderTerminal draws plan as a one-line bar of width cells, track start on
// the left. Each cell takes the kind of the segment under its midpoint; the
// cell holding the handle center is always drawn as the handle so a narrow
// handle never disappears.
func RenderTerminal(plan segment.Plan, width int) string {
	cells := terminalCells(plan, width)

	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		for j < len(cells) && cells[j] == cells[i] {
			j++
		}
		b.WriteString(termStyles[cells[i]].Render(strings.Repeat(termGlyphs[cells[i]], j-i)))
		i = j
	}
	return b.String()
}

func terminalCells(plan segment.Plan, width int) []segment.Kind {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	cells := make([]segment.Kind, width)
	if len(plan) == 0 {
		return cells
	}

	start, end := plan.Bounds()
	length := end - start
	if length <= 0 {
		for i := range cells {
			cells[i] = segment.Handle
		}
		return cells
	}

	step := length / float32(width)
	k := 0
	for i := range cells {
		p := start + (float32(i)+0.5)*step
		for k < len(plan)-1 && plan[k].End <= p {
			k++
		}
		cells[i] = plan[k].Kind
	}

	if h, ok := plan.Find(segment.Handle); ok {
		i := int((h.Center() - start) / step)
		cells[min(max(i, 0), width-1)] = segment.Handle
	}
	return cells
}
