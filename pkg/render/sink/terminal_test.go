package sink

import (
	"slices"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidertrack/pkg/segment"
)

const (
	e = segment.Empty
	f = segment.Filled
	h = segment.Handle
	j = segment.Jump
)

func TestTerminalCells(t *testing.T) {
	tests := []struct {
		name  string
		plan  segment.Plan
		width int
		want  []segment.Kind
	}{
		{
			name: "centered handle",
			plan: segment.Plan{
				{Kind: e, Start: -5, End: -1},
				{Kind: h, Start: -1, End: 1},
				{Kind: e, Start: 1, End: 5},
			},
			width: 10,
			want:  []segment.Kind{e, e, e, e, h, h, e, e, e, e},
		},
		{
			name: "filled from min",
			plan: segment.Plan{
				{Kind: f, Start: 0, End: 4},
				{Kind: h, Start: 4, End: 6},
				{Kind: e, Start: 6, End: 10},
			},
			width: 5,
			want:  []segment.Kind{f, f, h, e, e},
		},
		{
			name: "narrow handle forced",
			plan: segment.Plan{
				{Kind: e, Start: 0, End: 4.9},
				{Kind: h, Start: 4.9, End: 5.1},
				{Kind: e, Start: 5.1, End: 10},
			},
			width: 4,
			want:  []segment.Kind{e, e, h, e},
		},
		{
			name: "jump",
			plan: segment.Plan{
				{Kind: j, Start: 0, End: 2},
				{Kind: e, Start: 2, End: 6},
				{Kind: h, Start: 6, End: 8},
				{Kind: e, Start: 8, End: 10},
			},
			width: 5,
			want:  []segment.Kind{j, e, e, h, e},
		},
		{
			name:  "degenerate track",
			plan:  segment.Plan{{Kind: h, Start: 0, End: 0}},
			width: 3,
			want:  []segment.Kind{h, h, h},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := terminalCells(tt.plan, tt.width)
			if !slices.Equal(got, tt.want) {
				t.Errorf("terminalCells() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalCellsDefaultWidth(t *testing.T) {
	if got := len(terminalCells(nil, 0)); got != DefaultTerminalWidth {
		t.Errorf("len(terminalCells(nil, 0)) = %d, want %d", got, DefaultTerminalWidth)
	}
}

func TestRenderTerminalWidth(t *testing.T) {
	plan := segment.Compute(segment.Config{
		FillRule:    segment.FillFromZero,
		TrackStart:  -5,
		TrackEnd:    5,
		HandleSize:  2,
		HandleValue: 0.8,
		ZeroValue:   0.5,
	})
	out := RenderTerminal(plan, 24)
	if got := lipgloss.Width(out); got != 24 {
		t.Errorf("lipgloss.Width(RenderTerminal()) = %d, want 24", got)
	}
}
