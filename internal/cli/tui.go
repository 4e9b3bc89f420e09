package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/slidertrack/pkg/render/sink"
	"github.com/matzehuels/slidertrack/pkg/track"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// Model styles
var (
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorGray).Width(8)
	tuiValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	tuiHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// Defaults for the interactive model.
const (
	defaultTickInterval = time.Second / 30
	defaultValueStep    = 0.05
)

// =============================================================================
// SliderModel - Interactive slider driver
// =============================================================================

type tickMsg time.Time

// SliderModel is the bubbletea model for driving a slider from the keyboard.
// Key presses change settings through the driver; each tick recomputes the
// plan the view draws.
type SliderModel struct {
	Slider   *widget.RectangleSlider
	Driver   *widget.Driver
	Width    int
	Step     float32
	Interval time.Duration
	Quitting bool
}

// NewSliderModel creates a model for s, ticked once so the first frame has a
// plan.
func NewSliderModel(s *widget.RectangleSlider, width int) SliderModel {
	d := widget.NewDriver(s)
	d.Tick()
	if width <= 0 {
		width = sink.DefaultTerminalWidth
	}
	return SliderModel{
		Slider:   s,
		Driver:   d,
		Width:    width,
		Step:     defaultValueStep,
		Interval: defaultTickInterval,
	}
}

func (m SliderModel) tick() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m SliderModel) Init() tea.Cmd {
	return m.tick()
}

func (m SliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.Quitting {
			return m, nil
		}
		m.Driver.Tick()
		return m, m.tick()

	case tea.WindowSizeMsg:
		if w := msg.Width - 4; w > 0 && w < m.Width {
			m.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		s := m.Slider
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "left", "h":
			m.Driver.Do(func() { s.HandleValue = track.Clamp01(s.HandleValue - m.Step) })
		case "right", "l":
			m.Driver.Do(func() { s.HandleValue = track.Clamp01(s.HandleValue + m.Step) })
		case "[":
			m.Driver.Do(func() { s.JumpValue = track.Clamp01(s.JumpValue - m.Step) })
		case "]":
			m.Driver.Do(func() { s.JumpValue = track.Clamp01(s.JumpValue + m.Step) })
		case "-":
			m.Driver.Do(func() { s.ZeroValue = track.Clamp01(s.ZeroValue - m.Step) })
		case "+", "=":
			m.Driver.Do(func() { s.ZeroValue = track.Clamp01(s.ZeroValue + m.Step) })
		case "J":
			m.Driver.Do(func() { s.AllowJump = !s.AllowJump })
		case "f":
			m.Driver.Do(func() { s.FillStartingPoint = s.FillStartingPoint.Next() })
		default:
			return m, nil
		}
		m.Driver.Tick()
	}
	return m, nil
}

func (m SliderModel) View() string {
	if m.Quitting {
		return ""
	}
	s := m.Slider
	plan := s.Plan()

	var b strings.Builder
	title := "Slider"
	if s.Label != "" {
		title += " · " + s.Label
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("←/→ handle  [/] jump  -/+ zero  J jump on/off  f fill  q quit"))
	b.WriteString("\n\n  ")
	b.WriteString(sink.RenderTerminal(plan, m.Width))
	b.WriteString("\n\n")

	jump := "off"
	if s.AllowJump {
		jump = fmt.Sprintf("%.2f", s.JumpValue)
	}
	for _, kv := range [][2]string{
		{"value", fmt.Sprintf("%.2f", s.HandleValue)},
		{"zero", fmt.Sprintf("%.2f", s.ZeroValue)},
		{"jump", jump},
		{"fill", s.FillStartingPoint.String()},
		{"tick", fmt.Sprintf("%d", m.Driver.Ticks())},
	} {
		b.WriteString("  " + tuiLabelStyle.Render(kv[0]) + tuiValueStyle.Render(kv[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(planTable(plan))
	b.WriteString("\n")
	return b.String()
}
