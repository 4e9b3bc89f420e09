package sink

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/slidertrack/pkg/segment"
)

// Theme holds the colours used by the SVG sink.
type Theme struct {
	Name       string
	Background string
	Edge       string
	Filled     string
	Empty      string
	Handle     string
	Jump       string
	Text       string
}

// Built-in themes.
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: "#ffffff",
		Edge:       "#333333",
		Filled:     "#2aa198",
		Empty:      "#d5d8dc",
		Handle:     "#1f2d3d",
		Jump:       "#e6a23c",
		Text:       "#ffffff",
	}
	ThemeDark = Theme{
		Name:       "dark",
		Background: "#1e1e1e",
		Edge:       "#bbbbbb",
		Filled:     "#4ec9b0",
		Empty:      "#3c3c3c",
		Handle:     "#e0e0e0",
		Jump:       "#ffb454",
		Text:       "#1e1e1e",
	}
)

var themes = map[string]Theme{
	ThemeLight.Name: ThemeLight,
	ThemeDark.Name:  ThemeDark,
}

// ThemeNames returns the built-in theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ParseTheme returns the built-in theme with the given name. An empty name
// selects the light theme.
func ParseTheme(name string) (Theme, error) {
	if name == "" {
		return ThemeLight, nil
	}
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

// Color returns the fill colour for a segment kind.
func (t Theme) Color(k segment.Kind) string {
	switch k {
	case segment.Filled:
		return t.Filled
	case segment.Handle:
		return t.Handle
	case segment.Jump:
		return t.Jump
	default:
		return t.Empty
	}
}
