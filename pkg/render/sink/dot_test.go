package sink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/slidertrack/pkg/widget"
)

func TestToDOT(t *testing.T) {
	s := newSlider(t, nil)
	dot := ToDOT(s, DOTOptions{})

	for _, name := range []string{"RectangleSlider", "Container", "Track", "Handle", "Jump"} {
		if !strings.Contains(dot, `label="`+name+`"`) {
			t.Errorf("ToDOT() missing node %q", name)
		}
	}
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("edge count = %d, want 4", got)
	}
	edge := `"` + s.Container.ID.String() + `" -> "` + s.Handle.ID.String() + `"`
	if !strings.Contains(dot, edge) {
		t.Errorf("ToDOT() missing edge %s", edge)
	}
	if got := strings.Count(dot, "dashed"); got != 1 {
		t.Errorf("dashed nodes = %d, want 1 (inactive jump)", got)
	}
}

func TestToDOTDetailed(t *testing.T) {
	s := newSlider(t, func(s *widget.RectangleSlider) { s.HandleValue = 1 })
	dot := ToDOT(s, DOTOptions{Detailed: true})

	wants := []string{
		`controls: Alpha, Segments, SizeX`,
		`owner: ` + s.ID.String()[:8],
		`pos: (0, 4, 0)`,
	}
	for _, want := range wants {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT(Detailed) missing %q", want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %q", got)
	}
}

func TestRenderTreeSVG(t *testing.T) {
	s := newSlider(t, nil)
	svg, err := RenderTreeSVG(context.Background(), ToDOT(s, DOTOptions{Detailed: true}))
	if err != nil {
		t.Fatalf("RenderTreeSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderTreeSVG() output is not SVG")
	}
	if !strings.Contains(string(svg), "Handle") {
		t.Error("RenderTreeSVG() output missing Handle label")
	}
}

func TestRenderTreeSVGInvalid(t *testing.T) {
	if _, err := RenderTreeSVG(context.Background(), "digraph {"); err == nil {
		t.Error("RenderTreeSVG() expected error for malformed DOT")
	}
}
