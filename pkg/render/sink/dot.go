package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slidertrack/pkg/control"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// DOTOptions configures element tree diagrams.
type DOTOptions struct {
	// Detailed adds position, owned property keys and their owner to every
	// node label. When false, only the element name is shown.
	Detailed bool
}

// ToDOT converts the slider's element tree to Graphviz DOT. Inactive
// elements are drawn dashed and grey.
func ToDOT(s *widget.RectangleSlider, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	widget.Walk(s, func(n widget.Node, _ int) bool {
		e := n.Base()
		attrs := []string{fmt.Sprintf("label=%q", dotLabel(e, opts.Detailed))}
		if !e.Active {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.ID.String(), strings.Join(attrs, ", "))
		for _, c := range e.Children() {
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", e.ID.String(), c.Base().ID.String()))
		}
		return true
	})

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(e *widget.Element, detailed bool) string {
	if !detailed {
		return e.Name
	}
	p := e.LocalPosition
	parts := []string{e.Name, fmt.Sprintf("pos: (%g, %g, %g)", p.X, p.Y, p.Z)}
	keys := e.Controls().Keys()
	if len(keys) > 0 {
		owner, _ := e.Controls().Owner(keys[0])
		parts = append(parts, "owner: "+shortID(owner.String()))
		parts = append(parts, "controls: "+joinKeys(keys))
	}
	return strings.Join(parts, "\n")
}

func joinKeys(keys []control.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderTreeSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderTreeSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with a plain
// viewBox so the diagram scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
