package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// DefaultScale is the number of SVG pixels per slider unit.
const DefaultScale = 20

const svgMargin = 10.0

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	labels bool
	theme  Theme
}

// WithScale sets the pixels per slider unit. Non-positive values keep
// [DefaultScale].
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithLabels draws the handle label.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithTheme sets the background, edge and segment colors. The default is
// [ThemeLight].
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// RenderSVG draws the slider face in the container's local frame: track fill
// regions, the handle and, when active, the jump button.
func RenderSVG(s *widget.RectangleSlider, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	v := viewport{
		scale:  r.scale,
		sizeX:  float64(s.SizeX),
		sizeY:  float64(s.SizeY),
		margin: svgMargin,
	}
	width, height := v.size()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n", width, height, r.theme.Background)

	alpha := clampAlpha(s.Alpha)
	fmt.Fprintf(&buf, `  <g id="slider-%s" opacity="%.2f">`+"\n", s.ID, alpha)

	for i, region := range s.Track.FillRegions() {
		x, y, w, h := v.rect(float64(region.Rect.MinX), float64(region.Rect.MinY), float64(region.Rect.MaxX), float64(region.Rect.MaxY))
		fmt.Fprintf(&buf, `    <rect id="track-%d" class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			i, region.Kind, x, y, w, h, r.theme.Color(region.Kind))
	}

	if s.Jump.Active {
		renderButton(&buf, v, r, s.Jump, segment.Jump, "")
	}
	label := ""
	if r.labels {
		label = s.Handle.Label
	}
	renderButton(&buf, v, r, s.Handle, segment.Handle, label)

	if s.ShowEdge {
		x, y, w, h := v.rect(-v.sizeX/2, -v.sizeY/2, v.sizeX/2, v.sizeY/2)
		fmt.Fprintf(&buf, `    <rect class="edge" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			x, y, w, h, r.theme.Edge)
	}

	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: DefaultScale, theme: ThemeLight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = DefaultScale
	}
	return r
}

func renderButton(buf *bytes.Buffer, v viewport, r svgRenderer, b *widget.Button, kind segment.Kind, label string) {
	cy := float64(b.LocalPosition.Y)
	halfX, halfY := float64(b.SizeX)/2, float64(b.SizeY)/2
	x, y, w, h := v.rect(-halfX, cy-halfY, halfX, cy+halfY)
	fmt.Fprintf(buf, `    <rect id="%s" class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s"/>`+"\n",
		kind, kind, x, y, w, h, r.theme.Color(kind))
	if label == "" {
		return
	}
	tx, ty := v.point(0, cy)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
		tx, ty, min(h*0.6, 14), r.theme.Text, html.EscapeString(label))
}

// viewport maps container-local coordinates (Y up, origin at the center) to
// SVG pixels (Y down, origin at the top-left corner).
type viewport struct {
	scale        float64
	sizeX, sizeY float64
	margin       float64
}

func (v viewport) size() (w, h float64) {
	return v.sizeX*v.scale + 2*v.margin, v.sizeY*v.scale + 2*v.margin
}

func (v viewport) point(x, y float64) (px, py float64) {
	return v.margin + (x+v.sizeX/2)*v.scale, v.margin + (v.sizeY/2-y)*v.scale
}

func (v viewport) rect(minX, minY, maxX, maxY float64) (x, y, w, h float64) {
	x, y = v.point(minX, maxY)
	return x, y, (maxX - minX) * v.scale, (maxY - minY) * v.scale
}

func clampAlpha(a float32) float32 {
	return min(max(a, 0), 1)
}
