package widget

import (
	"github.com/matzehuels/slidertrack/pkg/segment"
)

// Track is the fill strip behind the buttons. It keeps its own copy of the
// latest segment plan, so it stays valid across planner calls.
type Track struct {
	Element
	SizeX          float32
	Alpha          float32
	InsetL, InsetR float32
	Segments       segment.Plan
}

// Rect is an axis-aligned rectangle in the container's local XY plane.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// Width returns the X extent.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the Y extent.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// FillRegion is one drawable piece of the track.
type FillRegion struct {
	Kind segment.Kind
	Rect Rect
}

// SetSegments replaces the track's plan with a copy of p.
func (t *Track) SetSegments(p segment.Plan) {
	t.Segments = append(t.Segments[:0], p...)
}

// FillRegions maps the Filled and Empty segments to rectangles. The track is
// narrowed by InsetL on the left and InsetR on the right; handle and jump
// segments leave gaps where the buttons sit.
func (t *Track) FillRegions() []FillRegion {
	minX := -t.SizeX/2 + t.InsetL
	maxX := t.SizeX/2 - t.InsetR
	if maxX < minX {
		mid := (minX + maxX) / 2
		minX, maxX = mid, mid
	}

	var regions []FillRegion
	for _, s := range t.Segments {
		if s.Kind.IsMarker() {
			continue
		}
		regions = append(regions, FillRegion{
			Kind: s.Kind,
			Rect: Rect{MinX: minX, MinY: s.Start, MaxX: maxX, MaxY: s.End},
		})
	}
	return regions
}
