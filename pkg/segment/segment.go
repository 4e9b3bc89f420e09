package segment

import (
	"fmt"
	"strings"
)

// Kind identifies what a segment represents.
type Kind int

const (
	Empty Kind = iota
	Filled
	Handle
	Jump
)

var kindNames = [...]string{"empty", "filled", "handle", "jump"}

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsMarker reports whether k is a movable element (handle or jump) rather
// than a piece of the track fill.
func (k Kind) IsMarker() bool { return k == Handle || k == Jump }

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if strings.EqualFold(string(b), name) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown segment kind %q", b)
}

// Segment is a typed sub-interval of the track.
type Segment struct {
	Kind  Kind    `json:"kind"`
	Start float32 `json:"start"`
	End   float32 `json:"end"`
}

// Length returns the extent of the segment.
func (s Segment) Length() float32 { return s.End - s.Start }

// Center returns the midpoint of the segment.
func (s Segment) Center() float32 { return (s.Start + s.End) / 2 }

// String formats the segment as Kind(start,end).
func (s Segment) String() string {
	return fmt.Sprintf("%s(%g,%g)", s.Kind, s.Start, s.End)
}

// Plan is an ordered partition of a track.
type Plan []Segment

// Clone returns a copy of p that does not share its backing array.
func (p Plan) Clone() Plan {
	if p == nil {
		return nil
	}
	return append(Plan(nil), p...)
}

// Find returns the first segment of the given kind.
func (p Plan) Find(k Kind) (Segment, bool) {
	for _, s := range p {
		if s.Kind == k {
			return s, true
		}
	}
	return Segment{}, false
}

// Count returns the number of segments of the given kind.
func (p Plan) Count(k Kind) int {
	n := 0
	for _, s := range p {
		if s.Kind == k {
			n++
		}
	}
	return n
}

// Total returns the summed length of all segments of the given kind.
func (p Plan) Total(k Kind) float32 {
	var sum float32
	for _, s := range p {
		if s.Kind == k {
			sum += s.Length()
		}
	}
	return sum
}

// Bounds returns the covered interval. An empty plan returns (0, 0).
func (p Plan) Bounds() (start, end float32) {
	if len(p) == 0 {
		return 0, 0
	}
	return p[0].Start, p[len(p)-1].End
}

// String formats the plan as a space-separated segment list.
func (p Plan) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
