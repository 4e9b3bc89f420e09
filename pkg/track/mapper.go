// Package track maps between normalized slider values and positions on a 1D
// track axis.
//
// # Effective Range
//
// An element of size s (a handle or jump button) moving along the track
// [Start, End] keeps its center inside the effective range
// [Start + s/2, End - s/2], so the element never hangs over the track ends.
// When the element is longer than the track, the range collapses to the track
// midpoint and the element is treated as fixed and centered.
//
//	m := track.New(-5, 5)
//	m.ValueToPosition(0, 2)   // -4
//	m.ValueToPosition(1, 2)   //  4
//	m.PositionToValue(0, 2)   //  0.5
//
// [Mapper.PositionToValue] is the exact inverse and is deliberately not
// clamped: a touch point past the end of the track maps to a value outside
// [0, 1], which tells callers how far past the end it is. Clamp with [Clamp01]
// when a valid slider value is needed.
//
// The package also provides the interaction-side queries ([NearestValue] and
// friends) that project 3D points onto the track's rectangle.
package track

import "github.com/chewxy/math32"

// Mapper converts between normalized values and absolute track positions.
// The zero Mapper is a degenerate track at 0.
type Mapper struct {
	Start, End float32
}

// New returns a Mapper for the track [start, end]. Reversed bounds are swapped
// and non-finite bounds are treated as 0.
func New(start, end float32) Mapper {
	start, end = Finite(start), Finite(end)
	if end < start {
		start, end = end, start
	}
	return Mapper{Start: start, End: end}
}

// Length returns the track length.
func (m Mapper) Length() float32 { return m.End - m.Start }

// Mid returns the track midpoint.
func (m Mapper) Mid() float32 { return (m.Start + m.End) / 2 }

// Range returns the effective center range for an element of the given size.
// Negative sizes are treated as 0.
func (m Mapper) Range(size float32) (lo, hi float32) {
	size = math32.Max(size, 0)
	if size > m.Length() {
		mid := m.Mid()
		return mid, mid
	}
	half := size / 2
	return m.Start + half, m.End - half
}

// ValueToPosition returns the center position of an element of the given size
// at normalized value v. Values are interpolated linearly, not clamped.
func (m Mapper) ValueToPosition(v, size float32) float32 {
	lo, hi := m.Range(size)
	if lo == hi {
		return lo
	}
	return lo*(1-v) + hi*v
}

// PositionToValue returns the normalized value that places the center of an
// element of the given size at p. The result is not clamped. A collapsed range
// yields 0.
func (m Mapper) PositionToValue(p, size float32) float32 {
	lo, hi := m.Range(size)
	if lo == hi {
		return 0
	}
	return (p - lo) / (hi - lo)
}

// Interval returns the extent of an element of the given size centered at
// value v, clamped to the track.
func (m Mapper) Interval(v, size float32) (start, end float32) {
	size = math32.Max(size, 0)
	center := m.ValueToPosition(v, size)
	half := size / 2
	return m.Clamp(center - half), m.Clamp(center + half)
}

// Clamp limits p to the track bounds.
func (m Mapper) Clamp(p float32) float32 {
	return math32.Min(math32.Max(p, m.Start), m.End)
}
