package segment

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/slidertrack/pkg/track"
)

// Compute returns a freshly allocated plan for cfg.
func Compute(cfg Config) Plan {
	var p Planner
	return p.Plan(cfg)
}

// Planner computes plans into a reusable buffer. The zero value is ready to
// use. A Planner must not be used from multiple goroutines at once.
type Planner struct {
	// Strict panics on an invariant violation instead of falling back to a
	// single Empty segment. Builds tagged segmentdebug are always strict.
	Strict bool

	// OnFallback, if set, is called with the normalized config and the
	// violated invariant whenever the fail-safe plan is returned.
	OnFallback func(cfg Config, err error)

	buf Plan
}

// Plan computes the segment partition for cfg. The returned plan aliases the
// Planner's buffer and is overwritten by the next call.
func (p *Planner) Plan(cfg Config) Plan {
	c := cfg.Normalized()
	p.buf = build(p.buf[:0], c)
	p.buf = p.finalize(p.buf, c)
	return p.buf
}

func (p *Planner) finalize(plan Plan, c Config) Plan {
	err := plan.Validate(c.TrackStart, c.TrackEnd)
	if err == nil {
		return plan
	}
	if p.Strict || strictInvariants {
		panic(fmt.Sprintf("segment: %v (config %+v, plan %v)", err, c, plan))
	}
	if p.OnFallback != nil {
		p.OnFallback(c, err)
	}
	return append(plan[:0], Segment{Kind: Empty, Start: c.TrackStart, End: c.TrackEnd})
}

// build appends the plan for the normalized config c to dst.
func build(dst Plan, c Config) Plan {
	m := track.New(c.TrackStart, c.TrackEnd)
	handle := Segment{Kind: Handle}
	handle.Start, handle.End = m.Interval(c.HandleValue, c.HandleSize)

	fill := fillInterval(m, c, handle)

	regions := [2]Segment{handle, fill}
	if fill.End > fill.Start && fill.Start < handle.Start {
		regions[0], regions[1] = fill, handle
	}

	pos := m.Start
	for _, r := range regions {
		if r.Kind != Handle && r.End <= r.Start {
			continue
		}
		if r.Start > pos {
			dst = append(dst, Segment{Kind: Empty, Start: pos, End: r.Start})
		}
		dst = append(dst, r)
		pos = r.End
	}
	if pos < m.End {
		dst = append(dst, Segment{Kind: Empty, Start: pos, End: m.End})
	}

	if !c.HasJump() {
		return dst
	}
	jump := Segment{Kind: Jump}
	jump.Start, jump.End = m.Interval(c.JumpValue, c.JumpSize)
	jump, ok := clipJump(jump, handle)
	if !ok {
		return dst
	}
	return insertJump(dst, jump)
}

// fillInterval returns the Filled region for c. A zero-width result means
// nothing is filled.
func fillInterval(m track.Mapper, c Config, handle Segment) Segment {
	fill := Segment{Kind: Filled}
	switch c.FillRule {
	case FillFromMin:
		fill.Start, fill.End = m.Start, handle.Start
	case FillFromMax:
		fill.Start, fill.End = handle.End, m.End
	default:
		zero := m.Clamp(m.ValueToPosition(c.ZeroValue, 0))
		switch {
		case zero <= handle.Start:
			fill.Start, fill.End = zero, handle.Start
		case zero >= handle.End:
			fill.Start, fill.End = handle.End, zero
		default:
			fill.Start, fill.End = handle.Start, handle.Start
		}
	}
	return fill
}

// clipJump removes the handle's extent from the jump. When the handle splits
// the jump in two, the longer side is kept, the lower side on a tie. It
// reports false if nothing of the jump remains.
func clipJump(jump, handle Segment) (Segment, bool) {
	if jump.End <= jump.Start {
		return jump, false
	}
	if jump.End <= handle.Start || jump.Start >= handle.End {
		return jump, true
	}
	var below, above float32
	if jump.Start < handle.Start {
		below = handle.Start - jump.Start
	}
	if jump.End > handle.End {
		above = jump.End - handle.End
	}
	switch {
	case below <= 0 && above <= 0:
		return jump, false
	case below >= above:
		jump.End = handle.Start
	default:
		jump.Start = handle.End
	}
	return jump, true
}

// insertJump cuts the jump's extent out of every track segment in plan and
// inserts the jump in order.
func insertJump(plan Plan, jump Segment) Plan {
	var scratch [8]Segment
	out := scratch[:0]
	for _, s := range plan {
		if s.Kind == Handle {
			out = append(out, s)
			continue
		}
		if end := min(s.End, jump.Start); end > s.Start {
			out = append(out, Segment{Kind: s.Kind, Start: s.Start, End: end})
		}
		if start := max(s.Start, jump.End); s.End > start {
			out = append(out, Segment{Kind: s.Kind, Start: start, End: s.End})
		}
	}
	out = append(out, jump)
	slices.SortStableFunc(out, func(a, b Segment) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return append(plan[:0], merge(out)...)
}

// merge joins adjacent Empty or Filled segments of the same kind in place.
func merge(plan []Segment) []Segment {
	if len(plan) < 2 {
		return plan
	}
	n := 1
	for _, s := range plan[1:] {
		last := &plan[n-1]
		if s.Kind == last.Kind && !s.Kind.IsMarker() && last.End == s.Start {
			last.End = s.End
			continue
		}
		plan[n] = s
		n++
	}
	return plan[:n]
}
