// Package segment partitions a slider track into typed segments.
//
// # Overview
//
// Given a [Config] (track bounds, fill rule, handle and jump sizes and values)
// the planner produces a [Plan]: an ordered, gapless, non-overlapping list of
// [Segment] values covering exactly [TrackStart, TrackEnd]. Rendering hosts use
// the plan every update tick to size track fills and to place the handle and
// jump buttons at their segment centers.
//
//	plan := segment.Compute(segment.Config{
//	    FillRule:    segment.FillFromMin,
//	    TrackStart:  -5,
//	    TrackEnd:    5,
//	    HandleSize:  2,
//	    HandleValue: 0.5,
//	})
//	// Filled(-5,-1) Handle(-1,1) Empty(1,5)
//
// # Invariants
//
// Every plan satisfies:
//
//   - segments are sorted by Start and contiguous (seg[i].End == seg[i+1].Start)
//   - the first segment starts at TrackStart and the last ends at TrackEnd
//   - exactly one Handle segment, at most one Jump segment
//   - only the Handle may have zero width
//
// Malformed values are never rejected: reversed bounds are swapped, values are
// clamped to [0, 1], negative or non-finite sizes become 0. A broken invariant
// after planning is a bug in this package; see [Planner.Strict].
//
// # Jump Marker
//
// When the jump marker overlaps the handle, the handle wins: the jump is
// clipped to the part that does not overlap, and dropped if nothing remains.
//
// # Buffer Reuse
//
// [Compute] allocates a fresh plan per call. A [Planner] reuses its backing
// array across calls, so a plan returned by [Planner.Plan] is only valid until
// the next call on the same Planner. Use [Plan.Clone] to keep one.
package segment
