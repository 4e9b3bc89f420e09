package segment

import (
	"errors"
	"fmt"
)

// ErrInvariant is wrapped by every error returned from [Plan.Validate].
var ErrInvariant = errors.New("plan invariant violated")

// Validate checks that p is a well-formed partition of [start, end]: sorted,
// contiguous, covering, with exactly one Handle, at most one Jump and no
// zero-width segments other than the Handle.
func (p Plan) Validate(start, end float32) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty plan", ErrInvariant)
	}
	if p[0].Start != start {
		return fmt.Errorf("%w: starts at %g, track starts at %g", ErrInvariant, p[0].Start, start)
	}
	if last := p[len(p)-1]; last.End != end {
		return fmt.Errorf("%w: ends at %g, track ends at %g", ErrInvariant, last.End, end)
	}
	handles, jumps := 0, 0
	for i, s := range p {
		if s.End < s.Start {
			return fmt.Errorf("%w: segment %d %v is reversed", ErrInvariant, i, s)
		}
		if s.End == s.Start && s.Kind != Handle {
			return fmt.Errorf("%w: segment %d %v has zero width", ErrInvariant, i, s)
		}
		if i > 0 && p[i-1].End != s.Start {
			return fmt.Errorf("%w: gap between %v and %v", ErrInvariant, p[i-1], s)
		}
		switch s.Kind {
		case Handle:
			handles++
		case Jump:
			jumps++
		case Empty, Filled:
		default:
			return fmt.Errorf("%w: segment %d has unknown kind %v", ErrInvariant, i, s.Kind)
		}
	}
	if handles != 1 {
		return fmt.Errorf("%w: %d handle segments", ErrInvariant, handles)
	}
	if jumps > 1 {
		return fmt.Errorf("%w: %d jump segments", ErrInvariant, jumps)
	}
	return nil
}
