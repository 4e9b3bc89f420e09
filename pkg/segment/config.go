package segment

import (
	"fmt"
	"strings"

	"github.com/matzehuels/slidertrack/pkg/track"
)

// FillRule decides which side of the handle is drawn as filled.
type FillRule int

const (
	// FillFromZero fills from the zero point to the near edge of the handle.
	FillFromZero FillRule = iota
	// FillFromMin fills from the track start to the handle.
	FillFromMin
	// FillFromMax fills from the handle to the track end.
	FillFromMax
)

var fillRuleNames = [...]string{"zero", "min", "max"}

// FillRules lists every fill rule in declaration order.
var FillRules = []FillRule{FillFromZero, FillFromMin, FillFromMax}

func (r FillRule) String() string {
	if r < 0 || int(r) >= len(fillRuleNames) {
		return fmt.Sprintf("fillrule(%d)", int(r))
	}
	return fillRuleNames[r]
}

// Next returns the rule following r, wrapping around.
func (r FillRule) Next() FillRule {
	return FillRule((int(r) + 1) % len(fillRuleNames))
}

// ParseFillRule parses "zero", "min" or "max". The "from-" prefix and case
// are ignored.
func ParseFillRule(s string) (FillRule, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(strings.TrimPrefix(name, "from-"), "from")
	for i, n := range fillRuleNames {
		if name == n {
			return FillRule(i), nil
		}
	}
	return FillFromZero, fmt.Errorf("unknown fill rule %q (want zero, min or max)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (r FillRule) MarshalText() ([]byte, error) {
	if r < 0 || int(r) >= len(fillRuleNames) {
		return nil, fmt.Errorf("invalid fill rule %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *FillRule) UnmarshalText(b []byte) error {
	v, err := ParseFillRule(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Config is the resolved input to the planner. Values are normalized to
// [0, 1]; positions and sizes are in track units.
type Config struct {
	FillRule    FillRule `json:"fill_rule"`
	TrackStart  float32  `json:"track_start"`
	TrackEnd    float32  `json:"track_end"`
	HandleSize  float32  `json:"handle_size"`
	HandleValue float32  `json:"handle_value"`
	JumpEnabled bool     `json:"jump_enabled"`
	JumpSize    float32  `json:"jump_size"`
	JumpValue   float32  `json:"jump_value"`
	ZeroValue   float32  `json:"zero_value"`
}

// Normalized returns c with reversed bounds swapped, non-finite or negative
// sizes zeroed, values clamped to [0, 1] and unknown fill rules replaced by
// FillFromZero.
func (c Config) Normalized() Config {
	m := track.New(c.TrackStart, c.TrackEnd)
	c.TrackStart, c.TrackEnd = m.Start, m.End
	c.HandleSize = track.NonNegative(c.HandleSize)
	c.JumpSize = track.NonNegative(c.JumpSize)
	c.HandleValue = track.Clamp01(c.HandleValue)
	c.JumpValue = track.Clamp01(c.JumpValue)
	c.ZeroValue = track.Clamp01(c.ZeroValue)
	if c.FillRule < 0 || int(c.FillRule) >= len(fillRuleNames) {
		c.FillRule = FillFromZero
	}
	return c
}

// HasJump reports whether the config asks for a jump segment.
func (c Config) HasJump() bool {
	return c.JumpEnabled && track.NonNegative(c.JumpSize) > 0
}
