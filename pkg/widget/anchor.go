package widget

import (
	"fmt"
	"strings"
)

// Anchor selects which point of the slider sits at its origin.
type Anchor int

const (
	AnchorUpperLeft Anchor = iota
	AnchorUpperCenter
	AnchorUpperRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorLowerLeft
	AnchorLowerCenter
	AnchorLowerRight
	// AnchorCustom leaves the container where it was placed by hand.
	AnchorCustom
)

var anchorNames = [...]string{
	"upper-left", "upper-center", "upper-right",
	"middle-left", "middle-center", "middle-right",
	"lower-left", "lower-center", "lower-right",
	"custom",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor parses names like "upper-left" or "MiddleCenter".
func ParseAnchor(s string) (Anchor, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for i, n := range anchorNames {
		if norm == strings.ReplaceAll(n, "-", "") {
			return Anchor(i), nil
		}
	}
	return AnchorMiddleCenter, fmt.Errorf("unknown anchor %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Anchor) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(anchorNames) {
		return nil, fmt.Errorf("invalid anchor %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Anchor) UnmarshalText(b []byte) error {
	v, err := ParseAnchor(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// RelativePosition returns the offset, as a fraction of the widget size, that
// moves the anchor point onto the origin. Upper-left gives (0.5, -0.5): the
// widget shifts right and down. Custom returns (0, 0).
func (a Anchor) RelativePosition() (x, y float32) {
	if a < AnchorUpperLeft || a > AnchorLowerRight {
		return 0, 0
	}
	i := int(a)
	x = float32(i%3)/2 - 0.5
	y = float32(i/3)/2 - 0.5
	return -x, y
}
