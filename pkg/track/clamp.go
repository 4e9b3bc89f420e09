package track

import "github.com/chewxy/math32"

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	switch {
	case math32.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Finite returns v, or 0 when v is NaN or infinite.
func Finite(v float32) float32 {
	if math32.IsNaN(v) || math32.IsInf(v, 0) {
		return 0
	}
	return v
}

// NonNegative returns v when it is finite and >= 0, otherwise 0.
func NonNegative(v float32) float32 {
	v = Finite(v)
	if v < 0 {
		return 0
	}
	return v
}
