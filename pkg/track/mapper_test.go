package track

import (
	"math"
	"testing"
)

func TestNewSwapsReversedBounds(t *testing.T) {
	m := New(5, -5)
	if m.Start != -5 || m.End != 5 {
		t.Errorf("New(5, -5) = %+v, want {-5 5}", m)
	}
}

func TestNewNonFinite(t *testing.T) {
	m := New(float32(math.NaN()), float32(math.Inf(1)))
	if m.Start != 0 || m.End != 0 {
		t.Errorf("New(NaN, +Inf) = %+v, want {0 0}", m)
	}
}

func TestValueToPosition(t *testing.T) {
	m := New(-5, 5)

	tests := []struct {
		name  string
		value float32
		size  float32
		want  float32
	}{
		{"min with handle", 0, 2, -4},
		{"max with handle", 1, 2, 4},
		{"middle with handle", 0.5, 2, 0},
		{"point at min", 0, 0, -5},
		{"point at max", 1, 0, 5},
		{"point quarter", 0.25, 0, -2.5},
		{"element fills track", 0.9, 10, 0},
		{"element longer than track", 0.1, 12, 0},
		{"element longer than track max", 1, 12, 0},
		{"negative size treated as point", 1, -3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ValueToPosition(tt.value, tt.size); got != tt.want {
				t.Errorf("ValueToPosition(%v, %v) = %v, want %v", tt.value, tt.size, got, tt.want)
			}
		})
	}
}

func TestValueToPositionBoundaries(t *testing.T) {
	m := New(-3, 17)
	for _, size := range []float32{0, 1, 2.5, 7, 20} {
		lo, hi := m.Range(size)
		if got := m.ValueToPosition(0, size); got != lo {
			t.Errorf("ValueToPosition(0, %v) = %v, want %v", size, got, lo)
		}
		if got := m.ValueToPosition(1, size); got != hi {
			t.Errorf("ValueToPosition(1, %v) = %v, want %v", size, got, hi)
		}
	}
}

func TestDegenerateTrack(t *testing.T) {
	m := New(2, 2)
	for _, v := range []float32{0, 0.3, 1} {
		for _, size := range []float32{0, 1} {
			if got := m.ValueToPosition(v, size); got != 2 {
				t.Errorf("ValueToPosition(%v, %v) on degenerate track = %v, want 2", v, size, got)
			}
		}
	}
	if got := m.PositionToValue(2, 0); got != 0 {
		t.Errorf("PositionToValue on degenerate track = %v, want 0", got)
	}
}

func TestRoundTrip(t *testing.T) {
	m := New(-5, 5)
	const tol = 1e-5

	for _, size := range []float32{0, 0.5, 2, 9.5, 10} {
		for i := 0; i <= 20; i++ {
			v := float32(i) / 20
			p := m.ValueToPosition(v, size)
			got := m.PositionToValue(p, size)
			if size == m.Length() {
				// Fully collapsed range: every value lands on the midpoint.
				if p != m.Mid() {
					t.Errorf("ValueToPosition(%v, %v) = %v, want midpoint", v, size, p)
				}
				continue
			}
			if math.Abs(float64(got-v)) > tol {
				t.Errorf("PositionToValue(ValueToPosition(%v, %v)) = %v", v, size, got)
			}
		}
	}
}

func TestPositionToValueNotClamped(t *testing.T) {
	m := New(-5, 5)
	if got := m.PositionToValue(8, 2); got <= 1 {
		t.Errorf("PositionToValue(8, 2) = %v, want > 1", got)
	}
	if got := m.PositionToValue(-8, 2); got >= 0 {
		t.Errorf("PositionToValue(-8, 2) = %v, want < 0", got)
	}
}

func TestInterval(t *testing.T) {
	m := New(-5, 5)

	tests := []struct {
		name       string
		value      float32
		size       float32
		start, end float32
	}{
		{"centered", 0.5, 2, -1, 1},
		{"at max", 1, 2, 3, 5},
		{"at min", 0, 2, -5, -3},
		{"oversized truncated", 0.2, 14, -5, 5},
		{"point", 0.5, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := m.Interval(tt.value, tt.size)
			if start != tt.start || end != tt.end {
				t.Errorf("Interval(%v, %v) = [%v, %v], want [%v, %v]", tt.value, tt.size, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-1, 0},
		{0, 0},
		{0.4, 0.4},
		{1, 1},
		{3, 1},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNonNegative(t *testing.T) {
	if got := NonNegative(-2); got != 0 {
		t.Errorf("NonNegative(-2) = %v, want 0", got)
	}
	if got := NonNegative(float32(math.NaN())); got != 0 {
		t.Errorf("NonNegative(NaN) = %v, want 0", got)
	}
	if got := NonNegative(3); got != 3 {
		t.Errorf("NonNegative(3) = %v, want 3", got)
	}
}
