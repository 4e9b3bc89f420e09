package segment

import (
	"errors"
	"testing"
)

func TestKindText(t *testing.T) {
	for _, k := range []Kind{Empty, Filled, Handle, Jump} {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", k, err)
		}
		var got Kind
		if err := got.UnmarshalText(b); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", b, got, err, k)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Errorf("UnmarshalText(bogus) succeeded")
	}
	if got := Kind(9).String(); got != "kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}

func TestParseFillRule(t *testing.T) {
	tests := []struct {
		in      string
		want    FillRule
		wantErr bool
	}{
		{"zero", FillFromZero, false},
		{"MIN", FillFromMin, false},
		{"from-max", FillFromMax, false},
		{"FromMin", FillFromMin, false},
		{" max ", FillFromMax, false},
		{"middle", FillFromZero, true},
		{"", FillFromZero, true},
	}
	for _, tt := range tests {
		got, err := ParseFillRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFillRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFillRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFillRuleNext(t *testing.T) {
	if got := FillFromMax.Next(); got != FillFromZero {
		t.Errorf("FillFromMax.Next() = %v, want zero", got)
	}
	if got := FillFromZero.Next(); got != FillFromMin {
		t.Errorf("FillFromZero.Next() = %v, want min", got)
	}
}

func TestNormalizedUnknownFillRule(t *testing.T) {
	c := Config{FillRule: FillRule(42)}.Normalized()
	if c.FillRule != FillFromZero {
		t.Errorf("Normalized().FillRule = %v, want zero", c.FillRule)
	}
}

func TestPlanHelpers(t *testing.T) {
	p := Plan{seg(Filled, -5, -1), seg(Handle, -1, 1), seg(Empty, 1, 4), seg(Jump, 4, 5)}

	if got := p.Count(Handle); got != 1 {
		t.Errorf("Count(Handle) = %d, want 1", got)
	}
	if got := p.Total(Filled); got != 4 {
		t.Errorf("Total(Filled) = %v, want 4", got)
	}
	if s, ok := p.Find(Jump); !ok || s.Center() != 4.5 {
		t.Errorf("Find(Jump) = %v, %v", s, ok)
	}
	if _, ok := (Plan{}).Find(Handle); ok {
		t.Errorf("Find on empty plan succeeded")
	}
	if start, end := p.Bounds(); start != -5 || end != 5 {
		t.Errorf("Bounds() = %v, %v", start, end)
	}
	if Plan(nil).Clone() != nil {
		t.Errorf("Clone(nil) != nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
	}{
		{"empty", Plan{}},
		{"wrong start", Plan{seg(Handle, -4, 5)}},
		{"wrong end", Plan{seg(Handle, -5, 4)}},
		{"gap", Plan{seg(Empty, -5, -1), seg(Handle, 0, 5)}},
		{"reversed", Plan{seg(Empty, -5, 1), seg(Handle, 1, -1), seg(Empty, -1, 5)}},
		{"zero width empty", Plan{seg(Empty, -5, -5), seg(Handle, -5, 5)}},
		{"no handle", Plan{seg(Empty, -5, 5)}},
		{"two handles", Plan{seg(Handle, -5, 0), seg(Handle, 0, 5)}},
		{"two jumps", Plan{seg(Jump, -5, -4), seg(Jump, -4, 0), seg(Handle, 0, 5)}},
		{"unknown kind", Plan{seg(Kind(7), -5, 0), seg(Handle, 0, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate(-5, 5)
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("Validate() = %v, want ErrInvariant", err)
			}
		})
	}

	ok := Plan{seg(Filled, -5, -1), seg(Handle, -1, 1), seg(Empty, 1, 5)}
	if err := ok.Validate(-5, 5); err != nil {
		t.Errorf("Validate() on a good plan = %v", err)
	}
}
