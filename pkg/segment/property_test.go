package segment

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomConfig(r *rand.Rand) Config {
	span := func() float32 { return (r.Float32() - 0.5) * 40 }
	value := func() float32 {
		// Mostly in range, sometimes outside to exercise clamping.
		return r.Float32()*1.4 - 0.2
	}
	size := func() float32 {
		switch r.IntN(6) {
		case 0:
			return 0
		case 1:
			return -r.Float32()
		default:
			return r.Float32() * 12
		}
	}
	return Config{
		FillRule:    FillRules[r.IntN(len(FillRules))],
		TrackStart:  span(),
		TrackEnd:    span(),
		HandleSize:  size(),
		HandleValue: value(),
		JumpEnabled: r.IntN(2) == 0,
		JumpSize:    size(),
		JumpValue:   value(),
		ZeroValue:   value(),
	}
}

func TestPlanProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	p := Planner{Strict: true}

	for i := 0; i < 5000; i++ {
		cfg := randomConfig(r)
		c := cfg.Normalized()
		plan := p.Plan(cfg)

		require.NoError(t, plan.Validate(c.TrackStart, c.TrackEnd), "config %+v plan %v", cfg, plan)

		handle, ok := plan.Find(Handle)
		require.True(t, ok)
		assert.GreaterOrEqual(t, handle.Length(), float32(0))
		length := c.TrackEnd - c.TrackStart
		if c.HandleSize <= length {
			assert.InDelta(t, c.HandleSize, handle.Length(), 1e-4, "config %+v", cfg)
		} else {
			assert.InDelta(t, length, handle.Length(), 1e-4, "config %+v", cfg)
		}

		jump, hasJump := plan.Find(Jump)
		if !c.HasJump() {
			assert.False(t, hasJump, "jump present with config %+v", cfg)
		}
		if hasJump {
			assert.True(t, jump.End <= handle.Start || jump.Start >= handle.End,
				"jump %v overlaps handle %v", jump, handle)
			assert.LessOrEqual(t, jump.Length(), c.JumpSize+1e-4)
		}

		for j := 1; j < len(plan); j++ {
			a, b := plan[j-1], plan[j]
			if a.Kind == b.Kind {
				assert.True(t, a.Kind.IsMarker(), "adjacent %v segments not merged: %v", a.Kind, plan)
			}
		}
	}
}

func TestPlanCoversTrackExactly(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 1000; i++ {
		cfg := randomConfig(r)
		c := cfg.Normalized()
		plan := Compute(cfg)

		start, end := plan.Bounds()
		assert.Equal(t, c.TrackStart, start)
		assert.Equal(t, c.TrackEnd, end)

		var total float32
		for _, s := range plan {
			total += s.Length()
		}
		assert.InDelta(t, end-start, total, 1e-3)
	}
}
