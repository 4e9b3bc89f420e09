package segment_test

import (
	"fmt"

	"github.com/matzehuels/slidertrack/pkg/segment"
)

func ExampleCompute() {
	plan := segment.Compute(segment.Config{
		FillRule:    segment.FillFromZero,
		TrackStart:  -5,
		TrackEnd:    5,
		HandleSize:  2,
		HandleValue: 1,
		ZeroValue:   0.5,
	})
	for _, s := range plan {
		fmt.Println(s)
	}
	// Output:
	// empty(-5,0)
	// filled(0,3)
	// handle(3,5)
}

func ExamplePlanner() {
	var p segment.Planner
	cfg := segment.Config{
		FillRule:    segment.FillFromMin,
		TrackStart:  -5,
		TrackEnd:    5,
		HandleSize:  2,
		HandleValue: 0.5,
		JumpEnabled: true,
		JumpSize:    1,
		JumpValue:   1,
	}
	plan := p.Plan(cfg)
	jump, _ := plan.Find(segment.Jump)
	fmt.Println(plan)
	fmt.Println("jump center:", jump.Center())
	// Output:
	// filled(-5,-1) handle(-1,1) empty(1,4) jump(4,5)
	// jump center: 4.5
}

func ExampleParseFillRule() {
	r, err := segment.ParseFillRule("from-max")
	fmt.Println(r, err)
	// Output: max <nil>
}
