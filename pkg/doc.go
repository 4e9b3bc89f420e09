// Package pkg provides the libraries behind slidertrack.
//
// # Overview
//
// Slidertrack models a 3D slider: a rectangular track with a handle that
// selects a value in [0, 1], an optional jump marker, and a fill that runs
// from a zero point, the track start or the track end to the handle. Each
// update splits the track into ordered segments that renderers and hosts
// draw. The packages split into three areas:
//
//  1. Geometry and planning: [track], [space], [segment]
//  2. The slider host: [widget], [control], [config]
//  3. Delivery: [pipeline], [render/sink], [server], [preset], [cache]
//
// # Architecture
//
// The data flow through a pipeline run:
//
//	config.Settings (TOML file, flags, preset or API body)
//	         ↓
//	    [widget] package (apply settings, TreeUpdate)
//	         ↓
//	    [segment] package (plan the track)
//	         ↓
//	    [render/sink] package (SVG, JSON, DOT, terminal)
//
// # Quick Start
//
//	s, _ := config.Default().NewSlider()
//	plan := s.Plan()
//	fmt.Println(plan) // empty(-5,-1) handle(-1,1) empty(1,5)
//
// Nearest-value queries map a world point to the value a pointer there
// would select:
//
//	v := s.ValueViaNearestWorldPosition(space.Vec3{Y: 2})
//
// # Supporting Packages
//
//   - [errors]: coded errors shared by the CLI and the HTTP API
//   - [observability]: hooks for plan, render, cache and HTTP events
//   - [buildinfo]: version information set at build time
package pkg
