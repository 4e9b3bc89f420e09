// Package render groups the output formats for slider plans.
//
// The [sink] subpackage turns an updated [widget.RectangleSlider] into bytes:
//
//   - SVG: the track drawn as filled, empty, handle and jump rectangles
//   - JSON: plan, element tree and fill regions for tooling
//   - DOT: the element tree as Graphviz source, also rendered to SVG
//   - Terminal: a one-line bar of styled cells
//
// Sinks only read the slider. Planning happens in [segment] and is applied
// by the widget's TreeUpdate; call it before rendering.
//
//	s := widget.NewRectangleSlider()
//	s.HandleValue = 0.75
//	s.TreeUpdate()
//	svg := sink.RenderSVG(s, sink.WithScale(20))
//
// [sink]: github.com/matzehuels/slidertrack/pkg/render/sink
// [segment]: github.com/matzehuels/slidertrack/pkg/segment
// [widget.RectangleSlider]: github.com/matzehuels/slidertrack/pkg/widget.RectangleSlider
package render
