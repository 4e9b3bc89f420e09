// Package sink turns an updated slider into output artifacts.
//
// # Formats
//
//   - [RenderSVG]: the slider face (track fills, handle and jump buttons)
//   - [RenderJSON]: plan segments and element placement for external tools
//   - [RenderTerminal]: a coloured one-line bar of a segment plan
//   - [ToDOT] / [RenderTreeSVG]: the element tree with property ownership,
//     laid out by Graphviz
//
// Every sink reads the slider as left by its last TreeUpdate and never
// modifies it. SVG and JSON rendering take functional options:
//
//	svg := sink.RenderSVG(slider, sink.WithScale(30), sink.WithLabels())
//	data, err := sink.RenderJSON(slider, sink.WithJSONTheme("dark"))
package sink
