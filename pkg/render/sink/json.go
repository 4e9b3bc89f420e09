package sink

import (
	"encoding/json"

	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/widget"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	theme    string
	regions  bool
	compact  bool
	settings any
}

// WithJSONTheme records the theme name used for companion SVG output.
func WithJSONTheme(name string) JSONOption { return func(r *jsonRenderer) { r.theme = name } }

// WithJSONRegions includes the track fill rectangles.
func WithJSONRegions() JSONOption { return func(r *jsonRenderer) { r.regions = true } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONSettings embeds the settings the slider was built from, enabling
// round-trip rendering.
func WithJSONSettings(s any) JSONOption { return func(r *jsonRenderer) { r.settings = s } }

type jsonOutput struct {
	ID       string        `json:"id"`
	SizeX    float32       `json:"size_x"`
	SizeY    float32       `json:"size_y"`
	Fill     string        `json:"fill"`
	Anchor   string        `json:"anchor"`
	Values   jsonValues    `json:"values"`
	Theme    string        `json:"theme,omitempty"`
	Segments []jsonSegment `json:"segments"`
	Elements []jsonElement `json:"elements"`
	Regions  []jsonRegion  `json:"regions,omitempty"`
	Settings any           `json:"settings,omitempty"`
}

type jsonValues struct {
	Handle    float32 `json:"handle"`
	Jump      float32 `json:"jump"`
	Zero      float32 `json:"zero"`
	AllowJump bool    `json:"allow_jump"`
}

type jsonSegment struct {
	Kind   segment.Kind `json:"kind"`
	Start  float32      `json:"start"`
	End    float32      `json:"end"`
	Center float32      `json:"center"`
}

type jsonElement struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Parent string    `json:"parent,omitempty"`
	X      float32   `json:"x"`
	Y      float32   `json:"y"`
	Z      float32   `json:"z"`
	Active bool      `json:"active"`
	Owned  []string  `json:"owned,omitempty"`
	Size   *jsonSize `json:"size,omitempty"`
}

type jsonSize struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

type jsonRegion struct {
	Kind segment.Kind `json:"kind"`
	MinX float32      `json:"min_x"`
	MinY float32      `json:"min_y"`
	MaxX float32      `json:"max_x"`
	MaxY float32      `json:"max_y"`
}

// RenderJSON exports the slider's plan and element placement as JSON. It does
// not modify the slider.
func RenderJSON(s *widget.RectangleSlider, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ID:     s.ID.String(),
		SizeX:  s.SizeX,
		SizeY:  s.SizeY,
		Fill:   s.FillStartingPoint.String(),
		Anchor: s.Anchor.String(),
		Values: jsonValues{
			Handle:    s.HandleValue,
			Jump:      s.JumpValue,
			Zero:      s.ZeroValue,
			AllowJump: s.AllowJump,
		},
		Theme:    r.theme,
		Segments: buildJSONSegments(s.Plan()),
		Elements: buildJSONElements(s),
		Settings: r.settings,
	}
	if r.regions {
		out.Regions = buildJSONRegions(s.Track)
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONSegments(p segment.Plan) []jsonSegment {
	segs := make([]jsonSegment, 0, len(p))
	for _, s := range p {
		segs = append(segs, jsonSegment{Kind: s.Kind, Start: s.Start, End: s.End, Center: s.Center()})
	}
	return segs
}

func buildJSONElements(s *widget.RectangleSlider) []jsonElement {
	var elems []jsonElement
	parents := map[string]string{}
	widget.Walk(s, func(n widget.Node, _ int) bool {
		e := n.Base()
		for _, c := range e.Children() {
			parents[c.Base().ID.String()] = e.ID.String()
		}
		var owned []string
		for _, k := range e.Controls().Keys() {
			owned = append(owned, string(k))
		}
		je := jsonElement{
			ID:     e.ID.String(),
			Name:   e.Name,
			Parent: parents[e.ID.String()],
			X:      e.LocalPosition.X,
			Y:      e.LocalPosition.Y,
			Z:      e.LocalPosition.Z,
			Active: e.Active,
			Owned:  owned,
		}
		if b, ok := n.(*widget.Button); ok {
			je.Size = &jsonSize{X: b.SizeX, Y: b.SizeY}
		}
		elems = append(elems, je)
		return true
	})
	return elems
}

func buildJSONRegions(t *widget.Track) []jsonRegion {
	regions := t.FillRegions()
	out := make([]jsonRegion, 0, len(regions))
	for _, fr := range regions {
		out = append(out, jsonRegion{
			Kind: fr.Kind,
			MinX: fr.Rect.MinX,
			MinY: fr.Rect.MinY,
			MaxX: fr.Rect.MaxX,
			MaxY: fr.Rect.MaxY,
		})
	}
	return out
}
