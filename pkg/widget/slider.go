// Package widget builds and updates the element tree of a rectangular 3D
// slider.
//
// A [RectangleSlider] owns a container, a fill [Track] and two [Button]
// elements (the handle and the jump marker). The tree is built once by
// [NewRectangleSlider]; every update tick [RectangleSlider.TreeUpdate]
// re-reads the slider's settings, asks the segment planner for a fresh plan
// and pushes sizes, positions and visibility down to the children. A [Driver]
// calls TreeUpdate on a fixed interval.
//
// The track runs along the container's local Y axis over [-SizeY/2, SizeY/2].
package widget

import (
	"github.com/google/uuid"

	"github.com/matzehuels/slidertrack/pkg/control"
	"github.com/matzehuels/slidertrack/pkg/segment"
	"github.com/matzehuels/slidertrack/pkg/space"
	"github.com/matzehuels/slidertrack/pkg/track"
)

// Child sizes fixed at build time.
const (
	DefaultHandleSizeY = 2
	DefaultJumpSizeY   = 1
	DefaultTrackInset  = 1
)

// RectangleSlider is a slider widget. The exported fields are its settings;
// TreeUpdate applies them to the children. A slider is not safe for
// concurrent use.
type RectangleSlider struct {
	Element

	SizeX, SizeY      float32
	Alpha             float32
	ZeroValue         float32
	HandleValue       float32
	JumpValue         float32
	AllowJump         bool
	FillStartingPoint segment.FillRule
	Anchor            Anchor
	Label             string
	HighlightProgress float32
	SelectionProgress float32
	ShowEdge          bool

	// Frame places the slider in world space.
	Frame space.Frame

	// Controller, if set, owns the slider's own settings in its control
	// table. Other writers should check Controls().CanWrite first.
	Controller uuid.UUID

	Container *Element
	Track     *Track
	Handle    *Button
	Jump      *Button

	planner segment.Planner
	plan    segment.Plan
}

// NewRectangleSlider builds the element tree with default settings.
func NewRectangleSlider() *RectangleSlider {
	s := &RectangleSlider{
		Element:     newElement("RectangleSlider"),
		SizeX:       10,
		SizeY:       10,
		Alpha:       1,
		ZeroValue:   0.5,
		HandleValue: 0.5,
		Anchor:      AnchorMiddleCenter,
		Frame:       space.Identity(),
	}

	container := newElement("Container")
	s.Container = &container

	s.Track = &Track{
		Element: newElement("Track"),
		InsetL:  DefaultTrackInset,
		InsetR:  DefaultTrackInset,
	}
	s.Handle = &Button{Element: newElement("Handle"), SizeY: DefaultHandleSizeY}
	s.Jump = &Button{Element: newElement("Jump"), SizeY: DefaultJumpSizeY}
	s.Jump.Active = false

	s.Container.add(s.Track, s.Handle, s.Jump)
	s.add(s.Container)
	return s
}

// Plan returns the plan computed by the last TreeUpdate. It is replaced by
// the next TreeUpdate.
func (s *RectangleSlider) Plan() segment.Plan { return s.plan }

// SegmentConfig returns the planner input for the current settings.
func (s *RectangleSlider) SegmentConfig() segment.Config {
	var jumpSize float32
	if s.AllowJump {
		jumpSize = s.Jump.SizeY
	}
	return segment.Config{
		FillRule:    s.FillStartingPoint,
		TrackStart:  -s.SizeY / 2,
		TrackEnd:    s.SizeY / 2,
		HandleSize:  s.Handle.SizeY,
		HandleValue: s.HandleValue,
		JumpEnabled: s.AllowJump,
		JumpSize:    jumpSize,
		JumpValue:   s.JumpValue,
		ZeroValue:   s.ZeroValue,
	}
}

// SetFallbackHandler installs fn as the planner's invariant fallback hook.
func (s *RectangleSlider) SetFallbackHandler(fn func(segment.Config, error)) {
	s.planner.OnFallback = fn
}

// TreeUpdate recomputes the segment plan and applies the settings to every
// child element.
func (s *RectangleSlider) TreeUpdate() {
	s.SizeY = max(s.SizeY, s.Handle.SizeY)

	s.updateControl()
	s.updateSegments()
	s.updateGeneralSettings()
	s.updateAnchorSettings()
}

// sliderKeys are the slider settings a parent controller takes over.
var sliderKeys = []control.Key{
	control.KeySizeX, control.KeySizeY, control.KeyAlpha,
	control.KeyZeroValue, control.KeyHandleValue, control.KeyJumpValue,
	control.KeyAllowJump, control.KeyFillStartingPoint,
	control.KeyShowEdge, control.KeyText,
}

func (s *RectangleSlider) updateControl() {
	owner := s.ID

	if s.Controller == uuid.Nil {
		for _, k := range sliderKeys {
			s.Controls().Unset(k)
		}
	} else {
		s.Controls().SetAll(s.Controller, sliderKeys...)
	}

	s.Track.Controls().SetAll(owner,
		control.KeySizeX, control.KeyAlpha, control.KeySegments)

	buttonKeys := []control.Key{
		control.KeySizeX, control.KeyAlpha, control.KeyLocalPosition,
		control.KeyText, control.KeyIconType, control.KeyShowEdge,
		control.KeyHighlightProgress, control.KeySelectionProgress,
	}
	s.Handle.Controls().SetAll(owner, buttonKeys...)
	s.Jump.Controls().SetAll(owner, buttonKeys...)
	s.Jump.Controls().Set(control.KeyActive, owner)

	if s.Anchor == AnchorCustom {
		s.Container.Controls().Unset(control.KeyLocalPosition)
	} else {
		s.Container.Controls().Set(control.KeyLocalPosition, owner)
	}
}

func (s *RectangleSlider) updateSegments() {
	s.plan = s.planner.Plan(s.SegmentConfig())
	s.Track.SetSegments(s.plan)
}

func (s *RectangleSlider) updateGeneralSettings() {
	handle, _ := s.plan.Find(segment.Handle)
	jump, hasJump := s.plan.Find(segment.Jump)

	s.Handle.LocalPosition = space.V3(0, handle.Center(), 0)
	if hasJump {
		s.Jump.LocalPosition = space.V3(0, jump.Center(), 0)
	}

	s.Track.SizeX = s.SizeX
	s.Track.Alpha = s.Alpha

	for _, b := range []*Button{s.Handle, s.Jump} {
		b.SizeX = s.SizeX
		b.Alpha = s.Alpha
		b.ShowEdge = s.ShowEdge
		b.HighlightProgress = s.HighlightProgress
		b.SelectionProgress = s.SelectionProgress
	}

	s.Handle.Label = s.Label
	s.Handle.IconOuter = IconNone
	s.Handle.IconInner = IconSlider

	s.Jump.Label = ""
	s.Jump.IconOuter = IconNone
	s.Jump.IconInner = IconNone
	s.Jump.Active = s.AllowJump && hasJump
}

func (s *RectangleSlider) updateAnchorSettings() {
	if s.Anchor == AnchorCustom {
		return
	}
	ax, ay := s.Anchor.RelativePosition()
	s.Container.LocalPosition = space.V3(s.SizeX*ax, s.SizeY*ay, 0)
}

// ContainerFrame returns the world frame of the container.
func (s *RectangleSlider) ContainerFrame() space.Frame {
	return s.Frame.Child(s.Container.LocalPosition)
}

// Geometry returns the shape seen by interaction queries.
func (s *RectangleSlider) Geometry() track.Geometry {
	return track.Geometry{
		SizeX:        s.SizeX,
		SizeY:        s.SizeY,
		HandleSizeX:  s.Handle.SizeX,
		HandleSizeY:  s.Handle.SizeY,
		HandleCenter: s.Handle.LocalPosition.Y,
	}
}

// NearestWorldPosition returns the point the slider would accept for a touch
// at p: anywhere on the container when jumping is allowed, otherwise on the
// handle.
func (s *RectangleSlider) NearestWorldPosition(p space.Vec3) space.Vec3 {
	return track.NearestPosition(p, s.ContainerFrame(), s.Geometry(), s.AllowJump)
}

// ValueViaNearestWorldPosition returns the slider value for a touch at p.
func (s *RectangleSlider) ValueViaNearestWorldPosition(p space.Vec3) float32 {
	return track.NearestValue(p, s.ContainerFrame(), s.Geometry(), s.AllowJump)
}
