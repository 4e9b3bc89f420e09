package widget

import (
	"github.com/google/uuid"

	"github.com/matzehuels/slidertrack/pkg/control"
	"github.com/matzehuels/slidertrack/pkg/space"
)

// Node is anything placed in a widget tree.
type Node interface {
	Base() *Element
}

// Element holds the state shared by every node: identity, placement relative
// to the parent, visibility and the ownership table for its properties.
type Element struct {
	ID            uuid.UUID
	Name          string
	LocalPosition space.Vec3
	Active        bool

	controls *control.Table
	children []Node
}

func newElement(name string) Element {
	return Element{ID: uuid.New(), Name: name, Active: true, controls: new(control.Table)}
}

// Base returns e.
func (e *Element) Base() *Element { return e }

// Children returns the direct children in insertion order.
func (e *Element) Children() []Node { return e.children }

// Controls returns the ownership table for e's properties.
func (e *Element) Controls() *control.Table { return e.controls }

func (e *Element) add(children ...Node) {
	e.children = append(e.children, children...)
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from fn skips the node's children.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Base().children {
		walk(c, depth+1, fn)
	}
}

// IconType selects the glyph drawn on a button.
type IconType int

const (
	IconNone IconType = iota
	IconSlider
)

func (t IconType) String() string {
	if t == IconSlider {
		return "slider"
	}
	return "none"
}

// Button is a rectangular pressable element. The slider uses one as its
// handle and one as its jump marker.
type Button struct {
	Element
	SizeX, SizeY      float32
	Alpha             float32
	HighlightProgress float32
	SelectionProgress float32
	Label             string
	IconOuter         IconType
	IconInner         IconType
	ShowEdge          bool
}
