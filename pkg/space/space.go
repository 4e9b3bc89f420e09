// Package space provides the small amount of 3D geometry the slider host needs:
// vectors and rigid frames with uniform-per-axis scale.
//
// A [Frame] plays the role of a scene-graph transform. Points are carried from
// world space into a frame's local space with [Frame.InverseTransformPoint] and
// back with [Frame.TransformPoint]. Child frames are derived with [Frame.Child],
// which mirrors setting a child object's local position.
//
// All values are float32, matching the host scene graph.
package space

import "github.com/chewxy/math32"

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z float32
}

// V3 returns a Vec3 with the given components.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// DistanceTo returns the distance between points v and o.
func (v Vec3) DistanceTo(o Vec3) float32 { return v.Sub(o).Length() }

// Frame is a placed coordinate system: an origin, three orthonormal axes and a
// per-axis scale. The zero Frame is not usable; start from [Identity].
type Frame struct {
	Origin  Vec3
	Right   Vec3 // local +X
	Up      Vec3 // local +Y, the slider track axis
	Forward Vec3 // local +Z
	Scale   Vec3
}

// Identity returns the world frame.
func Identity() Frame {
	return Frame{
		Right:   Vec3{X: 1},
		Up:      Vec3{Y: 1},
		Forward: Vec3{Z: 1},
		Scale:   Vec3{1, 1, 1},
	}
}

// NewFrame builds a frame at origin whose local +Y points along up and whose
// local +Z points as close to forward as orthogonality allows. Degenerate input
// (zero or parallel axes) falls back to the world axes.
func NewFrame(origin, up, forward Vec3) Frame {
	f := Identity()
	f.Origin = origin

	u := up.Normalize()
	if u.Length() == 0 {
		return f
	}
	r := u.Cross(forward).Normalize()
	if r.Length() == 0 {
		return f
	}
	f.Up = u
	f.Right = r
	f.Forward = r.Cross(u)
	return f
}

// WithScale returns a copy of f with the given per-axis scale.
func (f Frame) WithScale(s Vec3) Frame {
	f.Scale = s
	return f
}

// TransformPoint maps a local point into world space.
func (f Frame) TransformPoint(local Vec3) Vec3 {
	return f.Origin.
		Add(f.Right.Scale(local.X * f.Scale.X)).
		Add(f.Up.Scale(local.Y * f.Scale.Y)).
		Add(f.Forward.Scale(local.Z * f.Scale.Z))
}

// InverseTransformPoint maps a world point into f's local space. A zero scale
// component collapses that local coordinate to 0.
func (f Frame) InverseTransformPoint(world Vec3) Vec3 {
	d := world.Sub(f.Origin)
	return Vec3{
		X: safeDiv(d.Dot(f.Right), f.Scale.X),
		Y: safeDiv(d.Dot(f.Up), f.Scale.Y),
		Z: safeDiv(d.Dot(f.Forward), f.Scale.Z),
	}
}

// Child returns the frame of a child object placed at localPos inside f, with
// unit local scale and no local rotation.
func (f Frame) Child(localPos Vec3) Frame {
	c := f
	c.Origin = f.TransformPoint(localPos)
	return c
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}
