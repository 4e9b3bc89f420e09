package track

import (
	"github.com/chewxy/math32"

	"github.com/matzehuels/slidertrack/pkg/space"
)

// NearestPointOnSegment clamps query to [center-halfSize, center+halfSize].
// The sign of halfSize is ignored.
func NearestPointOnSegment(query, center, halfSize float32) float32 {
	h := math32.Abs(halfSize)
	return math32.Min(math32.Max(query, center-h), center+h)
}

// NearestPointOnRectangle returns the point on the sizeX by sizeY rectangle
// centered at frame's origin, lying in frame's local XY plane, that is nearest
// to the world-space query point.
func NearestPointOnRectangle(query space.Vec3, frame space.Frame, sizeX, sizeY float32) space.Vec3 {
	local := frame.InverseTransformPoint(query)
	local.X = NearestPointOnSegment(local.X, 0, sizeX/2)
	local.Y = NearestPointOnSegment(local.Y, 0, sizeY/2)
	local.Z = 0
	return frame.TransformPoint(local)
}

// Geometry describes the slider shape seen by interaction queries. The track
// runs along the container's local Y axis over [-SizeY/2, SizeY/2]; the handle
// sits at local (0, HandleCenter, 0).
type Geometry struct {
	SizeX, SizeY float32
	HandleSizeX  float32
	HandleSizeY  float32
	HandleCenter float32
}

// Mapper returns the track mapper for g.
func (g Geometry) Mapper() Mapper {
	return New(-g.SizeY/2, g.SizeY/2)
}

// NearestPosition returns the world-space point nearest to query that the
// slider accepts: anywhere on the container rectangle when allowJump is set,
// otherwise only on the handle rectangle.
func NearestPosition(query space.Vec3, frame space.Frame, g Geometry, allowJump bool) space.Vec3 {
	if allowJump {
		return NearestPointOnRectangle(query, frame, g.SizeX, g.SizeY)
	}
	handle := frame.Child(space.V3(0, g.HandleCenter, 0))
	return NearestPointOnRectangle(query, handle, g.HandleSizeX, g.HandleSizeY)
}

// ValueAt converts a world-space position into a slider value by mapping its
// local Y coordinate through the handle's effective range. The result is
// clamped to [0, 1].
func ValueAt(world space.Vec3, frame space.Frame, g Geometry) float32 {
	local := frame.InverseTransformPoint(world)
	return Clamp01(g.Mapper().PositionToValue(local.Y, g.HandleSizeY))
}

// NearestValue projects query onto the slider (see [NearestPosition]) and
// returns the corresponding value in [0, 1].
func NearestValue(query space.Vec3, frame space.Frame, g Geometry, allowJump bool) float32 {
	return ValueAt(NearestPosition(query, frame, g, allowJump), frame, g)
}
