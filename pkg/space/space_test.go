package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "X")
	assert.InDelta(t, want.Y, got.Y, tol, "Y")
	assert.InDelta(t, want.Z, got.Z, tol, "Z")
}

func TestVecOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, V3(0, 0, 1), V3(1, 0, 0).Cross(V3(0, 1, 0)))
	assert.InDelta(t, 5, V3(3, 4, 0).Length(), tol)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1, V3(0, 0, 9).Normalize().Length(), tol)
}

func TestIdentityRoundTrip(t *testing.T) {
	f := Identity()
	p := V3(1.5, -2, 7)
	assertVec(t, p, f.TransformPoint(p))
	assertVec(t, p, f.InverseTransformPoint(p))
}

func TestFrameRoundTrip(t *testing.T) {
	f := NewFrame(V3(10, 0, -3), V3(1, 1, 0), V3(0, 0, 1)).WithScale(V3(2, 0.5, 1))

	for _, p := range []Vec3{V3(0, 0, 0), V3(1, 2, 3), V3(-4, 0.25, 9)} {
		world := f.TransformPoint(p)
		assertVec(t, p, f.InverseTransformPoint(world))
	}
}

func TestNewFrameDegenerate(t *testing.T) {
	f := NewFrame(V3(1, 1, 1), Vec3{}, V3(0, 0, 1))
	assert.Equal(t, V3(0, 1, 0), f.Up)

	f = NewFrame(Vec3{}, V3(0, 0, 1), V3(0, 0, 1))
	assert.Equal(t, V3(0, 1, 0), f.Up, "parallel up/forward falls back to world axes")
}

func TestChild(t *testing.T) {
	parent := NewFrame(V3(0, 0, 0), V3(-1, 0, 0), V3(0, 0, 1))
	child := parent.Child(V3(0, 3, 0))

	// Parent +Y is world -X.
	assertVec(t, V3(-3, 0, 0), child.Origin)
	assertVec(t, V3(0, 3, 0), parent.InverseTransformPoint(child.Origin))
}

func TestInverseZeroScale(t *testing.T) {
	f := Identity().WithScale(V3(1, 0, 1))
	got := f.InverseTransformPoint(V3(2, 5, 1))
	assertVec(t, V3(2, 0, 1), got)
}
