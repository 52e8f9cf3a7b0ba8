// Package mathutil holds the vector and rotation helpers shared by the
// simulation. The world is Y-up with +Z forward and +X right.
package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	WorldForward = mgl64.Vec3{0, 0, 1}
	WorldRight   = mgl64.Vec3{1, 0, 0}
	WorldUp      = mgl64.Vec3{0, 1, 0}
)

// Horizontal drops the Y component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// YawOf returns the heading of a horizontal direction in radians, zero
// along +Z and positive toward +X.
func YawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}

// YawRotation returns a rotation about the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, WorldUp)
}

// LookRotation returns the upright rotation facing dir. dir must be
// non-zero on the horizontal plane.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	return YawRotation(YawOf(dir))
}

// Forward returns the horizontal facing direction of q.
func Forward(q mgl64.Quat) mgl64.Vec3 {
	f := SafeNormalize(Horizontal(q.Rotate(WorldForward)))
	if f.Len() == 0 {
		return WorldForward
	}
	return f
}

// Right returns the horizontal right-hand direction of q.
func Right(q mgl64.Quat) mgl64.Vec3 {
	r := SafeNormalize(Horizontal(q.Rotate(WorldRight)))
	if r.Len() == 0 {
		return WorldRight
	}
	return r
}

// SlerpShortest interpolates from a toward b along the shorter arc. t is
// clamped to [0, 1].
func SlerpShortest(a, b mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// Approach moves a toward b by fraction t, clamped to [0, 1].
func Approach(a, b, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return a + (b-a)*t
}

// ApproachVec moves a toward b by fraction t, clamped to [0, 1].
func ApproachVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
