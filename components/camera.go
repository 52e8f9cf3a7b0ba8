package components

import (
	"math"

	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

const nearPlane = 0.05

// CameraData is an orbit camera around the player. Yaw and Pitch are in
// degrees; positive pitch looks down.
type CameraData struct {
	Yaw         float64
	Pitch       float64
	Distance    float64
	FieldOfView float64 // Vertical, degrees

	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Rotation mgl64.Quat
}

// ForwardBasis returns the horizontal unit forward vector derived from yaw.
func (c *CameraData) ForwardBasis() mgl64.Vec3 {
	return mathutil.YawRotation(mgl64.DegToRad(c.Yaw)).Rotate(mathutil.WorldForward)
}

// RightBasis returns the horizontal unit right vector derived from yaw.
func (c *CameraData) RightBasis() mgl64.Vec3 {
	return mathutil.YawRotation(mgl64.DegToRad(c.Yaw)).Rotate(mathutil.WorldRight)
}

func (c *CameraData) axes() (forward, right, up mgl64.Vec3) {
	return c.Rotation.Rotate(mathutil.WorldForward),
		c.Rotation.Rotate(mathutil.WorldRight),
		c.Rotation.Rotate(mathutil.WorldUp)
}

// ScreenPointToRay returns a world ray through pixel (x, y) of a w×h viewport.
func (c *CameraData) ScreenPointToRay(x, y, w, h float64) (origin, dir mgl64.Vec3) {
	forward, right, up := c.axes()
	if w <= 0 || h <= 0 {
		return c.Position, forward
	}
	tanHalf := math.Tan(mgl64.DegToRad(c.FieldOfView) / 2)
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h

	dir = forward.
		Add(right.Mul(ndcX * tanHalf * w / h)).
		Add(up.Mul(ndcY * tanHalf))
	return c.Position, dir.Normalize()
}

// WorldToScreen projects p into pixel coordinates of a w×h viewport. ok is
// false for points behind the near plane.
func (c *CameraData) WorldToScreen(p mgl64.Vec3, w, h float64) (x, y float64, ok bool) {
	forward, right, up := c.axes()
	rel := p.Sub(c.Position)
	depth := rel.Dot(forward)
	if depth < nearPlane || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	tanHalf := math.Tan(mgl64.DegToRad(c.FieldOfView) / 2)
	ndcX := rel.Dot(right) / (depth * tanHalf * w / h)
	ndcY := rel.Dot(up) / (depth * tanHalf)
	return (ndcX + 1) / 2 * w, (1 - ndcY) / 2 * h, true
}

var Camera = donburi.NewComponentType[CameraData]()
