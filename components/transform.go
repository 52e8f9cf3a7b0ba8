package components

import (
	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is a character's feet position and facing.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Forward returns the horizontal facing direction.
func (t *TransformData) Forward() mgl64.Vec3 {
	return mathutil.Forward(t.Rotation)
}

// Right returns the horizontal right-hand direction.
func (t *TransformData) Right() mgl64.Vec3 {
	return mathutil.Right(t.Rotation)
}

var Transform = donburi.NewComponentType[TransformData]()
