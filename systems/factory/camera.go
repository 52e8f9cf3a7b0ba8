package factory

import (
	"github.com/automoto/ashgrove/archetypes"
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Pitch:       cfg.Camera.InitialPitch,
		Distance:    cfg.Camera.FollowDistance,
		FieldOfView: cfg.Camera.FieldOfView,
		Rotation:    mgl64.QuatIdent(),
	})
	return camera
}
