package systems

import (
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera orbits and zooms the follow camera from player intent and
// places it behind the player.
func UpdateCamera(ecs *ecs.ECS) {
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)

	if player.HasComponent(components.Intent) {
		in := components.Intent.Get(player)
		if in.ZoomDelta != 0 {
			cam.Distance -= in.ZoomDelta * cfg.Camera.ZoomSpeed
		}
		if in.RotateHeld {
			cam.Yaw += in.LookDX * cfg.Camera.Sensitivity
			cam.Pitch -= in.LookDY * cfg.Camera.Sensitivity
		}
	}
	cam.Distance = mgl64.Clamp(cam.Distance, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	cam.Pitch = mgl64.Clamp(cam.Pitch, cfg.Camera.MinPitch, cfg.Camera.MaxPitch)

	lookAt := components.Transform.Get(player).Position.Add(mgl64.Vec3{0, cfg.Camera.Height, 0})
	if player.HasComponent(components.Body) {
		lookAt = lookAt.Add(mgl64.Vec3{0, components.Body.Get(player).Height / 2, 0})
	}

	yaw := mathutil.YawRotation(mgl64.DegToRad(cam.Yaw))
	pitch := mgl64.QuatRotate(mgl64.DegToRad(cam.Pitch), mathutil.WorldRight)
	cam.Rotation = yaw.Mul(pitch)
	cam.LookAt = lookAt
	cam.Position = lookAt.Add(cam.Rotation.Rotate(mgl64.Vec3{0, 0, -cam.Distance}))
}
