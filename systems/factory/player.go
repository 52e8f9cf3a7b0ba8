package factory

import (
	"github.com/automoto/ashgrove/archetypes"
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/automoto/ashgrove/physics"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, phys *physics.World, name string, pos mgl64.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	assignIdentity(ecs, player, name)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Rotation: mathutil.YawRotation(mgl64.DegToRad(yaw)),
	})
	components.Body.SetValue(player, components.BodyData{
		Radius: cfg.Player.Radius,
		Height: cfg.Player.Height,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Airborne,
		PreviousState: cfg.StateNone,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Combat.SetValue(player, components.NewCombatData(tags.ResolvEnemy))
	components.Targeting.SetValue(player, components.TargetingData{Target: donburi.Null})

	phys.AddBody(player, tags.ResolvPlayer)
	return player
}

// CreateBotPlayer spawns a player whose intent is driven by AI.
func CreateBotPlayer(ecs *ecs.ECS, phys *physics.World, name string, pos mgl64.Vec3, yaw float64) *donburi.Entry {
	player := CreatePlayer(ecs, phys, name, pos, yaw)
	donburi.Add(player, components.Bot, &components.BotData{LastTarget: donburi.Null})
	return player
}
