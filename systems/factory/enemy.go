package factory

import (
	"log"

	"github.com/automoto/ashgrove/archetypes"
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/automoto/ashgrove/physics"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy tracking the first player in the world. With
// no player present the enemy is created inert.
func CreateEnemy(ecs *ecs.ECS, phys *physics.World, spawn level.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	assignIdentity(ecs, enemy, spawn.Name)

	components.Transform.SetValue(enemy, components.TransformData{
		Position: spawn.Position,
		Rotation: mathutil.YawRotation(mgl64.DegToRad(spawn.Yaw)),
	})
	components.Body.SetValue(enemy, components.BodyData{
		Radius: cfg.Enemy.Radius,
		Height: cfg.Enemy.Height,
	})

	health := orInt(spawn.Health, cfg.Enemy.Health)
	components.Health.SetValue(enemy, components.HealthData{
		Current: health,
		Max:     health,
	})

	perception := components.PerceptionData{
		DetectionRange: orFloat(spawn.DetectionRange, cfg.Enemy.DetectionRange),
		MeleeRange:     orFloat(spawn.MeleeRange, cfg.Enemy.MeleeRange),
		MoveSpeed:      orFloat(spawn.MoveSpeed, cfg.Enemy.MoveSpeed),
		RotationSpeed:  cfg.Enemy.RotationSpeed,
		Player:         donburi.Null,
		State:          cfg.AIIdle,
	}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		perception.Player = playerEntry.Entity()
	} else {
		perception.Inert = true
		log.Printf("[ai] %s: no player found, AI disabled", spawn.Name)
	}
	components.Perception.SetValue(enemy, perception)

	phys.AddBody(enemy, tags.ResolvEnemy)
	return enemy
}

func orInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func orFloat(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
