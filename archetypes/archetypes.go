package archetypes

import (
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Identity,
		components.Transform,
		components.Body,
		components.Object,
		components.Locomotion,
		components.State,
		components.Health,
		components.Combat,
		components.Targeting,
		components.Intent,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Identity,
		components.Transform,
		components.Body,
		components.Object,
		components.Health,
		components.Perception,
		components.Animation,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Box,
		components.Object,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Box,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
