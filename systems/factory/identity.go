package factory

import (
	"github.com/automoto/ashgrove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func assignIdentity(ecs *ecs.ECS, e *donburi.Entry, name string) {
	if _, ok := components.SpawnCounter.First(ecs.World); !ok {
		ecs.World.Create(components.SpawnCounter)
	}
	counterEntry, _ := components.SpawnCounter.First(ecs.World)
	counter := components.SpawnCounter.Get(counterEntry)

	counter.Next++
	components.Identity.SetValue(e, components.IdentityData{
		ID:   counter.Next,
		Name: name,
	})
}
