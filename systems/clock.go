package systems

import (
	"github.com/automoto/ashgrove/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by the pending delta.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Now += clock.Delta
	clock.Tick++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ecs.World.Create(components.Clock)
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}
