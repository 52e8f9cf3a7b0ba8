package systems

import (
	"log"

	"github.com/automoto/ashgrove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down corpses and removes them from the world and the
// collision space once the despawn delay has passed.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(components.Object) {
			if obj := components.Object.Get(e); obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		log.Printf("[death] %s despawned", entityName(e))
		ecs.World.Remove(e.Entity())
	}
}
