package systems

import (
	"github.com/automoto/ashgrove/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause gate from player intent. It runs even while
// paused.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	for e := range components.Intent.Iter(ecs.World) {
		if components.Intent.Get(e).PauseToggled {
			pause.IsPaused = !pause.IsPaused
			return
		}
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
