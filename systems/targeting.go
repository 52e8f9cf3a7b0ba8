package systems

import (
	"log"
	"sort"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargeting handles selection input, drops dead or despawned targets
// and moves the indicator ring.
func UpdateTargeting(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	components.Targeting.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Intent) && !e.HasComponent(components.Death) {
			in := components.Intent.Get(e)
			if in.SelectTargetPressed {
				SelectUnderCursor(ecs, e, in.CursorX, in.CursorY, in.ViewportW, in.ViewportH)
			}
			if in.CycleTargetPressed {
				CycleNext(ecs, e)
			}
		}

		targeting := components.Targeting.Get(e)
		target, ok := CurrentTarget(ecs, e)
		if !ok {
			if targeting.Has {
				log.Printf("[targeting] target cleared")
			}
			targeting.Clear()
			return
		}

		pos := components.Transform.Get(target).Position
		targeting.IndicatorVisible = true
		targeting.IndicatorPosition = mgl64.Vec3{pos.X(), cfg.Targeting.IndicatorHeight, pos.Z()}
		targeting.IndicatorAngle += cfg.Targeting.IndicatorSpin * dt
		for targeting.IndicatorAngle >= 360 {
			targeting.IndicatorAngle -= 360
		}
	})
}

// CurrentTarget returns the held target if it still exists and is alive.
func CurrentTarget(ecs *ecs.ECS, e *donburi.Entry) (*donburi.Entry, bool) {
	targeting := components.Targeting.Get(e)
	if !targeting.Has || !ecs.World.Valid(targeting.Target) {
		return nil, false
	}
	target := ecs.World.Entry(targeting.Target)
	if !target.HasComponent(components.Health) || components.Health.Get(target).IsDead() {
		return nil, false
	}
	return target, true
}

// SelectUnderCursor targets the first obstruction under the cursor when it
// is a living enemy. A miss keeps the current target.
func SelectUnderCursor(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64) bool {
	host, ok := getHost(ecs)
	if !ok {
		return false
	}
	camEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return false
	}

	origin, dir := components.Camera.Get(camEntry).ScreenPointToRay(x, y, w, h)
	hit, ok := host.Physics.Raycast(origin, dir, cfg.Targeting.MaxDistance)
	if !ok || !ecs.World.Valid(hit.Entity) {
		return false
	}
	target := ecs.World.Entry(hit.Entity)
	if !target.HasComponent(components.Health) || !target.HasComponent(components.Perception) {
		return false
	}

	setTarget(e, target)
	return true
}

// CycleNext targets the living enemy after the current one in spawn order,
// wrapping to the first. With no enemies the target is cleared.
func CycleNext(ecs *ecs.ECS, e *donburi.Entry) {
	var candidates []*donburi.Entry
	components.Perception.Each(ecs.World, func(c *donburi.Entry) {
		if c.HasComponent(components.Health) && components.Health.Get(c).IsDead() {
			return
		}
		candidates = append(candidates, c)
	})

	targeting := components.Targeting.Get(e)
	if len(candidates) == 0 {
		targeting.Clear()
		return
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return components.Identity.Get(candidates[i]).ID < components.Identity.Get(candidates[j]).ID
	})

	current := -1
	if targeting.Has {
		for i, c := range candidates {
			if c.Entity() == targeting.Target {
				current = i
				break
			}
		}
	}
	setTarget(e, candidates[(current+1)%len(candidates)])
}

func setTarget(e *donburi.Entry, target *donburi.Entry) {
	targeting := components.Targeting.Get(e)
	targeting.Select(target.Entity())

	percent := 0.0
	if target.HasComponent(components.Health) {
		percent = components.Health.Get(target).Percent() * 100
	}
	log.Printf("[targeting] targeted %s (%.0f%% HP)", entityName(target), percent)
}
