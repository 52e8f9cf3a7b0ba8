package systems

import (
	"log"

	"github.com/automoto/ashgrove/components"
	"github.com/automoto/ashgrove/host"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetHost installs the engine primitives every system calls into.
func SetHost(ecs *ecs.ECS, physics host.Physics, animator host.Animator) {
	if animator == nil {
		animator = host.NopAnimator{}
	}
	if _, ok := components.Host.First(ecs.World); !ok {
		ecs.World.Create(components.Host)
	}
	ent, _ := components.Host.First(ecs.World)
	components.Host.SetValue(ent, components.HostData{
		Physics:  physics,
		Animator: animator,
	})
}

func getHost(ecs *ecs.ECS) (*components.HostData, bool) {
	ent, ok := components.Host.First(ecs.World)
	if !ok {
		return nil, false
	}
	h := components.Host.Get(ent)
	return h, h.Physics != nil
}

// playCue forwards an animation cue to the host. Failures are logged only.
func playCue(ecs *ecs.ECS, e *donburi.Entry, cue string) {
	if e.HasComponent(components.Animation) {
		components.Animation.Get(e).LastCue = cue
	}
	h, ok := getHost(ecs)
	if !ok || h.Animator == nil {
		return
	}
	if err := h.Animator.PlayAnimationCue(e.Entity(), cue); err != nil {
		log.Printf("[anim] cue %q on %s: %v", cue, entityName(e), err)
	}
}

func entityName(e *donburi.Entry) string {
	if e.HasComponent(components.Identity) {
		return components.Identity.Get(e).Name
	}
	return "entity"
}
