package systems

import (
	"fmt"
	"log"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AttackResult reports what a TryAttack call did.
type AttackResult int

const (
	AttackSpent AttackResult = iota
	AttackOnCooldown
	AttackNotGrounded
	AttackBusy
	AttackDead
	AttackNoHost
)

var attackResultNames = map[AttackResult]string{
	AttackSpent:       "spent",
	AttackOnCooldown:  "on cooldown",
	AttackNotGrounded: "not grounded",
	AttackBusy:        "dodging",
	AttackDead:        "dead",
	AttackNoHost:      "no host",
}

func (r AttackResult) String() string {
	if name, ok := attackResultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("AttackResult(%d)", int(r))
}

// UpdateCombat resolves attack intents, then applies every queued hit.
func UpdateCombat(ecs *ecs.ECS) {
	components.Combat.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intent) {
			return
		}
		in := components.Intent.Get(e)
		if in.AttackPressed {
			TryAttack(ecs, e, components.AttackLight)
		}
		if in.HeavyAttackPressed {
			TryAttack(ecs, e, components.AttackHeavy)
		}
	})

	ApplyDamageEvents(ecs)
}

// TryAttack swings the attacker's variant. The cooldown is spent whether or
// not anything is hit. Each hit is queued on the target's DamageEvent.
func TryAttack(ecs *ecs.ECS, attacker *donburi.Entry, variant components.AttackVariant) AttackResult {
	if attacker.HasComponent(components.Health) && components.Health.Get(attacker).IsDead() {
		return AttackDead
	}
	if !attacker.HasComponent(components.Locomotion) {
		return AttackNotGrounded
	}
	loco := components.Locomotion.Get(attacker)
	if loco.Dodging {
		return AttackBusy
	}
	if !loco.Grounded {
		return AttackNotGrounded
	}

	now := GetOrCreateClock(ecs).Now
	combat := components.Combat.Get(attacker)
	if !combat.Ready(variant, now) {
		return AttackOnCooldown
	}
	h, ok := getHost(ecs)
	if !ok {
		return AttackNoHost
	}

	attack := variant.Config()
	combat.LastTrigger[variant] = now
	playCue(ecs, attacker, attack.Cue)

	t := components.Transform.Get(attacker)
	forward := t.Forward()
	center := t.Position.Add(forward.Mul(cfg.Combat.ReachOffset))
	if attacker.HasComponent(components.Body) {
		center = center.Add(mgl64.Vec3{0, components.Body.Get(attacker).Height / 2, 0})
	}

	dt := GetOrCreateClock(ecs).Delta
	for _, target := range h.Physics.QuerySphere(center, attack.Range, combat.TargetLayer) {
		if target == attacker.Entity() || !ecs.World.Valid(target) {
			continue
		}
		te := ecs.World.Entry(target)
		if !te.HasComponent(components.Health) || components.Health.Get(te).IsDead() {
			continue
		}

		dir := mathutil.SafeNormalize(mathutil.Horizontal(components.Transform.Get(te).Position.Sub(t.Position)))
		if dir.Len() == 0 {
			dir = forward
		}
		queueHit(te, components.Hit{
			Attacker:  attacker.Entity(),
			Damage:    attack.Damage,
			Knockback: dir.Mul(attack.Knockback * dt),
		})
	}
	return AttackSpent
}

func queueHit(target *donburi.Entry, hit components.Hit) {
	if !target.HasComponent(components.DamageEvent) {
		donburi.Add(target, components.DamageEvent, &components.DamageEventData{})
	}
	ev := components.DamageEvent.Get(target)
	ev.Hits = append(ev.Hits, hit)
}

// ApplyDamageEvents drains every queued hit. A hit on a corpse is dropped.
func ApplyDamageEvents(ecs *ecs.ECS) {
	h, hasHost := getHost(ecs)

	var pending []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		pending = append(pending, e)
	}

	for _, e := range pending {
		ev := components.DamageEvent.Get(e)
		hp := components.Health.Get(e)
		for _, hit := range ev.Hits {
			if hp.IsDead() {
				break
			}
			killed := hp.TakeDamage(hit.Damage)
			log.Printf("[combat] %s took %d damage (%d/%d)", entityName(e), hit.Damage, hp.Current, hp.Max)

			if hasHost {
				h.Physics.Translate(e.Entity(), hit.Knockback)
			}
			if killed {
				startDeathSequence(ecs, e)
			}
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}

func startDeathSequence(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}
	log.Printf("[combat] %s died", entityName(e))
	playCue(ecs, e, cfg.Combat.DeathCue)

	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.World.DespawnDelay})

	if e.HasComponent(components.Locomotion) {
		loco := components.Locomotion.Get(e)
		loco.MoveVelocity = mgl64.Vec3{}
		loco.Dodging = false
	}
}
