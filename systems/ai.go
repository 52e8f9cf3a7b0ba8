package systems

import (
	"log"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/host"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs perception and approach for every enemy.
func UpdateEnemies(ecs *ecs.ECS) {
	h, ok := getHost(ecs)
	if !ok {
		return
	}
	dt := GetOrCreateClock(ecs).Delta

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		// Skip if enemy is in death sequence
		if e.HasComponent(components.Death) {
			return
		}
		updateEnemyAI(ecs, h.Physics, e, dt)
	})
}

func updateEnemyAI(ecs *ecs.ECS, phys host.Physics, e *donburi.Entry, dt float64) {
	p := components.Perception.Get(e)
	if p.Inert {
		return
	}
	if !ecs.World.Valid(p.Player) {
		p.Inert = true
		log.Printf("[ai] %s: player lost, AI disabled", entityName(e))
		return
	}

	t := components.Transform.Get(e)
	playerPos := components.Transform.Get(ecs.World.Entry(p.Player)).Position
	p.Distance = playerPos.Sub(t.Position).Len()

	if p.Distance > p.DetectionRange {
		p.State = cfg.AIIdle
		if p.Detected {
			p.Detected = false
			p.Highlight = components.HighlightCalm
			log.Printf("[ai] %s: player out of range", entityName(e))
		}
		return
	}

	if !p.Detected {
		p.Detected = true
		p.Highlight = components.HighlightAlert
		log.Printf("[ai] %s: player detected at %.1f units", entityName(e), p.Distance)
	}

	dir := mathutil.SafeNormalize(mathutil.Horizontal(playerPos.Sub(t.Position)))
	if dir.Len() > 0 {
		t.Rotation = mathutil.SlerpShortest(t.Rotation, mathutil.LookRotation(dir), dt*p.RotationSpeed)
	}

	if p.Distance <= p.MeleeRange {
		p.State = cfg.AIInMeleeRange
		p.Highlight = components.HighlightMelee
		return
	}

	p.State = cfg.AIEngaging
	p.Highlight = components.HighlightAlert
	move := dir.Mul(p.MoveSpeed)
	if !phys.IsGroundContact(e.Entity()) {
		move = move.Add(mgl64.Vec3{0, cfg.Enemy.FallbackGravity, 0})
	}
	phys.Translate(e.Entity(), move.Mul(dt))
}
