package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Hit is one resolved strike waiting to be applied to its target.
type Hit struct {
	Attacker  donburi.Entity
	Damage    int
	Knockback mgl64.Vec3 // Displacement for this tick
}

// DamageEventData queues hits against an entity until the combat drain step.
type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
