// Package host declares the engine primitives the simulation depends on.
package host

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Hit is the first obstruction found by a ray.
type Hit struct {
	Entity   donburi.Entity
	Point    mgl64.Vec3
	Distance float64
}

// Physics supplies ground detection, spatial queries and collision-aware
// movement.
type Physics interface {
	// IsGroundContact reports whether the character's last move ended on
	// the ground.
	IsGroundContact(e donburi.Entity) bool
	// ProbeDown reports whether ground lies within distance below origin.
	ProbeDown(origin mgl64.Vec3, distance float64) bool
	// QuerySphere returns the entities on layer overlapping the sphere.
	QuerySphere(center mgl64.Vec3, radius float64, layer string) []donburi.Entity
	// Raycast returns the nearest obstruction along dir within maxDistance.
	Raycast(origin, dir mgl64.Vec3, maxDistance float64) (Hit, bool)
	// Translate moves the character by displacement, stopping at solids.
	Translate(e donburi.Entity, displacement mgl64.Vec3)
	// Teleport places the character at position without collision checks.
	Teleport(e donburi.Entity, position mgl64.Vec3)
}

// Animator receives fire-and-forget animation cues.
type Animator interface {
	PlayAnimationCue(e donburi.Entity, cue string) error
}

// NopAnimator accepts and discards every cue.
type NopAnimator struct{}

func (NopAnimator) PlayAnimationCue(donburi.Entity, string) error { return nil }
