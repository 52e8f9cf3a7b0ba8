package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TargetingData holds the player's selected target. The reference is weak:
// readers must check it against the world before use.
type TargetingData struct {
	Target donburi.Entity
	Has    bool

	// Indicator ring
	IndicatorVisible  bool
	IndicatorPosition mgl64.Vec3
	IndicatorAngle    float64 // Degrees
}

// Clear drops the current target.
func (t *TargetingData) Clear() {
	t.Target = donburi.Null
	t.Has = false
	t.IndicatorVisible = false
}

// Select makes e the current target.
func (t *TargetingData) Select(e donburi.Entity) {
	t.Target = e
	t.Has = true
}

var Targeting = donburi.NewComponentType[TargetingData]()
