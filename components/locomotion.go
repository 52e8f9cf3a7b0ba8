package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type LocomotionData struct {
	MoveVelocity     mgl64.Vec3 // Horizontal only
	VerticalVelocity float64
	Grounded         bool

	CoyoteTimer float64

	// Dodge session
	Dodging        bool
	DodgeTimer     float64
	DodgeCooldown  float64
	DodgeDirection mgl64.Vec3 // Fixed when the dodge starts
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
