package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// IntentData is one tick of input for a controllable character. Pressed
// fields are edge-triggered and rewritten by the input source every tick.
type IntentData struct {
	MoveX float64 // Strafe axis, -1..1
	MoveY float64 // Forward axis, -1..1

	RunHeld            bool
	JumpPressed        bool
	DodgePressed       bool
	AttackPressed      bool
	HeavyAttackPressed bool

	// Targeting
	SelectTargetPressed bool
	CycleTargetPressed  bool
	CursorX, CursorY    float64
	ViewportW           float64
	ViewportH           float64

	// Camera control
	RotateHeld   bool
	LookDX       float64
	LookDY       float64
	ZoomDelta    float64
	PauseToggled bool

	// Camera-relative basis. A zero basis falls back to the character's own
	// forward and right.
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

var Intent = donburi.NewComponentType[IntentData]()
