package scenes

import (
	"github.com/automoto/ashgrove/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveForward
	ActionMoveBack
	ActionRun
	ActionJump
	ActionDodge
	ActionAttack
	ActionHeavyAttack
	ActionCycleTarget
	ActionPause
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys, mouse buttons and gamepad buttons bound
// to an action.
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Pixels of mouse travel per degree of orbit, before camera sensitivity
	MouseScale float64
	// Right stick degrees per tick at full deflection, before camera sensitivity
	StickLookSpeed float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	MouseScale:     0.1,
	StickLookSpeed: 1.5,
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionMoveForward: {
			Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMoveBack: {
			Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionRun: {
			Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
			// Left stick press
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionDodge: {
			Keys: []ebiten.Key{ebiten.KeyControlLeft},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		ActionAttack: {
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionHeavyAttack: {
			Keys: []ebiten.Key{ebiten.Key1},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
		},
		ActionCycleTarget: {
			Keys: []ebiten.Key{ebiten.KeyTab},
			// Right bumper
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
	},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// inputReader turns device state into one tick of intent.
type inputReader struct {
	held     [ActionCount]bool
	previous [ActionCount]bool

	cursorX, cursorY int
	hasCursor        bool
}

func (r *inputReader) poll() {
	r.previous = r.held
	r.held = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				r.held[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				r.held[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					r.held[actionID] = true
				}
			}
		}
	}
}

func (r *inputReader) pressed(a ActionID) bool {
	return r.held[a] && !r.previous[a]
}

// read polls every device and returns the intent for this tick. The camera
// basis is left zero for the simulation to fill in.
func (r *inputReader) read(width, height int) components.IntentData {
	r.poll()

	in := components.IntentData{
		RunHeld:            r.held[ActionRun],
		JumpPressed:        r.pressed(ActionJump),
		DodgePressed:       r.pressed(ActionDodge),
		AttackPressed:      r.pressed(ActionAttack),
		HeavyAttackPressed: r.pressed(ActionHeavyAttack),
		CycleTargetPressed: r.pressed(ActionCycleTarget),
		PauseToggled:       r.pressed(ActionPause),
		ViewportW:          float64(width),
		ViewportH:          float64(height),
	}

	if r.held[ActionMoveRight] {
		in.MoveX++
	}
	if r.held[ActionMoveLeft] {
		in.MoveX--
	}
	if r.held[ActionMoveForward] {
		in.MoveY++
	}
	if r.held[ActionMoveBack] {
		in.MoveY--
	}
	if x, y, ok := leftStick(); ok {
		in.MoveX, in.MoveY = x, y
	}

	cx, cy := ebiten.CursorPosition()
	in.CursorX, in.CursorY = float64(cx), float64(cy)
	in.SelectTargetPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	in.RotateHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if r.hasCursor && in.RotateHeld {
		in.LookDX = float64(cx-r.cursorX) * Input.MouseScale
		in.LookDY = float64(cy-r.cursorY) * Input.MouseScale
	}
	r.cursorX, r.cursorY, r.hasCursor = cx, cy, true

	if x, y, ok := rightStick(); ok {
		in.RotateHeld = true
		in.LookDX = x * Input.StickLookSpeed
		in.LookDY = y * Input.StickLookSpeed
	}

	_, wheel := ebiten.Wheel()
	in.ZoomDelta = wheel
	return in
}

// leftStick returns the first gamepad's movement stick outside the deadzone,
// with forward positive.
func leftStick() (x, y float64, ok bool) {
	return stick(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical, true)
}

func rightStick() (x, y float64, ok bool) {
	return stick(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical, false)
}

func stick(hAxis, vAxis ebiten.StandardGamepadAxis, invertY bool) (x, y float64, ok bool) {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, hAxis)
		v := ebiten.StandardGamepadAxisValue(gpID, vAxis)
		if h*h+v*v < deadzone*deadzone {
			continue
		}
		if invertY {
			v = -v
		}
		return h, v, true
	}
	return 0, 0, false
}
