package systems

import (
	"math"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/host"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion advances every controllable character's movement state.
func UpdateLocomotion(ecs *ecs.ECS) {
	h, ok := getHost(ecs)
	if !ok {
		return
	}
	dt := GetOrCreateClock(ecs).Delta

	components.Locomotion.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) || !e.HasComponent(components.Intent) {
			return
		}
		stepLocomotion(ecs, h.Physics, e, dt)
	})
}

func stepLocomotion(ecs *ecs.ECS, phys host.Physics, e *donburi.Entry, dt float64) {
	t := components.Transform.Get(e)
	loco := components.Locomotion.Get(e)
	in := components.Intent.Get(e)

	// Ground check: contact signal, then a short probe when not rising.
	grounded := phys.IsGroundContact(e.Entity())
	if !grounded && loco.VerticalVelocity <= 0 {
		origin := t.Position.Add(mgl64.Vec3{0, cfg.World.ProbeOffset, 0})
		grounded = phys.ProbeDown(origin, cfg.World.ProbeDistance)
	}

	if grounded {
		loco.CoyoteTimer = cfg.Player.CoyoteTime
	} else {
		loco.CoyoteTimer = math.Max(0, loco.CoyoteTimer-dt)
	}
	loco.DodgeCooldown = math.Max(0, loco.DodgeCooldown-dt)

	var horizontal mgl64.Vec3
	if loco.Dodging {
		loco.DodgeTimer -= dt
		if loco.DodgeTimer <= 0 {
			loco.DodgeTimer = 0
			loco.Dodging = false
		} else {
			horizontal = loco.DodgeDirection.Mul(cfg.Player.DodgeSpeed)
		}
	} else {
		running := steer(t, loco, in, grounded, dt)
		grounded = tryJump(ecs, e, loco, in, grounded)
		tryDodge(ecs, e, t, loco, in, grounded)
		horizontal = loco.MoveVelocity
		updateAnimator(e, loco, running, grounded, dt)
	}
	loco.Grounded = grounded

	applyGravity(loco, grounded, dt)

	displacement := horizontal.Mul(dt).Add(mgl64.Vec3{0, loco.VerticalVelocity * dt, 0})
	phys.Translate(e.Entity(), displacement)

	if t.Position.Y() < cfg.World.FloorThreshold {
		phys.Teleport(e.Entity(), cfg.World.RespawnPoint)
		loco.VerticalVelocity = 0
	}

	if e.HasComponent(components.State) {
		state := components.State.Get(e)
		switch {
		case loco.Dodging:
			state.Set(cfg.Dodging)
		case grounded:
			state.Set(cfg.Grounded)
		default:
			state.Set(cfg.Airborne)
		}
		state.StateTimer += dt
	}
}

// cameraBasis returns the horizontal forward and right vectors movement is
// relative to.
func cameraBasis(t *components.TransformData, in *components.IntentData) (forward, right mgl64.Vec3) {
	forward = mathutil.SafeNormalize(mathutil.Horizontal(in.Forward))
	right = mathutil.SafeNormalize(mathutil.Horizontal(in.Right))
	if forward.Len() == 0 || right.Len() == 0 {
		return t.Forward(), t.Right()
	}
	return forward, right
}

func moveAxes(in *components.IntentData) mgl64.Vec2 {
	axes := mgl64.Vec2{in.MoveX, in.MoveY}
	if axes.Len() > 1 {
		axes = axes.Normalize()
	}
	return axes
}

// steer turns input into horizontal velocity and facing. It reports
// whether the character is running.
func steer(t *components.TransformData, loco *components.LocomotionData, in *components.IntentData, grounded bool, dt float64) bool {
	axes := moveAxes(in)
	forward, right := cameraBasis(t, in)
	dir := forward.Mul(axes.Y()).Add(right.Mul(axes.X()))

	running := in.RunHeld && axes.Len() > cfg.Player.InputDeadzone
	speed := cfg.Player.WalkSpeed
	if running {
		speed = cfg.Player.RunSpeed
	}

	if dir.Len() > cfg.Player.InputDeadzone {
		t.Rotation = mathutil.SlerpShortest(t.Rotation, mathutil.LookRotation(dir), dt*cfg.Player.RotationSpeed)
		loco.MoveVelocity = dir.Mul(speed)
	} else if grounded {
		// Momentum is kept while airborne.
		loco.MoveVelocity = mathutil.ApproachVec(loco.MoveVelocity, mgl64.Vec3{}, dt*cfg.Player.GroundDecay)
	}
	return running
}

// tryJump returns the grounded flag for the rest of the tick.
func tryJump(ecs *ecs.ECS, e *donburi.Entry, loco *components.LocomotionData, in *components.IntentData, grounded bool) bool {
	if !in.JumpPressed || loco.CoyoteTimer <= 0 || loco.Dodging {
		return grounded
	}
	loco.VerticalVelocity = math.Sqrt(2 * cfg.Player.JumpHeight * math.Abs(cfg.Player.Gravity))
	loco.CoyoteTimer = 0
	playCue(ecs, e, cfg.CueJump)
	return false
}

func tryDodge(ecs *ecs.ECS, e *donburi.Entry, t *components.TransformData, loco *components.LocomotionData, in *components.IntentData, grounded bool) {
	if !in.DodgePressed || !grounded || loco.DodgeCooldown > 0 {
		return
	}
	forward, right := cameraBasis(t, in)
	dir := mathutil.SafeNormalize(forward.Mul(in.MoveY).Add(right.Mul(in.MoveX)))
	if dir.Len() < cfg.Player.InputDeadzone {
		dir = t.Forward()
	}

	t.Rotation = mathutil.LookRotation(dir)
	loco.Dodging = true
	loco.DodgeDirection = dir
	loco.DodgeTimer = cfg.Player.DodgeDuration
	loco.DodgeCooldown = cfg.Player.DodgeCooldown
	playCue(ecs, e, cfg.CueDodge)
}

func applyGravity(loco *components.LocomotionData, grounded bool, dt float64) {
	if grounded {
		if loco.VerticalVelocity < 0 {
			loco.VerticalVelocity = cfg.Player.GroundedBias
		}
		return
	}

	multiplier := 1.0
	if loco.VerticalVelocity < 0 {
		multiplier = cfg.Player.FallGravityMultiplier
	}
	loco.VerticalVelocity += cfg.Player.Gravity * multiplier * dt
	if loco.VerticalVelocity < -cfg.Player.MaxFallSpeed {
		loco.VerticalVelocity = -cfg.Player.MaxFallSpeed
	}
}

func updateAnimator(e *donburi.Entry, loco *components.LocomotionData, running, grounded bool, dt float64) {
	if !e.HasComponent(components.Animation) {
		return
	}
	anim := components.Animation.Get(e)
	if grounded {
		anim.Speed = mathutil.Approach(anim.Speed, loco.MoveVelocity.Len(), dt*cfg.Player.AnimSpeedLerp)
		anim.IsRunning = running
	}
	anim.Grounded = grounded
}
