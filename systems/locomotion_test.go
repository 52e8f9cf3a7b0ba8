package systems

import (
	"math"
	"testing"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func setIntent(e *donburi.Entry, in components.IntentData) {
	components.Intent.SetValue(e, in)
}

func TestGroundedOnFloor(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 0, 0})

	w.tick(1.0/60, UpdateLocomotion)

	loco := components.Locomotion.Get(p)
	if !loco.Grounded {
		t.Fatal("expected player resting on the floor to be grounded")
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Grounded {
		t.Errorf("state = %v, want grounded", got)
	}
	if !near(loco.CoyoteTimer, cfg.Player.CoyoteTime) {
		t.Errorf("coyote timer = %v, want %v", loco.CoyoteTimer, cfg.Player.CoyoteTime)
	}
}

func TestJump(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 0, 0})
	dt := 1.0 / 60

	w.tick(dt, UpdateLocomotion)

	setIntent(p, components.IntentData{JumpPressed: true})
	w.tick(dt, UpdateLocomotion)

	loco := components.Locomotion.Get(p)
	want := math.Sqrt(2*cfg.Player.JumpHeight*math.Abs(cfg.Player.Gravity)) + cfg.Player.Gravity*dt
	if !near(loco.VerticalVelocity, want) {
		t.Fatalf("vertical velocity = %v, want %v", loco.VerticalVelocity, want)
	}
	if loco.CoyoteTimer != 0 {
		t.Errorf("coyote timer = %v, want 0 after jumping", loco.CoyoteTimer)
	}
	if y := components.Transform.Get(p).Position.Y(); y <= 0 {
		t.Errorf("y = %v, want above the floor", y)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Airborne {
		t.Errorf("state = %v, want airborne", got)
	}

	// A second press while rising is ignored.
	w.tick(dt, UpdateLocomotion)
	if !near(loco.VerticalVelocity, want+cfg.Player.Gravity*dt) {
		t.Errorf("vertical velocity = %v, want %v", loco.VerticalVelocity, want+cfg.Player.Gravity*dt)
	}
	if n := w.anim.count(cfg.CueJump); n != 1 {
		t.Errorf("jump cues = %d, want 1", n)
	}
}

func TestJumpNotCancelledByGroundProbe(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 0, 0})
	dt := 1.0 / 60

	w.tick(dt, UpdateLocomotion)
	setIntent(p, components.IntentData{JumpPressed: true})
	w.tick(dt, UpdateLocomotion)

	// Still close enough that a downward probe would report the floor.
	pos := components.Transform.Get(p).Position
	origin := pos.Add(mgl64.Vec3{0, cfg.World.ProbeOffset, 0})
	if !w.phys.ProbeDown(origin, cfg.World.ProbeDistance) {
		t.Fatalf("floor out of probe reach at y = %v", pos.Y())
	}

	setIntent(p, components.IntentData{})
	w.tick(dt, UpdateLocomotion)

	loco := components.Locomotion.Get(p)
	if loco.Grounded || loco.VerticalVelocity <= 0 {
		t.Errorf("grounded = %v vertical velocity = %v, want rising", loco.Grounded, loco.VerticalVelocity)
	}
	if y := components.Transform.Get(p).Position.Y(); y <= pos.Y() {
		t.Errorf("y = %v, want above %v", y, pos.Y())
	}
}

func TestCoyoteWindow(t *testing.T) {
	const dt = 0.01

	tests := []struct {
		name     string
		pressAt  int
		wantJump bool
	}{
		{"inside grace window", 14, true},
		{"after grace window", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, flatArena())
			p := w.player(mgl64.Vec3{0, 10, 0})
			loco := components.Locomotion.Get(p)
			loco.CoyoteTimer = cfg.Player.CoyoteTime

			for i := 1; i < tt.pressAt; i++ {
				w.tick(dt, UpdateLocomotion)
			}
			setIntent(p, components.IntentData{JumpPressed: true})
			w.tick(dt, UpdateLocomotion)

			jumped := loco.VerticalVelocity > 0
			if jumped != tt.wantJump {
				t.Errorf("jumped = %v, want %v (vy %v)", jumped, tt.wantJump, loco.VerticalVelocity)
			}
		})
	}
}

func TestMovementSpeed(t *testing.T) {
	tests := []struct {
		name string
		in   components.IntentData
		want float64
	}{
		{"walk forward", components.IntentData{MoveY: 1}, 3.5},
		{"walk diagonal", components.IntentData{MoveX: 1, MoveY: 1}, 3.5},
		{"run diagonal", components.IntentData{MoveX: 1, MoveY: 1, RunHeld: true}, 6},
		{"half stick", components.IntentData{MoveY: 0.5}, 1.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, flatArena())
			p := w.player(mgl64.Vec3{0, 0, 0})
			w.tick(1.0/60, UpdateLocomotion)

			setIntent(p, tt.in)
			w.tick(1.0/60, UpdateLocomotion)

			if got := components.Locomotion.Get(p).MoveVelocity.Len(); !near(got, tt.want) {
				t.Errorf("speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMovementUsesFacingWithoutCameraBasis(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 0, 0})
	components.Transform.Get(p).Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})

	setIntent(p, components.IntentData{MoveY: 1})
	w.tick(1.0/60, UpdateLocomotion)

	got := components.Locomotion.Get(p).MoveVelocity
	if !nearVec(got, mgl64.Vec3{3.5, 0, 0}) {
		t.Errorf("velocity = %v, want +X at walk speed", got)
	}
}

func TestMomentumWithoutInput(t *testing.T) {
	tests := []struct {
		name      string
		start     mgl64.Vec3
		wantDecay bool
	}{
		{"grounded decays", mgl64.Vec3{0, 0, 0}, true},
		{"airborne keeps momentum", mgl64.Vec3{0, 10, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, flatArena())
			p := w.player(tt.start)
			loco := components.Locomotion.Get(p)
			loco.MoveVelocity = mgl64.Vec3{0, 0, 5}

			w.tick(1.0/60, UpdateLocomotion)

			speed := loco.MoveVelocity.Len()
			if tt.wantDecay && speed >= 5 {
				t.Errorf("speed = %v, want decay below 5", speed)
			}
			if !tt.wantDecay && !near(speed, 5) {
				t.Errorf("speed = %v, want 5", speed)
			}
		})
	}
}

func TestDodgeIsExclusive(t *testing.T) {
	w := newTestWorld(t, flatArena())
	cfg.Player.DodgeDuration = 0.25
	const dt = 0.0625

	p := w.player(mgl64.Vec3{0, 0, 0})
	w.tick(dt, UpdateLocomotion, UpdateCombat)

	setIntent(p, components.IntentData{DodgePressed: true})
	w.tick(dt, UpdateLocomotion, UpdateCombat)

	loco := components.Locomotion.Get(p)
	if !loco.Dodging {
		t.Fatal("expected dodge to start")
	}
	if !nearVec(loco.DodgeDirection, mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("dodge direction = %v, want forward", loco.DodgeDirection)
	}
	if got := components.State.Get(p).CurrentState; got != cfg.Dodging {
		t.Errorf("state = %v, want dodging", got)
	}

	tr := components.Transform.Get(p)
	noise := components.IntentData{MoveX: 1, JumpPressed: true, AttackPressed: true, DodgePressed: true, RunHeld: true}
	for i := 0; i < 3; i++ {
		before := tr.Position
		setIntent(p, noise)
		w.tick(dt, UpdateLocomotion, UpdateCombat)

		want := before.Add(mgl64.Vec3{0, 0, cfg.Player.DodgeSpeed * dt})
		if !nearVec(tr.Position, want) {
			t.Fatalf("tick %d: position = %v, want %v", i, tr.Position, want)
		}
		if !loco.Dodging {
			t.Fatalf("tick %d: dodge ended early", i)
		}
	}

	if !math.IsInf(components.Combat.Get(p).LastTrigger[components.AttackLight], -1) {
		t.Error("attack fired during dodge")
	}
	if n := w.anim.count(cfg.CueJump); n != 0 {
		t.Errorf("jump cues = %d, want 0", n)
	}

	before := tr.Position
	setIntent(p, components.IntentData{})
	w.tick(dt, UpdateLocomotion)
	if loco.Dodging {
		t.Fatal("expected dodge to end")
	}
	if !near(tr.Position.Z(), before.Z()) || !near(tr.Position.X(), before.X()) {
		t.Errorf("moved on the exit tick: %v -> %v", before, tr.Position)
	}
}

func TestDodgeCooldown(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 0, 0})
	const dt = 0.05

	w.tick(dt, UpdateLocomotion)
	setIntent(p, components.IntentData{DodgePressed: true})
	w.tick(dt, UpdateLocomotion)

	loco := components.Locomotion.Get(p)
	for loco.Dodging {
		setIntent(p, components.IntentData{})
		w.tick(dt, UpdateLocomotion)
	}

	if loco.DodgeCooldown <= 0 {
		t.Fatal("expected cooldown to still be running after the dodge")
	}
	setIntent(p, components.IntentData{DodgePressed: true})
	w.tick(dt, UpdateLocomotion)
	if loco.Dodging {
		t.Error("dodge restarted while on cooldown")
	}
	if n := w.anim.count(cfg.CueDodge); n != 1 {
		t.Errorf("dodge cues = %d, want 1", n)
	}
}

func TestFallThroughFloorRespawns(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, -9.95, 0})

	w.tick(0.1, UpdateLocomotion)

	if got := components.Transform.Get(p).Position; !nearVec(got, cfg.World.RespawnPoint) {
		t.Errorf("position = %v, want respawn point %v", got, cfg.World.RespawnPoint)
	}
	if vy := components.Locomotion.Get(p).VerticalVelocity; vy != 0 {
		t.Errorf("vertical velocity = %v, want 0", vy)
	}
}

func TestMaxFallSpeed(t *testing.T) {
	w := newTestWorld(t, flatArena())
	p := w.player(mgl64.Vec3{0, 500, 0})

	for i := 0; i < 200; i++ {
		w.tick(1.0/60, UpdateLocomotion)
	}
	if vy := components.Locomotion.Get(p).VerticalVelocity; !near(vy, -cfg.Player.MaxFallSpeed) {
		t.Errorf("vertical velocity = %v, want %v", vy, -cfg.Player.MaxFallSpeed)
	}
}
