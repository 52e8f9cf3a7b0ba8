package systems

import (
	"testing"

	"github.com/automoto/ashgrove/components"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// partitioned is a 40x40 floor split by a thick wall that leaves a gap
// along the +Z edge.
func partitioned() *level.Level {
	return &level.Level{
		Name:  "partitioned",
		MinX:  -20,
		MinZ:  -20,
		Width: 40,
		Depth: 40,
		Grounds: []level.Box{
			{Min: mgl64.Vec3{-20, -1, -20}, Max: mgl64.Vec3{20, 0, 20}},
		},
		Walls: []level.Box{
			{Min: mgl64.Vec3{-3, 0, -20}, Max: mgl64.Vec3{3, 3, 6}},
		},
	}
}

func (w *testWorld) bot(pos mgl64.Vec3) *donburi.Entry {
	return factory.CreateBotPlayer(w.ecs, w.phys, "Bot", pos, 90)
}

func TestBotAcquiresTarget(t *testing.T) {
	w := newTestWorld(t, flatArena())
	// Both on nav cell centres so the route runs straight up +Z.
	enemy := w.enemy("Dummy", mgl64.Vec3{0.5, 0, 10.5})
	b := w.bot(mgl64.Vec3{0.5, 0, 0.5})

	w.tick(frame, UpdateBots)
	if !components.Intent.Get(b).CycleTargetPressed {
		t.Fatal("bot without a target should cycle")
	}
	w.tick(frame, UpdateTargeting)
	if got := targetOf(b); got != enemy.Entity() {
		t.Fatalf("target = %v, want the dummy", got)
	}

	w.tick(frame, UpdateBots)
	bot := components.Bot.Get(b)
	in := components.Intent.Get(b)
	if bot.AIState != components.BotStateChase {
		t.Errorf("state = %v, want chase", bot.AIState)
	}
	if in.MoveY != 1 || !in.RunHeld {
		t.Errorf("move = %v run = %v, want a full run", in.MoveY, in.RunHeld)
	}
	if !nearVec(in.Forward, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("forward = %v, want straight at the target", in.Forward)
	}
}

func TestBotRoutesAroundWall(t *testing.T) {
	w := newTestWorld(t, partitioned())
	// Spawned before any player so it stays put.
	enemy := w.enemy("Dummy", mgl64.Vec3{8, 0, 0})
	b := w.bot(mgl64.Vec3{-8, 0, 0})
	hp := components.Health.Get(enemy)

	maxZ := 0.0
	for i := 0; i < 40*60 && hp.Current == hp.Max; i++ {
		w.tick(frame, UpdateBots, UpdateLocomotion, UpdateCombat, UpdateEnemies, UpdateTargeting)
		maxZ = max(maxZ, components.Transform.Get(b).Position.Z())
	}

	if hp.Current == hp.Max {
		t.Fatalf("bot never reached the dummy; stopped at %v", components.Transform.Get(b).Position)
	}
	if maxZ < 6 {
		t.Errorf("bot peaked at z = %v, want it to go around the wall end", maxZ)
	}
}
