package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/physics"
	"github.com/automoto/ashgrove/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// cueRecorder is a host.Animator that remembers every cue it was sent.
type cueRecorder struct {
	cues []string
}

func (r *cueRecorder) PlayAnimationCue(_ donburi.Entity, cue string) error {
	r.cues = append(r.cues, cue)
	return nil
}

func (r *cueRecorder) count(cue string) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

// flatArena is a 100x100 floor with its top at y = 0 and no walls.
func flatArena() *level.Level {
	return &level.Level{
		Name:  "flat",
		MinX:  -50,
		MinZ:  -50,
		Width: 100,
		Depth: 100,
		Grounds: []level.Box{
			{Min: mgl64.Vec3{-50, -1, -50}, Max: mgl64.Vec3{50, 0, 50}},
		},
	}
}

type testWorld struct {
	ecs  *ecs.ECS
	phys *physics.World
	anim *cueRecorder
}

func newTestWorld(t *testing.T, lvl *level.Level) *testWorld {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	phys := factory.CreateLevel(e, lvl)
	anim := &cueRecorder{}
	SetHost(e, phys, anim)
	return &testWorld{ecs: e, phys: phys, anim: anim}
}

// tick advances the clock by dt and runs the given systems in order.
func (w *testWorld) tick(dt float64, systems ...ecs.System) {
	GetOrCreateClock(w.ecs).Delta = dt
	UpdateClock(w.ecs)
	for _, s := range systems {
		s(w.ecs)
	}
}

func (w *testWorld) player(pos mgl64.Vec3) *donburi.Entry {
	return factory.CreatePlayer(w.ecs, w.phys, "Player", pos, 0)
}

func (w *testWorld) enemy(name string, pos mgl64.Vec3) *donburi.Entry {
	return factory.CreateEnemy(w.ecs, w.phys, level.Spawn{Name: name, Position: pos})
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearVec(a, b mgl64.Vec3) bool {
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}
