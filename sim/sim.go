// Package sim assembles the character simulation: it owns the ECS world,
// the system order and read-only accessors for collaborators such as the
// desktop scene and the headless server.
package sim

import (
	"errors"

	"github.com/automoto/ashgrove/components"
	"github.com/automoto/ashgrove/host"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/physics"
	"github.com/automoto/ashgrove/systems"
	"github.com/automoto/ashgrove/systems/factory"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var ErrNoLevel = errors.New("sim: no level")

// Options controls how a Simulation is populated.
type Options struct {
	PlayerName string
	Bot        bool          // Drive the player with AI instead of SetIntent
	Animator   host.Animator // Nil discards cues
	NoEnemies  bool
}

// Simulation is one arena with a player, its enemies and a follow camera.
// It is not safe for concurrent use.
type Simulation struct {
	ECS     *ecs.ECS
	Physics *physics.World
	Level   *level.Level

	player donburi.Entity
	camera donburi.Entity
	living *donburi.Query
}

// New builds the world for lvl.
func New(lvl *level.Level, opts Options) (*Simulation, error) {
	if lvl == nil {
		return nil, ErrNoLevel
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "Player"
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Always runs so a paused game can be resumed.
	e.AddSystem(systems.UpdatePause)

	e.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBots))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateLocomotion))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCombat))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateTargeting))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	phys := factory.CreateLevel(e, lvl)
	systems.SetHost(e, phys, opts.Animator)

	spawn := lvl.PlayerSpawn
	var player *donburi.Entry
	if opts.Bot {
		player = factory.CreateBotPlayer(e, phys, opts.PlayerName, spawn.Position, spawn.Yaw)
	} else {
		player = factory.CreatePlayer(e, phys, opts.PlayerName, spawn.Position, spawn.Yaw)
	}
	if !opts.NoEnemies {
		factory.CreateEnemies(e, phys, lvl)
	}
	camera := factory.CreateCamera(e)
	components.Camera.Get(camera).Yaw = spawn.Yaw
	// Place the camera before the first tick.
	systems.UpdateCamera(e)

	return &Simulation{
		ECS:     e,
		Physics: phys,
		Level:   lvl,
		player:  player.Entity(),
		camera:  camera.Entity(),
		living: donburi.NewQuery(filter.And(
			filter.Contains(components.Perception, components.Health),
			filter.Not(filter.Contains(components.Death)),
		)),
	}, nil
}

// Step advances the simulation by dt seconds.
func (s *Simulation) Step(dt float64) {
	systems.GetOrCreateClock(s.ECS).Delta = dt
	s.ECS.Update()
}

// Player returns the player entry, or false once it has despawned.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	if !s.ECS.World.Valid(s.player) {
		return nil, false
	}
	return s.ECS.World.Entry(s.player), true
}

// SetIntent replaces the player's input for the next Step. A zero basis is
// filled from the camera.
func (s *Simulation) SetIntent(in components.IntentData) {
	player, ok := s.Player()
	if !ok {
		return
	}
	if in.Forward.Len() == 0 || in.Right.Len() == 0 {
		in.Forward, in.Right = s.CameraBasis()
	}
	components.Intent.SetValue(player, in)
}

// PlayerAlive reports whether the player exists and has health left.
func (s *Simulation) PlayerAlive() bool {
	player, ok := s.Player()
	return ok && !components.Health.Get(player).IsDead()
}

// PlayerHealthPercent returns the player's health in [0, 1], zero once
// despawned.
func (s *Simulation) PlayerHealthPercent() float64 {
	player, ok := s.Player()
	if !ok {
		return 0
	}
	return components.Health.Get(player).Percent()
}

// CurrentTarget returns the player's live target.
func (s *Simulation) CurrentTarget() (*donburi.Entry, bool) {
	player, ok := s.Player()
	if !ok {
		return nil, false
	}
	return systems.CurrentTarget(s.ECS, player)
}

// HasTarget reports whether the player holds a live target.
func (s *Simulation) HasTarget() bool {
	_, ok := s.CurrentTarget()
	return ok
}

// EnemiesRemaining counts enemies that are still alive.
func (s *Simulation) EnemiesRemaining() int {
	return s.living.Count(s.ECS.World)
}

// Enemies returns every enemy entry, dead or alive, in spawn order.
func (s *Simulation) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(s.ECS.World, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sortByID(out)
	return out
}

func (s *Simulation) TogglePause() {
	p := systems.GetOrCreatePause(s.ECS)
	p.IsPaused = !p.IsPaused
}

func (s *Simulation) Paused() bool {
	return systems.GetOrCreatePause(s.ECS).IsPaused
}

// Clock returns the simulation clock.
func (s *Simulation) Clock() components.ClockData {
	return *systems.GetOrCreateClock(s.ECS)
}

// Camera returns the follow camera.
func (s *Simulation) Camera() *components.CameraData {
	return components.Camera.Get(s.ECS.World.Entry(s.camera))
}

// CameraBasis returns the horizontal movement basis of the camera.
func (s *Simulation) CameraBasis() (forward, right mgl64.Vec3) {
	cam := s.Camera()
	return cam.ForwardBasis(), cam.RightBasis()
}
