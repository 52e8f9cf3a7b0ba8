// Package core runs the character simulation headless, with a bot in place
// of the human player.
package core

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/ashgrove/components"
	"github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/sim"
)

var ErrBadTickRate = errors.New("tick rate must be positive")

// Options configures a headless run. Values come from the environment and
// may be overridden by flags.
type Options struct {
	Level    string `env:"ASHGROVE_LEVEL"`  // TMX path, empty for the built-in arena
	Tuning   string `env:"ASHGROVE_TUNING"` // Optional YAML tuning file
	TickRate int    `env:"ASHGROVE_TICK_RATE" envDefault:"60"`
	MaxTicks int    `env:"ASHGROVE_MAX_TICKS" envDefault:"0"` // Zero runs until the arena is decided
	BotName  string `env:"ASHGROVE_BOT_NAME" envDefault:"Bot"`
}

// LoadOptions reads Options from the environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := config.ParseEnv(&opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Result describes how a run ended.
type Result struct {
	Reason           string
	Ticks            int
	Elapsed          float64 // Simulated seconds
	PlayerHealth     float64
	EnemiesRemaining int
}

// Server owns one simulation and the loop that drives it.
type Server struct {
	opts Options
	sim  *sim.Simulation
	loop *GameLoop

	mu     sync.Mutex
	ticks  int
	result *Result
}

// NewServer loads the level and tuning named in opts and populates the arena.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate %d: %w", opts.TickRate, ErrBadTickRate)
	}
	if opts.Tuning != "" {
		if err := config.LoadFile(opts.Tuning); err != nil {
			return nil, err
		}
	}

	lvl, err := loadLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	simulation, err := sim.New(lvl, sim.Options{PlayerName: opts.BotName, Bot: true})
	if err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	s := &Server{opts: opts, sim: simulation}
	s.loop = NewGameLoop(s, opts.TickRate)
	return s, nil
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		return level.Default()
	}
	return level.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Run blocks until the run is decided or Stop is called.
func (s *Server) Run() Result {
	s.loop.Run()
	return s.Result()
}

// Stop ends the run early.
func (s *Server) Stop() {
	s.loop.Stop()
}

// Tick advances the simulation by one fixed step. It reports the result and
// true once the run is over; later calls do nothing.
func (s *Server) Tick() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return *s.result, true
	}

	s.sim.Step(1 / float64(s.opts.TickRate))
	s.ticks++

	if s.ticks%s.opts.TickRate == 0 {
		s.logStatus()
	}

	reason := ""
	switch {
	case !s.sim.PlayerAlive():
		reason = "player died"
	case s.sim.EnemiesRemaining() == 0:
		reason = "arena cleared"
	case s.opts.MaxTicks > 0 && s.ticks >= s.opts.MaxTicks:
		reason = "tick limit reached"
	}
	if reason == "" {
		return Result{}, false
	}

	s.result = &Result{
		Reason:           reason,
		Ticks:            s.ticks,
		Elapsed:          s.sim.Clock().Now,
		PlayerHealth:     s.sim.PlayerHealthPercent(),
		EnemiesRemaining: s.sim.EnemiesRemaining(),
	}
	log.Printf("[server] run over after %d ticks (%.1fs): %s", s.ticks, s.result.Elapsed, reason)
	return *s.result, true
}

// Result returns the final result, or the zero Result while running.
func (s *Server) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}
	}
	return *s.result
}

func (s *Server) logStatus() {
	target := "none"
	if t, ok := s.sim.CurrentTarget(); ok {
		hp := components.Health.Get(t)
		target = fmt.Sprintf("%s (%d/%d)", components.Identity.Get(t).Name, hp.Current, hp.Max)
	}
	log.Printf("[server] t=%.1fs player %.0f%% enemies %d target %s",
		s.sim.Clock().Now, s.sim.PlayerHealthPercent()*100, s.sim.EnemiesRemaining(), target)
}
