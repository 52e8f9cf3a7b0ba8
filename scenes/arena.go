package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/fonts"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ArenaScene runs one simulation against the local keyboard, mouse and
// gamepad. The arena restarts once the player's body has despawned.
type ArenaScene struct {
	level *level.Level
	opts  sim.Options
	input inputReader

	sim  *sim.Simulation
	once sync.Once
	err  error
}

// NewArenaScene creates a scene for lvl. The simulation itself is built on
// the first Update.
func NewArenaScene(lvl *level.Level, opts sim.Options) *ArenaScene {
	return &ArenaScene{level: lvl, opts: opts}
}

func (as *ArenaScene) configure() {
	as.sim, as.err = sim.New(as.level, as.opts)
	if as.err != nil {
		log.Printf("[scene] failed to start arena: %v", as.err)
	}
}

// Restart throws away the running simulation.
func (as *ArenaScene) Restart() {
	as.once = sync.Once{}
	as.sim = nil
	as.err = nil
}

func (as *ArenaScene) Update() error {
	as.once.Do(as.configure)
	if as.err != nil {
		return as.err
	}

	as.sim.SetIntent(as.input.read(cfg.C.Width, cfg.C.Height))
	as.sim.Step(1.0 / float64(ebiten.TPS()))

	if _, ok := as.sim.Player(); !ok {
		log.Printf("[scene] player defeated, restarting %s", as.level.Name)
		as.Restart()
	}
	return nil
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.sim == nil {
		return
	}
	drawWorld(screen, as.sim)
	drawHUD(screen, as.sim)

	if as.sim.EnemiesRemaining() == 0 {
		text.Draw(screen, "Arena cleared", fonts.Title.Get(), hudMargin, screen.Bounds().Dy()/2, cfg.HUD.IndicatorColor)
	}
	if as.sim.Paused() {
		drawPause(screen)
	}
}
