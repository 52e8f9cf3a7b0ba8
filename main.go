package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/fonts"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/scenes"
	"github.com/automoto/ashgrove/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	tuning  string
	watcher *config.Watcher
}

func NewGame(scene Scene, tuning string, watcher *config.Watcher) *Game {
	return &Game{
		bounds:  image.Rectangle{},
		scene:   scene,
		tuning:  tuning,
		watcher: watcher,
	}
}

func (g *Game) Update() error {
	g.reloadTuning()
	return g.scene.Update()
}

// reloadTuning applies pending edits to the tuning file between ticks.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Clean(path) != filepath.Clean(g.tuning) {
				continue
			}
			if err := config.LoadFile(g.tuning); err != nil {
				log.Printf("[tuning] reload failed, keeping previous values: %v", err)
				continue
			}
			log.Printf("[tuning] reloaded %s", g.tuning)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[tuning] watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadLevel(path string) (*level.Level, error) {
	if path == "" {
		return level.Default()
	}
	return level.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	levelPath := flag.String("level", "", "TMX level to play (built-in arena when empty)")
	tuning := flag.String("tuning", "", "YAML tuning file, reloaded on change")
	name := flag.String("name", "Player", "player name")
	mute := flag.Bool("mute", false, "disable cue sounds")
	flag.Parse()

	var watcher *config.Watcher
	if *tuning != "" {
		if err := config.LoadFile(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		w, err := config.NewWatcher(filepath.Dir(*tuning))
		if err != nil {
			log.Printf("Warning: tuning hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	lvl, err := loadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Ashgrove - " + lvl.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	sounds := scenes.NewCueSounds()
	sounds.Muted = *mute

	scene := scenes.NewArenaScene(lvl, sim.Options{PlayerName: *name, Animator: sounds})
	if err := ebiten.RunGame(NewGame(scene, *tuning, watcher)); err != nil {
		log.Fatal(err)
	}
}
