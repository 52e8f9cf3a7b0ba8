package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cfg "github.com/automoto/ashgrove/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var builtin embed.FS

var (
	ErrNoPlayerSpawn = errors.New("level has no PlayerSpawn object")
	ErrNoGround      = errors.New("level has no Ground objects")
)

// Default loads the built-in arena.
func Default() (*Level, error) {
	return Load(builtin, "levels/arena.tmx")
}

// Builtin exposes the embedded levels directory.
func Builtin() fs.FS {
	return builtin
}

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := cfg.World.PixelsPerUnit
	lvl := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / ppu,
	}
	lvl.MinX = -lvl.Width / 2
	lvl.MinZ = -lvl.Depth / 2

	hasPlayer := false
	var enemies []*tiled.Object
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				top := floatProp(o, "top", 0)
				lvl.Grounds = append(lvl.Grounds, lvl.rect(o, top-cfg.World.GroundDepth, top))
			}
		case "Walls":
			for _, o := range og.Objects {
				base := floatProp(o, "base", 0)
				height := floatProp(o, "height", cfg.World.WallHeight)
				lvl.Walls = append(lvl.Walls, lvl.rect(o, base, base+height))
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				lvl.PlayerSpawn = lvl.spawn(og.Objects[0])
				hasPlayer = true
			}
		case "EnemySpawn":
			enemies = append(enemies, og.Objects...)
		}
	}

	if !hasPlayer {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	if len(lvl.Grounds) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoGround)
	}

	// Object IDs give a stable spawn order independent of group layout
	sort.Slice(enemies, func(i, j int) bool {
		return enemies[i].ID < enemies[j].ID
	})
	for _, o := range enemies {
		lvl.Enemies = append(lvl.Enemies, lvl.spawn(o))
	}

	return lvl, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = lvl
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}

func (l *Level) toWorld(px, py float64) (x, z float64) {
	ppu := cfg.World.PixelsPerUnit
	return px/ppu + l.MinX, -(py/ppu + l.MinZ)
}

func (l *Level) rect(o *tiled.Object, bottom, top float64) Box {
	x0, z1 := l.toWorld(o.X, o.Y)
	x1, z0 := l.toWorld(o.X+o.Width, o.Y+o.Height)
	return Box{
		Min: mgl64.Vec3{x0, bottom, z0},
		Max: mgl64.Vec3{x1, top, z1},
	}
}

func (l *Level) spawn(o *tiled.Object) Spawn {
	x, z := l.toWorld(o.X, o.Y)
	return Spawn{
		Name:           o.Name,
		Position:       mgl64.Vec3{x, floatProp(o, "elevation", 0), z},
		Yaw:            floatProp(o, "yaw", 0),
		Health:         o.Properties.GetInt("health"),
		DetectionRange: floatProp(o, "detectionRange", 0),
		MeleeRange:     floatProp(o, "meleeRange", 0),
		MoveSpeed:      floatProp(o, "moveSpeed", 0),
	}
}

// floatProp reads a numeric property, falling back when it is absent or
// malformed.
func floatProp(o *tiled.Object, name string, fallback float64) float64 {
	raw := o.Properties.GetString(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
