package factory

import (
	"log"

	"github.com/automoto/ashgrove/archetypes"
	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/level"
	"github.com/automoto/ashgrove/nav"
	"github.com/automoto/ashgrove/physics"
	"github.com/automoto/ashgrove/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and static geometry for lvl.
func CreateLevel(ecs *ecs.ECS, lvl *level.Level) *physics.World {
	phys := physics.NewWorld(ecs.World, lvl.MinX, lvl.MinZ, lvl.Width, lvl.Depth)

	for _, b := range lvl.Grounds {
		CreateGround(ecs, phys, b)
	}
	for _, b := range lvl.Walls {
		CreateWall(ecs, phys, b)
	}
	CreateNavigation(ecs, lvl)

	log.Printf("Loaded level %q: %d ground, %d walls, %d enemy spawns, %.0fx%.0f units",
		lvl.Name, len(lvl.Grounds), len(lvl.Walls), len(lvl.Enemies), lvl.Width, lvl.Depth)
	return phys
}

// CreateEnemies spawns every enemy in lvl. Call after the player exists.
func CreateEnemies(ecs *ecs.ECS, phys *physics.World, lvl *level.Level) []*donburi.Entry {
	enemies := make([]*donburi.Entry, 0, len(lvl.Enemies))
	for _, spawn := range lvl.Enemies {
		enemies = append(enemies, CreateEnemy(ecs, phys, spawn))
	}
	return enemies
}

func CreateGround(ecs *ecs.ECS, phys *physics.World, b level.Box) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Box.SetValue(ground, components.BoxData{Min: b.Min, Max: b.Max})
	phys.AddBox(ground, tags.ResolvGround)
	return ground
}

func CreateWall(ecs *ecs.ECS, phys *physics.World, b level.Box) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	components.Box.SetValue(wall, components.BoxData{Min: b.Min, Max: b.Max})
	phys.AddBox(wall, tags.ResolvSolid)
	return wall
}

// CreateNavigation rasterises the level's walls into the route planning
// singleton.
func CreateNavigation(ecs *ecs.ECS, lvl *level.Level) *donburi.Entry {
	grid := nav.New(lvl, cfg.Bot.NavCellSize, cfg.Player.Radius)
	ent := ecs.World.Entry(ecs.World.Create(components.Navigation))
	components.Navigation.SetValue(ent, components.NavigationData{Grid: grid})
	return ent
}
