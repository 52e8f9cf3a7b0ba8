// Package level loads arena layouts from Tiled maps. Pixel coordinates are
// converted to world units with the map centred on the origin; the map's
// Y axis becomes world -Z.
package level

import "github.com/go-gl/mathgl/mgl64"

// Level is a parsed arena layout.
type Level struct {
	Name  string
	MinX  float64
	MinZ  float64
	Width float64
	Depth float64

	Grounds []Box
	Walls   []Box

	PlayerSpawn Spawn
	Enemies     []Spawn
}

// Box is an axis-aligned block of static geometry.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Spawn places a character. Zero tuning fields fall back to the
// configured defaults.
type Spawn struct {
	Name     string
	Position mgl64.Vec3
	Yaw      float64 // Degrees

	Health         int
	DetectionRange float64
	MeleeRange     float64
	MoveSpeed      float64
}
