// Package nav plans walking routes across an arena's floor plan with A*.
package nav

import (
	"math"

	"github.com/automoto/ashgrove/level"
	astar "github.com/beefsack/go-astar"
	"github.com/go-gl/mathgl/mgl64"
)

// Grid is the walkable floor plan of a level, one node per square cell on
// the XZ plane.
type Grid struct {
	Width, Depth int
	CellSize     float64
	MinX, MinZ   float64
	Nodes        [][]*Node // Indexed [z][x]
}

// Node is one grid cell. It implements astar.Pather.
type Node struct {
	X, Z     int
	Walkable bool
	grid     *Grid
}

var cardinals = []struct{ dx, dz int }{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

var diagonals = []struct{ dx, dz int }{
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// PathNeighbors returns adjacent walkable nodes. Diagonals are only offered
// when both cardinal cells beside them are open so paths never clip a
// wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	var neighbors []astar.Pather
	for _, d := range cardinals {
		if nb := n.grid.walkable(n.X+d.dx, n.Z+d.dz); nb != nil {
			neighbors = append(neighbors, nb)
		}
	}
	for _, d := range diagonals {
		if n.grid.walkable(n.X+d.dx, n.Z) == nil || n.grid.walkable(n.X, n.Z+d.dz) == nil {
			continue
		}
		if nb := n.grid.walkable(n.X+d.dx, n.Z+d.dz); nb != nil {
			neighbors = append(neighbors, nb)
		}
	}
	return neighbors
}

// PathNeighborCost is the step length in cells.
func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return n.PathEstimatedCost(to)
}

// PathEstimatedCost is the Euclidean distance in cells.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx := float64(t.X - n.X)
	dz := float64(t.Z - n.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// New rasterises lvl's walls into a grid. Cells within clearance of a wall
// are blocked so a body of that radius can follow the route.
func New(lvl *level.Level, cellSize, clearance float64) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	g := &Grid{
		Width:    max(1, int(math.Ceil(lvl.Width/cellSize))),
		Depth:    max(1, int(math.Ceil(lvl.Depth/cellSize))),
		CellSize: cellSize,
		MinX:     lvl.MinX,
		MinZ:     lvl.MinZ,
	}

	g.Nodes = make([][]*Node, g.Depth)
	for z := 0; z < g.Depth; z++ {
		g.Nodes[z] = make([]*Node, g.Width)
		for x := 0; x < g.Width; x++ {
			g.Nodes[z][x] = &Node{X: x, Z: z, Walkable: true, grid: g}
		}
	}

	for _, w := range lvl.Walls {
		x0, z0 := g.cellOf(w.Min.X()-clearance, w.Min.Z()-clearance)
		x1, z1 := g.cellOf(w.Max.X()+clearance, w.Max.Z()+clearance)
		for z := z0; z <= z1; z++ {
			for x := x0; x <= x1; x++ {
				if g.overlaps(x, z, w, clearance) {
					g.Nodes[z][x].Walkable = false
				}
			}
		}
	}
	return g
}

// overlaps reports whether the cell's centre lies inside the wall grown by
// clearance.
func (g *Grid) overlaps(x, z int, w level.Box, clearance float64) bool {
	c := g.CellCenter(x, z)
	return c.X() > w.Min.X()-clearance && c.X() < w.Max.X()+clearance &&
		c.Z() > w.Min.Z()-clearance && c.Z() < w.Max.Z()+clearance
}

func (g *Grid) walkable(x, z int) *Node {
	if x < 0 || x >= g.Width || z < 0 || z >= g.Depth {
		return nil
	}
	if n := g.Nodes[z][x]; n.Walkable {
		return n
	}
	return nil
}

func (g *Grid) cellOf(wx, wz float64) (int, int) {
	x := int(math.Floor((wx - g.MinX) / g.CellSize))
	z := int(math.Floor((wz - g.MinZ) / g.CellSize))
	return clampInt(x, 0, g.Width-1), clampInt(z, 0, g.Depth-1)
}

// CellCenter converts grid coordinates to the world position of the cell's
// centre on the floor.
func (g *Grid) CellCenter(x, z int) mgl64.Vec3 {
	return mgl64.Vec3{
		g.MinX + (float64(x)+0.5)*g.CellSize,
		0,
		g.MinZ + (float64(z)+0.5)*g.CellSize,
	}
}

// Walkable reports whether the cell under a world position is open.
func (g *Grid) Walkable(p mgl64.Vec3) bool {
	x, z := g.cellOf(p.X(), p.Z())
	return g.Nodes[z][x].Walkable
}

// FindPath returns cell centres leading from one world position to another,
// excluding the start cell unless both positions share it. It returns nil
// when the goal is unreachable.
func (g *Grid) FindPath(from, to mgl64.Vec3) []mgl64.Vec3 {
	sx, sz := g.cellOf(from.X(), from.Z())
	gx, gz := g.cellOf(to.X(), to.Z())

	start := g.Nodes[sz][sx]
	goal := g.Nodes[gz][gx]

	// Handle case where start or goal is in solid geometry
	if !start.Walkable {
		start = g.nearestWalkable(sx, sz)
	}
	if !goal.Walkable {
		goal = g.nearestWalkable(gx, gz)
	}
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []mgl64.Vec3{g.CellCenter(goal.X, goal.Z)}
	}

	path, _, found := astar.Path(start, goal)
	if !found || len(path) == 0 {
		return nil
	}

	nodes := make([]*Node, len(path))
	for i, p := range path {
		nodes[i] = p.(*Node)
	}
	if nodes[0] != start {
		for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		}
	}

	waypoints := make([]mgl64.Vec3, 0, len(nodes)-1)
	for _, n := range nodes[1:] {
		waypoints = append(waypoints, g.CellCenter(n.X, n.Z))
	}
	return waypoints
}

// nearestWalkable searches outward in expanding squares.
func (g *Grid) nearestWalkable(x, z int) *Node {
	for radius := 1; radius < max(g.Width, g.Depth); radius++ {
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.walkable(x+dx, z+dz); n != nil {
					return n
				}
			}
		}
	}
	return nil
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}
