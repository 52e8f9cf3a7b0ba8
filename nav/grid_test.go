package nav

import (
	"math"
	"testing"

	"github.com/automoto/ashgrove/level"
	"github.com/go-gl/mathgl/mgl64"
)

// divided is a 20x20 arena split by a wall along x = 0 that stops short of
// the +Z edge.
func divided(wallMaxZ float64) *level.Level {
	return &level.Level{
		Name:  "divided",
		MinX:  -10,
		MinZ:  -10,
		Width: 20,
		Depth: 20,
		Walls: []level.Box{
			{Min: mgl64.Vec3{-1, 0, -10}, Max: mgl64.Vec3{1, 3, wallMaxZ}},
		},
	}
}

func TestNewBlocksWalls(t *testing.T) {
	g := New(divided(6), 1, 0.6)

	tests := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"open floor", mgl64.Vec3{-5, 0, 0}, true},
		{"inside wall", mgl64.Vec3{0, 0, 0}, false},
		{"within clearance", mgl64.Vec3{1.2, 0, 0}, false},
		{"past clearance", mgl64.Vec3{2.2, 0, 0}, true},
		{"gap beyond wall end", mgl64.Vec3{0, 0, 8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Walkable(tt.pos); got != tt.want {
				t.Errorf("Walkable(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestFindPathAroundWall(t *testing.T) {
	g := New(divided(6), 1, 0.6)
	from := mgl64.Vec3{-5, 0, 0}
	to := mgl64.Vec3{5, 0, 0}

	path := g.FindPath(from, to)
	if len(path) == 0 {
		t.Fatal("expected a route through the gap")
	}

	if last := path[len(path)-1]; last != g.CellCenter(15, 10) {
		t.Errorf("route ends at %v, want the goal cell", last)
	}

	sx, sz := g.cellOf(from.X(), from.Z())
	prev := g.CellCenter(sx, sz)
	crossed := false
	for i, p := range path {
		if !g.Walkable(p) {
			t.Fatalf("waypoint %d at %v is blocked", i, p)
		}
		if step := p.Sub(prev).Len(); step > math.Sqrt2*g.CellSize+1e-9 {
			t.Fatalf("waypoint %d jumps %v from the previous cell", i, step)
		}
		if p.Z() > 6 {
			crossed = true
		}
		prev = p
	}
	if !crossed {
		t.Error("route did not go around the end of the wall")
	}
}

func TestFindPathEdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		wallMaxZ float64
		from, to mgl64.Vec3
		wantNil  bool
		wantLen  int
	}{
		{"sealed off", 10, mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{5, 0, 0}, true, 0},
		{"same cell", 6, mgl64.Vec3{-5.2, 0, 0.2}, mgl64.Vec3{-5.4, 0, 0.4}, false, 1},
		{"goal inside wall snaps out", 6, mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{0, 0, 0}, false, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(divided(tt.wallMaxZ), 1, 0.6)
			path := g.FindPath(tt.from, tt.to)
			if tt.wantNil {
				if path != nil {
					t.Errorf("path = %v, want nil", path)
				}
				return
			}
			if len(path) == 0 {
				t.Fatal("expected a path")
			}
			if tt.wantLen >= 0 && len(path) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(path), tt.wantLen)
			}
			for _, p := range path {
				if !g.Walkable(p) {
					t.Errorf("waypoint %v is blocked", p)
				}
			}
		})
	}
}
