// Package physics implements the host physics primitives on top of a resolv
// space. The space covers the world XZ plane; heights are resolved against
// the level's boxes.
package physics

import (
	"math"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// stepTolerance is how far above the feet a surface may be and still count
// as the floor under a character.
const stepTolerance = 0.05

// World is a resolv-backed implementation of host.Physics.
type World struct {
	world   donburi.World
	space   *resolv.Space
	scale   float64
	originX float64
	originZ float64
}

// NewWorld creates a collision space covering the rectangle starting at
// (minX, minZ) with the given width and depth in world units.
func NewWorld(world donburi.World, minX, minZ, width, depth float64) *World {
	scale := cfg.World.PixelsPerUnit
	cell := cfg.World.CellSize
	return &World{
		world:   world,
		space:   resolv.NewSpace(int(math.Ceil(width*scale)), int(math.Ceil(depth*scale)), cell, cell),
		scale:   scale,
		originX: minX,
		originZ: minZ,
	}
}

func (w *World) Space() *resolv.Space {
	return w.space
}

func (w *World) toSpace(x, z float64) (float64, float64) {
	return (x - w.originX) * w.scale, (z - w.originZ) * w.scale
}

// AddBox registers a static box entity under the given resolv tag.
func (w *World) AddBox(e *donburi.Entry, tag string) *resolv.Object {
	box := components.Box.Get(e)
	x, y := w.toSpace(box.Min.X(), box.Min.Z())
	width := (box.Max.X() - box.Min.X()) * w.scale
	height := (box.Max.Z() - box.Min.Z()) * w.scale

	obj := resolv.NewObject(x, y, width, height, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = e
	w.space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return obj
}

// AddBody registers a character's footprint. The character must already
// carry Transform and Body.
func (w *World) AddBody(e *donburi.Entry, extraTags ...string) *resolv.Object {
	body := components.Body.Get(e)
	size := 2 * body.Radius * w.scale

	obj := resolv.NewObject(0, 0, size, size, append([]string{tags.ResolvCharacter}, extraTags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = e
	w.space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	w.place(obj, body, components.Transform.Get(e).Position)
	return obj
}

// Remove takes the entity's object out of the space.
func (w *World) Remove(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	if obj := components.Object.Get(e); obj.Object != nil {
		w.space.Remove(obj.Object)
	}
}

func (w *World) place(obj *resolv.Object, body *components.BodyData, pos mgl64.Vec3) {
	obj.X, obj.Y = w.toSpace(pos.X()-body.Radius, pos.Z()-body.Radius)
	obj.Update()
}

func (w *World) character(e donburi.Entity) (*donburi.Entry, bool) {
	if !w.world.Valid(e) {
		return nil, false
	}
	entry := w.world.Entry(e)
	if !entry.HasComponent(components.Body) || !entry.HasComponent(components.Object) {
		return nil, false
	}
	return entry, true
}

func (w *World) IsGroundContact(e donburi.Entity) bool {
	entry, ok := w.character(e)
	if !ok {
		return false
	}
	return components.Body.Get(entry).OnGround
}

func (w *World) Translate(e donburi.Entity, d mgl64.Vec3) {
	entry, ok := w.character(e)
	if !ok {
		return
	}
	t := components.Transform.Get(entry)
	body := components.Body.Get(entry)
	obj := components.Object.Get(entry).Object
	feet := t.Position.Y()

	// Resolve one axis at a time so characters slide along walls.
	dx := w.clip(obj, d.X()*w.scale, 0, feet)
	obj.X += dx
	dz := w.clip(obj, 0, d.Z()*w.scale, feet)
	obj.Y += dz
	obj.Update()

	x := t.Position.X() + dx/w.scale
	z := t.Position.Z() + dz/w.scale
	y := feet + d.Y()

	top, found := w.surfaceBelow(obj, x, z, feet+stepTolerance)
	if found && y <= top {
		y = top
		body.OnGround = true
	} else {
		body.OnGround = false
	}

	t.Position = mgl64.Vec3{x, y, z}
}

func (w *World) Teleport(e donburi.Entity, pos mgl64.Vec3) {
	entry, ok := w.character(e)
	if !ok {
		return
	}
	body := components.Body.Get(entry)
	components.Transform.Get(entry).Position = pos
	body.OnGround = false
	w.place(components.Object.Get(entry).Object, body, pos)
}

// clip shortens a single-axis move so obj stops against the first solid in
// its path. Solids whose top is below feet are stepped over. Long moves are
// checked in half-footprint steps so they cannot skip through thin walls.
func (w *World) clip(obj *resolv.Object, dx, dy, feet float64) float64 {
	move := dx + dy
	if move == 0 {
		return 0
	}
	steps := 1
	if obj.W > 0 {
		steps = int(math.Ceil(math.Abs(move) / (obj.W / 2)))
	}
	for i := 1; i <= steps; i++ {
		part := move * float64(i) / float64(steps)
		sx, sy := part, 0.0
		if dy != 0 {
			sx, sy = 0, part
		}
		if c, blocked := w.blockedAt(obj, sx, sy, feet); blocked {
			return c
		}
	}
	return move
}

// blockedAt returns the offset from obj's current position to the nearest
// solid it would newly overlap after moving by (dx, dy).
func (w *World) blockedAt(obj *resolv.Object, dx, dy, feet float64) (float64, bool) {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}
	best, blocked := 0.0, false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(obj, dx, dy, solid) || overlaps(obj, 0, 0, solid) {
			continue
		}
		if box, ok := boxOf(solid); ok && feet >= box.Max.Y() {
			continue
		}
		contact := check.ContactWithObject(solid)
		c := contact.X()
		if dy != 0 {
			c = contact.Y()
		}
		if !blocked || math.Abs(c) < math.Abs(best) {
			best, blocked = c, true
		}
	}
	return best, blocked
}

// surfaceBelow returns the highest ground or solid top under (x, z) that is
// no higher than maxTop.
func (w *World) surfaceBelow(obj *resolv.Object, x, z, maxTop float64) (float64, bool) {
	check := obj.Check(0, 0, tags.ResolvGround, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}
	best, found := math.Inf(-1), false
	for _, o := range check.Objects {
		box, ok := boxOf(o)
		if !ok || !box.ContainsXZ(x, z) {
			continue
		}
		if top := box.Max.Y(); top <= maxTop && top > best {
			best, found = top, true
		}
	}
	return best, found
}

// ProbeDown reports whether a surface lies within distance below origin.
func (w *World) ProbeDown(origin mgl64.Vec3, distance float64) bool {
	x, y := w.toSpace(origin.X(), origin.Z())
	probe := resolv.NewObject(x, y, 1, 1)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	top, found := w.surfaceBelow(probe, origin.X(), origin.Z(), origin.Y())
	return found && top >= origin.Y()-distance
}

func overlaps(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W && a.X+dx+a.W > b.X &&
		a.Y+dy < b.Y+b.H && a.Y+dy+a.H > b.Y
}

func boxOf(obj *resolv.Object) (*components.BoxData, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Box) {
		return nil, false
	}
	return components.Box.Get(entry), true
}
