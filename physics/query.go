package physics

import (
	"math"
	"sort"

	"github.com/automoto/ashgrove/components"
	"github.com/automoto/ashgrove/host"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// QuerySphere returns the characters on layer whose capsule
// overlaps the sphere, ordered by spawn ID.
func (w *World) QuerySphere(center mgl64.Vec3, radius float64, layer string) []donburi.Entity {
	x, y := w.toSpace(center.X()-radius, center.Z()-radius)
	size := 2 * radius * w.scale
	probe := resolv.NewObject(x, y, size, size)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, layer)
	if check == nil {
		return nil
	}

	seen := make(map[donburi.Entity]bool)
	var found []*donburi.Entry
	for _, o := range check.ObjectsByTags(layer) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		if !entry.HasComponent(components.Body) || !entry.HasComponent(components.Transform) {
			continue
		}
		seen[entry.Entity()] = true
		if sphereTouchesCapsule(center, radius, components.Transform.Get(entry).Position, components.Body.Get(entry)) {
			found = append(found, entry)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return spawnID(found[i]) < spawnID(found[j])
	})
	out := make([]donburi.Entity, len(found))
	for i, e := range found {
		out[i] = e.Entity()
	}
	return out
}

func sphereTouchesCapsule(center mgl64.Vec3, radius float64, feet mgl64.Vec3, body *components.BodyData) bool {
	lo := feet.Y() + body.Radius
	hi := feet.Y() + body.Height - body.Radius
	if hi < lo {
		hi = lo
	}
	closest := mgl64.Vec3{feet.X(), mgl64.Clamp(center.Y(), lo, hi), feet.Z()}
	return center.Sub(closest).Len() <= radius+body.Radius
}

func spawnID(e *donburi.Entry) int {
	if !e.HasComponent(components.Identity) {
		return math.MaxInt
	}
	return components.Identity.Get(e).ID
}

// Raycast returns the nearest box or character hit along dir.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDistance float64) (host.Hit, bool) {
	dir = mathutil.SafeNormalize(dir)
	if dir.Len() == 0 {
		return host.Hit{}, false
	}

	var hit host.Hit
	best, found := maxDistance, false
	consider := func(e *donburi.Entry, lo, hi mgl64.Vec3) {
		if t, ok := rayBox(origin, dir, lo, hi); ok && t <= best {
			best, found = t, true
			hit = host.Hit{Entity: e.Entity(), Point: origin.Add(dir.Mul(t)), Distance: t}
		}
	}

	components.Box.Each(w.world, func(e *donburi.Entry) {
		box := components.Box.Get(e)
		consider(e, box.Min, box.Max)
	})
	components.Body.Each(w.world, func(e *donburi.Entry) {
		if !e.HasComponent(components.Transform) {
			return
		}
		body := components.Body.Get(e)
		feet := components.Transform.Get(e).Position
		r := body.Radius
		consider(e,
			feet.Sub(mgl64.Vec3{r, 0, r}),
			feet.Add(mgl64.Vec3{r, body.Height, r}))
	})
	return hit, found
}

// rayBox is a slab test. Rays starting inside the box do not hit it.
func rayBox(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - origin[i]) / dir[i]
		t2 := (hi[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmin < 0 {
		return 0, false
	}
	return tmin, true
}
