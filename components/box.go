package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BoxData is an axis-aligned piece of static level geometry.
type BoxData struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsXZ reports whether the point lies inside the box footprint.
func (b *BoxData) ContainsXZ(x, z float64) bool {
	return x >= b.Min.X() && x <= b.Max.X() && z >= b.Min.Z() && z <= b.Max.Z()
}

var Box = donburi.NewComponentType[BoxData]()
