package components

import "github.com/yohamta/donburi"

// BodyData is the vertical capsule a character occupies above its feet.
type BodyData struct {
	Radius   float64
	Height   float64
	OnGround bool // Set by the last host translate
}

var Body = donburi.NewComponentType[BodyData]()
