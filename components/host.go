package components

import (
	"github.com/automoto/ashgrove/host"
	"github.com/yohamta/donburi"
)

// HostData holds the engine primitives the simulation calls into.
type HostData struct {
	Physics  host.Physics
	Animator host.Animator
}

var Host = donburi.NewComponentType[HostData]()
