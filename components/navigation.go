package components

import (
	"github.com/automoto/ashgrove/nav"
	"github.com/yohamta/donburi"
)

// NavigationData holds the level's floor plan for route planning.
type NavigationData struct {
	Grid *nav.Grid
}

var Navigation = donburi.NewComponentType[NavigationData]()
