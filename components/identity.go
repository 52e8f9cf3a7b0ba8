package components

import "github.com/yohamta/donburi"

// IdentityData gives a character a stable spawn order and a display name.
type IdentityData struct {
	ID   int
	Name string
}

var Identity = donburi.NewComponentType[IdentityData]()

// SpawnCounterData hands out identity IDs in spawn order.
type SpawnCounterData struct {
	Next int
}

var SpawnCounter = donburi.NewComponentType[SpawnCounterData]()
