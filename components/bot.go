package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BotState is the high level goal of an AI-driven player.
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
)

var botStateNames = map[BotState]string{
	BotStateIdle:   "idle",
	BotStateChase:  "chase",
	BotStateAttack: "attack",
}

func (s BotState) String() string {
	return botStateNames[s]
}

// BotData marks a player whose intent is written by AI instead of devices.
type BotData struct {
	AIState    BotState
	DodgeTimer float64 // Seconds until the next evasive roll is allowed
	LastTarget donburi.Entity

	Route       []mgl64.Vec3 // Remaining waypoints toward the target
	RepathTimer float64
}

var Bot = donburi.NewComponentType[BotData]()
