package components

import (
	"github.com/automoto/ashgrove/config"
	"github.com/yohamta/donburi"
)

// Highlight is the feedback colour an enemy shows for its perception state.
type Highlight int

const (
	HighlightCalm Highlight = iota
	HighlightAlert
	HighlightMelee
)

type PerceptionData struct {
	DetectionRange float64
	MeleeRange     float64
	MoveSpeed      float64
	RotationSpeed  float64

	Player donburi.Entity
	Inert  bool // No player to track; the AI does nothing

	State     config.StateID
	Detected  bool
	Distance  float64 // Last measured distance to the player
	Highlight Highlight
}

var Perception = donburi.NewComponentType[PerceptionData]()
