package config

// StateID identifies a character locomotion mode or an AI perception state.
type StateID int

const (
	StateNone StateID = -1

	// Locomotion modes
	Grounded StateID = iota
	Airborne
	Dodging

	// Enemy perception states
	AIIdle
	AIEngaging
	AIInMeleeRange
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	Grounded:       "grounded",
	Airborne:       "airborne",
	Dodging:        "dodging",
	AIIdle:         "idle",
	AIEngaging:     "engaging",
	AIInMeleeRange: "melee",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Animation cues sent to the host animator.
const (
	CueJump  = "Jump"
	CueDodge = "Dodge"
)
