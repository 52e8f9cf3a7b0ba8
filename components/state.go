package components

import (
	"github.com/automoto/ashgrove/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // Seconds spent in CurrentState
}

// Set switches to state, resetting the timer on change.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
