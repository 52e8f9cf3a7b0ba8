package components

import "github.com/yohamta/donburi"

// ClockData is the simulation's monotonic time. It does not advance while
// paused.
type ClockData struct {
	Now   float64
	Delta float64
	Tick  int
}

var Clock = donburi.NewComponentType[ClockData]()
