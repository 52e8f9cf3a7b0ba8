package components

import "github.com/yohamta/donburi"

// AnimationData mirrors the animator parameters driven by locomotion.
type AnimationData struct {
	Speed     float64
	IsRunning bool
	Grounded  bool
	LastCue   string
}

var Animation = donburi.NewComponentType[AnimationData]()
