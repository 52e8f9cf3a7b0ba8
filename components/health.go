package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
	Dead    bool // Never reset once set
}

// TakeDamage subtracts amount and reports whether this call killed the owner.
// Damage to a dead owner is ignored.
func (h *HealthData) TakeDamage(amount int) bool {
	if h.Dead {
		return false
	}
	h.Current -= amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		return true
	}
	return false
}

func (h *HealthData) IsDead() bool {
	return h.Dead
}

// Percent returns current health as a fraction of max in [0, 1].
func (h *HealthData) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	p := float64(h.Current) / float64(h.Max)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

var Health = donburi.NewComponentType[HealthData]()
