package components

import (
	"math"

	"github.com/automoto/ashgrove/config"
	"github.com/yohamta/donburi"
)

// AttackVariant selects one of the attack configurations.
type AttackVariant int

const (
	AttackLight AttackVariant = iota
	AttackHeavy
	attackVariantCount
)

func (v AttackVariant) String() string {
	if v == AttackHeavy {
		return "heavy"
	}
	return "light"
}

// Config returns the current tuning for the variant.
func (v AttackVariant) Config() config.AttackConfig {
	if v == AttackHeavy {
		return config.Combat.Heavy
	}
	return config.Combat.Light
}

type CombatData struct {
	// LastTrigger holds the clock time each variant last fired.
	LastTrigger [attackVariantCount]float64
	// TargetLayer is the resolv tag hit queries are filtered by.
	TargetLayer string
}

// NewCombatData returns combat state with every variant ready.
func NewCombatData(targetLayer string) CombatData {
	c := CombatData{TargetLayer: targetLayer}
	for i := range c.LastTrigger {
		c.LastTrigger[i] = math.Inf(-1)
	}
	return c
}

// Ready reports whether the variant's cooldown has elapsed at now.
func (c *CombatData) Ready(v AttackVariant, now float64) bool {
	return now-c.LastTrigger[v] >= v.Config().Cooldown-cooldownEpsilon
}

// CooldownRemaining returns the seconds left before the variant can fire.
func (c *CombatData) CooldownRemaining(v AttackVariant, now float64) float64 {
	left := v.Config().Cooldown - (now - c.LastTrigger[v])
	if left <= cooldownEpsilon {
		return 0
	}
	return left
}

// cooldownEpsilon absorbs drift in a clock summed from per-tick deltas.
const cooldownEpsilon = 1e-9

var Combat = donburi.NewComponentType[CombatData]()
