package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/ashgrove/components"
	cfg "github.com/automoto/ashgrove/config"
	"github.com/automoto/ashgrove/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Fixed seed so headless runs replay identically.
var botRng = rand.New(rand.NewSource(42))

// facingTolerance is the minimum dot between facing and target direction
// before the bot swings.
const facingTolerance = 0.9

// UpdateBots writes intent for AI-driven players. It must run before
// locomotion and combat in the same tick.
func UpdateBots(ecs *ecs.ECS) {
	dt := GetOrCreateClock(ecs).Delta

	components.Bot.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Intent) {
			return
		}
		updateBotAI(ecs, e, dt)
	})
}

func updateBotAI(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	bot := components.Bot.Get(e)
	in := components.Intent.Get(e)

	// Clear previous inputs
	*in = components.IntentData{}

	if bot.DodgeTimer > 0 {
		bot.DodgeTimer -= dt
	}
	if e.HasComponent(components.Death) {
		bot.AIState = components.BotStateIdle
		return
	}

	target, ok := CurrentTarget(ecs, e)
	if !ok {
		bot.AIState = components.BotStateIdle
		bot.LastTarget = donburi.Null
		in.CycleTargetPressed = true
		return
	}
	if bot.LastTarget != target.Entity() {
		bot.LastTarget = target.Entity()
		log.Printf("[bot] %s engaging %s", entityName(e), entityName(target))
	}

	t := components.Transform.Get(e)
	goal := components.Transform.Get(target).Position
	to := mathutil.Horizontal(goal.Sub(t.Position))
	dist := to.Len()
	dir := mathutil.SafeNormalize(to)
	if dir.Len() == 0 {
		dir = t.Forward()
	}

	if dist > cfg.Bot.AttackReach {
		bot.AIState = components.BotStateChase
		aimIntent(in, followRoute(ecs, bot, t.Position, goal, dir, dt))
		in.MoveY = 1
		in.RunHeld = dist > cfg.Bot.RunDistance
		return
	}

	bot.AIState = components.BotStateAttack
	bot.Route = nil
	aimIntent(in, dir)
	if t.Forward().Dot(dir) < facingTolerance {
		// Creep forward so locomotion turns us.
		in.MoveY = cfg.Player.InputDeadzone * 2
		return
	}

	now := GetOrCreateClock(ecs).Now
	if e.HasComponent(components.Combat) {
		combat := components.Combat.Get(e)
		switch {
		case combat.Ready(components.AttackLight, now):
			in.AttackPressed = true
		case combat.Ready(components.AttackHeavy, now):
			in.HeavyAttackPressed = true
		}
	}

	if bot.DodgeTimer <= 0 && inEnemyReach(target, dist) {
		// Roll straight back out of the enemy's reach.
		in.MoveY = -1
		in.DodgePressed = true
		jitter := 0.75 + botRng.Float64()*0.5
		bot.DodgeTimer = cfg.Bot.DodgeInterval.Seconds() * jitter
	}
}

func inEnemyReach(target *donburi.Entry, dist float64) bool {
	if !target.HasComponent(components.Perception) {
		return false
	}
	return dist <= components.Perception.Get(target).MeleeRange
}

// aimIntent sets the intent basis so forward input walks along dir.
func aimIntent(in *components.IntentData, dir mgl64.Vec3) {
	in.Forward = dir
	in.Right = mgl64.Vec3{dir.Z(), 0, -dir.X()}
}

// followRoute returns the direction toward the next waypoint on the way to
// goal, replanning on a timer. Without a floor plan it heads straight.
func followRoute(ecs *ecs.ECS, bot *components.BotData, pos, goal, direct mgl64.Vec3, dt float64) mgl64.Vec3 {
	ent, ok := components.Navigation.First(ecs.World)
	if !ok {
		return direct
	}
	grid := components.Navigation.Get(ent).Grid

	bot.RepathTimer -= dt
	if bot.RepathTimer <= 0 || len(bot.Route) == 0 {
		bot.Route = grid.FindPath(pos, goal)
		bot.RepathTimer = cfg.Bot.RepathInterval.Seconds()
	}

	for len(bot.Route) > 0 && mathutil.Horizontal(bot.Route[0].Sub(pos)).Len() < grid.CellSize/2 {
		bot.Route = bot.Route[1:]
	}
	// The final cell holds the target itself.
	if len(bot.Route) <= 1 {
		return direct
	}
	dir := mathutil.SafeNormalize(mathutil.Horizontal(bot.Route[0].Sub(pos)))
	if dir.Len() == 0 {
		return direct
	}
	return dir
}
