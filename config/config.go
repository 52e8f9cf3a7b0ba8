package config

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render/update layer used by every archetype.
const Default ecs.LayerID = 0

// Config holds window settings for the desktop client.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig contains all player locomotion values.
type PlayerConfig struct {
	// Movement
	WalkSpeed     float64 `yaml:"walkSpeed"`
	RunSpeed      float64 `yaml:"runSpeed"`
	RotationSpeed float64 `yaml:"rotationSpeed"` // Facing slerp rate per second
	InputDeadzone float64 `yaml:"inputDeadzone"`
	GroundDecay   float64 `yaml:"groundDecay"` // Horizontal velocity lerp rate with no input

	// Jump
	Gravity               float64 `yaml:"gravity"` // Negative, units/s²
	JumpHeight            float64 `yaml:"jumpHeight"`
	FallGravityMultiplier float64 `yaml:"fallGravityMultiplier"`
	MaxFallSpeed          float64 `yaml:"maxFallSpeed"`
	GroundedBias          float64 `yaml:"groundedBias"` // Vertical velocity held while resting
	CoyoteTime            float64 `yaml:"coyoteTime"`

	// Dodge roll
	DodgeSpeed    float64 `yaml:"dodgeSpeed"`
	DodgeDuration float64 `yaml:"dodgeDuration"`
	DodgeCooldown float64 `yaml:"dodgeCooldown"`

	// Combat
	Health int `yaml:"health"`

	// Capsule
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`

	// Animator
	AnimSpeedLerp float64 `yaml:"animSpeedLerp"`
}

// AttackConfig parameterises one attack variant.
type AttackConfig struct {
	Cooldown  float64 `yaml:"cooldown"` // Seconds between triggers
	Range     float64 `yaml:"range"`    // Hit sphere radius
	Damage    int     `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
	Cue       string  `yaml:"cue"`
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	Light       AttackConfig `yaml:"light"`
	Heavy       AttackConfig `yaml:"heavy"`
	ReachOffset float64      `yaml:"reachOffset"` // Hit sphere distance in front of the attacker
	DeathCue    string       `yaml:"deathCue"`
}

// EnemyConfig contains enemy perception and movement values.
type EnemyConfig struct {
	Health          int     `yaml:"health"`
	DetectionRange  float64 `yaml:"detectionRange"`
	MeleeRange      float64 `yaml:"meleeRange"`
	MoveSpeed       float64 `yaml:"moveSpeed"`
	RotationSpeed   float64 `yaml:"rotationSpeed"`
	FallbackGravity float64 `yaml:"fallbackGravity"` // Vertical speed applied while approaching off the ground
	Radius          float64 `yaml:"radius"`
	Height          float64 `yaml:"height"`
}

// TargetingConfig contains target selection values.
type TargetingConfig struct {
	MaxDistance     float64 `yaml:"maxDistance"`
	IndicatorRadius float64 `yaml:"indicatorRadius"`
	IndicatorHeight float64 `yaml:"indicatorHeight"`
	IndicatorSpin   float64 `yaml:"indicatorSpin"` // Degrees per second
}

// CameraConfig contains follow camera values.
type CameraConfig struct {
	FollowDistance float64 `yaml:"followDistance"`
	Height         float64 `yaml:"height"` // Look-at offset above the player's centre
	Sensitivity    float64 `yaml:"sensitivity"`
	ZoomSpeed      float64 `yaml:"zoomSpeed"`
	MinDistance    float64 `yaml:"minDistance"`
	MaxDistance    float64 `yaml:"maxDistance"`
	MinPitch       float64 `yaml:"minPitch"` // Degrees
	MaxPitch       float64 `yaml:"maxPitch"`
	InitialPitch   float64 `yaml:"initialPitch"`
	FieldOfView    float64 `yaml:"fieldOfView"` // Vertical, degrees
}

// WorldConfig contains arena and physics space values.
type WorldConfig struct {
	FloorThreshold float64    `yaml:"floorThreshold"`
	RespawnPoint   mgl64.Vec3 `yaml:"respawnPoint,flow"`
	ProbeOffset    float64    `yaml:"probeOffset"` // Ground probe start above the feet
	ProbeDistance  float64    `yaml:"probeDistance"`
	DespawnDelay   float64    `yaml:"despawnDelay"` // Seconds a corpse stays in the world
	PixelsPerUnit  float64    `yaml:"pixelsPerUnit"`
	CellSize       int        `yaml:"cellSize"`
	WallHeight     float64    `yaml:"wallHeight"`
	GroundDepth    float64    `yaml:"groundDepth"`
	TickRate       int        `yaml:"tickRate"`
}

// BotConfig contains tuning for AI-driven players.
type BotConfig struct {
	AttackReach   float64       `yaml:"attackReach"` // Start swinging inside this distance
	RunDistance   float64       `yaml:"runDistance"` // Run when the target is further than this
	DodgeInterval time.Duration `yaml:"dodgeInterval"`

	// Route planning
	NavCellSize    float64       `yaml:"navCellSize"`
	RepathInterval time.Duration `yaml:"repathInterval"`
}

// HUDConfig contains client overlay colours and sizes.
type HUDConfig struct {
	HealthBarWidth  float32
	HealthBarHeight float32
	HealthBarColor  color.RGBA
	HealthBackColor color.RGBA
	GridColor       color.RGBA
	WallColor       color.RGBA
	PlayerColor     color.RGBA
	EnemyCalm       color.RGBA
	EnemyAlert      color.RGBA
	EnemyMelee      color.RGBA
	IndicatorColor  color.RGBA
	OverlayColor    color.RGBA
}

var C *Config
var Player PlayerConfig
var Combat CombatConfig
var Enemy EnemyConfig
var Targeting TargetingConfig
var Camera CameraConfig
var World WorldConfig
var Bot BotConfig
var HUD HUDConfig

func init() {
	Reset()
}

// Reset restores every configuration block to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Player = PlayerConfig{
		WalkSpeed:     3.5,
		RunSpeed:      6.0,
		RotationSpeed: 15.0,
		InputDeadzone: 0.1,
		GroundDecay:   10.0,

		Gravity:               -20.0,
		JumpHeight:            2.0,
		FallGravityMultiplier: 1.2,
		MaxFallSpeed:          25.0,
		GroundedBias:          -2.0,
		CoyoteTime:            0.15,

		DodgeSpeed:    10.0,
		DodgeDuration: 0.35,
		DodgeCooldown: 0.8,

		Health: 100,

		Radius: 0.5,
		Height: 2.0,

		AnimSpeedLerp: 12.0,
	}

	Combat = CombatConfig{
		Light: AttackConfig{
			Cooldown:  0.5,
			Range:     3.5,
			Damage:    35,
			Knockback: 15.0,
			Cue:       "Attack",
		},
		Heavy: AttackConfig{
			Cooldown:  1.0,
			Range:     4.0,
			Damage:    60,
			Knockback: 25.0,
			Cue:       "HeavyAttack",
		},
		ReachOffset: 1.5,
		DeathCue:    "Death",
	}

	Enemy = EnemyConfig{
		Health:          100,
		DetectionRange:  15.0,
		MeleeRange:      2.5,
		MoveSpeed:       3.0,
		RotationSpeed:   5.0,
		FallbackGravity: -9.81,
		Radius:          0.5,
		Height:          2.0,
	}

	Targeting = TargetingConfig{
		MaxDistance:     50.0,
		IndicatorRadius: 0.6,
		IndicatorHeight: 0.05,
		IndicatorSpin:   30.0,
	}

	Camera = CameraConfig{
		FollowDistance: 8.0,
		Height:         1.2,
		Sensitivity:    3.0,
		ZoomSpeed:      2.0,
		MinDistance:    2.0,
		MaxDistance:    15.0,
		MinPitch:       -30.0,
		MaxPitch:       60.0,
		InitialPitch:   25.0,
		FieldOfView:    60.0,
	}

	World = WorldConfig{
		FloorThreshold: -10.0,
		RespawnPoint:   mgl64.Vec3{0, 2, 0},
		ProbeOffset:    0.2,
		ProbeDistance:  0.4,
		DespawnDelay:   2.0,
		PixelsPerUnit:  16.0,
		CellSize:       16,
		WallHeight:     3.0,
		GroundDepth:    1.0,
		TickRate:       60,
	}

	Bot = BotConfig{
		AttackReach:    3.0,
		RunDistance:    8.0,
		DodgeInterval:  3 * time.Second,
		NavCellSize:    1.0,
		RepathInterval: 250 * time.Millisecond,
	}

	HUD = HUDConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 14,
		HealthBarColor:  Red,
		HealthBackColor: DarkGrey,
		GridColor:       color.RGBA{R: 50, G: 60, B: 50, A: 255},
		WallColor:       LightBlue,
		PlayerColor:     White,
		EnemyCalm:       color.RGBA{R: 204, G: 51, B: 51, A: 255},
		EnemyAlert:      Yellow,
		EnemyMelee:      Green,
		IndicatorColor:  Orange,
		OverlayColor:    BlackOverlay,
	}
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)
