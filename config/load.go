package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyTuning is returned when a tuning file has no content.
var ErrEmptyTuning = errors.New("tuning file is empty")

// document mirrors the top-level layout of a tuning file. Blocks that are
// absent keep their current values.
type document struct {
	Window    *Config          `yaml:"window"`
	Player    *PlayerConfig    `yaml:"player"`
	Combat    *CombatConfig    `yaml:"combat"`
	Enemy     *EnemyConfig     `yaml:"enemy"`
	Targeting *TargetingConfig `yaml:"targeting"`
	Camera    *CameraConfig    `yaml:"camera"`
	World     *WorldConfig     `yaml:"world"`
	Bot       *BotConfig       `yaml:"bot"`
}

// Apply overlays YAML tuning values on top of the current configuration.
// Nothing is changed when decoding fails.
func Apply(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyTuning
	}

	window := *C
	player := Player
	combat := Combat
	enemy := Enemy
	targeting := Targeting
	camera := Camera
	world := World
	bot := Bot

	doc := document{
		Window:    &window,
		Player:    &player,
		Combat:    &combat,
		Enemy:     &enemy,
		Targeting: &targeting,
		Camera:    &camera,
		World:     &world,
		Bot:       &bot,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}

	C = &window
	Player = player
	Combat = combat
	Enemy = enemy
	Targeting = targeting
	Camera = camera
	World = world
	Bot = bot
	return nil
}

// LoadFile reads a tuning file and applies it.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("apply tuning %s: %w", path, err)
	}
	return nil
}
