// Package config provides YAML-based tuning for the skyfall playfield.
package config

import "time"

// Config contains all simulation tuning. Values are fixed for the lifetime
// of a game session; the playfield is a virtual pixel space that the render
// layer scales to the terminal.
type Config struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Objects ObjectsConfig `yaml:"objects"`
	Combo   ComboConfig   `yaml:"combo"`
}

// FieldConfig defines the playfield dimensions in virtual pixels.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the paddle geometry and movement speed.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal pixels per tick
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between paddle bottom and field bottom
}

// ObjectsConfig defines falling object geometry, fall speed, and spawn cadence.
type ObjectsConfig struct {
	Size            float64 `yaml:"size"`
	Speed           float64 `yaml:"speed"` // Vertical pixels per tick
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
}

// ComboConfig defines the double-press pause gesture timing.
type ComboConfig struct {
	TimeoutMs int `yaml:"timeout_ms"`
}

// SpawnInterval returns the object spawn interval as a duration.
func (c Config) SpawnInterval() time.Duration {
	return time.Duration(c.Objects.SpawnIntervalMs) * time.Millisecond
}

// ComboTimeout returns the pause combo window as a duration.
func (c Config) ComboTimeout() time.Duration {
	return time.Duration(c.Combo.TimeoutMs) * time.Millisecond
}

// PlayerY returns the fixed top coordinate of the paddle band.
func (c Config) PlayerY() float64 {
	return c.Field.Height - c.Player.BottomMargin - c.Player.Height
}
