package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in tuning, mirroring defaults/skyfall.yaml.
// The playfield is 800x800 virtual pixels with the paddle band at y 760-780.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 800,
		},
		Player: PlayerConfig{
			Width:        60,
			Height:       20,
			Speed:        8,
			BottomMargin: 20,
		},
		Objects: ObjectsConfig{
			Size:            25,
			Speed:           4,
			SpawnIntervalMs: 500,
		},
		Combo: ComboConfig{
			TimeoutMs: 4000,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for dumping a starter
// config file.
func DefaultYAML() []byte {
	return defaultYAML
}
