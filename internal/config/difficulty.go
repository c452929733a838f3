package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// The empty string means "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables phase progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyMobholdPreset modifies the config based on a difficulty preset.
func ApplyMobholdPreset(cfg *MobholdConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.SpawnScale = 1.3
		cfg.Difficulty.HealthScale = 0.8
		cfg.Difficulty.SpeedScale = 0.9
	case DifficultyNormal:
		cfg.Difficulty.SpawnScale = 1.0
		cfg.Difficulty.HealthScale = 1.0
		cfg.Difficulty.SpeedScale = 1.0
	case DifficultyHard:
		cfg.Difficulty.SpawnScale = 0.75
		cfg.Difficulty.HealthScale = 1.3
		cfg.Difficulty.SpeedScale = 1.15
	case DifficultyFixed:
		cfg.Difficulty.FreezePhases = true
	}
}

// SpawnFactor returns the spawn interval multiplier (1 when unset).
func (d DifficultyConfig) SpawnFactor() float64 {
	return factor(d.SpawnScale)
}

// SpeedFactor returns the monster speed multiplier (1 when unset).
func (d DifficultyConfig) SpeedFactor() float64 {
	return factor(d.SpeedScale)
}

// ScaleHealth applies the health multiplier, never going below 1.
func (d DifficultyConfig) ScaleHealth(health int) int {
	scaled := int(math.Round(float64(health) * factor(d.HealthScale)))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}

func factor(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
