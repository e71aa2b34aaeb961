package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only touch counts, radii and speeds.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyRunawayPreset modifies the config based on a difficulty preset.
func ApplyRunawayPreset(cfg *RunawayConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.NumObstacles = max(cfg.Rules.NumObstacles-2, 0)
		cfg.Rules.CatchRadius *= 1.2
	case DifficultyHard:
		cfg.Rules.NumObstacles += 3
		cfg.Rules.CatchRadius *= 0.8
		cfg.Pickup.StepMove *= 1.5
		cfg.Obstacles.StepMove *= 1.5
	}
}
