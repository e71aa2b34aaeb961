package config

import (
	_ "embed"
)

//go:embed defaults/runaway.yaml
var defaultRunawayYAML []byte

// DefaultRunawayConfig returns the default Runaway configuration.
// The arena matches a 700x700 playfield.
func DefaultRunawayConfig() RunawayConfig {
	return RunawayConfig{
		Arena: ArenaConfig{
			HalfWidth:     350,
			HalfHeight:    350,
			RespawnExtent: 300,
		},
		Rules: RulesConfig{
			NumObstacles:   5,
			CatchRadius:    50,
			WinThreshold:   10,
			TickIntervalMs: 100,
		},
		Player:    ActorConfig{StepMove: 10, StepTurn: 10},
		Pickup:    ActorConfig{StepMove: 10, StepTurn: 10},
		Obstacles: ActorConfig{StepMove: 10, StepTurn: 10},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runaway":
		return defaultRunawayYAML
	default:
		return nil
	}
}
