package runaway

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/registry"
)

// Variant IDs registered with the arcade.
const (
	VariantClassic = "runaway"
	VariantSwarm   = "runaway_swarm"
)

// Package-level settings applied by the factories, set by the CLI before
// a game is created.
var (
	settingsMu       sync.Mutex
	configPath       string
	difficultyPreset string
	display          Display
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	settingsMu.Lock()
	configPath = path
	settingsMu.Unlock()
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	difficultyPreset = preset
	settingsMu.Unlock()
}

// SetDisplay sets an extra Display (e.g. a trace writer) for new games.
func SetDisplay(d Display) {
	settingsMu.Lock()
	display = d
	settingsMu.Unlock()
}

// SetLogger sets the logger handed to new games.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	logger = l
	settingsMu.Unlock()
}

// LoadConfig resolves the effective config for a variant: file lookup,
// difficulty preset, then the variant's own adjustments.
// The second return value names where the base config came from.
func LoadConfig(variant string) (config.RunawayConfig, string, error) {
	settingsMu.Lock()
	path, presetName := configPath, difficultyPreset
	settingsMu.Unlock()

	cfg, source, err := config.LoadRunaway(path)
	if err != nil {
		return config.RunawayConfig{}, "", err
	}

	preset, err := config.ParsePreset(presetName)
	if err != nil {
		return config.RunawayConfig{}, "", err
	}
	config.ApplyRunawayPreset(&cfg, preset)

	switch variant {
	case VariantClassic:
	case VariantSwarm:
		// Twice the obstacles, a bigger catch radius to compensate.
		// An explicit zero stays zero.
		cfg.Rules.NumObstacles *= 2
		cfg.Rules.CatchRadius *= 1.2
	default:
		return config.RunawayConfig{}, "", fmt.Errorf("runaway: unknown variant %q", variant)
	}

	return cfg, source, nil
}

func newVariant(id, title string) (registry.Game, error) {
	cfg, _, err := LoadConfig(id)
	if err != nil {
		return nil, err
	}

	settingsMu.Lock()
	d, l := display, logger
	settingsMu.Unlock()

	g, err := New(cfg,
		WithIdentity(id, title),
		WithDisplay(d),
		WithLogger(l),
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func init() {
	registry.Register(VariantClassic, "Runaway", func() (registry.Game, error) {
		return newVariant(VariantClassic, "Runaway")
	})
	registry.Register(VariantSwarm, "Runaway (Swarm)", func() (registry.Game, error) {
		return newVariant(VariantSwarm, "Runaway (Swarm)")
	})
}
