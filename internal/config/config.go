// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// MaxExtent bounds the arena half extents and the respawn extent, keeping
// random coordinate ranges well inside int.
const MaxExtent = 1 << 20

// RunawayConfig contains all configuration for the Runaway game.
type RunawayConfig struct {
	Arena     ArenaConfig `yaml:"arena"`
	Rules     RulesConfig `yaml:"rules"`
	Player    ActorConfig `yaml:"player"`
	Pickup    ActorConfig `yaml:"pickup"`
	Obstacles ActorConfig `yaml:"obstacles"`
}

// ArenaConfig defines the playfield in world units.
type ArenaConfig struct {
	HalfWidth     float64 `yaml:"half_width"`
	HalfHeight    float64 `yaml:"half_height"`
	RespawnExtent int     `yaml:"respawn_extent"` // Pickups/obstacles respawn in [-extent, extent]²
}

// RulesConfig defines scoring and timing.
type RulesConfig struct {
	NumObstacles   int     `yaml:"num_obstacles"`
	CatchRadius    float64 `yaml:"catch_radius"`
	WinThreshold   int     `yaml:"win_threshold"`
	TickIntervalMs int     `yaml:"tick_interval_ms"`
}

// ActorConfig defines per-actor movement step sizes.
type ActorConfig struct {
	StepMove float64 `yaml:"step_move"` // World units per forward/backward move
	StepTurn float64 `yaml:"step_turn"` // Degrees per left/right turn
}

// TickInterval returns the fixed simulation interval.
func (c RunawayConfig) TickInterval() time.Duration {
	return time.Duration(c.Rules.TickIntervalMs) * time.Millisecond
}

// CatchRadius2 returns the squared catch radius used by collision checks.
func (c RunawayConfig) CatchRadius2() float64 {
	return c.Rules.CatchRadius * c.Rules.CatchRadius
}

// Validate reports every setup error in the config.
// The returned error wraps ErrInvalid.
func (c RunawayConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(inExtent(c.Arena.HalfWidth), "arena.half_width must be in (0, %d], got %v", MaxExtent, c.Arena.HalfWidth)
	check(inExtent(c.Arena.HalfHeight), "arena.half_height must be in (0, %d], got %v", MaxExtent, c.Arena.HalfHeight)
	check(c.Arena.RespawnExtent >= 0 && c.Arena.RespawnExtent <= MaxExtent,
		"arena.respawn_extent must be in [0, %d], got %d", MaxExtent, c.Arena.RespawnExtent)
	check(c.Rules.NumObstacles >= 0, "rules.num_obstacles must not be negative, got %d", c.Rules.NumObstacles)
	check(finitePositive(c.Rules.CatchRadius), "rules.catch_radius must be positive and finite, got %v", c.Rules.CatchRadius)
	check(c.Rules.WinThreshold > 0, "rules.win_threshold must be positive, got %d", c.Rules.WinThreshold)
	check(c.Rules.TickIntervalMs > 0, "rules.tick_interval_ms must be positive, got %d", c.Rules.TickIntervalMs)

	for _, a := range []struct {
		name string
		cfg  ActorConfig
	}{
		{"player", c.Player},
		{"pickup", c.Pickup},
		{"obstacles", c.Obstacles},
	} {
		check(finitePositive(a.cfg.StepMove), "%s.step_move must be positive and finite, got %v", a.name, a.cfg.StepMove)
		check(finitePositive(a.cfg.StepTurn), "%s.step_turn must be positive and finite, got %v", a.name, a.cfg.StepTurn)
	}

	return errors.Join(errs...)
}

// finitePositive is false for NaN and ±Inf.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func inExtent(v float64) bool {
	return v > 0 && v <= MaxExtent
}

// Marshal renders the config in the same layout the loader reads.
func (c RunawayConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshaling: %w", err)
	}
	return data, nil
}
