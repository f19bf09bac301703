package config

import "math"

// DifficultyManager scales wave speed and saucer aggression by progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a wave number and score.
// A disabled manager returns 0 so the base tables apply unchanged; without
// progression the initial level holds for the whole game.
func (d *DifficultyManager) Level(wave, score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "level":
		progress = float64(wave) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// AsteroidSpeed scales a wave's base asteroid speed.
func (d *DifficultyManager) AsteroidSpeed(base float64, wave, score int) float64 {
	level := d.Level(wave, score)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// ShotInterval shortens a saucer shot interval in ticks. It never drops below 1.
func (d *DifficultyManager) ShotInterval(base, wave, score int) int {
	level := d.Level(wave, score)
	reduction := int(level * d.cfg.Scaling.ShotReduction * float64(base))
	return max(base-reduction, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
