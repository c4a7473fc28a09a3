package config

import "math"

// Floor for spawn_one_in so photons never spawn every tick.
const minSpawnOneIn = 5

// DifficultyManager calculates dynamic game parameters based on score/time.
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

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// With difficulty disabled the level stays at 0 so the base config applies unchanged.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the photon fall speed scaled by the difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnOneIn returns the spawn denominator scaled by the difficulty level.
// Higher difficulty spawns photons more often, never more than 1 in 5 ticks
// unless the base rate is already higher than that.
func (d *DifficultyManager) SpawnOneIn(base int, score int, ticks int) int {
	if base <= minSpawnOneIn {
		return base
	}
	level := d.Level(score, ticks)
	result := base - int(level*float64(d.cfg.Scaling.SpawnBoost))
	if result < minSpawnOneIn {
		result = minSpawnOneIn
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
