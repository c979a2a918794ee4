package config

import "math"

// DifficultyManager calculates dynamic scroll parameters based on score or
// elapsed simulated time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score or
// elapsed seconds.
func (d *DifficultyManager) Level(score float64, elapsed float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = score / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ScrollSpeed returns the current scroll speed for a base speed.
func (d *DifficultyManager) ScrollSpeed(baseSpeed, score, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// RowSpacing returns the current firewall row spacing for a base spacing.
func (d *DifficultyManager) RowSpacing(baseSpacing, score, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	result := baseSpacing - level*d.cfg.Scaling.SpacingReduction
	if result < 5 { // Minimum playable spacing
		result = 5
	}
	return result
}

// GapSize returns the current row gap for a base gap.
func (d *DifficultyManager) GapSize(baseGap, score, elapsed float64) float64 {
	level := d.Level(score, elapsed)
	result := baseGap - level*d.cfg.Scaling.GapReduction
	if result < 4 { // Minimum playable gap
		result = 4
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
