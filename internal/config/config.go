// Package config provides YAML-based game configuration loading and
// difficulty management for the breach runner.
package config

// Config contains all tuning for the breach runner simulation.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Maze       MazeConfig       `yaml:"maze"`
	Boss       BossConfig       `yaml:"boss"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player movement parameters. All rates are per
// second of simulated time, scaled by the tick's elapsed time.
type PhysicsConfig struct {
	PlayerSpeed     float64 `yaml:"player_speed"`      // units/sec from directional input
	PointerGain     float64 `yaml:"pointer_gain"`      // proportional steering gain toward pointer, 1/sec
	PlayerRadius    float64 `yaml:"player_radius"`     // collision disc radius
	BaseScrollSpeed float64 `yaml:"base_scroll_speed"` // units/sec the field scrolls past the player
	InvulnDuration  float64 `yaml:"invuln_duration"`   // seconds of invulnerability after a tolerated hit
}

// ScoringConfig defines score accumulation. 1000 points equal one
// percentage point of completion for display.
type ScoringConfig struct {
	SurvivalRate  float64 `yaml:"survival_rate"`  // points/sec of survival
	KeyBonus      float64 `yaml:"key_bonus"`      // points per safety key
	BackdoorBonus float64 `yaml:"backdoor_bonus"` // points per backdoor
	WinScore      float64 `yaml:"win_score"`      // score at which the attempt is won
}

// MazeConfig defines the scrolling firewall field.
type MazeConfig struct {
	RowSpacing     float64 `yaml:"row_spacing"`     // world units between firewall rows
	MinGap         float64 `yaml:"min_gap"`         // smallest opening in a row
	MaxGap         float64 `yaml:"max_gap"`         // largest opening in a row
	BlockHeight    float64 `yaml:"block_height"`    // firewall row thickness
	BoosterChance  float64 `yaml:"booster_chance"`  // probability a row carries a booster
	BackdoorWeight float64 `yaml:"backdoor_weight"` // odds a booster is a backdoor rather than a key
	BoosterSize    float64 `yaml:"booster_size"`    // booster collision radius
}

// BossConfig defines the sentinel encounter.
type BossConfig struct {
	Thresholds      []float64 `yaml:"thresholds"`             // ascending score thresholds, one per level
	RotationPeriods []float64 `yaml:"rotation_periods"`       // seconds per full outer revolution, per level
	InnerRateFactor float64   `yaml:"inner_rate_factor"`      // inner ring speed relative to outer
	VulnInterval    float64   `yaml:"vulnerability_interval"` // seconds between vulnerability rounds
	VulnPerCycle    int       `yaml:"vulnerable_per_cycle"`   // lines marked vulnerable per round
	Cooldown        float64   `yaml:"cooldown"`               // seconds before the encounter goes dormant
	SizeFactor      float64   `yaml:"size_factor"`            // outer square extent as a fraction of min field dim
	CardRadius      float64   `yaml:"card_radius"`            // memory card collision radius
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // score/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // multiplier added to scroll speed at max difficulty
	SpacingReduction float64 `yaml:"spacing_reduction"` // row spacing reduction at max difficulty
	GapReduction     float64 `yaml:"gap_reduction"`     // row gap reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
