package config

import (
	_ "embed"
)

//go:embed defaults/breach.yaml
var defaultBreachYAML []byte

// DefaultConfig returns the default breach runner configuration.
func DefaultConfig() Config {
	return Config{
		Physics: PhysicsConfig{
			PlayerSpeed:     36.0,
			PointerGain:     8.0,
			PlayerRadius:    1.0,
			BaseScrollSpeed: 14.0,
			InvulnDuration:  2.0,
		},
		Scoring: ScoringConfig{
			SurvivalRate:  100.0,
			KeyBonus:      250.0,
			BackdoorBonus: 500.0,
			WinScore:      100000.0,
		},
		Maze: MazeConfig{
			RowSpacing:     10.0,
			MinGap:         8.0,
			MaxGap:         16.0,
			BlockHeight:    1.0,
			BoosterChance:  0.35,
			BackdoorWeight: 0.4,
			BoosterSize:    0.8,
		},
		Boss: BossConfig{
			Thresholds:      []float64{33000, 66000, 99000},
			RotationPeriods: []float64{15.0, 12.0, 10.0},
			InnerRateFactor: 1.5,
			VulnInterval:    5.0,
			VulnPerCycle:    4,
			Cooldown:        3.0,
			SizeFactor:      0.35,
			CardRadius:      1.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.2,
				SpacingReduction: 3.0,
				GapReduction:     5.0,
			},
		},
	}
}
