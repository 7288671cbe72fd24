package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultSkyfallConfig returns the default game configuration, matching
// the embedded defaults/skyfall.yaml.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		Cursor: CursorConfig{
			Velocity: 40.0,
			Width:    3,
			Height:   1,
		},
		Rockets: RocketConfig{
			Velocity:     4.5,
			GroundHeight: 3.0,
		},
		Interceptor: InterceptorConfig{
			BaseRadius:  1.8,
			Period:      5.0,
			ElapseRate:  3.0,
			ShotTimeout: 0.5,
		},
		Spawner: SpawnerConfig{
			WaveDelay: 4.0,
			LevelTime: 15.0,
			WaveMin:   1,
			WaveMax:   3,
		},
		Gameplay: GameplayConfig{
			GroundLife:       5.0,
			InterceptBonus:   150,
			Scoring:          true,
			Leveling:         true,
			GroundExplosions: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				DelayReduction:  1.5,
				ExtraRockets:    2,
			},
		},
	}
}
