// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// SkyfallConfig contains all tunable parameters for the game.
type SkyfallConfig struct {
	Cursor      CursorConfig      `yaml:"cursor"`
	Rockets     RocketConfig      `yaml:"rockets"`
	Interceptor InterceptorConfig `yaml:"interceptor"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// CursorConfig defines the targeting cursor parameters.
type CursorConfig struct {
	Velocity float64 `yaml:"velocity"` // Cells per second
	Width    float64 `yaml:"width"`    // Hitbox width in cells
	Height   float64 `yaml:"height"`   // Hitbox height in cells
}

// RocketConfig defines falling rocket parameters.
type RocketConfig struct {
	Velocity     float64 `yaml:"velocity"`      // Cells per second along heading
	GroundHeight float64 `yaml:"ground_height"` // Ground band height in cells
}

// InterceptorConfig defines interceptor blast parameters.
type InterceptorConfig struct {
	BaseRadius  float64 `yaml:"base_radius"`  // Blast radius scale factor
	Period      float64 `yaml:"period"`       // Nominal lifetime in seconds
	ElapseRate  float64 `yaml:"elapse_rate"`  // Lifetime decay multiplier (3 = plays 3x faster)
	ShotTimeout float64 `yaml:"shot_timeout"` // Seconds between launches
}

// SpawnerConfig defines rocket wave spawning parameters.
type SpawnerConfig struct {
	WaveDelay float64 `yaml:"wave_delay"` // Seconds between waves
	LevelTime float64 `yaml:"level_time"` // Seconds per level
	WaveMin   int     `yaml:"wave_min"`   // Wave size lower bound before level scaling
	WaveMax   int     `yaml:"wave_max"`   // Wave size upper bound before level scaling
}

// GameplayConfig defines rule-set flags and scoring.
type GameplayConfig struct {
	GroundLife       float64 `yaml:"ground_life"`       // Shared health pool
	InterceptBonus   int     `yaml:"intercept_bonus"`   // Score per intercepted rocket
	Scoring          bool    `yaml:"scoring"`           // Track score
	Leveling         bool    `yaml:"leveling"`          // Advance levels on a timer
	GroundExplosions bool    `yaml:"ground_explosions"` // Spawn a blast on ground impact
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
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Rocket speed gain at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Wave delay reduction in seconds at max
	ExtraRockets    int     `yaml:"extra_rockets"`    // Extra rockets per wave at max
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

// ApplySkyfallPreset modifies the config based on a difficulty preset.
func ApplySkyfallPreset(cfg *SkyfallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.GroundLife = 7
		cfg.Spawner.WaveDelay = 5.0
	case DifficultyHard:
		cfg.Gameplay.GroundLife = 3
		cfg.Spawner.WaveDelay = 3.0
		cfg.Rockets.Velocity *= 1.25
	}
}
