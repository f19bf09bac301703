// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

// AsteroidsConfig contains all tunable parameters of the game.
type AsteroidsConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Ship       ShipConfig       `yaml:"ship"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Saucer     SaucerConfig     `yaml:"saucer"`
	Debris     DebrisConfig     `yaml:"debris"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical resolution all positions live in.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player's ship handling.
type ShipConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Thrust         float64 `yaml:"thrust"`          // Acceleration per thrust tick
	MaxSpeed       float64 `yaml:"max_speed"`       // Speed cap in units per tick
	RotateStep     float64 `yaml:"rotate_step"`      // Rotation speed added per A/D tick
	RotateDamping  float64 `yaml:"rotate_damping"`   // Rotation speed lost per tick
	MaxRotateSpeed float64 `yaml:"max_rotate_speed"` // Rotation speed clamp in degrees per tick
	BulletSpeed    float64 `yaml:"bullet_speed"`
	BulletPool     int     `yaml:"bullet_pool"`
	TeleportBudget Range   `yaml:"teleport_budget"` // Collision retries before a teleport is forced
}

// AsteroidConfig defines asteroid waves and spawning.
type AsteroidConfig struct {
	Sizes        map[string]SizeConfig `yaml:"sizes"`         // keyed by "big", "medium", "small"
	WaveCounts   []int                 `yaml:"wave_counts"`   // asteroid count per level; index = level
	WaveSpeeds   []float64             `yaml:"wave_speeds"`   // asteroid speed per level
	DefaultCount int                   `yaml:"default_count"` // count beyond the table
	DefaultSpeed float64               `yaml:"default_speed"` // speed beyond the table
	Margin       float64               `yaml:"margin"`        // off-screen distance that triggers a respawn
	SpawnOffset  float64               `yaml:"spawn_offset"`  // distance outside the edge for new spawns
}

// SizeConfig defines the bounding box of one asteroid size.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SaucerConfig defines the hostile saucer.
type SaucerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	BulletSpeed float64 `yaml:"bullet_speed"`
	Appearance  Range   `yaml:"appearance"` // Ticks until the saucer shows up
	Disappear   Range   `yaml:"disappear"`  // Ticks the saucer stays
	Change      Range   `yaml:"change"`     // Ticks between heading changes
	Shot        Range   `yaml:"shot"`       // Ticks between shots
}

// DebrisConfig defines explosion particles.
type DebrisConfig struct {
	Speed           float64 `yaml:"speed"`
	Lifetime        Range   `yaml:"lifetime"`
	Jitter          int     `yaml:"jitter"`        // Max angle deviation from even spacing
	PieceSpacing    float64 `yaml:"piece_spacing"` // Sprite width per debris piece
	ShipPieces      int     `yaml:"ship_pieces"`
	ShipPieceLength Range   `yaml:"ship_piece_length"`
}

// ScoringConfig defines points and bonus lives.
type ScoringConfig struct {
	Big       int `yaml:"big"`
	Medium    int `yaml:"medium"`
	Small     int `yaml:"small"`
	Saucer    int `yaml:"saucer"`
	ExtraLife int `yaml:"extra_life"` // Score interval that awards a bonus life
}

// GameplayConfig defines lives and the high-score table.
type GameplayConfig struct {
	Lives    int `yaml:"lives"`
	MaxIcons int `yaml:"max_icons"` // Life icons the HUD can show
	Initials int `yaml:"initials"`  // Characters accepted for a high-score entry
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to asteroid speed factor at max difficulty
	ShotReduction   float64 `yaml:"shot_reduction"`   // Fraction of the saucer shot interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

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
