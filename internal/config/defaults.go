package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// Size names used as keys of AsteroidConfig.Sizes.
const (
	SizeBig    = "big"
	SizeMedium = "medium"
	SizeSmall  = "small"
)

// DefaultAsteroidsConfig returns the built-in configuration.
// It must stay in sync with defaults/asteroids.yaml.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Playfield: PlayfieldConfig{
			Width:  2500,
			Height: 2000,
		},
		Ship: ShipConfig{
			Width:          60,
			Height:         80,
			Thrust:         0.3,
			MaxSpeed:       8,
			RotateStep:     0.6,
			RotateDamping:  0.5,
			MaxRotateSpeed: 5,
			BulletSpeed:    12,
			BulletPool:     10,
			TeleportBudget: Range{Min: 5, Max: 15},
		},
		Asteroids: AsteroidConfig{
			Sizes: map[string]SizeConfig{
				SizeBig:    {Width: 240, Height: 220},
				SizeMedium: {Width: 120, Height: 110},
				SizeSmall:  {Width: 80, Height: 72},
			},
			WaveCounts:   []int{3, 4, 5},
			WaveSpeeds:   []float64{1.0, 1.5, 2.0},
			DefaultCount: 7,
			DefaultSpeed: 3.0,
			Margin:       200,
			SpawnOffset:  100,
		},
		Saucer: SaucerConfig{
			Width:       150,
			Height:      75,
			Speed:       2.5,
			BulletSpeed: 12,
			Appearance:  Range{Min: 100, Max: 200},
			Disappear:   Range{Min: 100, Max: 2000},
			Change:      Range{Min: 300, Max: 1000},
			Shot:        Range{Min: 200, Max: 500},
		},
		Debris: DebrisConfig{
			Speed:           0.3,
			Lifetime:        Range{Min: 45, Max: 160},
			Jitter:          20,
			PieceSpacing:    5,
			ShipPieces:      6,
			ShipPieceLength: Range{Min: 30, Max: 75},
		},
		Scoring: ScoringConfig{
			Big:       20,
			Medium:    50,
			Small:     100,
			Saucer:    200,
			ExtraLife: 10000,
		},
		Gameplay: GameplayConfig{
			Lives:    4,
			MaxIcons: 15,
			Initials: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ShotReduction:   0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
