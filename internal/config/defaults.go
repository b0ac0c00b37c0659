package config

import (
	_ "embed"

	"github.com/vovakirdan/retro-arcade/internal/road"
)

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/rapidfire.yaml
var defaultShooterYAML []byte

//go:embed defaults/swing.yaml
var defaultSwingYAML []byte

// DefaultRacerConfig returns the hardcoded racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Track: RacerTrack{
			Segments:      600,
			SegmentLength: 200,
			RoadWidth:     2000,
			LookAhead:     150,
			CurveOffset:   0.5,
		},
		Camera: RacerCamera{
			Height: 1000,
			FOV:    60,
		},
		Player: road.Params{
			MaxSpeed:     6000,
			Accel:        1500,
			Braking:      -4000,
			Decel:        -600,
			OffRoadDecel: -3000,
			TurnRate:     0.3,
			CurveFactor:  0.15,
		},
		Gameplay: RacerGameplay{
			TimeLimit: 60,
			LapBonus:  30,
		},
	}
}

// DefaultShooterConfig returns the hardcoded Rapid Fire configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: ShooterPlayer{
			Speed:        30,
			FireCooldown: 8,
			Width:        3,
			Height:       2,
		},
		Bullets: ShooterBullets{
			Capacity:   64,
			Speed:      40,
			EnemySpeed: 18,
		},
		Enemies: ShooterEnemies{
			Capacity:      24,
			SpawnInterval: 45,
			BaseSpeed:     6,
			FireChance:    0.4,
		},
		Gameplay: ShooterGameplay{
			Lives:        3,
			KillPoints:   10,
			Invulnerable: 90,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.5,
				SpacingReduction: 25,
			},
		},
	}
}

// DefaultSwingConfig returns the hardcoded rope swing configuration.
func DefaultSwingConfig() SwingConfig {
	return SwingConfig{
		Physics: SwingPhysics{
			Gravity:     60,
			RunSpeed:    14,
			JumpImpulse: 22,
			Damping:     0.15,
			Pump:        3,
			GrabRadius:  1.5,
		},
		Course: SwingCourse{
			PitMinWidth:    8,
			PitMaxWidth:    14,
			GroundMinWidth: 6,
			GroundMaxWidth: 12,
			RopeLength:     8,
		},
		Gameplay: SwingGameplay{
			Lives:     3,
			PitPoints: 100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "racer":
		return defaultRacerYAML
	case "rapidfire":
		return defaultShooterYAML
	case "swing":
		return defaultSwingYAML
	default:
		return nil
	}
}
