// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/retro-arcade/internal/road"
)

// ErrInvalidConfig marks a configuration that parsed but cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// RacerConfig contains all configuration for the pseudo-3D racer.
type RacerConfig struct {
	Track    RacerTrack    `yaml:"track"`
	Camera   RacerCamera   `yaml:"camera"`
	Player   road.Params   `yaml:"player"`
	Gameplay RacerGameplay `yaml:"gameplay"`
}

// RacerTrack describes the road geometry and how much of it is drawn.
type RacerTrack struct {
	Segments      int       `yaml:"segments"`
	SegmentLength float64   `yaml:"segment_length"`
	RoadWidth     float64   `yaml:"road_width"`
	LookAhead     int       `yaml:"look_ahead"`
	CurveOffset   float64   `yaml:"curve_offset"`
	Bends         []BendDef `yaml:"bends"` // empty means the built-in course layout
}

// BendDef is one curved stretch of a course, in segment indices.
type BendDef struct {
	Start int     `yaml:"start"`
	End   int     `yaml:"end"`
	Curve float64 `yaml:"curve"`
}

// RacerCamera positions the viewer above the road.
type RacerCamera struct {
	Height float64 `yaml:"height"`
	FOV    float64 `yaml:"fov"` // degrees
}

// RacerGameplay holds the arcade rules layered on top of the driving model.
type RacerGameplay struct {
	TimeLimit float64 `yaml:"time_limit"` // seconds on the clock at the start
	LapBonus  float64 `yaml:"lap_bonus"`  // seconds added per completed lap
}

// Plan converts the configured bends into a road curve plan.
func (t RacerTrack) Plan() road.CurvePlan {
	if len(t.Bends) == 0 {
		return nil
	}
	plan := make(road.CurvePlan, len(t.Bends))
	for i, b := range t.Bends {
		plan[i] = road.Bend{Start: b.Start, End: b.End, Curve: b.Curve}
	}
	return plan
}

// Params returns the handling parameters with the road half width filled in.
func (c RacerConfig) Params() road.Params {
	p := c.Player
	p.RoadHalfWidth = c.Track.RoadWidth / 2
	return p
}

// Validate rejects configurations the road model cannot run with.
func (c RacerConfig) Validate() error {
	switch {
	case c.Track.Segments <= 0:
		return fmt.Errorf("%w: track segments %d", ErrInvalidConfig, c.Track.Segments)
	case !finitePositive(c.Track.SegmentLength):
		return fmt.Errorf("%w: segment length %v", ErrInvalidConfig, c.Track.SegmentLength)
	case !finitePositive(c.Track.RoadWidth):
		return fmt.Errorf("%w: road width %v", ErrInvalidConfig, c.Track.RoadWidth)
	case c.Track.LookAhead < 2:
		return fmt.Errorf("%w: look ahead %d", ErrInvalidConfig, c.Track.LookAhead)
	case !finitePositive(c.Camera.Height):
		return fmt.Errorf("%w: camera height %v", ErrInvalidConfig, c.Camera.Height)
	case !(c.Camera.FOV > 0 && c.Camera.FOV < 180):
		return fmt.Errorf("%w: field of view %v", ErrInvalidConfig, c.Camera.FOV)
	case !finitePositive(c.Gameplay.TimeLimit):
		return fmt.Errorf("%w: time limit %v", ErrInvalidConfig, c.Gameplay.TimeLimit)
	}
	for i, b := range c.Track.Bends {
		if b.Start >= b.End {
			return fmt.Errorf("%w: bend %d is empty [%d, %d)", ErrInvalidConfig, i, b.Start, b.End)
		}
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: player: %w", ErrInvalidConfig, err)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// ShooterConfig contains all configuration for the Rapid Fire shooter.
type ShooterConfig struct {
	Player     ShooterPlayer    `yaml:"player"`
	Bullets    ShooterBullets   `yaml:"bullets"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Gameplay   ShooterGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the player's ship.
type ShooterPlayer struct {
	Speed        float64 `yaml:"speed"`         // cells per second
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
}

// ShooterBullets sizes the bullet pool and sets projectile speeds.
type ShooterBullets struct {
	Capacity   int     `yaml:"capacity"`
	Speed      float64 `yaml:"speed"`       // player bullets, cells per second
	EnemySpeed float64 `yaml:"enemy_speed"` // enemy bullets, cells per second
}

// ShooterEnemies controls the enemy waves.
type ShooterEnemies struct {
	Capacity      int     `yaml:"capacity"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between spawns at the easiest level
	BaseSpeed     float64 `yaml:"base_speed"`     // cells per second
	FireChance    float64 `yaml:"fire_chance"`    // per enemy per second
}

// ShooterGameplay holds scoring and lives.
type ShooterGameplay struct {
	Lives        int `yaml:"lives"`
	KillPoints   int `yaml:"kill_points"`
	Invulnerable int `yaml:"invulnerable"` // ticks of grace after losing a life
}

// SwingConfig contains all configuration for the rope swing game.
type SwingConfig struct {
	Physics  SwingPhysics  `yaml:"physics"`
	Course   SwingCourse   `yaml:"course"`
	Gameplay SwingGameplay `yaml:"gameplay"`
}

// SwingPhysics defines movement and pendulum parameters, in cells and seconds.
type SwingPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	RunSpeed    float64 `yaml:"run_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Damping     float64 `yaml:"damping"` // fraction of angular velocity lost per second
	Pump        float64 `yaml:"pump"`    // angular acceleration from leaning, rad/s²
	GrabRadius  float64 `yaml:"grab_radius"`
}

// SwingCourse controls procedural generation of pits and ropes.
type SwingCourse struct {
	PitMinWidth    int `yaml:"pit_min_width"`
	PitMaxWidth    int `yaml:"pit_max_width"`
	GroundMinWidth int `yaml:"ground_min_width"`
	GroundMaxWidth int `yaml:"ground_max_width"`
	RopeLength     int `yaml:"rope_length"`
}

// SwingGameplay holds scoring and lives.
type SwingGameplay struct {
	Lives     int `yaml:"lives"`
	PitPoints int `yaml:"pit_points"`
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
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to speed at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // spawn spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values give the empty preset.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// applyPreset sets the progression fields shared by every game.
func (d *DifficultyConfig) applyPreset(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
