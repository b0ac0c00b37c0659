package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads the racer configuration.
// Search order: customPath -> ~/.arcade/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer", customPath, defaultRacerYAML, DefaultRacerConfig, RacerConfig.Validate)
}

// LoadShooter loads the Rapid Fire configuration, with the same search order as LoadRacer.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("rapidfire", customPath, defaultShooterYAML, DefaultShooterConfig, ShooterConfig.Validate)
}

// LoadSwing loads the rope swing configuration, with the same search order as LoadRacer.
func LoadSwing(customPath string) (SwingConfig, error) {
	return load("swing", customPath, defaultSwingYAML, DefaultSwingConfig, SwingConfig.Validate)
}

// load resolves a game config. Files are decoded over the hardcoded defaults,
// so a file only needs the keys it changes. An explicit customPath must load;
// the other locations are skipped when missing, unparsable or invalid.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T, validate func(T) error) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults, validate)
		if err != nil {
			return defaults(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID + ".yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults, validate); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(embedded, defaults, validate); err == nil {
		return cfg, nil
	}
	return defaults(), nil
}

func decode[T any](data []byte, defaults func() T, validate func(T) error) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if validate != nil {
		if err := validate(cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// searchPaths lists the user and local config locations for filename.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// ApplyRacerPreset adjusts the clock and off-road penalty for a preset.
func ApplyRacerPreset(cfg *RacerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.TimeLimit += 20
		cfg.Gameplay.LapBonus += 10
	case DifficultyHard:
		cfg.Gameplay.TimeLimit = max(cfg.Gameplay.TimeLimit-15, 20)
		cfg.Player.OffRoadDecel *= 1.5
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Difficulty.applyPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.FireChance *= 1.5
	}
}

// ApplySwingPreset modifies the config based on a difficulty preset.
func ApplySwingPreset(cfg *SwingConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.GrabRadius *= 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Course.PitMaxWidth += 4
	}
}

// Validate rejects shooter settings that would stall or crash the game.
func (c ShooterConfig) Validate() error {
	switch {
	case c.Bullets.Capacity <= 0 || c.Enemies.Capacity <= 0:
		return fmt.Errorf("%w: pool capacity must be positive", ErrInvalidConfig)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Gameplay.Lives)
	case c.Enemies.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval %d", ErrInvalidConfig, c.Enemies.SpawnInterval)
	case !finitePositive(c.Player.Speed) || !finitePositive(c.Bullets.Speed):
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: ship size %dx%d", ErrInvalidConfig, c.Player.Width, c.Player.Height)
	}
	return nil
}

// Validate rejects swing settings that cannot generate a course.
func (c SwingConfig) Validate() error {
	switch {
	case !finitePositive(c.Physics.Gravity):
		return fmt.Errorf("%w: gravity %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Course.RopeLength <= 0:
		return fmt.Errorf("%w: rope length %d", ErrInvalidConfig, c.Course.RopeLength)
	case c.Course.PitMinWidth <= 0 || c.Course.PitMinWidth > c.Course.PitMaxWidth:
		return fmt.Errorf("%w: pit width range [%d, %d]", ErrInvalidConfig, c.Course.PitMinWidth, c.Course.PitMaxWidth)
	case c.Course.GroundMinWidth <= 0 || c.Course.GroundMinWidth > c.Course.GroundMaxWidth:
		return fmt.Errorf("%w: ground width range [%d, %d]", ErrInvalidConfig, c.Course.GroundMinWidth, c.Course.GroundMaxWidth)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	return nil
}
