package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so the
// user's real configs never leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	racer, err := LoadRacer("")
	if err != nil {
		t.Fatalf("LoadRacer: %v", err)
	}
	if len(racer.Track.Bends) != 0 {
		t.Errorf("default racer bends = %v, expected none", racer.Track.Bends)
	}
	racer.Track.Bends = nil
	if !reflect.DeepEqual(racer, DefaultRacerConfig()) {
		t.Errorf("embedded racer config differs from hardcoded:\n%+v\n%+v", racer, DefaultRacerConfig())
	}

	shooter, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if !reflect.DeepEqual(shooter, DefaultShooterConfig()) {
		t.Errorf("embedded shooter config differs from hardcoded:\n%+v\n%+v", shooter, DefaultShooterConfig())
	}

	swing, err := LoadSwing("")
	if err != nil {
		t.Fatalf("LoadSwing: %v", err)
	}
	if !reflect.DeepEqual(swing, DefaultSwingConfig()) {
		t.Errorf("embedded swing config differs from hardcoded:\n%+v\n%+v", swing, DefaultSwingConfig())
	}
}

func TestHardcodedDefaultsValidate(t *testing.T) {
	if err := DefaultRacerConfig().Validate(); err != nil {
		t.Errorf("racer: %v", err)
	}
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Errorf("shooter: %v", err)
	}
	if err := DefaultSwingConfig().Validate(); err != nil {
		t.Errorf("swing: %v", err)
	}
}

func TestLoadCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fast.yaml")
	writeFile(t, path, `
player:
  max_speed: 9000
track:
  bends:
    - {start: 10, end: 40, curve: -2}
`)

	cfg, err := LoadRacer(path)
	if err != nil {
		t.Fatalf("LoadRacer: %v", err)
	}
	if cfg.Player.MaxSpeed != 9000 {
		t.Errorf("MaxSpeed = %v, expected 9000", cfg.Player.MaxSpeed)
	}
	if cfg.Player.Accel != DefaultRacerConfig().Player.Accel {
		t.Errorf("Accel = %v, expected default to survive", cfg.Player.Accel)
	}

	plan := cfg.Track.Plan()
	if len(plan) != 1 || plan[0].Start != 10 || plan[0].End != 40 || plan[0].Curve != -2 {
		t.Errorf("Plan() = %+v", plan)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadRacer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "track: [not, a, map")
	if _, err := LoadRacer(broken); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "camera:\n  fov: 180\n")
	_, err := LoadRacer(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config: err = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join("configs", "swing.yaml"), "gameplay:\n  lives: 7\n")
	cfg, err := LoadSwing("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("local config not used, lives = %d", cfg.Gameplay.Lives)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "swing.yaml"), "gameplay:\n  lives: 9\n")
	cfg, _ = LoadSwing("")
	if cfg.Gameplay.Lives != 9 {
		t.Errorf("user config should win over local, lives = %d", cfg.Gameplay.Lives)
	}

	// An invalid user file is skipped in favour of the next location.
	writeFile(t, filepath.Join(home, ".arcade", "configs", "swing.yaml"), "gameplay:\n  lives: 0\n")
	cfg, _ = LoadSwing("")
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("invalid user config should be skipped, lives = %d", cfg.Gameplay.Lives)
	}
}

func TestRacerValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RacerConfig)
	}{
		{"no segments", func(c *RacerConfig) { c.Track.Segments = 0 }},
		{"zero segment length", func(c *RacerConfig) { c.Track.SegmentLength = 0 }},
		{"zero road width", func(c *RacerConfig) { c.Track.RoadWidth = 0 }},
		{"short look ahead", func(c *RacerConfig) { c.Track.LookAhead = 1 }},
		{"camera on the road", func(c *RacerConfig) { c.Camera.Height = 0 }},
		{"fov zero", func(c *RacerConfig) { c.Camera.FOV = 0 }},
		{"no time", func(c *RacerConfig) { c.Gameplay.TimeLimit = 0 }},
		{"empty bend", func(c *RacerConfig) { c.Track.Bends = []BendDef{{Start: 5, End: 5, Curve: 1}} }},
		{"negative max speed", func(c *RacerConfig) { c.Player.MaxSpeed = -1 }},
		{"off-road push", func(c *RacerConfig) { c.Player.OffRoadDecel = 3000 }},
		{"braking push", func(c *RacerConfig) { c.Player.Braking = 4000 }},
		{"reverse accel", func(c *RacerConfig) { c.Player.Accel = -1500 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRacerConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestRacerParamsHalfWidth(t *testing.T) {
	cfg := DefaultRacerConfig()
	cfg.Track.RoadWidth = 3000
	if got := cfg.Params().RoadHalfWidth; got != 1500 {
		t.Errorf("RoadHalfWidth = %v, expected 1500", got)
	}
}

func TestApplyPresets(t *testing.T) {
	racer := DefaultRacerConfig()
	ApplyRacerPreset(&racer, DifficultyEasy)
	if racer.Gameplay.TimeLimit <= DefaultRacerConfig().Gameplay.TimeLimit {
		t.Error("easy racer should get more time")
	}

	racer = DefaultRacerConfig()
	ApplyRacerPreset(&racer, DifficultyHard)
	if racer.Gameplay.TimeLimit >= DefaultRacerConfig().Gameplay.TimeLimit {
		t.Error("hard racer should get less time")
	}
	if err := racer.Validate(); err != nil {
		t.Errorf("hard racer config invalid: %v", err)
	}

	shooter := DefaultShooterConfig()
	ApplyShooterPreset(&shooter, DifficultyFixed)
	if shooter.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	shooter = DefaultShooterConfig()
	ApplyShooterPreset(&shooter, DifficultyHard)
	if shooter.Difficulty.InitialLevel != 0.7 || shooter.Gameplay.Lives != 2 {
		t.Errorf("hard shooter: level %v lives %d", shooter.Difficulty.InitialLevel, shooter.Gameplay.Lives)
	}

	swing := DefaultSwingConfig()
	ApplySwingPreset(&swing, DifficultyEasy)
	if swing.Gameplay.Lives != 5 {
		t.Errorf("easy swing lives = %d", swing.Gameplay.Lives)
	}
}

func TestParsePreset(t *testing.T) {
	tests := map[string]DifficultyPreset{
		"easy":    DifficultyEasy,
		"normal":  DifficultyNormal,
		"hard":    DifficultyHard,
		"fixed":   DifficultyFixed,
		"":        "",
		"extreme": "",
	}
	for in, expected := range tests {
		if got := ParsePreset(in); got != expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", in, got, expected)
		}
	}
}
