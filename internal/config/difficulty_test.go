package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(9999, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level at half time = %v, expected 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level = %v, expected 0.4", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1, SpacingReduction: 30},
	})

	if got := d.Speed(10, 0, 0); got != 10 {
		t.Errorf("Speed at level 0 = %v, expected 10", got)
	}
	if got := d.Speed(10, 100, 0); got != 20 {
		t.Errorf("Speed at max level = %v, expected 20", got)
	}
	if got := d.Interval(45, 10, 50, 0); got != 30 {
		t.Errorf("Interval at half level = %d, expected 30", got)
	}
	if got := d.Interval(35, 10, 100, 0); got != 10 {
		t.Errorf("Interval should not drop below floor, got %d", got)
	}
}
