package config

import (
	"math"
	"testing"
)

func levelDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 2},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(levelDifficulty())

	tests := []struct {
		levelIndex int
		expected   float64
	}{
		{0, 0.0},
		{1, 0.5},
		{2, 1.0},
		{5, 1.0},
	}

	for _, tt := range tests {
		if got := d.Level(tt.levelIndex); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.levelIndex, got, tt.expected)
		}
	}
}

func TestDifficultyInterpolatesFromInitial(t *testing.T) {
	d := NewDifficultyManager(levelDifficulty())
	d.SetInitialLevel(0.5)

	if got := d.Level(1); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level(1) = %v, expected 0.75", got)
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(levelDifficulty())

	if got := d.Speed(1.0, 0); got != 1.0 {
		t.Errorf("Speed(1, 0) = %v, expected 1", got)
	}
	if got := d.Speed(1.0, 2); got != 1.5 {
		t.Errorf("Speed(1, 2) = %v, expected 1.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DifficultyManager)
	}{
		{"disabled", func(d *DifficultyManager) { d.SetEnabled(false) }},
		{"fixed initial", func(d *DifficultyManager) {
			d.SetEnabled(false)
			d.SetInitialLevel(0.3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(levelDifficulty())
			tt.mutate(d)
			start := d.Level(0)

			if d.IsEnabled() {
				t.Errorf("IsEnabled() = true, expected false")
			}
			if got := d.Level(2); got != start {
				t.Errorf("Level(2) = %v, expected constant %v", got, start)
			}
		})
	}
}

func TestDifficultyProgressionNone(t *testing.T) {
	cfg := levelDifficulty()
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Errorf("IsEnabled() = true with progression none")
	}
	if got := d.Level(2); got != 0 {
		t.Errorf("Level(2) = %v, expected 0", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(levelDifficulty())
	d.SetEnabled(false)

	d.SetInitialLevel(2)
	if got := d.Level(0); got != 1 {
		t.Errorf("Level() = %v, expected clamp to 1", got)
	}
	d.SetInitialLevel(-1)
	if got := d.Level(0); got != 0 {
		t.Errorf("Level() = %v, expected clamp to 0", got)
	}
}
