package core

import (
	"math"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("screen = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, expected 0 for the platform to pick", cfg.Seed)
	}
}

func TestRuntimeConfigDt(t *testing.T) {
	tests := []struct {
		rate     int
		expected float64
	}{
		{60, 1.0 / 60},
		{30, 1.0 / 30},
		{0, 1.0 / 60},
		{-5, 1.0 / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.Dt(); math.Abs(got-tc.expected) > 1e-12 {
			t.Errorf("Dt() at %d TPS = %f, expected %f", tc.rate, got, tc.expected)
		}
	}
}
