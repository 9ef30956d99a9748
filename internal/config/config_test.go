package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultKickballConfig()
	if err := yaml.Unmarshal(defaultKickballYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultKickballConfig() {
		t.Errorf("embedded default differs from DefaultKickballConfig():\n%+v\n%+v", cfg, DefaultKickballConfig())
	}
}

func TestDecodeEmbedded(t *testing.T) {
	cfg, err := decodeEmbedded(defaultKickballYAML)
	if err != nil {
		t.Fatalf("embedded default should decode and validate: %v", err)
	}
	if cfg != DefaultKickballConfig() {
		t.Errorf("decoded embed = %+v, expected the hard-coded default", cfg)
	}

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "field: [\n"},
		{"zero mass", "ball:\n  mass: 0\n"},
		{"unknown mode", "ball:\n  boundary:\n    mode: bounce\n"},
		{"spring player", "player:\n  boundary:\n    mode: spring\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := decodeEmbedded([]byte(tc.data))
			if err == nil {
				t.Fatal("decodeEmbedded() should fail")
			}
			if cfg != DefaultKickballConfig() {
				t.Errorf("a broken embed should fall back to the hard-coded default, got %+v", cfg)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := DefaultKickballConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*KickballConfig)
	}{
		{"zero units", func(c *KickballConfig) { c.Field.UnitsX = 0 }},
		{"no substeps", func(c *KickballConfig) { c.Field.PhysicsSubsteps = 0 }},
		{"zero mass", func(c *KickballConfig) { c.Ball.Mass = 0 }},
		{"negative radius", func(c *KickballConfig) { c.Player.Radius = -1 }},
		{"no goal mouth", func(c *KickballConfig) { c.Goals.Height = 0 }},
		{"unknown ball mode", func(c *KickballConfig) { c.Ball.Boundary.Mode = "bounce" }},
		{"unknown player mode", func(c *KickballConfig) { c.Player.Boundary.Mode = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKickballConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestValidateWrapsModeError(t *testing.T) {
	cfg := DefaultKickballConfig()
	cfg.Ball.Boundary.Mode = "bounce"
	if err := cfg.Validate(); !errors.Is(err, bounds.ErrUnknownMode) {
		t.Errorf("Validate() error = %v, expected to wrap ErrUnknownMode", err)
	}
}

func TestValidateSpringPlayerNeedsPhysics(t *testing.T) {
	cfg := DefaultKickballConfig()
	cfg.Player.Boundary.Mode = "spring"
	cfg.Player.UsePhysicsMovement = false
	if err := cfg.Validate(); !errors.Is(err, ErrSpringNeedsPhysics) {
		t.Errorf("Validate() error = %v, expected to wrap ErrSpringNeedsPhysics", err)
	}

	cfg.Player.UsePhysicsMovement = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("spring with physics movement should validate: %v", err)
	}

	cfg.Player.UsePhysicsMovement = false
	cfg.Player.UseBoundaryConstraint = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("unconstrained player should validate: %v", err)
	}
}

func TestBoundaryPolicyConversion(t *testing.T) {
	p := BoundaryPolicy{Mode: "spring", UseFootprint: true, BoundaryForce: 50, DampingForce: 10}
	got, err := p.PolicyConfig()
	if err != nil {
		t.Fatal(err)
	}
	expected := bounds.PolicyConfig{Mode: bounds.ModeSpring, UseFootprint: true, BoundaryForceGain: 50, DampingForceGain: 10}
	if got != expected {
		t.Errorf("PolicyConfig() = %+v, expected %+v", got, expected)
	}
}

func TestLoadKickballCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kickball.yaml")
	data := []byte("ball:\n  kick_force: 1200\n  boundary:\n    mode: clamp\ngameplay:\n  win_score: 9\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKickball(path)
	if err != nil {
		t.Fatalf("LoadKickball() error: %v", err)
	}
	if cfg.Ball.KickForce != 1200 {
		t.Errorf("KickForce = %v, expected 1200", cfg.Ball.KickForce)
	}
	if cfg.Ball.Boundary.Mode != "clamp" {
		t.Errorf("ball mode = %q, expected clamp", cfg.Ball.Boundary.Mode)
	}
	if cfg.Gameplay.WinScore != 9 {
		t.Errorf("WinScore = %d, expected 9", cfg.Gameplay.WinScore)
	}
	// Untouched keys keep their defaults
	if cfg.Ball.DampFactor != 0.98 || cfg.Player.MoveSpeed != 5 {
		t.Errorf("defaults lost: damp=%v speed=%v", cfg.Ball.DampFactor, cfg.Player.MoveSpeed)
	}
}

func TestLoadKickballCustomPathErrors(t *testing.T) {
	if _, err := LoadKickball(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKickball(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  mass: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKickball(invalid); err == nil {
		t.Error("invalid custom file should fail validation")
	}
}

func TestLoadKickballSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, err := LoadKickball("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultKickballConfig() {
		t.Error("expected embedded default when no files exist")
	}

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "kickball.yaml"), []byte("gameplay:\n  win_score: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadKickball("")
	if cfg.Gameplay.WinScore != 2 {
		t.Errorf("local config: WinScore = %d, expected 2", cfg.Gameplay.WinScore)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "kickball.yaml"), []byte("gameplay:\n  win_score: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadKickball("")
	if cfg.Gameplay.WinScore != 4 {
		t.Errorf("user config: WinScore = %d, expected 4", cfg.Gameplay.WinScore)
	}

	// An invalid user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "kickball.yaml"), []byte("field:\n  units_x: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadKickball("")
	if cfg.Gameplay.WinScore != 2 {
		t.Errorf("invalid user config should fall through to local, WinScore = %d", cfg.Gameplay.WinScore)
	}
}

func TestApplyKickballPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
		goalHeight   float64
		winScore     int
	}{
		{DifficultyEasy, true, 0.0, 6, 3},
		{DifficultyNormal, true, 0.3, 5, 5},
		{DifficultyHard, true, 0.7, 4, 7},
		{DifficultyFixed, false, 0.0, 5, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultKickballConfig()
			ApplyKickballPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
			if cfg.Goals.Height != tc.goalHeight {
				t.Errorf("Goals.Height = %v, expected %v", cfg.Goals.Height, tc.goalHeight)
			}
			if cfg.Gameplay.WinScore != tc.winScore {
				t.Errorf("WinScore = %d, expected %d", cfg.Gameplay.WinScore, tc.winScore)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultKickballConfig().Difficulty
	d := NewDifficultyManager(cfg)

	if l := d.Level(0, 0); l != 0 {
		t.Errorf("Level(0) = %f, expected 0", l)
	}
	if l := d.Level(5, 0); l != 1 {
		t.Errorf("Level(max_at) = %f, expected 1", l)
	}
	if l := d.Level(50, 0); l != 1 {
		t.Errorf("Level past max_at = %f, expected 1", l)
	}

	if h := d.GoalHeight(5, 5, 0); math.Abs(h-3) > 1e-9 {
		t.Errorf("GoalHeight at max = %f, expected 3", h)
	}
	if k := d.KickForce(900, 5, 0); math.Abs(k-1350) > 1e-9 {
		t.Errorf("KickForce at max = %f, expected 1350", k)
	}
}

func TestDifficultyManagerFixed(t *testing.T) {
	cfg := DefaultKickballConfig()
	ApplyKickballPreset(&cfg, DifficultyFixed)
	d := NewDifficultyManager(cfg.Difficulty)

	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	if h := d.GoalHeight(5, 100, 100000); h != 5 {
		t.Errorf("GoalHeight with fixed difficulty = %f, expected 5", h)
	}
}

func TestGoalHeightFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{GoalShrink: 1},
	})
	if h := d.GoalHeight(5, 0, 0); h != minGoalHeight {
		t.Errorf("GoalHeight = %f, expected floor %f", h, minGoalHeight)
	}
}
