package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded runner.yaml = %+v\nexpected %+v", cfg, DefaultRunnerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, expected nil", err)
	}
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestLoadRunnerDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.Movement != MovementManual {
		t.Errorf("Movement = %q, expected manual", cfg.Movement)
	}
	if cfg.Physics.JumpImpulse != -22 {
		t.Errorf("JumpImpulse = %v, expected -22", cfg.Physics.JumpImpulse)
	}
}

func TestLoadRunnerPartialOverride(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := "movement: auto\ndifficulty: hard\nphysics:\n  gravity: 1.2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.Movement != MovementAuto {
		t.Errorf("Movement = %q, expected auto", cfg.Movement)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("Gravity = %v, expected 1.2", cfg.Physics.Gravity)
	}
	// Fields not named in the file keep their defaults
	if cfg.Physics.JumpImpulse != -22 || cfg.Player.Width != 80 {
		t.Errorf("unspecified fields were not kept: %+v", cfg.Physics)
	}
	if cfg.ActiveTier().Name != "Hard Mode" {
		t.Errorf("ActiveTier() = %q, expected Hard Mode", cfg.ActiveTier().Name)
	}
}

func TestLoadRunnerLocalConfigsDir(t *testing.T) {
	isolate(t)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "runner.yaml"), []byte("difficulty: medium\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty = %q, expected medium", cfg.Difficulty)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing file", "", "failed to read"},
		{"bad yaml", "physics: [", "failed to parse"},
		{"invalid value", "player:\n  width: -1\n", "player.width must be positive"},
		{"unknown tier", "difficulty: insane\n", "has no tier"},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "cfg"+string(rune('a'+i))+".yaml")
			if tc.content != "" {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			_, err := LoadRunner(path)
			if err == nil {
				t.Fatal("LoadRunner() error = nil, expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("LoadRunner() error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Physics.Gravity = 0
	cfg.Physics.JumpImpulse = 5
	cfg.Tiers[DifficultyEasy] = Tier{ObstacleChance: 2}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	for _, want := range []string{"physics.gravity", "physics.jump_impulse", "tiers.easy.obstacle_chance"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, expected mention of %s", err, want)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyMedium, true},
		{"medium", DifficultyMedium, true},
		{"hard", DifficultyHard, true},
		{"fixed", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.input)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.input, got, ok, tc.expected, tc.ok)
		}
	}

	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.ActiveTier().ObstacleSpacing != 200 {
		t.Errorf("hard ObstacleSpacing = %d, expected 200", cfg.ActiveTier().ObstacleSpacing)
	}
	ApplyRunnerPreset(&cfg, "insane")
	if cfg.Difficulty != DifficultyHard {
		t.Error("unknown preset should leave the difficulty unchanged")
	}

	if err := ApplyMovement(&cfg, MovementAuto); err != nil || cfg.Movement != MovementAuto {
		t.Errorf("ApplyMovement(auto) = %v, movement %q", err, cfg.Movement)
	}
	if err := ApplyMovement(&cfg, "sideways"); err == nil {
		t.Error("ApplyMovement(sideways) should fail")
	}
}

func TestSpeedManager(t *testing.T) {
	cfg := DefaultRunnerConfig()
	m := NewSpeedManager(cfg)

	if m.Speed(0) != 5 {
		t.Errorf("Speed(0) = %v, expected 5", m.Speed(0))
	}
	if got := m.Speed(1000); got < 7.999 || got > 8.001 {
		t.Errorf("Speed(1000) = %v, expected 8", got)
	}
	if got := m.Speed(1_000_000); got < 3004.999 || got > 3005.001 {
		t.Errorf("Speed(1000000) = %v, expected the uncapped default 3005", got)
	}

	cfg.Speed.Max = 14
	capped := NewSpeedManager(cfg)
	if capped.Speed(1_000_000) != 14 {
		t.Errorf("Speed should be capped at 14, got %v", capped.Speed(1_000_000))
	}
	if got := capped.Speed(1000); got < 7.999 || got > 8.001 {
		t.Errorf("capped Speed(1000) = %v, expected 8", got)
	}

	// 12500 ticks is one full day at 0.00008 per tick
	if tod := m.TimeOfDay(12500 + 3125); tod < 0.2499 || tod > 0.2501 {
		t.Errorf("TimeOfDay() after one cycle and a quarter = %v, expected 0.25", tod)
	}
}
