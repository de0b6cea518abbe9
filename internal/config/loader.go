package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const runnerConfigFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg := baseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(runnerConfigFile), filepath.Join("configs", runnerConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := baseConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() != nil {
			continue
		}
		return candidate, nil
	}

	return cfg, nil
}

// baseConfig decodes the embedded YAML, falling back to the hard-coded defaults.
func baseConfig() RunnerConfig {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultRunnerConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset selects the difficulty tier.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if _, ok := cfg.Tiers[preset]; ok {
		cfg.Difficulty = preset
	}
}

// ApplyMovement overrides the movement mode when m is a known mode.
func ApplyMovement(cfg *RunnerConfig, m MovementMode) error {
	switch m {
	case MovementManual, MovementAuto:
		cfg.Movement = m
		return nil
	default:
		return fmt.Errorf("config: unknown movement mode %q", m)
	}
}

// Validate reports every field that would make the simulation degenerate.
func (cfg RunnerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	switch cfg.Movement {
	case MovementManual, MovementAuto:
	default:
		errs = append(errs, fmt.Errorf("movement must be manual or auto, got %q", cfg.Movement))
	}

	positive("physics.gravity", cfg.Physics.Gravity)
	if cfg.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative, got %v", cfg.Physics.JumpImpulse))
	}
	if cfg.Physics.JumpCooldown < 0 {
		errs = append(errs, fmt.Errorf("physics.jump_cooldown must not be negative, got %d", cfg.Physics.JumpCooldown))
	}
	if cfg.Physics.CollisionMargin < 0 || 2*cfg.Physics.CollisionMargin >= cfg.Player.Width {
		errs = append(errs, fmt.Errorf("physics.collision_margin %v does not fit the player box", cfg.Physics.CollisionMargin))
	}
	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)
	if cfg.Player.AirJumps < 0 || cfg.Player.AirJumps > 1 {
		errs = append(errs, fmt.Errorf("player.air_jumps must be 0 or 1, got %d", cfg.Player.AirJumps))
	}
	positive("world.ground_height", cfg.World.GroundHeight)
	positive("world.max_world_speed", cfg.World.MaxWorldSpeed)
	positive("world.look_ahead", cfg.World.LookAhead)
	positive("speed.base", cfg.Speed.Base)
	positive("session.time_limit_seconds", cfg.Session.TimeLimitSeconds)
	positive("session.distance_per_point", cfg.Session.DistancePerPoint)
	if cfg.Session.DeathTicks <= 0 {
		errs = append(errs, fmt.Errorf("session.death_ticks must be positive, got %d", cfg.Session.DeathTicks))
	}
	probability("spawn.block_chance", cfg.Spawn.BlockChance)
	probability("spawn.helper_chance", cfg.Spawn.HelperChance)

	if len(cfg.Tiers) == 0 {
		errs = append(errs, errors.New("tiers must define at least one difficulty"))
	}
	for name, t := range cfg.Tiers {
		for field, v := range map[string]float64{
			"obstacle_chance": t.ObstacleChance,
			"coin_chance":     t.CoinChance,
			"hole_chance":     t.HoleChance,
			"platform_chance": t.PlatformChance,
			"ramp_chance":     t.RampChance,
			"bird_chance":     t.BirdChance,
			"snail_chance":    t.SnailChance,
			"watch_chance":    t.WatchChance,
		} {
			probability(fmt.Sprintf("tiers.%s.%s", name, field), v)
		}
	}
	if _, ok := cfg.Tiers[cfg.Difficulty]; !ok && len(cfg.Tiers) > 0 {
		errs = append(errs, fmt.Errorf("difficulty %q has no tier", cfg.Difficulty))
	}

	return errors.Join(errs...)
}
