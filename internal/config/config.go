// Package config provides YAML-based configuration loading and difficulty
// tier selection for the runner.
package config

// MovementMode selects how the world scrolls.
type MovementMode string

const (
	// MovementManual scrolls the world only while left/right is held.
	MovementManual MovementMode = "manual"
	// MovementAuto scrolls the world at the game speed every tick.
	MovementAuto MovementMode = "auto"
)

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Movement   MovementMode              `yaml:"movement"`
	Difficulty DifficultyPreset          `yaml:"difficulty"`
	Physics    RunnerPhysics             `yaml:"physics"`
	Player     RunnerPlayer              `yaml:"player"`
	World      RunnerWorld               `yaml:"world"`
	Speed      SpeedConfig               `yaml:"speed"`
	Session    RunnerSession             `yaml:"session"`
	Spawn      RunnerSpawn               `yaml:"spawn"`
	Tiers      map[DifficultyPreset]Tier `yaml:"tiers"`
}

// RunnerPhysics defines the vertical physics of the player.
type RunnerPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	JumpCooldown    int     `yaml:"jump_cooldown"`
	RampLaunch      float64 `yaml:"ramp_launch"`
	CollisionMargin float64 `yaml:"collision_margin"`
}

// RunnerPlayer defines the player's box.
type RunnerPlayer struct {
	X        float64 `yaml:"x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	AirJumps int     `yaml:"air_jumps"`
}

// RunnerWorld defines the scrolling world.
type RunnerWorld struct {
	GroundHeight  float64 `yaml:"ground_height"`
	MaxWorldSpeed float64 `yaml:"max_world_speed"`
	LookAhead     float64 `yaml:"look_ahead"`
	DayNightSpeed float64 `yaml:"day_night_speed"`
}

// SpeedConfig defines the game speed progression.
// Max of 0 leaves the speed uncapped.
type SpeedConfig struct {
	Base      float64 `yaml:"base"`
	Increment float64 `yaml:"increment"`
	Max       float64 `yaml:"max"`
}

// RunnerSession defines the session budget and scoring.
type RunnerSession struct {
	TimeLimitSeconds  float64 `yaml:"time_limit_seconds"`
	WatchBonusSeconds float64 `yaml:"watch_bonus_seconds"`
	DeathTicks        int     `yaml:"death_ticks"`
	DistancePerPoint  float64 `yaml:"distance_per_point"`
	CoinPoints        int     `yaml:"coin_points"`
}

// RunnerSpawn defines the fixed spacing thresholds, in forward ticks.
type RunnerSpawn struct {
	PlatformSpacing int     `yaml:"platform_spacing"`
	RampSpacing     int     `yaml:"ramp_spacing"`
	BlockSpacing    int     `yaml:"block_spacing"`
	BlockChance     float64 `yaml:"block_chance"`
	BirdSpacing     int     `yaml:"bird_spacing"`
	SnailSpacing    int     `yaml:"snail_spacing"`
	WatchSpacing    int     `yaml:"watch_spacing"`
	HelperChance    float64 `yaml:"helper_chance"`
}

// Tier holds the difficulty-dependent spawn chances and spacings.
type Tier struct {
	Name            string  `yaml:"name"`
	ObstacleChance  float64 `yaml:"obstacle_chance"`
	CoinChance      float64 `yaml:"coin_chance"`
	HoleChance      float64 `yaml:"hole_chance"`
	PlatformChance  float64 `yaml:"platform_chance"`
	RampChance      float64 `yaml:"ramp_chance"`
	BirdChance      float64 `yaml:"bird_chance"`
	SnailChance     float64 `yaml:"snail_chance"`
	WatchChance     float64 `yaml:"watch_chance"`
	ObstacleSpacing int     `yaml:"obstacle_spacing"`
	CoinSpacing     int     `yaml:"coin_spacing"`
	HoleSpacing     int     `yaml:"hole_spacing"`
}

// DifficultyPreset represents a named difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the tiers in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParsePreset maps a user-supplied name to a preset.
// "normal" is accepted as an alias of medium.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch name {
	case "easy":
		return DifficultyEasy, true
	case "medium", "normal":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return "", false
	}
}

// ActiveTier returns the tier selected by cfg.Difficulty, falling back to easy.
func (cfg RunnerConfig) ActiveTier() Tier {
	if t, ok := cfg.Tiers[cfg.Difficulty]; ok {
		return t
	}
	if t, ok := cfg.Tiers[DifficultyEasy]; ok {
		return t
	}
	return DefaultRunnerConfig().Tiers[DifficultyEasy]
}
