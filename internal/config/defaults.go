package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Movement:   MovementManual,
		Difficulty: DifficultyEasy,
		Physics: RunnerPhysics{
			Gravity:         0.8,
			JumpImpulse:     -22,
			JumpCooldown:    10,
			RampLaunch:      -8,
			CollisionMargin: 8,
		},
		Player: RunnerPlayer{
			X:        120,
			Width:    80,
			Height:   80,
			AirJumps: 1,
		},
		World: RunnerWorld{
			GroundHeight:  80,
			MaxWorldSpeed: 8,
			LookAhead:     500,
			DayNightSpeed: 0.00008,
		},
		Speed: SpeedConfig{
			Base:      5,
			Increment: 0.003,
			Max:       0,
		},
		Session: RunnerSession{
			TimeLimitSeconds:  180,
			WatchBonusSeconds: 10,
			DeathTicks:        60,
			DistancePerPoint:  10,
			CoinPoints:        10,
		},
		Spawn: RunnerSpawn{
			PlatformSpacing: 450,
			RampSpacing:     400,
			BlockSpacing:    300,
			BlockChance:     0.4,
			BirdSpacing:     200,
			SnailSpacing:    400,
			WatchSpacing:    800,
			HelperChance:    0.3,
		},
		Tiers: map[DifficultyPreset]Tier{
			DifficultyEasy: {
				Name:            "Easy Mode",
				ObstacleChance:  0.3,
				CoinChance:      0.8,
				HoleChance:      0.2,
				PlatformChance:  0.6,
				RampChance:      0.5,
				BirdChance:      0.2,
				SnailChance:     0.3,
				WatchChance:     0.2,
				ObstacleSpacing: 300,
				CoinSpacing:     150,
				HoleSpacing:     500,
			},
			DifficultyMedium: {
				Name:            "Medium Mode",
				ObstacleChance:  0.4,
				CoinChance:      0.6,
				HoleChance:      0.3,
				PlatformChance:  0.5,
				RampChance:      0.4,
				BirdChance:      0.3,
				SnailChance:     0.4,
				WatchChance:     0.15,
				ObstacleSpacing: 250,
				CoinSpacing:     180,
				HoleSpacing:     400,
			},
			DifficultyHard: {
				Name:            "Hard Mode",
				ObstacleChance:  0.6,
				CoinChance:      0.4,
				HoleChance:      0.4,
				PlatformChance:  0.4,
				RampChance:      0.3,
				BirdChance:      0.5,
				SnailChance:     0.6,
				WatchChance:     0.1,
				ObstacleSpacing: 200,
				CoinSpacing:     220,
				HoleSpacing:     350,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
