package audio

import (
	"os"
	"strconv"

	"github.com/gopxl/beep"
)

// Config controls the sound manager.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0..1
	SampleRate   int
}

// DefaultConfig returns audio enabled at 80% volume.
func DefaultConfig() Config {
	return Config{Enabled: true, MasterVolume: 0.8, SampleRate: 44100}
}

// LoadConfig reads RUNNER_AUDIO_ENABLED, RUNNER_MASTER_VOLUME (0-100) and
// RUNNER_SAMPLE_RATE over the defaults. Unparseable values are ignored.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RUNNER_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("RUNNER_MASTER_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MasterVolume = min(max(float64(n)/100, 0), 1)
		}
	}
	if v := os.Getenv("RUNNER_SAMPLE_RATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SampleRate = n
		}
	}
	return cfg
}

func (c Config) rate() beep.SampleRate {
	if c.SampleRate <= 0 {
		return beep.SampleRate(44100)
	}
	return beep.SampleRate(c.SampleRate)
}
