package config

import "math"

// SpeedManager computes the game speed and day-night phase from the tick count.
type SpeedManager struct {
	speed    SpeedConfig
	dayNight float64
}

// NewSpeedManager creates a speed manager for the given configuration.
func NewSpeedManager(cfg RunnerConfig) *SpeedManager {
	return &SpeedManager{
		speed:    cfg.Speed,
		dayNight: cfg.World.DayNightSpeed,
	}
}

// Speed returns the game speed after the given number of playing ticks.
func (m *SpeedManager) Speed(ticks int) float64 {
	s := m.speed.Base + float64(ticks)*m.speed.Increment
	if m.speed.Max > 0 {
		s = math.Min(s, m.speed.Max)
	}
	return s
}

// TimeOfDay returns the day-night phase in [0, 1) after the given ticks.
func (m *SpeedManager) TimeOfDay(ticks int) float64 {
	t := float64(ticks) * m.dayNight
	return t - math.Floor(t)
}
