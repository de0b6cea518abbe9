package runner

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Timer is the wall-clock session budget. Remaining time is recomputed from
// the absolute start on every update, so irregular tick delivery does not
// drift it. Watch pickups accumulate into a bonus clamped at pickup time.
type Timer struct {
	budget    time.Duration
	start     time.Time
	bonus     time.Duration
	remaining time.Duration
}

// NewTimer creates a timer with the given budget.
func NewTimer(budget time.Duration) Timer {
	return Timer{budget: budget, remaining: budget}
}

// Start arms the timer at now with the full budget.
func (t *Timer) Start(now time.Time) {
	t.start = now
	t.bonus = 0
	t.remaining = t.budget
}

// Update recomputes the remaining time at now.
func (t *Timer) Update(now time.Time) time.Duration {
	r := t.budget - now.Sub(t.start) + t.bonus
	t.remaining = min(max(r, 0), t.budget)
	return t.remaining
}

// AddBonus extends the remaining time by d without exceeding the budget.
func (t *Timer) AddBonus(d time.Duration) {
	granted := min(t.budget, t.remaining+d) - t.remaining
	t.bonus += granted
	t.remaining += granted
}

// Shift moves the start forward by d, used to exclude paused time.
func (t *Timer) Shift(d time.Duration) {
	t.start = t.start.Add(d)
}

// Remaining returns the time left as of the last update.
func (t *Timer) Remaining() time.Duration {
	return t.remaining
}

// Expired reports whether the budget is used up.
func (t *Timer) Expired() bool {
	return t.remaining <= 0
}

// Elapsed returns the unpaused wall time since the start at now.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	return now.Sub(t.start)
}

// Score tracks progress and coin value for one run.
type Score struct {
	mode             config.MovementMode
	distancePerPoint float64
	coinPoints       int

	Coin          int
	TotalDistance float64
	MaxDistance   float64
	Ticks         int
}

// NewScore creates an empty score for the given session settings.
func NewScore(mode config.MovementMode, s config.RunnerSession) Score {
	return Score{mode: mode, distancePerPoint: s.DistancePerPoint, coinPoints: s.CoinPoints}
}

// AddCoin credits a collected coin and returns the points it was worth.
// The running coin score never drops below zero.
func (s *Score) AddCoin(multiplier int) int {
	pts := s.coinPoints * multiplier
	s.Coin = max(s.Coin+pts, 0)
	return pts
}

// Advance records forward travel.
func (s *Score) Advance(d float64) {
	s.TotalDistance += d
	s.MaxDistance = math.Max(s.MaxDistance, s.TotalDistance)
}

// Retreat records backward travel; it never reduces the high-water mark.
func (s *Score) Retreat(d float64) {
	s.TotalDistance -= d
}

// Tick records one survived playing tick.
func (s *Score) Tick() {
	s.Ticks++
}

// Total returns the run's score. Manual runs score coins plus the furthest
// distance reached; auto runs score coins plus one point per tick.
func (s *Score) Total() int {
	if s.mode == config.MovementAuto {
		return s.Coin + s.Ticks
	}
	return s.Coin + int(math.Floor(s.MaxDistance/s.distancePerPoint))
}
