package core

import (
	"math/rand"
	"time"
)

// RNG is the random source used by procedural generation.
// *rand.Rand satisfies it.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a seeded generator. A zero seed uses the current time.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a value in [lo, hi).
func Uniform(r RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func Chance(r RNG, p float64) bool {
	return r.Float64() < p
}

// SequenceRNG replays a fixed list of Float64 values, cycling when exhausted.
// Used by tests to force specific spawn decisions.
type SequenceRNG struct {
	Values []float64
	pos    int
}

// Float64 implements RNG.
func (s *SequenceRNG) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

// Intn implements RNG.
func (s *SequenceRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
