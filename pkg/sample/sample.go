// Package sample provides the seeded randomness primitives used throughout
// the generator: bounded-normal draws, uniform integers, probability checks,
// and categorical picks. All randomness flows through an explicitly passed
// Source so a run is reproducible from a single seed.
package sample

import (
	"math/rand/v2"
)

// maxRejects bounds the rejection-sampling loop in BoundedNormal. The
// parameter sets used here (e.g. mean 3, std 0.22 in [1,7]) accept on the
// first draw almost always; the cap only matters for pathological bounds.
const maxRejects = 10000

// Source is a seeded random stream. The zero value is not usable; construct
// one with New.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a Source seeded with the given value.
func New(seed uint64) *Source {
	return &Source{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the Source was constructed with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Uint64 returns a uniform 64-bit value.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// BoundedNormal samples a normal distribution with the given mean and
// standard deviation, rejecting values outside [min, max] and resampling.
// If the bounds are so far outside the distribution's effective range that
// maxRejects draws all miss, the mean clamped into [min, max] is returned
// instead of looping forever.
func (s *Source) BoundedNormal(mean, std, min, max float64) float64 {
	for i := 0; i < maxRejects; i++ {
		v := s.rng.NormFloat64()*std + mean
		if v >= min && v <= max {
			return v
		}
	}
	if mean < min {
		return min
	}
	if mean > max {
		return max
	}
	return mean
}

// BoundedNormalInt is BoundedNormal truncated to an integer.
func (s *Source) BoundedNormalInt(mean, std, min, max float64) int {
	return int(s.BoundedNormal(mean, std, min, max))
}

// Normal samples an unbounded normal distribution.
func (s *Source) Normal(mean, std float64) float64 {
	return s.rng.NormFloat64()*std + mean
}

// IntBetween returns a uniform integer in [lo, hi). It panics if hi <= lo.
func (s *Source) IntBetween(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Pick returns a uniformly chosen element of items, or ErrEmptyChoice when
// there is nothing to choose from.
func Pick[T any](s *Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyChoice
	}
	return items[s.rng.IntN(len(items))], nil
}
