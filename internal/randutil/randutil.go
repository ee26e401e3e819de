// Package randutil holds the small random helpers shared by the quiz and
// practice generators. Every function takes an explicit *rand.Rand so
// callers can seed it in tests.
package randutil

import (
	"math/rand/v2"
	"time"
)

// New returns a deterministic source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandom returns a source seeded from the clock.
func NewRandom() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, rand.Uint64()))
}

// ShuffleInPlace permutes s uniformly (Fisher–Yates).
func ShuffleInPlace[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Shuffle returns a uniformly permuted copy of s; s is left untouched.
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	ShuffleInPlace(rng, out)
	return out
}

// Pick returns one element of s chosen uniformly. It panics on an empty
// slice.
func Pick[T any](rng *rand.Rand, s []T) T {
	if len(s) == 0 {
		panic("randutil: Pick from empty slice")
	}
	return s[rng.IntN(len(s))]
}

// Sample returns k distinct positions of s in random order. k is clamped to
// [0, len(s)].
func Sample[T any](rng *rand.Rand, s []T, k int) []T {
	k = min(max(k, 0), len(s))
	return Shuffle(rng, s)[:k]
}

// Chance reports true with probability p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
