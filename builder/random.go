// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// random.go - the RandomSource contract and its math/rand implementation.
//
// Goals:
//   • Determinism: same seed ⇒ identical draw sequence on every platform.
//   • Injection: the generator never reaches for global random state.
//
// Concurrency:
//   • A RandomSource backed by *rand.Rand is NOT goroutine-safe. Give every
//     goroutine its own source (see DeriveSource).

package builder

import "math/rand"

// DefaultSeed is used whenever a caller passes seed == 0 or no source at all.
// The value is arbitrary but stable to keep default runs reproducible.
const DefaultSeed int64 = 1

// RandomSource supplies the uniform draws consumed during graph generation.
type RandomSource interface {
	// NextInt returns a uniform integer in [lo, hi]; both bounds inclusive.
	NextInt(lo, hi int64) int64
	// NextReal returns a uniform real in [lo, hi).
	NextReal(lo, hi float64) float64
}

// randSource adapts *rand.Rand to RandomSource.
type randSource struct {
	r *rand.Rand
}

// NewRandomSource returns a deterministic RandomSource for seed.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &randSource{r: rand.New(rand.NewSource(seed))}
}

// FromRand adopts an existing *rand.Rand. Panics on nil.
func FromRand(r *rand.Rand) RandomSource {
	if r == nil {
		panic("builder: FromRand(nil)")
	}

	return &randSource{r: r}
}

// NextInt draws uniformly from [lo, hi]. If hi < lo the bounds are swapped.
func (s *randSource) NextInt(lo, hi int64) int64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span <= 0 {
		// [lo,hi] covers more than int63 values; fall back to a raw draw shifted into range.
		return lo + s.r.Int63()
	}

	return lo + s.r.Int63n(span)
}

// NextReal draws uniformly from [lo, hi).
func (s *randSource) NextReal(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// deriveSeed mixes a parent seed with a stream id (SplitMix64 finalizer) so
// sibling streams are decorrelated even for consecutive ids.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveSource returns an independent deterministic RandomSource for the
// given stream of a base seed. Used to give each trial of a simulation its
// own reproducible graph without sharing a source.
func DeriveSource(seed int64, stream uint64) RandomSource {
	if seed == 0 {
		seed = DefaultSeed
	}

	return NewRandomSource(deriveSeed(seed, stream))
}
