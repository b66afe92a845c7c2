// Package synth - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Positional noise: a value keyed by (position, slot, seed) is a pure
//     function of those inputs and needs no shared stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - positionalUnit has no state and may be called from any goroutine.
package synth

import "math/rand"

// unit53 scales a 53-bit integer into [0, 1).
const unit53 = 1.0 / (1 << 53)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) uint64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// positionalUnit returns a uniform value in [0, 1) determined only by
// (seed, stream).
func positionalUnit(seed int64, stream uint64) float64 {
	return float64(deriveSeed(seed, stream)>>11) * unit53
}
