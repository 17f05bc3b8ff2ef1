// Package collective - deterministic RNG streams for restarts.
//
// All randomness in a run flows from one seed. Each restart receives its
// own independent stream derived from (runSeed, restartIndex) through a
// SplitMix64-style avalanche mix, so:
//   - a fixed seed reproduces a run bit-for-bit, and
//   - restarts stay reproducible even if executed in parallel, because
//     no stream derivation consumes shared RNG state.
//
// Concurrency: math/rand.Rand is not goroutine-safe; a stream must stay
// confined to the restart that owns it.
package collective

import "math/rand"

// defaultRunSeed is the fixed "zero" seed used when callers pass
// seed==0. Arbitrary but stable, to keep reproducible defaults.
const defaultRunSeed int64 = 1

// effectiveSeed applies the seed policy: 0 ⇒ defaultRunSeed.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRunSeed
	}

	return seed
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
// Small input changes produce large, well-distributed output changes, so
// consecutive restart indices yield uncorrelated streams.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG returns the deterministic stream for one restart of a run.
// Derivation is pure: it reads no shared state, so restart r of seed s
// always yields the same stream regardless of execution order.
//
// Complexity: O(1).
func restartRNG(runSeed int64, restart int) *rand.Rand {
	return rand.New(rand.NewSource(mixSeed(effectiveSeed(runSeed), uint64(restart))))
}
