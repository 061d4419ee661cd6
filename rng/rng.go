// Package rng - deterministic randomness shared by every puzzle generator.
//
// All generators draw from an explicit *rand.Rand handed to them by the caller;
// no library package reads a global or time-based source.
//
// Goals:
//   - Determinism: same seed ⇒ identical puzzles across platforms.
//   - Encapsulation: a single RNG factory; no hidden time-based sources.
//   - Safety: no panics or logging; nil streams fall back to the default seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for concurrent generation.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Resolve applies the seed policy: seed==0 ⇒ DefaultSeed, otherwise seed verbatim.
func Resolve(seed int64) int64 {
	if seed == 0 {
		return DefaultSeed
	}

	return seed
}

// FromSeed returns a deterministic *rand.Rand seeded with Resolve(seed).
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(Resolve(seed)))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so neighbouring stream ids give unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 constants (Vigna 2014).
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic stream from base and a stream id.
// If base==nil, DefaultSeed is used as the parent. Otherwise base.Int63() is
// consumed once, so repeated derivations with the same id still differ.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// orDefault substitutes the default deterministic stream for a nil r.
func orDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return FromSeed(0)
	}
	return r
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, a deterministic default stream is used (seed==0 policy).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](r *rand.Rand, a []T) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		src  *rand.Rand
		i, j int
	)
	src = orDefault(r)
	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 generated deterministically from r.
// For n<=0 it returns an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Perm(r *rand.Rand, n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	Shuffle(r, p)
	return p
}

// Pick returns a uniformly chosen element of a; ok is false when a is empty.
//
// Complexity: O(1).
func Pick[T any](r *rand.Rand, a []T) (T, bool) {
	var zero T
	if len(a) == 0 {
		return zero, false
	}

	return a[orDefault(r).Intn(len(a))], true
}

// IntRange returns a uniform integer in the closed range [lo, hi].
// If hi < lo the bounds are swapped.
//
// Complexity: O(1).
func IntRange(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}

	return lo + orDefault(r).Intn(hi-lo+1)
}
