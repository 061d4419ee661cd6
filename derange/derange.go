// SPDX-License-Identifier: MIT
// Package: lvlcipher/derange
//
// Package derange produces fixed-point-free pairings between alphabets: cyclic
// shifts of a cipher alphabet against a plain one, and full derangements.
//
// Contract:
//   • FindShift is deterministic: the smallest valid shift, or ErrNoShift.
//   • RandomShift tries shifts in random order and falls back to FindShift.
//   • Alphabet returns a permutation with zero fixed points for len ≥ 2.
//   • No function panics; a nil *rand.Rand uses the default seeded stream.

package derange

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/modular"
	"github.com/katalvlaran/lvlcipher/rng"
)

var (
	// ErrNoShift is returned when no shift in [1, len) avoids every fixed point.
	ErrNoShift = errors.New("derange: no fixed-point-free shift")

	// ErrLength is returned when the alphabets differ in length or have fewer
	// than two letters (a single letter cannot be deranged).
	ErrLength = errors.New("derange: alphabets must have equal length ≥ 2")
)

// FixedPoints counts positions where a[i] == b[i] over the common prefix.
func FixedPoints(a, b alphabet.Alphabet) int {
	var n, i int
	for i = 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			n++
		}
	}

	return n
}

// shiftOK reports whether pairing plain[i] with cipher[(i+s) mod n] leaves no
// letter in place.
func shiftOK(plain, cipher alphabet.Alphabet, s int) bool {
	n := len(plain)
	var i int
	for i = 0; i < n; i++ {
		if plain[i] == cipher[modular.Mod(i+s, n)] {
			return false
		}
	}

	return true
}

func checkLengths(method string, plain, cipher alphabet.Alphabet) error {
	if len(plain) != len(cipher) || len(plain) < 2 {
		return fmt.Errorf("%s: %d vs %d letters: %w", method, len(plain), len(cipher), ErrLength)
	}

	return nil
}

// FindShift returns the smallest s in [1, len) such that
// plain[i] != cipher[(i+s) mod len] for every i; alphabet.Rotate(cipher, s)
// is then fixed-point-free against plain.
//
// Complexity: O(n²).
func FindShift(plain, cipher alphabet.Alphabet) (int, error) {
	if err := checkLengths("FindShift", plain, cipher); err != nil {
		return 0, err
	}
	var s int
	for s = 1; s < len(plain); s++ {
		if shiftOK(plain, cipher, s) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("FindShift: %w", ErrNoShift)
}

// RandomShift tries every candidate shift in an order drawn from r and
// returns the first fixed-point-free one. If none qualifies it defers to
// FindShift, which reports ErrNoShift.
//
// Complexity: O(n²).
func RandomShift(r *rand.Rand, plain, cipher alphabet.Alphabet) (int, error) {
	if err := checkLengths("RandomShift", plain, cipher); err != nil {
		return 0, err
	}
	candidates := rng.Perm(r, len(plain)-1)
	for _, c := range candidates {
		if shiftOK(plain, cipher, c+1) {
			return c + 1, nil
		}
	}

	return FindShift(plain, cipher)
}

// Alphabet returns a uniformly shuffled copy of a with every residual fixed
// point repaired by swapping it with its right neighbour (cyclically). A swap
// at i moves a[i] to i+1 and some other letter to i, so neither position is
// fixed afterwards and no new fixed point appears.
//
// Complexity: O(n) time, O(n) space.
func Alphabet(r *rand.Rand, a alphabet.Alphabet) (alphabet.Alphabet, error) {
	if len(a) < 2 {
		return nil, fmt.Errorf("Alphabet: %d letters: %w", len(a), ErrLength)
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("Alphabet: %w", err)
	}

	p := a.Clone()
	rng.Shuffle(r, p)

	n := len(p)
	var i, j int
	for i = 0; i < n; i++ {
		if p[i] != a[i] {
			continue
		}
		j = (i + 1) % n
		p[i], p[j] = p[j], p[i]
	}

	return p, nil
}
