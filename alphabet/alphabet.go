// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet

package alphabet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlcipher/modular"
)

const (
	latinLetters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	spanishLetters = "ABCDEFGHIJKLMNÑOPQRSTUVWXYZ"
)

// Alphabet is an ordered sequence of distinct letters.
type Alphabet []rune

// Latin returns a fresh copy of A..Z.
func Latin() Alphabet {
	return Alphabet(latinLetters)
}

// Spanish returns a fresh copy of the 27-letter alphabet with Ñ after N.
func Spanish() Alphabet {
	return Alphabet(spanishLetters)
}

// Parse builds an Alphabet from s and validates it.
func Parse(s string) (Alphabet, error) {
	a := Alphabet(s)
	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the alphabet is non-empty and duplicate-free.
// Complexity: O(n) time, O(n) space.
func (a Alphabet) Validate() error {
	if len(a) == 0 {
		return ErrEmpty
	}
	seen := make(map[rune]struct{}, len(a))
	for i, r := range a {
		if _, dup := seen[r]; dup {
			return fmt.Errorf("alphabet: letter %q at %d: %w", r, i, ErrDuplicateLetter)
		}
		seen[r] = struct{}{}
	}

	return nil
}

// Len returns the number of letters.
func (a Alphabet) Len() int { return len(a) }

// Index returns the position of r, or -1.
// Complexity: O(n).
func (a Alphabet) Index(r rune) int {
	return slices.Index(a, r)
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// Clone returns an independent copy.
func (a Alphabet) Clone() Alphabet {
	return slices.Clone(a)
}

// String renders the letters in order.
func (a Alphabet) String() string {
	return string(a)
}

// Keyword builds a keyword alphabet over base: the normalized keyword letters
// that belong to base (first occurrence only), followed by every remaining
// base letter in natural order. The result is a permutation of base.
//
// Complexity: O(len(keyword) + n²) with n = len(base).
func Keyword(base Alphabet, keyword string) Alphabet {
	out := make(Alphabet, 0, len(base))
	for _, r := range Letters(base, keyword) {
		if !out.Contains(r) {
			out = append(out, r)
		}
	}
	for _, r := range base {
		if !out.Contains(r) {
			out = append(out, r)
		}
	}

	return out
}

// Rotate returns a cyclic left rotation of a by shift mod len(a).
// Rotate("ABCDE", 2) == "CDEAB"; negative shifts rotate right.
//
// Complexity: O(n).
func Rotate(a Alphabet, shift int) Alphabet {
	n := len(a)
	if n == 0 {
		return Alphabet{}
	}
	s := modular.Mod(shift, n)
	out := make(Alphabet, 0, n)
	out = append(out, a[s:]...)
	out = append(out, a[:s]...)

	return out
}
