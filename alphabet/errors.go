// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet

package alphabet

import "errors"

var (
	// ErrEmpty is returned when an alphabet has no letters.
	ErrEmpty = errors.New("alphabet: empty alphabet")

	// ErrDuplicateLetter is returned when an alphabet repeats a letter.
	ErrDuplicateLetter = errors.New("alphabet: duplicate letter")

	// ErrNotBijective is returned by NewMapping when the two sides are not
	// permutations of the same letter set.
	ErrNotBijective = errors.New("alphabet: mapping is not a bijection")

	// ErrOutOfRange indicates a Polybius coordinate outside {1..5}.
	ErrOutOfRange = errors.New("alphabet: coordinate out of range")
)
