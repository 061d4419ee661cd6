// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet
//
// Package alphabet builds the ordered letter sets that keyed ciphers run over.
//
// The package offers:
//
//   - Alphabet:  an ordered, duplicate-free rune sequence. Latin() has 26
//     letters, Spanish() has 27 (Ñ directly after N).
//   - Builders:
//     – Keyword:  keyword letters first (duplicates dropped), then the rest of
//     the base alphabet in natural order. Always a permutation of the base.
//     – Rotate:   cyclic left rotation by shift mod len (negative allowed).
//   - Mapping:  a total bijection plain[i] → cipher[i] with inverse lookup.
//   - Square:   a 5×5 Polybius square with J folded into I; coordinates are
//     1-based (row, col) pairs in {1..5}×{1..5}.
//   - Text cleaning: Normalize (upper-case + accent folding, Ñ kept only for
//     alphabets containing it) and Letters (Normalize, then keep alphabet
//     letters only). Folding uses Unicode NFD decomposition.
//
// Invariants:
//
//   - Every Alphabet returned by this package passes Validate.
//   - Keyword(base, k) and Rotate(a, s) are permutations of their input.
//   - NewSquare never fails; any key yields 25 distinct letters.
package alphabet
