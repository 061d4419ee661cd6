// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher
//
// Package cipher turns plaintext into classical-cryptography practice puzzles
// and carries the key material needed to grade a solver's answer.
//
// Entry point:
//
//	p, err := cipher.Generate(cipher.K2Aristocrat, "Meet me at noon", cipher.WithSeed(42))
//
// Families (closed set, see Families):
//
//   - Substitution: K1, K2, K3 and Random keying, each in Aristocrat
//     (word breaks kept), Patristocrat (letters only, blocks of 5) and
//     Xenocrypt (27-letter Spanish alphabet) presentation.
//   - Hill 2x2 / 3x3: invertible matrix over Z/26, X padding.
//   - Nihilist: keyed Polybius coordinates plus a repeating numeric key.
//   - Checkerboard: Polybius coordinates relabelled by row/column keywords.
//   - Porta: 13-row reciprocal tableau selected by a repeating keyword.
//   - Complete Columnar: row-major fill, columns read in key order.
//   - Cryptarithm: WORD + WORD = WORD or WORD - WORD = WORD with hidden digits.
//   - Caesar, Atbash, Affine, Baconian.
//   - Fractionated Morse: Morse triplets written with a keyword alphabet.
//
// Every puzzle's Key is a KeyMaterial whose concrete type is fixed by the
// family; Puzzle.Family reads the family from the key, so the two can never
// disagree. Key.Decrypt recovers the cleaned plaintext from the ciphertext.
//
// Determinism:
//
//	All randomness flows from the *rand.Rand set by WithSeed or WithRand.
//	Generate splits it into derived streams for the key, the puzzle ID and
//	filler symbols, so the ID and key draws do not depend on plaintext length.
//	Equal seeds, plaintext and options give equal puzzles, ID included.
//	A *rand.Rand must not be shared across goroutines.
//
// Errors:
//
//	Generation is all-or-nothing. Failures are reported with the sentinels
//	in errors.go and checked with errors.Is.
package cipher
