// SPDX-License-Identifier: MIT
// Package: lvlcipher/cryptarithm
//
// Package cryptarithm generates and solves letter-arithmetic puzzles of the
// form WORD1 + WORD2 = WORD3 or WORD1 - WORD2 = WORD3, where each distinct
// letter hides a distinct digit.
//
// The package offers:
//
//   - Equation / Assignment with exact verification (Verify): injective
//     letter→digit map, no word starting with 0, w1 ± w2 == w3.
//   - Solve: column-wise backtracking with carry, least significant column
//     first, stopping after a caller-chosen number of solutions. A
//     subtraction is solved as the addition w3 + w2 = w1.
//   - Generate: bounded search over a word bank. Each attempt picks two
//     operands and an operator, assigns digits by a full shuffle of 0–9 with
//     leading letters forced nonzero, computes the result, and looks for a
//     bank word that spells it under the same assignment. The first verified candidate wins.
//     When every attempt fails, Generate returns Fallback()
//     (SEND + MORE = MONEY, 9567 + 1085 = 10652) instead of an error.
//
// Determinism:
//
//	Generate draws only from the *rand.Rand it is given; equal seeds and
//	banks give equal puzzles.
package cryptarithm
