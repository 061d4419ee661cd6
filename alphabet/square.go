// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet

package alphabet

import (
	"fmt"
	"strings"
)

// SquareSize is the side of a Polybius square.
const SquareSize = 5

// Square is a 5×5 Polybius square over A..Z with J folded into I.
// The zero value is not usable; build squares with NewSquare.
type Square struct {
	cells [SquareSize * SquareSize]rune
	// pos[letter-'A'] holds the 1-based cell index, 0 when absent (only J).
	pos [26]int
}

// NewSquare seeds the square with the key letters (J→I, duplicates skipped),
// fills the remaining cells with A..Z minus J in natural order, and lays the
// 25 letters out row-major.
//
// Complexity: O(len(key)).
func NewSquare(key string) Square {
	var (
		s Square
		n int
	)
	place := func(r rune) {
		if r == 'J' {
			r = 'I'
		}
		if s.pos[r-'A'] != 0 || n == len(s.cells) {
			return
		}
		s.cells[n] = r
		n++
		s.pos[r-'A'] = n
	}
	for _, r := range Letters(Latin(), key) {
		place(r)
	}
	for _, r := range latinLetters {
		if r != 'J' {
			place(r)
		}
	}

	return s
}

// Coords returns the 1-based (row, col) of r. J is looked up as I.
// ok is false for runes outside A..Z.
func (s Square) Coords(r rune) (row, col int, ok bool) {
	if r == 'J' {
		r = 'I'
	}
	if r < 'A' || r > 'Z' {
		return 0, 0, false
	}
	p := s.pos[r-'A']
	if p == 0 {
		return 0, 0, false
	}
	p--

	return p/SquareSize + 1, p%SquareSize + 1, true
}

// At returns the letter at the 1-based (row, col).
func (s Square) At(row, col int) (rune, error) {
	if row < 1 || row > SquareSize || col < 1 || col > SquareSize {
		return 0, fmt.Errorf("Square.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return s.cells[(row-1)*SquareSize+col-1], nil
}

// Letters returns the 25 letters row-major.
func (s Square) Letters() string {
	return string(s.cells[:])
}

// Rows returns the square as five 5-letter strings.
func (s Square) Rows() []string {
	out := make([]string, SquareSize)
	var i int
	for i = 0; i < SquareSize; i++ {
		out[i] = string(s.cells[i*SquareSize : (i+1)*SquareSize])
	}

	return out
}

// String renders the square one row per line.
func (s Square) String() string {
	return strings.Join(s.Rows(), "\n")
}
