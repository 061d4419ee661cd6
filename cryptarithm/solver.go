// SPDX-License-Identifier: MIT
// Package: lvlcipher/cryptarithm

package cryptarithm

import "fmt"

// unassigned marks a letter without a digit.
const unassigned = -1

// Stats reports solver effort.
type Stats struct {
	Nodes int // digit trials
}

// solver walks columns from the least significant one, binding addend
// letters by trial and deriving the sum letter from the column total.
type solver struct {
	w1, w2, w3 []rune
	width      int

	digit   [26]int
	used    [MaxLetters]bool
	leading [26]bool

	limit     int
	solutions []Assignment
	nodes     int
}

// Solve enumerates assignments satisfying e, stopping after limit solutions
// (limit <= 0 means all). Use limit 2 to test uniqueness. A subtraction is
// solved as the equivalent addition, which has the same solutions.
//
// Complexity: worst case O(10!/(10-k)!) for k letters; column pruning keeps
// typical equations far below that.
func Solve(e Equation, limit int) ([]Assignment, Stats, error) {
	if err := e.Validate(); err != nil {
		return nil, Stats{}, fmt.Errorf("Solve: %w", err)
	}
	e = e.addition()
	s := &solver{
		w1:    []rune(e.Addend1),
		w2:    []rune(e.Addend2),
		w3:    []rune(e.Sum),
		limit: limit,
	}
	s.width = len(s.w3)
	if len(s.w1) > s.width || len(s.w2) > s.width {
		return nil, Stats{}, nil
	}
	for i := range s.digit {
		s.digit[i] = unassigned
	}
	for _, w := range [][]rune{s.w1, s.w2, s.w3} {
		s.leading[w[0]-'A'] = true
	}

	s.column(0, 0)

	return s.solutions, Stats{Nodes: s.nodes}, nil
}

// Unique reports whether e has exactly one solution.
func Unique(e Equation) (bool, error) {
	sols, _, err := Solve(e, 2)
	if err != nil {
		return false, err
	}

	return len(sols) == 1, nil
}

func (s *solver) done() bool {
	return s.limit > 0 && len(s.solutions) >= s.limit
}

// letterAt returns the letter of w in column col (0 = units), or 0 if w is shorter.
func letterAt(w []rune, col int) rune {
	if col >= len(w) {
		return 0
	}

	return w[len(w)-1-col]
}

func (s *solver) column(col, carry int) {
	if s.done() {
		return
	}
	if col == s.width {
		if carry == 0 {
			s.record()
		}
		return
	}
	s.bind(letterAt(s.w1, col), func(a int) {
		s.bind(letterAt(s.w2, col), func(b int) {
			total := a + b + carry
			s.fix(letterAt(s.w3, col), total%10, func() {
				s.column(col+1, total/10)
			})
		})
	})
}

// bind calls next with the digit of r, trying every free digit if r is unbound.
// A missing letter (r == 0) contributes 0.
func (s *solver) bind(r rune, next func(int)) {
	if r == 0 {
		next(0)
		return
	}
	i := r - 'A'
	if s.digit[i] != unassigned {
		next(s.digit[i])
		return
	}
	var d int
	for d = 0; d <= 9 && !s.done(); d++ {
		if s.used[d] || (d == 0 && s.leading[i]) {
			continue
		}
		s.nodes++
		s.digit[i], s.used[d] = d, true
		next(d)
		s.digit[i], s.used[d] = unassigned, false
	}
}

// fix requires r to carry digit d, binding it if it is still free.
func (s *solver) fix(r rune, d int, next func()) {
	i := r - 'A'
	switch {
	case s.digit[i] == d:
		next()
	case s.digit[i] != unassigned:
		return
	case s.used[d] || (d == 0 && s.leading[i]):
		return
	default:
		s.nodes++
		s.digit[i], s.used[d] = d, true
		next()
		s.digit[i], s.used[d] = unassigned, false
	}
}

func (s *solver) record() {
	a := make(Assignment, MaxLetters)
	for i, d := range s.digit {
		if d != unassigned {
			a[rune('A'+i)] = d
		}
	}
	s.solutions = append(s.solutions, a)
}
