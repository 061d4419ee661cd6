// SPDX-License-Identifier: MIT
// Package: lvlcipher/cryptarithm

package cryptarithm

import (
	"log/slog"
	"math/rand"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcipher/rng"
)

// DigitGroup is a bank word spelled only with equation letters, shown as digits
// for the solver to decode.
type DigitGroup struct {
	Word   string `json:"word"`
	Digits string `json:"digits"`
}

// Puzzle is an accepted cryptarithm.
type Puzzle struct {
	Equation       Equation
	Assignment     Assignment
	NumericExample string
	DigitGroups    []DigitGroup
	Unique         bool // exactly one assignment satisfies Equation
	Fallback       bool // search exhausted; the fixed puzzle was returned
	Attempts       int  // attempts consumed
}

// Fallback returns the pre-verified SEND + MORE = MONEY puzzle.
func Fallback() *Puzzle {
	return &Puzzle{
		Equation: Equation{Addend1: "SEND", Addend2: "MORE", Sum: "MONEY"},
		Assignment: Assignment{
			'S': 9, 'E': 5, 'N': 6, 'D': 7,
			'M': 1, 'O': 0, 'R': 8, 'Y': 2,
		},
		NumericExample: "9567 + 1085 = 10652",
		Unique:         true,
		Fallback:       true,
	}
}

// fallbackFor returns Fallback() when ops allows addition and its
// MONEY - MORE = SEND form otherwise.
func fallbackFor(ops []Operator) *Puzzle {
	fb := Fallback()
	if slices.Contains(ops, Add) {
		return fb
	}
	fb.Equation = Equation{Addend1: "MONEY", Addend2: "MORE", Sum: "SEND", Op: Subtract}
	fb.NumericExample = "10652 - 1085 = 9567"

	return fb
}

// Generate searches words for a valid puzzle using r, within the configured
// attempt budget; on exhaustion it returns the fallback puzzle with Attempts
// set. Each attempt draws its operator from WithOperators (Add by default).
//
// Complexity: O(attempts · |words| · L) plus one Solve for the accepted puzzle.
func Generate(r *rand.Rand, words []string, opts ...Option) *Puzzle {
	cfg := newConfig(opts...)
	if r == nil {
		r = rng.FromSeed(0)
	}
	bank := candidates(words, cfg.minLen, cfg.maxLen)

	var attempt int
	for attempt = 1; attempt <= cfg.maxAttempts; attempt++ {
		if len(bank) < 3 {
			cfg.logger.Debug("cryptarithm: word bank too small", slog.Int("usable", len(bank)))
			break
		}
		op := cfg.ops[0]
		if len(cfg.ops) > 1 {
			op, _ = rng.Pick(r, cfg.ops)
		}
		p, ok := tryOnce(r, bank, op)
		if !ok {
			continue
		}
		p.Attempts = attempt
		p.Unique, _ = Unique(p.Equation)
		p.DigitGroups = digitGroups(r, bank, p, cfg.digitGroups)
		cfg.logger.Debug("cryptarithm: accepted",
			slog.String("equation", p.Equation.String()),
			slog.Int("attempt", attempt),
			slog.Bool("unique", p.Unique))
		return p
	}

	fb := fallbackFor(cfg.ops)
	fb.Attempts = attempt - 1
	cfg.logger.Warn("cryptarithm: search exhausted, using fallback",
		slog.Int("attempts", fb.Attempts),
		slog.Int("usable_words", len(bank)))

	return fb
}

// candidates upper-cases, filters by length and alphabet, and dedups.
func candidates(words []string, minLen, maxLen int) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if len(w) < minLen || len(w) > maxLen || !isWord(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}

// tryOnce runs one generation attempt. For Subtract the larger operand comes
// first and equal operands are rejected.
func tryOnce(r *rand.Rand, bank []string, op Operator) (*Puzzle, bool) {
	i := r.Intn(len(bank))
	j := r.Intn(len(bank) - 1)
	if j >= i {
		j++
	}
	w1, w2 := bank[i], bank[j]

	letters := distinctLetters(w1 + w2)
	if len(letters) > MaxLetters {
		return nil, false
	}
	a := assignDigits(r, letters, w1, w2)

	n1, _ := a.Value(w1)
	n2, _ := a.Value(w2)
	result := n1 + n2
	if op == Subtract {
		if n1 == n2 {
			return nil, false
		}
		if n1 < n2 {
			w1, w2, n1, n2 = w2, w1, n2, n1
		}
		result = n1 - n2
	}
	sum := strconv.Itoa(result)

	order := rng.Perm(r, len(bank))
	for _, k := range order {
		w3 := bank[k]
		if w3 == w1 || w3 == w2 || len(w3) != len(sum) {
			continue
		}
		full, ok := extend(a, w3, sum)
		if !ok {
			continue
		}
		eq := Equation{Addend1: w1, Addend2: w2, Sum: w3}
		if op == Subtract {
			eq.Op = Subtract
		}
		if Verify(eq, full) != nil {
			continue
		}
		ex, _ := NumericExample(eq, full)
		return &Puzzle{Equation: eq, Assignment: full, NumericExample: ex}, true
	}

	return nil, false
}

// assignDigits gives letters[i] the i-th digit of a shuffled 0–9. A leading
// letter that drew 0 swaps with the first later non-leading slot holding a
// nonzero digit, so no leading letter keeps 0.
func assignDigits(r *rand.Rand, letters []rune, leads ...string) Assignment {
	digits := rng.Perm(r, MaxLetters)

	isLead := make(map[int]bool, len(leads))
	for _, w := range leads {
		for p, l := range letters {
			if l == rune(w[0]) {
				isLead[p] = true
			}
		}
	}
	for p := range letters {
		if !isLead[p] || digits[p] != 0 {
			continue
		}
		for q := 0; q < MaxLetters; q++ {
			if q != p && digits[q] != 0 && !isLead[q] {
				digits[p], digits[q] = digits[q], digits[p]
				break
			}
		}
	}

	a := make(Assignment, len(letters))
	for p, l := range letters {
		a[l] = digits[p]
	}

	return a
}

// extend checks w3 can spell sum under a, binding new letters to unused
// digits; it returns the enlarged assignment.
func extend(a Assignment, w3, sum string) (Assignment, bool) {
	out := a.Clone()
	var used [MaxLetters]bool
	for _, d := range a {
		used[d] = true
	}
	for i, r := range w3 {
		d := int(sum[i] - '0')
		if have, ok := out[r]; ok {
			if have != d {
				return nil, false
			}
			continue
		}
		if used[d] {
			return nil, false
		}
		out[r] = d
		used[d] = true
	}

	return out, true
}

// digitGroups picks up to n bank words, other than the equation words, that
// use only equation letters.
func digitGroups(r *rand.Rand, bank []string, p *Puzzle, n int) []DigitGroup {
	if n == 0 {
		return nil
	}
	exclude := map[string]bool{}
	for _, w := range p.Equation.Words() {
		exclude[w] = true
	}

	var out []DigitGroup
	for _, k := range rng.Perm(r, len(bank)) {
		if len(out) == n {
			break
		}
		w := bank[k]
		if exclude[w] {
			continue
		}
		digits, err := p.Assignment.Digits(w)
		if err != nil {
			continue
		}
		out = append(out, DigitGroup{Word: w, Digits: digits})
	}

	return out
}
