// SPDX-License-Identifier: MIT
// Package: lvlcipher/cryptarithm

package cryptarithm

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxLetters is the number of distinct digits available.
const MaxLetters = 10

var (
	// ErrBadWord is returned for words that are empty or contain anything but A–Z.
	ErrBadWord = errors.New("cryptarithm: word must be non-empty A–Z")

	// ErrTooManyLetters is returned when an equation uses more than ten letters.
	ErrTooManyLetters = errors.New("cryptarithm: more than ten distinct letters")

	// ErrUnassigned is returned when an assignment lacks a letter of the equation.
	ErrUnassigned = errors.New("cryptarithm: letter has no digit")

	// ErrNotInjective is returned when two letters share a digit or a digit is out of 0–9.
	ErrNotInjective = errors.New("cryptarithm: digits are not distinct")

	// ErrLeadingZero is returned when a word starts with a letter mapped to 0.
	ErrLeadingZero = errors.New("cryptarithm: leading zero")

	// ErrWrongSum is returned when the numeric equation does not hold.
	ErrWrongSum = errors.New("cryptarithm: sum does not hold")

	// ErrBadOperator is returned for an operator other than + and -.
	ErrBadOperator = errors.New("cryptarithm: operator must be + or -")
)

// Operator is the arithmetic of an equation.
type Operator string

// Operators.
const (
	Add      Operator = "+"
	Subtract Operator = "-"
)

// Valid reports whether o is Add or Subtract.
func (o Operator) Valid() bool { return o == Add || o == Subtract }

// Equation is Addend1 Op Addend2 = Sum over upper-case words. Sum holds the
// result whatever the operator; an empty Op means Add.
type Equation struct {
	Addend1 string   `json:"addend1"`
	Addend2 string   `json:"addend2"`
	Sum     string   `json:"sum"`
	Op      Operator `json:"op,omitempty"`
}

// Operator returns Op, reading the zero value as Add.
func (e Equation) Operator() Operator {
	if e.Op == "" {
		return Add
	}

	return e.Op
}

// String renders "W1 + W2 = W3" or "W1 - W2 = W3".
func (e Equation) String() string {
	return e.Addend1 + " " + string(e.Operator()) + " " + e.Addend2 + " = " + e.Sum
}

// addition rewrites e as an addition with the same solutions:
// W1 - W2 = W3 holds exactly when W3 + W2 = W1.
func (e Equation) addition() Equation {
	if e.Operator() == Subtract {
		return Equation{Addend1: e.Sum, Addend2: e.Addend2, Sum: e.Addend1}
	}

	return Equation{Addend1: e.Addend1, Addend2: e.Addend2, Sum: e.Sum}
}

// Words returns the three words in equation order.
func (e Equation) Words() []string {
	return []string{e.Addend1, e.Addend2, e.Sum}
}

// Letters returns the distinct letters of the equation in order of first use.
func (e Equation) Letters() []rune {
	return distinctLetters(e.Addend1 + e.Addend2 + e.Sum)
}

// Validate checks the operator, that every word is non-empty A–Z and that at
// most ten letters are used.
func (e Equation) Validate() error {
	if op := e.Operator(); !op.Valid() {
		return fmt.Errorf("Equation %q: operator %q: %w", e.String(), op, ErrBadOperator)
	}
	for _, w := range e.Words() {
		if !isWord(w) {
			return fmt.Errorf("Equation %q: word %q: %w", e.String(), w, ErrBadWord)
		}
	}
	if n := len(e.Letters()); n > MaxLetters {
		return fmt.Errorf("Equation %q: %d letters: %w", e.String(), n, ErrTooManyLetters)
	}

	return nil
}

// Assignment maps letters to digits.
type Assignment map[rune]int

// Value reads word as a decimal number under a.
func (a Assignment) Value(word string) (int, error) {
	var n int
	for _, r := range word {
		d, ok := a[r]
		if !ok {
			return 0, fmt.Errorf("Value(%q): %q: %w", word, r, ErrUnassigned)
		}
		n = n*10 + d
	}

	return n, nil
}

// Digits renders word as space-separated digits, e.g. "MORE" → "1 0 8 5".
func (a Assignment) Digits(word string) (string, error) {
	parts := make([]string, 0, len(word))
	for _, r := range word {
		d, ok := a[r]
		if !ok {
			return "", fmt.Errorf("Digits(%q): %q: %w", word, r, ErrUnassigned)
		}
		parts = append(parts, strconv.Itoa(d))
	}

	return strings.Join(parts, " "), nil
}

// Clone returns an independent copy.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// String renders the assignment sorted by letter, e.g. "D=7 E=5 M=1".
func (a Assignment) String() string {
	keys := make([]rune, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%c=%d", k, a[k])
	}

	return strings.Join(parts, " ")
}

// MarshalJSON writes the assignment as {"S": 9, ...}.
func (a Assignment) MarshalJSON() ([]byte, error) {
	out := make(map[string]int, len(a))
	for k, v := range a {
		out[string(k)] = v
	}

	return json.Marshal(out)
}

// UnmarshalJSON reads the {"S": 9, ...} form; every key must be one letter.
func (a *Assignment) UnmarshalJSON(b []byte) error {
	var raw map[string]int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Assignment, len(raw))
	for k, v := range raw {
		rs := []rune(k)
		if len(rs) != 1 {
			return fmt.Errorf("Assignment: key %q: %w", k, ErrBadWord)
		}
		out[rs[0]] = v
	}
	*a = out

	return nil
}

// Verify checks a against e exactly.
// Stage 1: equation shape. Stage 2: every letter assigned, digits distinct in 0–9.
// Stage 3: no leading zero. Stage 4: Addend1 + Addend2 == Sum, or
// Addend1 - Addend2 == Sum for Subtract.
func Verify(e Equation, a Assignment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	var used [MaxLetters]bool
	for _, r := range e.Letters() {
		d, ok := a[r]
		if !ok {
			return fmt.Errorf("Verify: %q: %w", r, ErrUnassigned)
		}
		if d < 0 || d > 9 || used[d] {
			return fmt.Errorf("Verify: %q=%d: %w", r, d, ErrNotInjective)
		}
		used[d] = true
	}
	for _, w := range e.Words() {
		if a[rune(w[0])] == 0 {
			return fmt.Errorf("Verify: %q: %w", w, ErrLeadingZero)
		}
	}

	n1, _ := a.Value(e.Addend1)
	n2, _ := a.Value(e.Addend2)
	n3, _ := a.Value(e.Sum)
	got := n1 + n2
	if e.Operator() == Subtract {
		got = n1 - n2
	}
	if got != n3 {
		return fmt.Errorf("Verify: %d %s %d != %d: %w", n1, e.Operator(), n2, n3, ErrWrongSum)
	}

	return nil
}

// NumericExample renders the equation with digits, e.g. "9567 + 1085 = 10652"
// or "10652 - 1085 = 9567".
func NumericExample(e Equation, a Assignment) (string, error) {
	n1, err := a.Value(e.Addend1)
	if err != nil {
		return "", err
	}
	n2, err := a.Value(e.Addend2)
	if err != nil {
		return "", err
	}
	n3, err := a.Value(e.Sum)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d %s %d = %d", n1, e.Operator(), n2, n3), nil
}

func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}

func distinctLetters(s string) []rune {
	var seen [26]bool
	out := make([]rune, 0, MaxLetters)
	for _, r := range s {
		if r < 'A' || r > 'Z' || seen[r-'A'] {
			continue
		}
		seen[r-'A'] = true
		out = append(out, r)
	}

	return out
}
