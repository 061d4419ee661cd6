// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet

package alphabet

import (
	"fmt"
	"strings"
)

// Mapping is a total bijection plain[i] → cipher[i] between two alphabets
// over the same letter set. It is immutable once built.
type Mapping struct {
	plain  Alphabet
	cipher Alphabet
	fwd    map[rune]rune
	inv    map[rune]rune
}

// NewMapping pairs plain and cipher position by position.
// Stage 1 (Validate): both sides valid, equal length, same letter set.
// Stage 2 (Build): forward and inverse lookup tables.
// Complexity: O(n).
func NewMapping(plain, cipher Alphabet) (*Mapping, error) {
	if err := plain.Validate(); err != nil {
		return nil, fmt.Errorf("NewMapping: plain: %w", err)
	}
	if err := cipher.Validate(); err != nil {
		return nil, fmt.Errorf("NewMapping: cipher: %w", err)
	}
	if len(plain) != len(cipher) {
		return nil, fmt.Errorf("NewMapping: %d plain vs %d cipher letters: %w",
			len(plain), len(cipher), ErrNotBijective)
	}

	m := &Mapping{
		plain:  plain.Clone(),
		cipher: cipher.Clone(),
		fwd:    make(map[rune]rune, len(plain)),
		inv:    make(map[rune]rune, len(plain)),
	}
	for i, p := range plain {
		if !plain.Contains(cipher[i]) {
			return nil, fmt.Errorf("NewMapping: %q outside plain alphabet: %w", cipher[i], ErrNotBijective)
		}
		m.fwd[p] = cipher[i]
		m.inv[cipher[i]] = p
	}

	return m, nil
}

// Plain returns a copy of the plain side.
func (m *Mapping) Plain() Alphabet { return m.plain.Clone() }

// Cipher returns a copy of the cipher side.
func (m *Mapping) Cipher() Alphabet { return m.cipher.Clone() }

// Encode maps a plain letter; ok is false for runes outside the alphabet.
func (m *Mapping) Encode(r rune) (rune, bool) {
	c, ok := m.fwd[r]
	return c, ok
}

// Decode maps a cipher letter back; ok is false for runes outside the alphabet.
func (m *Mapping) Decode(r rune) (rune, bool) {
	p, ok := m.inv[r]
	return p, ok
}

// Apply encodes every mapped rune of s and passes the rest through.
func (m *Mapping) Apply(s string) string {
	return translate(s, m.fwd)
}

// Invert decodes every mapped rune of s and passes the rest through.
func (m *Mapping) Invert(s string) string {
	return translate(s, m.inv)
}

// FixedPoints counts letters that map to themselves.
func (m *Mapping) FixedPoints() int {
	var n int
	for p, c := range m.fwd {
		if p == c {
			n++
		}
	}

	return n
}

func translate(s string, table map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if t, ok := table[r]; ok {
			b.WriteRune(t)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
