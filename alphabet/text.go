// SPDX-License-Identifier: MIT
// Package: lvlcipher/alphabet

package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

const (
	combiningTilde = '\u0303'
	enye           = 'Ñ'
)

// Normalize upper-cases s and folds diacritics onto their base letters
// (Á→A, Ü→U, Ç→C, ...). Ñ survives only when a contains it; for any other
// alphabet it folds to N. Non-letters are kept as-is.
//
// Complexity: O(len(s)).
func Normalize(a Alphabet, s string) string {
	keepEnye := a.Contains(enye)
	tag := language.English
	if keepEnye {
		tag = language.Spanish
	}
	// A Caser is stateful; build one per call.
	upper := cases.Upper(tag).String(s)

	marks := runes.In(unicode.Mn)
	out := make([]rune, 0, len(upper))
	for _, r := range norm.NFD.String(upper) {
		if !marks.Contains(r) {
			out = append(out, r)
			continue
		}
		if keepEnye && r == combiningTilde && len(out) > 0 && out[len(out)-1] == 'N' {
			out[len(out)-1] = enye
		}
	}

	return string(out)
}

// Letters normalizes s and keeps only runes that belong to a.
//
// Complexity: O(len(s)·len(a)).
func Letters(a Alphabet, s string) string {
	var b strings.Builder
	for _, r := range Normalize(a, s) {
		if a.Contains(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
