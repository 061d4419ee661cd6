// SPDX-License-Identifier: MIT
// Package: lvlcipher/modular

package modular

// Modulus is the size of the Latin alphabet and the default ring Z/26.
const Modulus = 26

// FallbackInverse is returned by Inverse when a has no inverse modulo m.
const FallbackInverse = 1

// Mod reduces n into [0, m). For m <= 0 it returns 0.
// Complexity: O(1).
func Mod(n, m int) int {
	if m <= 0 {
		return 0
	}
	r := n % m
	if r < 0 {
		r += m
	}

	return r
}

// Mod26 reduces n into [0, 26).
// Complexity: O(1).
func Mod26(n int) int {
	return Mod(n, Modulus)
}

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Coprime reports whether a is a unit modulo m, i.e. gcd(a mod m, m) == 1.
// Complexity: O(log m).
func Coprime(a, m int) bool {
	if m <= 1 {
		return false
	}

	return GCD(Mod(a, m), m) == 1
}

// Inverse returns x in [1, m) with a·x ≡ 1 (mod m), found by linear search.
// When a is not coprime with m, it returns (FallbackInverse, false).
//
// Complexity: O(m).
func Inverse(a, m int) (int, bool) {
	var x int
	a = Mod(a, m)
	for x = 1; x < m; x++ {
		if Mod(a*x, m) == 1 {
			return x, true
		}
	}

	return FallbackInverse, false
}

// Units lists every a in [1, m) that is coprime with m, ascending.
// For m = 26 that is 1,3,5,7,9,11,15,17,19,21,23,25.
// Complexity: O(m log m).
func Units(m int) []int {
	out := make([]int, 0, m)
	var a int
	for a = 1; a < m; a++ {
		if GCD(a, m) == 1 {
			out = append(out, a)
		}
	}

	return out
}

// Letter maps i (reduced mod 26) to 'A'..'Z'.
func Letter(i int) rune {
	return rune('A' + Mod26(i))
}

// Index maps 'A'..'Z' to 0..25; ok is false for any other rune.
func Index(r rune) (int, bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}

	return int(r - 'A'), true
}
