// SPDX-License-Identifier: MIT
// Package: lvlcipher/modular
//
// Package modular implements the integer arithmetic over Z/m that every
// cipher in lvlcipher is built on, with the Latin-alphabet modulus 26 as the
// common case.
//
// The package offers:
//
//   - Reduction:   Mod, Mod26 (always non-negative, also for negative input).
//   - Divisibility: GCD, Coprime, Units.
//   - Inversion:   Inverse (linear search over [1,m), fine for small m).
//   - Letters:     Letter and Index map A..Z to 0..25 and back.
//
// Everything here is pure and allocation-free except Units.
//
// Inverse contract:
//
//	Callers are expected to pre-filter a with Coprime(a, m). When no inverse
//	exists, Inverse returns (FallbackInverse, false); the value is stable but
//	carries no algebraic meaning.
package modular
