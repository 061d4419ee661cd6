// Package matrix provides small dense integer matrices over the ring Z/26,
// the algebra behind the Hill cipher.
//
// The matrix package provides:
//
//   - Dense: a row-major r×c matrix whose entries are always reduced into
//     [0,26). Set reduces, so negative or large inputs are accepted.
//   - Arithmetic: Identity, Mul, MulVec (matrix–vector product mod 26).
//   - Inversion: Det (Laplace expansion), Adjugate, Inverse, Invertible.
//     A matrix is invertible iff gcd(det, 26) == 1; its inverse is
//     adj(M)·det⁻¹ mod 26 and satisfies M·M⁻¹ ≡ I.
//
// Determinants use cofactor expansion, O(n!) in n; intended sizes are 2 and 3.
//
// All public functions return sentinel errors (see errors.go) and never panic.
package matrix
