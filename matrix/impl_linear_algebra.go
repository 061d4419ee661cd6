// SPDX-License-Identifier: MIT
// Package matrix: modular linear algebra kernels (Z/26).
//
// Purpose:
//   - Provide the deterministic integer kernels behind the Hill cipher:
//     Identity, Mul, MulVec, Det, Adjugate, Inverse.
//
// Contract:
//   - Inputs are never mutated; every result is a fresh *Dense.
//   - Every entry of every result lies in [0,26).
//   - Errors are sentinels from errors.go wrapped with the kernel tag.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlcipher/modular"
)

// Canonical kernel tags for error context.
const (
	opIdentity = "Identity"
	opMul      = "Mul"
	opMulVec   = "MulVec"
	opDet      = "Det"
	opAdjugate = "Adjugate"
	opInverse  = "Inverse"
)

// matrixErrorf wraps err with a kernel tag: "<tag>: <underlying>".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func validateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	var i int
	for i = 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// Mul returns a·b mod 26.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k, acc int
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = 0
			for k = 0; k < a.c; k++ {
				acc += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			res.data[i*b.c+j] = modular.Mod26(acc)
		}
	}

	return res, nil
}

// MulVec computes y = m·x mod 26 for a column vector x with len(x) == m.Cols().
// Entries of x may be any integers; they are reduced implicitly.
// Complexity: O(r*c).
func MulVec(m *Dense, x []int) ([]int, error) {
	if m == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	y := make([]int, m.r)
	var i, j, acc int
	for i = 0; i < m.r; i++ {
		acc = 0
		for j = 0; j < m.c; j++ {
			acc += m.data[i*m.c+j] * x[j]
		}
		y[i] = modular.Mod26(acc)
	}

	return y, nil
}

// minor returns the (n-1)×(n-1) entries left after deleting row and col.
func minor(data []int, n, row, col int) []int {
	out := make([]int, 0, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			out = append(out, data[i*n+j])
		}
	}

	return out
}

// det computes the integer determinant of an n×n row-major block by
// cofactor expansion along the first row.
func det(data []int, n int) int {
	switch n {
	case 1:
		return data[0]
	case 2:
		return data[0]*data[3] - data[1]*data[2]
	}
	var (
		sum, j int
		sign   = 1
	)
	for j = 0; j < n; j++ {
		sum += sign * data[j] * det(minor(data, n, 0, j), n-1)
		sign = -sign
	}

	return sum
}

// Det returns det(m) mod 26.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) (n ≤ 3 in practice).
func Det(m *Dense) (int, error) {
	if err := validateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return modular.Mod26(det(m.data, m.r)), nil
}

// Invertible reports whether m is square with gcd(det(m), 26) == 1.
func Invertible(m *Dense) bool {
	d, err := Det(m)
	if err != nil {
		return false
	}

	return modular.Coprime(d, modular.Modulus)
}

// Adjugate returns adj(m) mod 26, the transpose of the cofactor matrix.
// For 1×1 input the adjugate is [1].
// Complexity: O(n²·(n-1)!).
func Adjugate(m *Dense) (*Dense, error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.r
	adj, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if n == 1 {
		adj.data[0] = 1
		return adj, nil
	}

	var i, j, cof int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			cof = det(minor(m.data, n, i, j), n-1)
			if (i+j)%2 == 1 {
				cof = -cof
			}
			// transpose while storing: adj[j][i] = C[i][j]
			adj.data[j*n+i] = modular.Mod26(cof)
		}
	}

	return adj, nil
}

// Inverse returns adj(m)·det(m)⁻¹ mod 26.
// Stage 1 (Validate): square, det coprime with 26 (else ErrSingular).
// Stage 2 (Execute): scale the adjugate by the modular inverse of det.
// Complexity: O(n²·(n-1)!).
func Inverse(m *Dense) (*Dense, error) {
	d, err := Det(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	dInv, ok := modular.Inverse(d, modular.Modulus)
	if !ok {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%d: %w", d, ErrSingular))
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i := range adj.data {
		adj.data[i] = modular.Mod26(adj.data[i] * dInv)
	}

	return adj, nil
}
