// SPDX-License-Identifier: MIT
// Package: lvlcipher/matrix
//
// dense.go — Dense, a row-major matrix whose entries stay reduced mod 26.

package matrix

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlcipher/modular"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of residues mod 26.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int   // number of rows and columns
	data []int // flat backing storage, length == r*c, each entry in [0,26)
}

// NewDense creates an r×c zero matrix.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// FromRows builds a matrix from row slices, reducing every entry mod 26.
// All rows must be non-empty and of equal length.
// Complexity: O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("FromRows: no rows: %w", ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), m.c, ErrBadShape)
		}
		for j = 0; j < m.c; j++ {
			m.data[i*m.c+j] = modular.Mod26(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v mod 26 at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = modular.Mod26(v)

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	copyData := make([]int, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// ToRows returns the entries as freshly allocated row slices.
func (m *Dense) ToRows() [][]int {
	out := make([][]int, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = append([]int(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders one bracketed row per line, e.g. "[3, 3]\n[2, 5]\n".
// Complexity: O(r*c).
func (m *Dense) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Dense) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToRows())
}

// UnmarshalJSON decodes an array of rows via FromRows.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var rows [][]int
	if err := json.Unmarshal(b, &rows); err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %w", err)
	}
	d, err := FromRows(rows)
	if err != nil {
		return fmt.Errorf("Dense.UnmarshalJSON: %w", err)
	}
	*m = *d

	return nil
}
