// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lvlcipher/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestFromRowsShape covers ragged and empty input.
func TestFromRowsShape(t *testing.T) {
	_, err := matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.FromRows([][]int{{-1, 27}, {52, 5}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{25, 1}, {0, 5}}, m.ToRows())
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetReduces validates that Set stores residues mod 26.
func TestSetReduces(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -3))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 23, v)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.True(t, m.Equal(clone))
	require.NoError(t, clone.Set(0, 0, 3))

	orig, _ := m.At(0, 0)
	require.Equal(t, 1, orig)
	require.False(t, m.Equal(clone))
}

// TestStringAndJSON checks the textual and wire forms.
func TestStringAndJSON(t *testing.T) {
	m, err := matrix.FromRows([][]int{{3, 3}, {2, 5}})
	require.NoError(t, err)
	require.Equal(t, "[3, 3]\n[2, 5]\n", m.String())

	b, err := json.Marshal(m)
	require.NoError(t, err)
	require.JSONEq(t, `[[3,3],[2,5]]`, string(b))

	var back matrix.Dense
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, m.Equal(&back))

	require.ErrorIs(t, json.Unmarshal([]byte(`[[1,2],[3]]`), &back), matrix.ErrBadShape)
}
