package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingRoundTrip(t *testing.T) {
	t.Parallel()
	plain := alphabet.Latin()
	cipher := alphabet.Rotate(alphabet.Latin(), 3)
	m, err := alphabet.NewMapping(plain, cipher)
	require.NoError(t, err)

	enc := m.Apply("HELLO, WORLD")
	assert.Equal(t, "KHOOR, ZRUOG", enc)
	assert.Equal(t, "HELLO, WORLD", m.Invert(enc))
	assert.Zero(t, m.FixedPoints())

	c, ok := m.Encode('Z')
	require.True(t, ok)
	assert.Equal(t, 'C', c)
	_, ok = m.Decode('1')
	assert.False(t, ok)
}

func TestMappingRejectsNonBijective(t *testing.T) {
	t.Parallel()
	_, err := alphabet.NewMapping(alphabet.Alphabet("ABC"), alphabet.Alphabet("AB"))
	require.ErrorIs(t, err, alphabet.ErrNotBijective)

	_, err = alphabet.NewMapping(alphabet.Alphabet("ABC"), alphabet.Alphabet("ABD"))
	require.ErrorIs(t, err, alphabet.ErrNotBijective)

	_, err = alphabet.NewMapping(alphabet.Alphabet("ABC"), alphabet.Alphabet("AAB"))
	require.ErrorIs(t, err, alphabet.ErrDuplicateLetter)
}

func TestMappingFixedPoints(t *testing.T) {
	t.Parallel()
	m, err := alphabet.NewMapping(alphabet.Alphabet("ABCD"), alphabet.Alphabet("ACBD"))
	require.NoError(t, err)
	assert.Equal(t, 2, m.FixedPoints())
}
