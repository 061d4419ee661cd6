package derange_test

import (
	"testing"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/derange"
	"github.com/katalvlaran/lvlcipher/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindShiftSmallest(t *testing.T) {
	t.Parallel()
	plain := alphabet.Latin()
	s, err := derange.FindShift(plain, plain)
	require.NoError(t, err)
	assert.Equal(t, 1, s)

	// Pairing KEYWORD… with A…Z: shift must leave nothing in place.
	kw := alphabet.Keyword(alphabet.Latin(), "KEYWORD")
	s, err = derange.FindShift(kw, alphabet.Latin())
	require.NoError(t, err)
	assert.Zero(t, derange.FixedPoints(kw, alphabet.Rotate(alphabet.Latin(), s)))
	for smaller := 1; smaller < s; smaller++ {
		assert.NotZero(t, derange.FixedPoints(kw, alphabet.Rotate(alphabet.Latin(), smaller)))
	}
}

func TestFindShiftNoneExists(t *testing.T) {
	t.Parallel()
	// The only candidate shift pairs A with A.
	_, err := derange.FindShift(alphabet.Alphabet("AB"), alphabet.Alphabet("BA"))
	require.ErrorIs(t, err, derange.ErrNoShift)
}

func TestLengthErrors(t *testing.T) {
	t.Parallel()
	_, err := derange.FindShift(alphabet.Alphabet("A"), alphabet.Alphabet("A"))
	require.ErrorIs(t, err, derange.ErrLength)
	_, err = derange.RandomShift(nil, alphabet.Alphabet("ABC"), alphabet.Alphabet("AB"))
	require.ErrorIs(t, err, derange.ErrLength)
	_, err = derange.Alphabet(nil, alphabet.Alphabet("A"))
	require.ErrorIs(t, err, derange.ErrLength)
}

func TestRandomShiftIsValidAndSeeded(t *testing.T) {
	t.Parallel()
	kw := alphabet.Keyword(alphabet.Latin(), "PUZZLE")
	for seed := int64(1); seed <= 50; seed++ {
		s1, err := derange.RandomShift(rng.FromSeed(seed), alphabet.Latin(), kw)
		require.NoError(t, err)
		s2, _ := derange.RandomShift(rng.FromSeed(seed), alphabet.Latin(), kw)
		require.Equal(t, s1, s2)
		require.Zero(t, derange.FixedPoints(alphabet.Latin(), alphabet.Rotate(kw, s1)))
	}
}

func TestDerangeAlphabetNoFixedPoints(t *testing.T) {
	t.Parallel()
	for _, base := range []alphabet.Alphabet{alphabet.Latin(), alphabet.Spanish(), alphabet.Alphabet("AB"), alphabet.Alphabet("XYZ")} {
		for seed := int64(0); seed < 200; seed++ {
			d, err := derange.Alphabet(rng.FromSeed(seed), base)
			require.NoError(t, err)
			require.NoError(t, d.Validate())
			require.Len(t, d, len(base))
			require.Zero(t, derange.FixedPoints(base, d), "base %s seed %d -> %s", base, seed, d)
			for _, r := range base {
				require.True(t, d.Contains(r))
			}
		}
	}
}
