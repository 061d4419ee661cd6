package alphabet_test

import (
	"testing"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInAlphabetsValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, alphabet.Latin().Validate())
	require.NoError(t, alphabet.Spanish().Validate())
	assert.Equal(t, 26, alphabet.Latin().Len())
	assert.Equal(t, 27, alphabet.Spanish().Len())
	assert.Equal(t, 14, alphabet.Spanish().Index('Ñ'))
}

func TestParseRejectsDuplicatesAndEmpty(t *testing.T) {
	t.Parallel()
	_, err := alphabet.Parse("ABCA")
	require.ErrorIs(t, err, alphabet.ErrDuplicateLetter)
	_, err = alphabet.Parse("")
	require.ErrorIs(t, err, alphabet.ErrEmpty)
	a, err := alphabet.Parse("XYZ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ", a.String())
}

func TestKeywordAlphabet(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, keyword, want string
	}{
		{"classic", "KEYWORD", "KEYWORDABCFGHIJLMNPQSTUVXZ"},
		{"duplicates", "balloon", "BALONCDEFGHIJKMPQRSTUVWXYZ"},
		{"noise", "  c-i_p h3e!r ", "CIPHERABDFGJKLMNOQSTUVWXYZ"},
		{"empty", "", "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{"accent", "Éxito", "EXITOABCDFGHJKLMNPQRSUVWYZ"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := alphabet.Keyword(alphabet.Latin(), tc.keyword)
			require.NoError(t, got.Validate())
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestKeywordSpanishKeepsEnye(t *testing.T) {
	t.Parallel()
	got := alphabet.Keyword(alphabet.Spanish(), "niño")
	require.NoError(t, got.Validate())
	assert.Equal(t, 27, got.Len())
	assert.Equal(t, "NIÑO", got[:4].String())
}

func TestRotate(t *testing.T) {
	t.Parallel()
	a := alphabet.Alphabet("ABCDE")
	assert.Equal(t, "CDEAB", alphabet.Rotate(a, 2).String())
	assert.Equal(t, "ABCDE", alphabet.Rotate(a, 5).String())
	assert.Equal(t, "EABCD", alphabet.Rotate(a, -1).String())
	assert.Equal(t, "DEABC", alphabet.Rotate(a, 13).String())
	assert.Equal(t, "ABCDE", a.String(), "input must not be mutated")
	assert.Empty(t, alphabet.Rotate(nil, 3))
}

func TestNormalizeAndLetters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "CAFE, NINO!", alphabet.Normalize(alphabet.Latin(), "café, niño!"))
	assert.Equal(t, "CAFE, NIÑO!", alphabet.Normalize(alphabet.Spanish(), "café, niño!"))
	assert.Equal(t, "PINGUINO", alphabet.Letters(alphabet.Spanish(), "pingüino"))
	assert.Equal(t, "ARBOLCANCION", alphabet.Letters(alphabet.Latin(), "Árbol 1 canción"))
	assert.Equal(t, "", alphabet.Letters(alphabet.Latin(), "123 !?"))
}
