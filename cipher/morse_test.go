package cipher_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorseSpelling(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-.-.x---x--x.xx.-x-xx---x-.x-.-.x.xx", cipher.Morse("Come at once."))
	assert.Equal(t, "....x..xx", cipher.Morse("hi"))
	assert.Equal(t, ".-xx-...x", cipher.Morse(" a  !! b "))
	assert.Empty(t, cipher.Morse("123 ..."))
}

func TestMorseTriplets(t *testing.T) {
	t.Parallel()
	ts := cipher.MorseTriplets()
	require.Len(t, ts, 26)
	assert.Equal(t, "...", ts[0])
	assert.Equal(t, "---", ts[13])
	assert.Equal(t, "xx-", ts[25])
	assert.NotContains(t, ts, "xxx")

	ts[0] = "mutated"
	assert.Equal(t, "...", cipher.MorseTriplets()[0])
}

func TestFractionatedMorseRoundTableExample(t *testing.T) {
	t.Parallel()
	key, err := cipher.NewFractionatedMorseKey("roundtable")
	require.NoError(t, err)
	assert.Equal(t, "ROUNDTABLECFGHIJKMPQSVWXYZ", key.Alphabet)

	enc, err := key.Encrypt("Come at once")
	require.NoError(t, err)
	assert.Equal(t, "CBIILTMHVVFL", enc)

	got, err := key.Decrypt("CBIIL TMHVV FL")
	require.NoError(t, err)
	assert.Equal(t, "COMEATONCE", got)

	p, err := cipher.Generate(cipher.FractionatedMorse, "Come at once", cipher.WithKeyword("Roundtable"))
	require.NoError(t, err)
	assert.Equal(t, "CBIIL TMHVV FL", p.Encrypted)
	assert.Equal(t, 5, p.Format.BlockSize)
}

func TestFractionatedMorseGenerate(t *testing.T) {
	t.Parallel()
	for _, p := range roundTrip(t, cipher.FractionatedMorse, quote, quoteLetters) {
		key := p.Key.(*cipher.FractionatedMorseKey)
		require.NotEmpty(t, key.Keyword)
		require.Len(t, key.Alphabet, 26)
		require.True(t, strings.HasPrefix(key.Alphabet, key.Keyword[:1]))
		for _, g := range strings.Fields(p.Encrypted) {
			require.LessOrEqual(t, len(g), 5)
		}
	}

	_, err := cipher.Generate(cipher.FractionatedMorse, "!!", cipher.WithSeed(1))
	require.ErrorIs(t, err, cipher.ErrEmptyPlaintext)
}

func TestFractionatedMorseRejects(t *testing.T) {
	t.Parallel()
	_, err := cipher.NewFractionatedMorseKey("42")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = (&cipher.FractionatedMorseKey{Keyword: "KEY", Alphabet: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"}).Decrypt("ABC")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)
	_, err = (&cipher.FractionatedMorseKey{}).Encrypt("abc")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	key, err := cipher.NewFractionatedMorseKey("ABC")
	require.NoError(t, err)
	_, err = key.Encrypt("123")
	require.ErrorIs(t, err, cipher.ErrEmptyPlaintext)
	_, err = key.Decrypt("123")
	require.ErrorIs(t, err, cipher.ErrMalformedCiphertext)
	// N is "---": six dashes spell no letter.
	_, err = key.Decrypt("NN")
	require.ErrorIs(t, err, cipher.ErrMalformedCiphertext)
	// Z is "xx-": a lone dash is T.
	got, err := key.Decrypt("Z")
	require.NoError(t, err)
	assert.Equal(t, "T", got)
}
