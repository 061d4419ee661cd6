package cipher_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/katalvlaran/lvlcipher/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHillHelloExample(t *testing.T) {
	t.Parallel()
	p, err := cipher.Generate(cipher.Hill2x2, "hello", cipher.WithMatrix([][]int{{3, 3}, {2, 5}}))
	require.NoError(t, err)
	assert.Equal(t, "LIOZHN", p.Encrypted)

	key := p.Key.(*cipher.HillKey)
	assert.Equal(t, 1, key.Padding)
	assert.Equal(t, [][]int{{15, 17}, {20, 9}}, key.Decryption.ToRows())

	got, err := p.Decrypt()
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)
}

func TestHillMatrixTimesDecryptionIsIdentity(t *testing.T) {
	t.Parallel()
	for _, f := range []cipher.Family{cipher.Hill2x2, cipher.Hill3x3} {
		for _, p := range roundTrip(t, f, quote, quoteLetters) {
			key := p.Key.(*cipher.HillKey)
			prod, err := matrix.Mul(key.Matrix, key.Decryption)
			require.NoError(t, err)
			id, err := matrix.Identity(key.Size)
			require.NoError(t, err)
			require.True(t, prod.Equal(id), "%s\n%s", key.Matrix, key.Decryption)
			require.Len(t, p.Encrypted, len(quoteLetters)+key.Padding)
		}
	}
}

func TestHillRejectsBadMatrices(t *testing.T) {
	t.Parallel()
	_, err := cipher.Generate(cipher.Hill2x2, "hello", cipher.WithMatrix([][]int{{2, 4}, {1, 2}}))
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	// det 13 shares a factor with 26
	_, err = cipher.Generate(cipher.Hill2x2, "hello", cipher.WithMatrix([][]int{{1, 0}, {0, 13}}))
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = cipher.Generate(cipher.Hill3x3, "hello", cipher.WithMatrix([][]int{{3, 3}, {2, 5}}))
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = cipher.Generate(cipher.Hill2x2, "hello", cipher.WithMatrix([][]int{{3, 3, 1}, {2, 5, 1}}))
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, err = cipher.NewHillKey(nil)
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	m, err := matrix.FromRows([][]int{{1, 2, 3, 4}, {0, 1, 2, 3}, {0, 0, 1, 2}, {0, 0, 0, 1}})
	require.NoError(t, err)
	_, err = cipher.NewHillKey(m)
	require.ErrorIs(t, err, cipher.ErrInvalidKey)
}

func TestHillEncryptRejectsUnbuiltKeys(t *testing.T) {
	t.Parallel()
	_, _, err := (&cipher.HillKey{}).Encrypt("hello")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	m, err := matrix.FromRows([][]int{{3, 3}, {2, 5}})
	require.NoError(t, err)
	_, _, err = (&cipher.HillKey{Size: 2, Matrix: m}).Encrypt("hello")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	key, err := cipher.NewHillKey(m)
	require.NoError(t, err)
	enc, pad, err := key.Encrypt("hello")
	require.NoError(t, err)
	assert.Equal(t, "LIOZHN", enc)
	assert.Equal(t, 1, pad)
}

func TestHillDecryptMalformed(t *testing.T) {
	t.Parallel()
	p, err := cipher.Generate(cipher.Hill3x3, quote, cipher.WithSeed(2))
	require.NoError(t, err)
	_, err = p.Key.Decrypt("ABCD")
	require.ErrorIs(t, err, cipher.ErrMalformedCiphertext)
	_, err = p.Key.Decrypt("123")
	require.ErrorIs(t, err, cipher.ErrMalformedCiphertext)
}

func TestHillSearchIsBounded(t *testing.T) {
	t.Parallel()
	var exhausted int
	for seed := int64(1); seed <= 60; seed++ {
		p, err := cipher.Generate(cipher.Hill3x3, quote, cipher.WithSeed(seed), cipher.WithMaxAttempts(1))
		if errors.Is(err, cipher.ErrSearchExhausted) {
			require.Nil(t, p)
			exhausted++
			continue
		}
		require.NoError(t, err)
		require.True(t, matrix.Invertible(p.Key.(*cipher.HillKey).Matrix))
	}
	assert.Positive(t, exhausted)
}
