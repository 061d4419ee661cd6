package cipher_test

import (
	"testing"

	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnarOrder(t *testing.T) {
	t.Parallel()
	cases := map[string][]int{
		"ABCD":  {0, 1, 2, 3},
		"ZEBRA": {4, 2, 1, 3, 0},
		"BABA":  {1, 3, 0, 2},
	}
	for key, want := range cases {
		k, err := cipher.NewColumnarKey(key)
		require.NoError(t, err)
		assert.Equal(t, want, k.Order, key)
	}

	_, err := cipher.NewColumnarKey("a1")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)
}

func TestColumnarAttackAtDawn(t *testing.T) {
	t.Parallel()
	k, err := cipher.NewColumnarKey("ABCD")
	require.NoError(t, err)
	// ATTA / CKAT / DAWN read column by column.
	enc, pad, err := k.Encrypt("ATTACKATDAWN")
	require.NoError(t, err)
	assert.Equal(t, "ACDTKATAWATN", enc)
	assert.Zero(t, pad)

	got, err := k.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", got)

	k, err = cipher.NewColumnarKey("DCBA")
	require.NoError(t, err)
	enc, _, err = k.Encrypt("attack at dawn")
	require.NoError(t, err)
	assert.Equal(t, "ATNTAWTKAACD", enc)
	got, err = k.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", got)
}

func TestColumnarPadding(t *testing.T) {
	t.Parallel()
	k, err := cipher.NewColumnarKey("ABC")
	require.NoError(t, err)
	enc, pad, err := k.Encrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "HLEOLX", enc)
	require.Equal(t, 1, pad)

	k.Padding = pad
	got, err := k.Decrypt(enc)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)

	_, err = k.Decrypt("HLEOL")
	require.ErrorIs(t, err, cipher.ErrMalformedCiphertext)

	k.Order = []int{2, 1, 0}
	_, err = k.Decrypt(enc)
	require.ErrorIs(t, err, cipher.ErrInvalidKey)
}

func TestColumnarEncryptRejectsUnbuiltKeys(t *testing.T) {
	t.Parallel()
	_, _, err := (&cipher.ColumnarKey{}).Encrypt("attack at dawn")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, _, err = (&cipher.ColumnarKey{Key: "ZEBRA", Order: []int{0, 1, 2}}).Encrypt("attack at dawn")
	require.ErrorIs(t, err, cipher.ErrInvalidKey)

	// Padding is only read by Decrypt.
	k, err := cipher.NewColumnarKey("ZEBRA")
	require.NoError(t, err)
	k.Padding = 9
	enc, pad, err := k.Encrypt("We are discovered")
	require.NoError(t, err)
	assert.Equal(t, "EODASREIERCEWDV", enc)
	assert.Zero(t, pad)
}

func TestColumnarGenerate(t *testing.T) {
	t.Parallel()
	for _, p := range roundTrip(t, cipher.CompleteColumnar, quote, quoteLetters) {
		key := p.Key.(*cipher.ColumnarKey)
		require.GreaterOrEqual(t, len(key.Key), cipher.MinColumnarKey)
		require.LessOrEqual(t, len(key.Key), cipher.MaxColumnarKey)
		require.Zero(t, len(p.Encrypted)%len(key.Key))
		require.NotContains(t, p.Encrypted, " ")
	}

	_, err := cipher.Generate(cipher.CompleteColumnar, "ab!", cipher.WithSeed(1))
	require.ErrorIs(t, err, cipher.ErrPlaintextTooShort)
	_, err = cipher.Generate(cipher.CompleteColumnar, "", cipher.WithSeed(1))
	require.ErrorIs(t, err, cipher.ErrEmptyPlaintext)
}
