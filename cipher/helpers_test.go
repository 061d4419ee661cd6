package cipher_test

import (
	"testing"

	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/stretchr/testify/require"
)

// quote has no J, V or accented letters, so every family decrypts it verbatim.
const quote = "Meet me at the old oak tree at noon, bring the map!"

const quoteLetters = "MEETMEATTHEOLDOAKTREEATNOONBRINGTHEMAP"

// roundTrip generates f over seeds and checks the key recovers want.
func roundTrip(t *testing.T, f cipher.Family, plaintext, want string, opts ...cipher.Option) []*cipher.Puzzle {
	t.Helper()
	var out []*cipher.Puzzle
	for seed := int64(1); seed <= 25; seed++ {
		p, err := cipher.Generate(f, plaintext, append([]cipher.Option{cipher.WithSeed(seed)}, opts...)...)
		require.NoError(t, err, "%s seed %d", f, seed)
		require.Equal(t, f, p.Family())
		got, err := p.Decrypt()
		require.NoError(t, err, "%s seed %d: %q", f, seed, p.Encrypted)
		require.Equal(t, want, got, "%s seed %d: %q", f, seed, p.Encrypted)
		out = append(out, p)
	}

	return out
}
