package blocks_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func TestTokensGrouping(t *testing.T) {
	t.Parallel()
	tokens := []string{"11", "22", "33", "44", "55"}
	cases := []struct {
		size int
		want string
	}{
		{0, "11 22 33 44 55"},
		{2, "11 22   33 44   55"},
		{5, "11 22 33 44 55"},
		{9, "11 22 33 44 55"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, blocks.Tokens(tokens, tc.size, blocks.TokenSep, blocks.BlockSep), "size %d", tc.size)
	}
	assert.Equal(t, "", blocks.Tokens(nil, 3, " ", "  "))
}

func TestLetters(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ABCDE FG", blocks.Letters("ABCDEFG", 5))
	assert.Equal(t, "ABC", blocks.Letters("ABC", 5))
	assert.Equal(t, "ABC", blocks.Letters("ABC", 0))
	assert.Equal(t, "AÑ BC", blocks.Letters("AÑBC", 2))
}

func TestPreserveWords(t *testing.T) {
	t.Parallel()
	tokens := []string{"h", "i", "y", "o", "u"}
	got := blocks.PreserveWords(tokens, "HI, YOU!", isUpper, " ", "   ")
	assert.Equal(t, "h i   y o u", got)

	// Leading, repeated and trailing whitespace collapse to one word break.
	got = blocks.PreserveWords(tokens, "  HI \n\t YOU  ", isUpper, " ", "   ")
	assert.Equal(t, "h i   y o u", got)

	// Surplus tokens are appended; missing tokens truncate.
	assert.Equal(t, "h i y o u", blocks.PreserveWords(tokens, "HI", isUpper, " ", "   "))
	assert.Equal(t, "h i", blocks.PreserveWords(tokens[:2], "HI YOU", isUpper, " ", "   "))
}

func TestTablePickDistribution(t *testing.T) {
	t.Parallel()
	r := rng.FromSeed(99)
	counts := map[int]int{}
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[blocks.Polybius.Pick(r)]++
	}
	require.Len(t, counts, 4)
	expect := map[int]float64{0: 0.2, 4: 0.2, 5: 0.4, 6: 0.2}
	for size, p := range expect {
		got := float64(counts[size]) / draws
		assert.InDelta(t, p, got, 0.02, "size %d", size)
	}
}

func TestTableEdgeCases(t *testing.T) {
	t.Parallel()
	assert.Equal(t, blocks.NoGrouping, blocks.Table{}.Pick(nil))
	assert.Equal(t, blocks.NoGrouping, blocks.Table{{7, 0}}.Pick(nil))
	assert.Equal(t, 9, blocks.Table{{3, 0}, {9, 1}}.Pick(rng.FromSeed(5)))
	assert.Equal(t, 16, blocks.Porta.Total())
	assert.Equal(t, []int{3, 4, 5, 6}, blocks.Porta.Sizes())
	for i := 0; i < 100; i++ {
		s := blocks.Porta.Pick(rng.FromSeed(int64(i)))
		assert.True(t, strings.Contains("3456", string(rune('0'+s))))
	}
}
