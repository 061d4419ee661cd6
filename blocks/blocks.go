// SPDX-License-Identifier: MIT
// Package: lvlcipher/blocks
//
// Package blocks lays cipher output out for presentation. It is shared by every
// family that groups its ciphertext, so all of them draw block sizes from the
// same weighted tables and render with the same separators.
//
// Layouts:
//   • Fixed blocks:    Tokens(tokens, size, sep, blockSep) and Letters(s, size).
//   • Word-preserving: PreserveWords re-inserts the original word breaks.
//   • Size draws:      Table.Pick draws a block size from a weighted table;
//                      size 0 means "no grouping".

package blocks

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvlcipher/rng"
)

// Separators used by the coordinate ciphers.
const (
	TokenSep = " "
	BlockSep = "   "
)

// NoGrouping is the block size meaning "keep original word breaks".
const NoGrouping = 0

// Weight pairs a block size with its relative weight.
type Weight struct {
	Size   int
	Weight int
}

// Table is a weighted distribution over block sizes.
type Table []Weight

// Polybius is the distribution shared by Nihilist and Checkerboard:
// 20% no grouping, 20% size 4, 40% size 5, 20% size 6.
var Polybius = Table{{NoGrouping, 20}, {4, 20}, {5, 40}, {6, 20}}

// Porta is the Porta block-size distribution (3:2, 4:3, 5:7, 6:4 of 16).
var Porta = Table{{3, 2}, {4, 3}, {5, 7}, {6, 4}}

// Sizes lists the sizes in table order.
func (t Table) Sizes() []int {
	out := make([]int, len(t))
	for i, w := range t {
		out[i] = w.Size
	}

	return out
}

// Total is the sum of positive weights.
func (t Table) Total() int {
	var n int
	for _, w := range t {
		if w.Weight > 0 {
			n += w.Weight
		}
	}

	return n
}

// Pick draws a size with probability Weight/Total. Non-positive weights never
// win. An empty or all-zero table yields NoGrouping.
//
// Complexity: O(len(t)).
func (t Table) Pick(r *rand.Rand) int {
	total := t.Total()
	if total == 0 {
		return NoGrouping
	}
	roll := rng.IntRange(r, 0, total-1)
	for _, w := range t {
		if w.Weight <= 0 {
			continue
		}
		if roll < w.Weight {
			return w.Size
		}
		roll -= w.Weight
	}

	return NoGrouping
}

// Tokens joins tokens with sep, inserting blockSep after every size tokens.
// size <= 0 joins all tokens with sep.
//
// Complexity: O(total length).
func Tokens(tokens []string, size int, sep, blockSep string) string {
	if size <= 0 || size >= len(tokens) {
		return strings.Join(tokens, sep)
	}
	groups := make([]string, 0, (len(tokens)+size-1)/size)
	var i int
	for i = 0; i < len(tokens); i += size {
		end := i + size
		if end > len(tokens) {
			end = len(tokens)
		}
		groups = append(groups, strings.Join(tokens[i:end], sep))
	}

	return strings.Join(groups, blockSep)
}

// Letters splits s into runs of size runes separated by single spaces.
// size <= 0 returns s unchanged.
func Letters(s string, size int) string {
	if size <= 0 {
		return s
	}
	rs := []rune(s)
	tokens := make([]string, len(rs))
	for i, r := range rs {
		tokens[i] = string(r)
	}

	return Tokens(tokens, size, "", TokenSep)
}

// PreserveWords writes one token per letter of text (as judged by isLetter),
// separating tokens in a word with sep and words with wordSep. Other
// characters are dropped. Surplus tokens are appended at the end; missing
// ones end the output early.
//
// Complexity: O(len(text) + total token length).
func PreserveWords(tokens []string, text string, isLetter func(rune) bool, sep, wordSep string) string {
	var (
		b       strings.Builder
		ti      int
		inWord  bool
		pending bool
	)
	for _, r := range text {
		if ti >= len(tokens) {
			break
		}
		if !isLetter(r) {
			if inWord && (r == ' ' || r == '\n' || r == '\t') {
				pending = true
				inWord = false
			}
			continue
		}
		switch {
		case pending:
			b.WriteString(wordSep)
			pending = false
		case ti > 0:
			b.WriteString(sep)
		}
		b.WriteString(tokens[ti])
		ti++
		inWord = true
	}
	for ; ti < len(tokens); ti++ {
		if ti > 0 {
			b.WriteString(sep)
		}
		b.WriteString(tokens[ti])
	}

	return b.String()
}
