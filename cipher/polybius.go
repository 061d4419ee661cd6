// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/rng"
)

const (
	checkerboardSquareKeyLen = 8 // random letters seeding the checkerboard square
	checkerboardLabelLen     = alphabet.SquareSize
)

// isLatinLetter reports whether r is A–Z.
func isLatinLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

// layoutTokens renders tokens in blocks of size, or with the original word
// breaks of text when size is blocks.NoGrouping.
func layoutTokens(tokens []string, size int, text string) (string, Format) {
	if size == blocks.NoGrouping {
		return blocks.PreserveWords(tokens, text, isLatinLetter, blocks.TokenSep, blocks.BlockSep),
			Format{WordPreserving: true}
	}

	return blocks.Tokens(tokens, size, blocks.TokenSep, blocks.BlockSep), Format{BlockSize: size}
}

// NihilistKey seeds a Polybius square with SquareKey and adds the
// coordinates of the repeating Keyword to every plaintext coordinate.
// Sums are not reduced, so tokens may exceed two digits.
type NihilistKey struct {
	SquareKey string `json:"squareKey"`
	Keyword   string `json:"keyword"`
}

// Family implements KeyMaterial.
func (k *NihilistKey) Family() Family { return Nihilist }

// Square returns the keyed Polybius square.
func (k *NihilistKey) Square() alphabet.Square { return alphabet.NewSquare(k.SquareKey) }

func (k *NihilistKey) validate() error {
	if alphabet.Letters(alphabet.Latin(), k.Keyword) == "" {
		return cipherErrorf("NihilistKey", ErrInvalidKey, "keyword %q has no letters", k.Keyword)
	}

	return nil
}

// coords returns row*10+col for every letter of s in sq.
func coords(sq alphabet.Square, s string) []int {
	out := make([]int, 0, len(s))
	for _, r := range s {
		row, col, ok := sq.Coords(r)
		if ok {
			out = append(out, row*10+col)
		}
	}

	return out
}

// Tokens encodes the letters of plaintext as decimal sums.
func (k *NihilistKey) Tokens(plaintext string) []string {
	sq := k.Square()
	pt := coords(sq, alphabet.Letters(alphabet.Latin(), plaintext))
	kc := coords(sq, alphabet.Letters(alphabet.Latin(), k.Keyword))
	out := make([]string, len(pt))
	for i, v := range pt {
		out[i] = strconv.Itoa(v + kc[i%len(kc)])
	}

	return out
}

// Decrypt implements KeyMaterial: each number minus the running key gives a
// coordinate pair. J decodes as I.
func (k *NihilistKey) Decrypt(ciphertext string) (string, error) {
	const method = "NihilistKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	sq := k.Square()
	kc := coords(sq, alphabet.Letters(alphabet.Latin(), k.Keyword))
	fields := strings.Fields(ciphertext)
	if len(fields) == 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "no numbers")
	}

	var b strings.Builder
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "token %q", f)
		}
		v := n - kc[i%len(kc)]
		r, err := sq.At(v/10, v%10)
		if err != nil || v < 0 {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "token %q at %d", f, i)
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}

// generateNihilist keys the square and the running key with two different
// bank words (or WithKeyword for the square).
func generateNihilist(cfg *config, plaintext string) (draft, error) {
	text := alphabet.Normalize(alphabet.Latin(), plaintext)
	if alphabet.Letters(alphabet.Latin(), text) == "" {
		return draft{}, cipherErrorf("Nihilist", ErrEmptyPlaintext, "%q", plaintext)
	}
	squareKey := cfg.pickWord(nil)
	keyword := cfg.drawWord(nil, squareKey)
	if keyword == "" {
		keyword = squareKey
	}
	key := &NihilistKey{SquareKey: squareKey, Keyword: keyword}
	if err := key.validate(); err != nil {
		return draft{}, err
	}
	enc, format := layoutTokens(key.Tokens(text), cfg.layout(blocks.Polybius), text)

	return draft{key: key, encrypted: enc, format: format}, nil
}

// CheckerboardKey seeds a Polybius square with SquareKey and relabels row r
// with RowKey[r-1] and column c with ColKey[c-1].
type CheckerboardKey struct {
	SquareKey string `json:"squareKey"`
	RowKey    string `json:"rowKey"`
	ColKey    string `json:"colKey"`
}

// Family implements KeyMaterial.
func (k *CheckerboardKey) Family() Family { return Checkerboard }

// Square returns the keyed Polybius square.
func (k *CheckerboardKey) Square() alphabet.Square { return alphabet.NewSquare(k.SquareKey) }

func validLabel(s string) bool {
	return len(s) == checkerboardLabelLen && distinctLetters(s)
}

func (k *CheckerboardKey) validate() error {
	if !validLabel(k.RowKey) || !validLabel(k.ColKey) {
		return cipherErrorf("CheckerboardKey", ErrInvalidKey,
			"labels %q/%q need %d distinct letters", k.RowKey, k.ColKey, checkerboardLabelLen)
	}

	return nil
}

// Tokens encodes every letter of plaintext as a row-label/column-label pair.
func (k *CheckerboardKey) Tokens(plaintext string) []string {
	sq := k.Square()
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	out := make([]string, 0, len(letters))
	for _, r := range letters {
		row, col, ok := sq.Coords(r)
		if !ok {
			continue
		}
		out = append(out, string([]byte{k.RowKey[row-1], k.ColKey[col-1]}))
	}

	return out
}

// Decrypt implements KeyMaterial. J decodes as I.
func (k *CheckerboardKey) Decrypt(ciphertext string) (string, error) {
	const method = "CheckerboardKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	sq := k.Square()
	fields := strings.Fields(ciphertext)
	if len(fields) == 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "no tokens")
	}

	var b strings.Builder
	for i, f := range fields {
		if len(f) != 2 {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "token %q at %d", f, i)
		}
		row := strings.IndexByte(k.RowKey, f[0]) + 1
		col := strings.IndexByte(k.ColKey, f[1]) + 1
		r, err := sq.At(row, col)
		if err != nil {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "token %q at %d", f, i)
		}
		b.WriteRune(r)
	}

	return b.String(), nil
}

// randomLabel draws n distinct letters.
func randomLabel(cfg *config, n int) string {
	perm := rng.Perm(cfg.rng, 26)
	out := make([]byte, n)
	for i := range out {
		out[i] = byte('A' + perm[i])
	}

	return string(out)
}

// generateCheckerboard keys the square with 8 random letters and labels rows
// and columns with two different 5-letter bank words of distinct letters,
// falling back to random labels when the bank has none.
func generateCheckerboard(cfg *config, plaintext string) (draft, error) {
	text := alphabet.Normalize(alphabet.Latin(), plaintext)
	if alphabet.Letters(alphabet.Latin(), text) == "" {
		return draft{}, cipherErrorf("Checkerboard", ErrEmptyPlaintext, "%q", plaintext)
	}

	sk := make([]byte, checkerboardSquareKeyLen)
	for i := range sk {
		sk[i] = byte('A' + cfg.rng.Intn(26))
	}
	rowKey := cfg.drawWord(validLabel, "")
	if rowKey == "" {
		rowKey = randomLabel(cfg, checkerboardLabelLen)
	}
	colKey := cfg.drawWord(validLabel, rowKey)
	if colKey == "" {
		colKey = randomLabel(cfg, checkerboardLabelLen)
	}

	key := &CheckerboardKey{SquareKey: string(sk), RowKey: rowKey, ColKey: colKey}
	if err := key.validate(); err != nil {
		return draft{}, err
	}
	enc, format := layoutTokens(key.Tokens(text), cfg.layout(blocks.Polybius), text)

	return draft{key: key, encrypted: enc, format: format}, nil
}
