// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/modular"
	"github.com/katalvlaran/lvlcipher/rng"
)

// Columnar key and plaintext limits.
const (
	MinColumnarKey = 3
	MaxColumnarKey = 7
	columnarPad    = 'X'
)

// ColumnarKey is a complete columnar transposition key. Order lists the
// column indices in read-out order.
type ColumnarKey struct {
	Key     string `json:"key"`
	Order   []int  `json:"order"`
	Padding int    `json:"padding"` // X letters appended to the plaintext
}

// NewColumnarKey cleans key and derives its read-out order: columns sorted by
// key letter, ties broken by column index. Needs at least two letters.
func NewColumnarKey(key string) (*ColumnarKey, error) {
	clean := alphabet.Letters(alphabet.Latin(), key)
	if len(clean) < 2 {
		return nil, cipherErrorf("NewColumnarKey", ErrInvalidKey, "key %q needs 2+ letters", key)
	}

	return &ColumnarKey{Key: clean, Order: columnOrder(clean)}, nil
}

// columnOrder sorts column indices by key letter, stably.
func columnOrder(key string) []int {
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return key[order[a]] < key[order[b]] })

	return order
}

// Family implements KeyMaterial.
func (k *ColumnarKey) Family() Family { return CompleteColumnar }

// checkOrder verifies Key and Order; padding is not looked at.
func (k *ColumnarKey) checkOrder() error {
	fresh, err := NewColumnarKey(k.Key)
	if err != nil {
		return err
	}
	if fresh.Key != k.Key || !slices.Equal(fresh.Order, k.Order) {
		return cipherErrorf("ColumnarKey", ErrInvalidKey, "order %v does not follow from key %q", k.Order, k.Key)
	}

	return nil
}

func (k *ColumnarKey) validate() error {
	if err := k.checkOrder(); err != nil {
		return err
	}
	if k.Padding < 0 || k.Padding >= len(k.Key) {
		return cipherErrorf("ColumnarKey", ErrInvalidKey, "padding %d", k.Padding)
	}

	return nil
}

// Encrypt writes the letters of plaintext row-major under the key, pads the
// last row with X, and reads the columns in Order. It returns the ciphertext
// and the padding length. A key whose Order does not follow from Key fails
// with ErrInvalidKey.
func (k *ColumnarKey) Encrypt(plaintext string) (string, int, error) {
	if err := k.checkOrder(); err != nil {
		return "", 0, err
	}
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	w := len(k.Key)
	pad := modular.Mod(-len(letters), w)
	letters += strings.Repeat(string(columnarPad), pad)
	rows := len(letters) / w

	var b strings.Builder
	b.Grow(len(letters))
	for _, col := range k.Order {
		for r := 0; r < rows; r++ {
			b.WriteByte(letters[r*w+col])
		}
	}

	return b.String(), pad, nil
}

// Decrypt implements KeyMaterial: columns are refilled in Order, rows are
// read back and the recorded padding is removed.
func (k *ColumnarKey) Decrypt(ciphertext string) (string, error) {
	const method = "ColumnarKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	letters := alphabet.Letters(alphabet.Latin(), ciphertext)
	w := len(k.Key)
	if letters == "" || len(letters)%w != 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "%d letters for %d columns", len(letters), w)
	}
	rows := len(letters) / w

	grid := make([]byte, len(letters))
	var i int
	for _, col := range k.Order {
		for r := 0; r < rows; r++ {
			grid[r*w+col] = letters[i]
			i++
		}
	}

	return string(grid[:len(grid)-k.Padding]), nil
}

// generateColumnar draws a key of 3–7 random letters.
func generateColumnar(cfg *config, plaintext string) (draft, error) {
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	if letters == "" {
		return draft{}, cipherErrorf("Columnar", ErrEmptyPlaintext, "%q", plaintext)
	}
	if len(letters) < MinColumnarKey {
		return draft{}, cipherErrorf("Columnar", ErrPlaintextTooShort, "%d letters, need %d", len(letters), MinColumnarKey)
	}

	n := rng.IntRange(cfg.rng, MinColumnarKey, MaxColumnarKey)
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte('A' + cfg.rng.Intn(26))
	}
	key, err := NewColumnarKey(string(raw))
	if err != nil {
		return draft{}, err
	}
	enc, pad, err := key.Encrypt(letters)
	if err != nil {
		return draft{}, err
	}
	key.Padding = pad

	return draft{key: key, encrypted: enc}, nil
}
