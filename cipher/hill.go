// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/matrix"
	"github.com/katalvlaran/lvlcipher/modular"
)

// hillPad fills the last Hill block.
const hillPad = 'X'

// HillKey pairs an invertible matrix over Z/26 with its inverse.
// Invariant: Matrix × Decryption ≡ I (mod 26).
type HillKey struct {
	Size       int           `json:"size"`
	Matrix     *matrix.Dense `json:"matrix"`
	Decryption *matrix.Dense `json:"decryption"`
	Padding    int           `json:"padding"` // X letters appended to the plaintext
}

// NewHillKey validates m (square, 2×2 or 3×3, determinant coprime with 26)
// and derives the decryption matrix. Failures wrap ErrInvalidKey.
func NewHillKey(m *matrix.Dense) (*HillKey, error) {
	const method = "NewHillKey"
	if m == nil {
		return nil, cipherErrorf(method, ErrInvalidKey, "nil matrix")
	}
	if _, ok := hillFamily(m.Rows()); !ok || m.Rows() != m.Cols() {
		return nil, cipherErrorf(method, ErrInvalidKey, "%dx%d matrix", m.Rows(), m.Cols())
	}
	inv, err := matrix.Inverse(m)
	if err != nil {
		return nil, cipherErrorf(method, ErrInvalidKey, "%v", err)
	}

	return &HillKey{Size: m.Rows(), Matrix: m.Clone(), Decryption: inv}, nil
}

// Family implements KeyMaterial.
func (k *HillKey) Family() Family {
	f, _ := hillFamily(k.Size)
	return f
}

// checkMatrices verifies Size, Matrix and Decryption; padding is not looked at.
func (k *HillKey) checkMatrices() error {
	fresh, err := NewHillKey(k.Matrix)
	if err != nil {
		return err
	}
	if fresh.Size != k.Size || k.Decryption == nil || !fresh.Decryption.Equal(k.Decryption) {
		return cipherErrorf("HillKey", ErrInvalidKey, "decryption matrix is not the inverse")
	}

	return nil
}

func (k *HillKey) validate() error {
	if err := k.checkMatrices(); err != nil {
		return err
	}
	if k.Padding < 0 || k.Padding >= k.Size {
		return cipherErrorf("HillKey", ErrInvalidKey, "padding %d", k.Padding)
	}

	return nil
}

// hillApply multiplies every Size-letter block of letters by m.
func hillApply(m *matrix.Dense, letters string) (string, error) {
	n := m.Rows()
	var b strings.Builder
	b.Grow(len(letters))
	vec := make([]int, n)
	for i := 0; i < len(letters); i += n {
		for j := 0; j < n; j++ {
			vec[j], _ = modular.Index(rune(letters[i+j]))
		}
		out, err := matrix.MulVec(m, vec)
		if err != nil {
			return "", err
		}
		for _, v := range out {
			b.WriteRune(modular.Letter(v))
		}
	}

	return b.String(), nil
}

// Encrypt pads letters with X to a multiple of Size and multiplies each block
// by Matrix. It returns the ciphertext and the padding length. A key whose
// matrices do not check out fails with ErrInvalidKey.
func (k *HillKey) Encrypt(plaintext string) (string, int, error) {
	if err := k.checkMatrices(); err != nil {
		return "", 0, err
	}
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	if letters == "" {
		return "", 0, cipherErrorf("HillKey.Encrypt", ErrEmptyPlaintext, "%q", plaintext)
	}
	pad := modular.Mod(-len(letters), k.Size)
	letters += strings.Repeat(string(hillPad), pad)
	out, err := hillApply(k.Matrix, letters)
	if err != nil {
		return "", 0, cipherErrorf("HillKey.Encrypt", ErrInvalidKey, "%v", err)
	}

	return out, pad, nil
}

// Decrypt implements KeyMaterial: blocks are multiplied by Decryption and the
// recorded padding is removed.
func (k *HillKey) Decrypt(ciphertext string) (string, error) {
	const method = "HillKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	letters := alphabet.Letters(alphabet.Latin(), ciphertext)
	if letters == "" || len(letters)%k.Size != 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "%d letters for block size %d", len(letters), k.Size)
	}
	out, err := hillApply(k.Decryption, letters)
	if err != nil {
		return "", cipherErrorf(method, ErrInvalidKey, "%v", err)
	}

	return out[:len(out)-k.Padding], nil
}

// newHillKey uses the WithMatrix override or samples matrices with entries
// in [0,26) until one is invertible.
// Complexity: O(attempts · n³).
func newHillKey(cfg *config, size int) (*HillKey, error) {
	const method = "Hill"
	if cfg.matrix != nil {
		m, err := matrix.FromRows(cfg.matrix)
		if err != nil {
			return nil, cipherErrorf(method, ErrInvalidKey, "%v", err)
		}
		if m.Rows() != size {
			return nil, cipherErrorf(method, ErrInvalidKey, "%dx%d matrix, want %dx%d", m.Rows(), m.Cols(), size, size)
		}
		return NewHillKey(m)
	}

	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, cipherErrorf(method, ErrInvalidKey, "%v", err)
	}
	var attempt int
	for attempt = 1; attempt <= cfg.maxAttempts; attempt++ {
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				_ = m.Set(i, j, cfg.rng.Intn(modular.Modulus))
			}
		}
		if matrix.Invertible(m) {
			cfg.logger.Debug("cipher: hill matrix accepted", slog.Int("attempt", attempt))
			return NewHillKey(m)
		}
	}

	return nil, cipherErrorf(method, ErrSearchExhausted, "no invertible %dx%d matrix in %d attempts", size, size, cfg.maxAttempts)
}

// generateHill pads with X and encodes each block. The output is ungrouped.
func generateHill(cfg *config, info familyInfo, plaintext string) (draft, error) {
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	if letters == "" {
		return draft{}, cipherErrorf("Hill", ErrEmptyPlaintext, "%q", plaintext)
	}
	key, err := newHillKey(cfg, info.size)
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
