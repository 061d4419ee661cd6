// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlcipher/cryptarithm"
)

// CryptarithmKey is the solution of a WORD + WORD = WORD (or WORD - WORD =
// WORD) puzzle. The puzzle's Encrypted text is the equation itself.
type CryptarithmKey struct {
	Equation       cryptarithm.Equation     `json:"equation"`
	Assignment     cryptarithm.Assignment   `json:"assignment"`
	NumericExample string                   `json:"numericExample"`
	DigitGroups    []cryptarithm.DigitGroup `json:"digitGroups,omitempty"`
	Unique         bool                     `json:"unique"`
	Fallback       bool                     `json:"fallback"`
}

// Family implements KeyMaterial.
func (k *CryptarithmKey) Family() Family { return Cryptarithm }

func (k *CryptarithmKey) validate() error {
	if err := cryptarithm.Verify(k.Equation, k.Assignment); err != nil {
		return cipherErrorf("CryptarithmKey", ErrInvalidKey, "%v", err)
	}

	return nil
}

// Decrypt implements KeyMaterial: every letter of ciphertext is replaced by
// its digit, so the equation decodes to its numeric example. Letters outside
// the assignment fail with ErrMalformedCiphertext.
func (k *CryptarithmKey) Decrypt(ciphertext string) (string, error) {
	const method = "CryptarithmKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, r := range ciphertext {
		if r < 'A' || r > 'Z' {
			b.WriteRune(r)
			continue
		}
		d, ok := k.Assignment[r]
		if !ok {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "letter %q has no digit", r)
		}
		b.WriteString(strconv.Itoa(d))
	}

	return b.String(), nil
}

// generateCryptarithm ignores plaintext and searches the word bank; an
// exhausted search yields the SEND + MORE = MONEY fallback (MONEY - MORE = SEND
// when only subtraction is allowed), never an error.
func generateCryptarithm(cfg *config) (draft, error) {
	p := cryptarithm.Generate(cfg.rng, cfg.words,
		cryptarithm.WithMaxAttempts(cfg.cryptAttempts),
		cryptarithm.WithDigitGroups(cfg.digitGroups),
		cryptarithm.WithOperators(cfg.cryptOps...),
		cryptarithm.WithLogger(cfg.logger),
	)
	key := &CryptarithmKey{
		Equation:       p.Equation,
		Assignment:     p.Assignment,
		NumericExample: p.NumericExample,
		DigitGroups:    p.DigitGroups,
		Unique:         p.Unique,
		Fallback:       p.Fallback,
	}

	return draft{key: key, encrypted: p.Equation.String()}, nil
}
