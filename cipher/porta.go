// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/modular"
)

// portaHalf is the width of one Porta tableau half.
const portaHalf = 13

// PortaTableau returns the 13 rows of the Porta tableau. Row k serves the key
// letters 2k and 2k+1 (AB, CD, ..., YZ) and lists the cipher letters of
// A..M; the tableau is reciprocal, so N..Z read the same row backwards.
func PortaTableau() []string {
	second := alphabet.Alphabet("NOPQRSTUVWXYZ")
	out := make([]string, portaHalf)
	for k := range out {
		out[k] = alphabet.Rotate(second, k).String()
	}

	return out
}

// portaLetter enciphers (or deciphers) p under key letter kl.
func portaLetter(p, kl int) int {
	k := kl / 2
	if p < portaHalf {
		return portaHalf + (p+k)%portaHalf
	}

	return modular.Mod(p-portaHalf-k, portaHalf)
}

// PortaKey is the repeating Porta keyword.
type PortaKey struct {
	Keyword string `json:"keyword"`
}

// Family implements KeyMaterial.
func (k *PortaKey) Family() Family { return Porta }

func (k *PortaKey) validate() error {
	if alphabet.Letters(alphabet.Latin(), k.Keyword) == "" {
		return cipherErrorf("PortaKey", ErrInvalidKey, "keyword %q has no letters", k.Keyword)
	}

	return nil
}

// Apply runs the letters of text through the tableau. The cipher is its own
// inverse, so Apply both encrypts and decrypts.
func (k *PortaKey) Apply(text string) string {
	letters := alphabet.Letters(alphabet.Latin(), text)
	kw := alphabet.Letters(alphabet.Latin(), k.Keyword)
	if kw == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(letters))
	for i, r := range letters {
		p, _ := modular.Index(r)
		kl, _ := modular.Index(rune(kw[i%len(kw)]))
		b.WriteRune(modular.Letter(portaLetter(p, kl)))
	}

	return b.String()
}

// Decrypt implements KeyMaterial.
func (k *PortaKey) Decrypt(ciphertext string) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}
	out := k.Apply(ciphertext)
	if out == "" {
		return "", cipherErrorf("PortaKey.Decrypt", ErrMalformedCiphertext, "no letters")
	}

	return out, nil
}

// generatePorta keys the tableau with a bank word (or WithKeyword) and groups
// the output with a size drawn from blocks.Porta.
func generatePorta(cfg *config, plaintext string) (draft, error) {
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	if letters == "" {
		return draft{}, cipherErrorf("Porta", ErrEmptyPlaintext, "%q", plaintext)
	}
	key := &PortaKey{Keyword: cfg.pickWord(nil)}
	if err := key.validate(); err != nil {
		return draft{}, err
	}
	size := cfg.layout(blocks.Porta)

	return draft{
		key:       key,
		encrypted: blocks.Letters(key.Apply(letters), size),
		format:    Format{BlockSize: size},
	}, nil
}
