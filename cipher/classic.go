// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/modular"
	"github.com/katalvlaran/lvlcipher/rng"
)

// mapLetters applies f to the index of every A–Z rune of s and passes the
// rest through.
func mapLetters(s string, f func(int) int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if i, ok := modular.Index(r); ok {
			b.WriteRune(modular.Letter(f(i)))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// encodeLatin normalizes plaintext, rejects it when no letter is left, and
// maps its letters with f keeping word breaks.
func encodeLatin(method, plaintext string, f func(int) int) (string, error) {
	text := alphabet.Normalize(alphabet.Latin(), plaintext)
	if alphabet.Letters(alphabet.Latin(), text) == "" {
		return "", cipherErrorf(method, ErrEmptyPlaintext, "%q", plaintext)
	}

	return mapLetters(text, f), nil
}

// CaesarKey shifts every letter forward by Shift (1–25).
type CaesarKey struct {
	Shift int `json:"shift"`
}

// Family implements KeyMaterial.
func (k *CaesarKey) Family() Family { return Caesar }

func (k *CaesarKey) validate() error {
	if k.Shift < 1 || k.Shift >= modular.Modulus {
		return cipherErrorf("CaesarKey", ErrInvalidKey, "shift %d", k.Shift)
	}

	return nil
}

// Decrypt implements KeyMaterial.
func (k *CaesarKey) Decrypt(ciphertext string) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}
	return alphabet.Letters(alphabet.Latin(), mapLetters(ciphertext, func(i int) int { return i - k.Shift })), nil
}

func generateCaesar(cfg *config, plaintext string) (draft, error) {
	key := &CaesarKey{Shift: rng.IntRange(cfg.rng, 1, modular.Modulus-1)}
	enc, err := encodeLatin("Caesar", plaintext, func(i int) int { return i + key.Shift })
	if err != nil {
		return draft{}, err
	}

	return draft{key: key, encrypted: enc, format: Format{WordPreserving: true}}, nil
}

// AtbashKey reverses the alphabet (A↔Z, B↔Y, ...). It has no parameters.
type AtbashKey struct{}

// Family implements KeyMaterial.
func (k *AtbashKey) Family() Family { return Atbash }

func (k *AtbashKey) validate() error { return nil }

func atbash(i int) int { return modular.Modulus - 1 - i }

// Decrypt implements KeyMaterial.
func (k *AtbashKey) Decrypt(ciphertext string) (string, error) {
	return alphabet.Letters(alphabet.Latin(), mapLetters(ciphertext, atbash)), nil
}

func generateAtbash(_ *config, plaintext string) (draft, error) {
	enc, err := encodeLatin("Atbash", plaintext, atbash)
	if err != nil {
		return draft{}, err
	}

	return draft{key: &AtbashKey{}, encrypted: enc, format: Format{WordPreserving: true}}, nil
}

// AffineKey maps x to A·x + B (mod 26); A must be coprime with 26.
type AffineKey struct {
	A int `json:"a"`
	B int `json:"b"`
}

// Family implements KeyMaterial.
func (k *AffineKey) Family() Family { return Affine }

func (k *AffineKey) validate() error {
	if !modular.Coprime(k.A, modular.Modulus) || k.B < 0 || k.B >= modular.Modulus {
		return cipherErrorf("AffineKey", ErrInvalidKey, "a=%d b=%d", k.A, k.B)
	}

	return nil
}

// Decrypt implements KeyMaterial: x = A⁻¹·(y − B).
func (k *AffineKey) Decrypt(ciphertext string) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}
	inv, _ := modular.Inverse(k.A, modular.Modulus)

	return alphabet.Letters(alphabet.Latin(), mapLetters(ciphertext, func(i int) int { return inv * (i - k.B) })), nil
}

// generateAffine draws A from the units of Z/26 and B from [0,26), skipping
// the identity map.
func generateAffine(cfg *config, plaintext string) (draft, error) {
	units := modular.Units(modular.Modulus)
	a, _ := rng.Pick(cfg.rng, units)
	key := &AffineKey{A: a}
	if a == 1 {
		// B = 0 would leave the text unchanged.
		key.B = rng.IntRange(cfg.rng, 1, modular.Modulus-1)
	} else {
		key.B = cfg.rng.Intn(modular.Modulus)
	}
	enc, err := encodeLatin("Affine", plaintext, func(i int) int { return key.A*i + key.B })
	if err != nil {
		return draft{}, err
	}

	return draft{key: key, encrypted: enc, format: Format{WordPreserving: true}}, nil
}

// Baconian constants.
const (
	baconianLetters = "ABCDEFGHIKLMNOPQRSTUWXYZ" // I=J, U=V
	baconianBits    = 5
)

// BaconianKey renders each 5-bit letter code with symbols drawn from Zero
// (bit A) and One (bit B). The two sets are disjoint.
type BaconianKey struct {
	Scheme string `json:"scheme"`
	Zero   string `json:"zero"`
	One    string `json:"one"`
}

// baconianSchemes are the symbol sets a puzzle may use.
var baconianSchemes = []BaconianKey{
	{Scheme: "A/B", Zero: "A", One: "B"},
	{Scheme: "Vowels/Consonants", Zero: "AEIOU", One: "BCDFGHJKLMNPQRSTVWXYZ"},
	{Scheme: "Odd/Even", Zero: "ACEGIKMOQSUWY", One: "BDFHJLNPRTVXZ"},
	{Scheme: "Dot/Dash", Zero: ".", One: "-"},
}

// Family implements KeyMaterial.
func (k *BaconianKey) Family() Family { return Baconian }

func (k *BaconianKey) validate() error {
	if k.Zero == "" || k.One == "" || strings.ContainsAny(k.Zero, k.One) ||
		strings.IndexFunc(k.Zero+k.One, unicode.IsSpace) >= 0 {
		return cipherErrorf("BaconianKey", ErrInvalidKey, "symbol sets %q/%q", k.Zero, k.One)
	}

	return nil
}

// baconianCode returns the 5-bit code of r (J as I, V as U).
func baconianCode(r rune) (int, bool) {
	switch r {
	case 'J':
		r = 'I'
	case 'V':
		r = 'U'
	}
	i := strings.IndexRune(baconianLetters, r)

	return i, i >= 0
}

// encode renders the letters of plaintext, one 5-symbol group per letter,
// drawing each symbol from r.
func (k *BaconianKey) encode(r *rand.Rand, plaintext string) string {
	zero, one := []rune(k.Zero), []rune(k.One)
	letters := alphabet.Letters(alphabet.Latin(), plaintext)
	groups := make([]string, 0, len(letters))
	for _, l := range letters {
		code, _ := baconianCode(l)
		g := make([]rune, baconianBits)
		for b := 0; b < baconianBits; b++ {
			set := zero
			if code&(1<<(baconianBits-1-b)) != 0 {
				set = one
			}
			g[b], _ = rng.Pick(r, set)
		}
		groups = append(groups, string(g))
	}

	return strings.Join(groups, blocks.TokenSep)
}

// Decrypt implements KeyMaterial. J decodes as I and V as U.
func (k *BaconianKey) Decrypt(ciphertext string) (string, error) {
	const method = "BaconianKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	var bits []int
	for _, r := range ciphertext {
		switch {
		case unicode.IsSpace(r):
		case strings.ContainsRune(k.Zero, r):
			bits = append(bits, 0)
		case strings.ContainsRune(k.One, r):
			bits = append(bits, 1)
		default:
			return "", cipherErrorf(method, ErrMalformedCiphertext, "symbol %q", r)
		}
	}
	if len(bits) == 0 || len(bits)%baconianBits != 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "%d symbols", len(bits))
	}

	var b strings.Builder
	for i := 0; i < len(bits); i += baconianBits {
		var code int
		for _, bit := range bits[i : i+baconianBits] {
			code = code<<1 | bit
		}
		if code >= len(baconianLetters) {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "code %d", code)
		}
		b.WriteByte(baconianLetters[code])
	}

	return b.String(), nil
}

// generateBaconian picks a symbol scheme at random.
func generateBaconian(cfg *config, plaintext string) (draft, error) {
	if alphabet.Letters(alphabet.Latin(), plaintext) == "" {
		return draft{}, cipherErrorf("Baconian", ErrEmptyPlaintext, "%q", plaintext)
	}
	scheme, _ := rng.Pick(cfg.rng, baconianSchemes)
	key := &scheme

	return draft{key: key, encrypted: key.encode(rng.Derive(cfg.rng, streamFiller), plaintext), format: Format{BlockSize: baconianBits}}, nil
}
