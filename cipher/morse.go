// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"slices"
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/blocks"
)

// Fractionated Morse separators and layout.
const (
	morseSep       = "x" // between letters; doubled between words
	morseWordSep   = morseSep + morseSep
	morseBlockSize = 5
)

// morseCodes is International Morse for A–Z.
var morseCodes = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",
}

// morseLetters inverts morseCodes.
var morseLetters = func() map[string]rune {
	out := make(map[string]rune, len(morseCodes))
	for r, code := range morseCodes {
		out[code] = r
	}
	return out
}()

// morseTriplets lists the 26 usable triplets over '.', '-', 'x' with the
// first symbol varying slowest; "xxx" never occurs and is left out.
var morseTriplets = func() []string {
	const symbols = ".-x"
	out := make([]string, 0, 26)
	for _, a := range symbols {
		for _, b := range symbols {
			for _, c := range symbols {
				if len(out) < 26 {
					out = append(out, string([]rune{a, b, c}))
				}
			}
		}
	}
	return out
}()

// MorseTriplets returns the triplet table in order; the i-th triplet is
// written as the i-th letter of a key's Alphabet.
func MorseTriplets() []string {
	out := make([]string, len(morseTriplets))
	copy(out, morseTriplets)

	return out
}

// FractionatedMorseKey enciphers Morse triplets with a keyword alphabet.
type FractionatedMorseKey struct {
	Keyword  string `json:"keyword"`
	Alphabet string `json:"alphabet"` // keyword alphabet, one letter per triplet
}

// NewFractionatedMorseKey builds the keyword alphabet for keyword.
func NewFractionatedMorseKey(keyword string) (*FractionatedMorseKey, error) {
	k := &FractionatedMorseKey{
		Keyword:  keyword,
		Alphabet: alphabet.Keyword(alphabet.Latin(), keyword).String(),
	}
	if err := k.validate(); err != nil {
		return nil, err
	}

	return k, nil
}

// Family implements KeyMaterial.
func (k *FractionatedMorseKey) Family() Family { return FractionatedMorse }

func (k *FractionatedMorseKey) validate() error {
	if alphabet.Letters(alphabet.Latin(), k.Keyword) == "" {
		return cipherErrorf("FractionatedMorseKey", ErrInvalidKey, "keyword %q has no letters", k.Keyword)
	}
	if want := alphabet.Keyword(alphabet.Latin(), k.Keyword).String(); k.Alphabet != want {
		return cipherErrorf("FractionatedMorseKey", ErrInvalidKey, "alphabet %q does not follow from keyword %q", k.Alphabet, k.Keyword)
	}

	return nil
}

// Morse spells plaintext in Morse with 'x' after each letter but the last of
// a word and "xx" between words, padded with 'x' to a multiple of three.
// Characters other than letters are dropped.
func Morse(plaintext string) string {
	latin := alphabet.Latin()
	var words []string
	for _, w := range strings.Fields(alphabet.Normalize(latin, plaintext)) {
		letters := alphabet.Letters(latin, w)
		if letters == "" {
			continue
		}
		codes := make([]string, 0, len(letters))
		for _, r := range letters {
			codes = append(codes, morseCodes[r])
		}
		words = append(words, strings.Join(codes, morseSep))
	}
	s := strings.Join(words, morseWordSep)
	if rem := len(s) % 3; rem != 0 {
		s += strings.Repeat(morseSep, 3-rem)
	}

	return s
}

// Encrypt returns the unblocked ciphertext letters of plaintext.
func (k *FractionatedMorseKey) Encrypt(plaintext string) (string, error) {
	if err := k.validate(); err != nil {
		return "", err
	}
	m := Morse(plaintext)
	if m == "" {
		return "", cipherErrorf("FractionatedMorseKey.Encrypt", ErrEmptyPlaintext, "%q", plaintext)
	}
	var b strings.Builder
	b.Grow(len(m) / 3)
	for i := 0; i < len(m); i += 3 {
		b.WriteByte(k.Alphabet[slices.Index(morseTriplets, m[i:i+3])])
	}

	return b.String(), nil
}

// Decrypt implements KeyMaterial. Word breaks are not restored.
func (k *FractionatedMorseKey) Decrypt(ciphertext string) (string, error) {
	const method = "FractionatedMorseKey.Decrypt"
	if err := k.validate(); err != nil {
		return "", err
	}
	letters := alphabet.Letters(alphabet.Latin(), ciphertext)
	if letters == "" {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "no letters")
	}

	var m strings.Builder
	for _, r := range letters {
		m.WriteString(morseTriplets[strings.IndexRune(k.Alphabet, r)])
	}
	var b strings.Builder
	for _, code := range strings.Split(strings.Trim(m.String(), morseSep), morseSep) {
		if code == "" {
			continue
		}
		r, ok := morseLetters[code]
		if !ok {
			return "", cipherErrorf(method, ErrMalformedCiphertext, "no letter for %q", code)
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", cipherErrorf(method, ErrMalformedCiphertext, "no Morse letters")
	}

	return b.String(), nil
}

// generateFractionatedMorse keys the triplet table with a bank word (or
// WithKeyword) and writes the ciphertext in blocks of five.
func generateFractionatedMorse(cfg *config, plaintext string) (draft, error) {
	if alphabet.Letters(alphabet.Latin(), plaintext) == "" {
		return draft{}, cipherErrorf("FractionatedMorse", ErrEmptyPlaintext, "%q", plaintext)
	}
	key, err := NewFractionatedMorseKey(cfg.pickWord(nil))
	if err != nil {
		return draft{}, err
	}
	enc, err := key.Encrypt(plaintext)
	if err != nil {
		return draft{}, err
	}

	return draft{key: key, encrypted: blocks.Letters(enc, morseBlockSize), format: Format{BlockSize: morseBlockSize}}, nil
}
