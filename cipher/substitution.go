// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"log/slog"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/derange"
	"github.com/katalvlaran/lvlcipher/modular"
)

// patristocratBlock is the Patristocrat group width.
const patristocratBlock = 5

// SubstitutionKey is the key of every K1/K2/K3/Random substitution family.
//
// For keyed disciplines KShift is canonical: with kw the unrotated keyword
// alphabet and base the natural one,
//
//	K1: Plain = rotate(kw, Offset), Cipher = rotate(base, Offset+KShift)
//	K2: Plain = base,               Cipher = rotate(kw, KShift)
//	K3: Plain = rotate(kw, Offset), Cipher = rotate(kw, Offset+1), KShift = 1
//
// Random keying stores a full derangement of base and no keyword.
type SubstitutionKey struct {
	Keying         Keying `json:"keying"`
	Mode           Mode   `json:"mode"`
	Keyword        string `json:"keyword,omitempty"`
	Offset         int    `json:"offset"`
	KShift         int    `json:"kShift"`
	PlainAlphabet  string `json:"plainAlphabet"`
	CipherAlphabet string `json:"cipherAlphabet"`
}

// Family implements KeyMaterial.
func (k *SubstitutionKey) Family() Family {
	f, _ := substitutionFamily(k.Keying, k.Mode)
	return f
}

// Base is the natural alphabet of the key's mode.
func (k *SubstitutionKey) Base() alphabet.Alphabet {
	if k.Mode == Xenocrypt {
		return alphabet.Spanish()
	}

	return alphabet.Latin()
}

// Mapping builds the plain → cipher bijection.
func (k *SubstitutionKey) Mapping() (*alphabet.Mapping, error) {
	m, err := alphabet.NewMapping(alphabet.Alphabet(k.PlainAlphabet), alphabet.Alphabet(k.CipherAlphabet))
	if err != nil {
		return nil, cipherErrorf("SubstitutionKey.Mapping", ErrInvalidKey, "%v", err)
	}

	return m, nil
}

// Decrypt implements KeyMaterial. Non-letters are dropped from the result.
func (k *SubstitutionKey) Decrypt(ciphertext string) (string, error) {
	m, err := k.Mapping()
	if err != nil {
		return "", err
	}
	base := k.Base()

	return alphabet.Letters(base, m.Invert(alphabet.Normalize(base, ciphertext))), nil
}

// keyedAlphabets derives both sides from Keyword, Offset and KShift.
func (k *SubstitutionKey) keyedAlphabets() (plain, cipher alphabet.Alphabet) {
	base := k.Base()
	kw := alphabet.Keyword(base, k.Keyword)
	switch k.Keying {
	case KeyingK1:
		return alphabet.Rotate(kw, k.Offset), alphabet.Rotate(base, k.Offset+k.KShift)
	case KeyingK2:
		return base, alphabet.Rotate(kw, k.KShift)
	default: // K3
		return alphabet.Rotate(kw, k.Offset), alphabet.Rotate(kw, k.Offset+1)
	}
}

// validate checks the family, the bijection over the mode's alphabet, the
// absence of fixed points, and for keyed disciplines that the alphabets
// follow from the keyword.
func (k *SubstitutionKey) validate() error {
	const method = "SubstitutionKey"
	if _, ok := substitutionFamily(k.Keying, k.Mode); !ok {
		return cipherErrorf(method, ErrInvalidKey, "keying %q mode %q", k.Keying, k.Mode)
	}
	base := k.Base()
	plain := alphabet.Alphabet(k.PlainAlphabet)
	if len(plain) != len(base) || alphabet.Keyword(base, k.PlainAlphabet).String() != k.PlainAlphabet {
		return cipherErrorf(method, ErrInvalidKey, "plain alphabet %q is not a permutation of %q", k.PlainAlphabet, base)
	}
	m, err := k.Mapping()
	if err != nil {
		return err
	}
	if n := m.FixedPoints(); n != 0 {
		return cipherErrorf(method, ErrInvalidKey, "%d fixed points", n)
	}
	if k.Keying == KeyingRandom {
		return nil
	}
	if k.Keying == KeyingK3 && k.KShift != 1 {
		return cipherErrorf(method, ErrInvalidKey, "K3 shift %d", k.KShift)
	}
	p, c := k.keyedAlphabets()
	if p.String() != k.PlainAlphabet || c.String() != k.CipherAlphabet {
		return cipherErrorf(method, ErrInvalidKey, "alphabets do not follow from keyword %q", k.Keyword)
	}

	return nil
}

// newSubstitutionKey draws a key until a fixed-point-free pairing is found.
// Stage 1: keyword (keyed disciplines). Stage 2: random offset.
// Stage 3: derangement-safe shift. Stage 4: validation.
// Complexity: O(attempts · n²).
func newSubstitutionKey(cfg *config, keying Keying, mode Mode) (*SubstitutionKey, error) {
	const method = "Substitution"
	var attempt int
	for attempt = 1; attempt <= cfg.maxAttempts; attempt++ {
		k := &SubstitutionKey{Keying: keying, Mode: mode}
		base := k.Base()
		n := len(base)

		if keying == KeyingRandom {
			cipher, err := derange.Alphabet(cfg.rng, base)
			if err != nil {
				return nil, cipherErrorf(method, ErrInvalidKey, "%v", err)
			}
			k.PlainAlphabet, k.CipherAlphabet = base.String(), cipher.String()
		} else {
			k.Keyword = cfg.pickWord(nil)
			kw := alphabet.Keyword(base, k.Keyword)
			k.Offset = cfg.rng.Intn(n)
			switch keying {
			case KeyingK1:
				s, err := derange.RandomShift(cfg.rng, alphabet.Rotate(kw, k.Offset), base)
				if err != nil {
					cfg.logger.Debug("cipher: no derangement shift", slog.String("keyword", k.Keyword), slog.Int("attempt", attempt))
					continue
				}
				k.KShift = modular.Mod(s-k.Offset, n)
			case KeyingK2:
				s, err := derange.RandomShift(cfg.rng, base, alphabet.Rotate(kw, k.Offset))
				if err != nil {
					cfg.logger.Debug("cipher: no derangement shift", slog.String("keyword", k.Keyword), slog.Int("attempt", attempt))
					continue
				}
				k.KShift = modular.Mod(k.Offset+s, n)
			default:
				k.KShift = 1
			}
			plain, cipher := k.keyedAlphabets()
			k.PlainAlphabet, k.CipherAlphabet = plain.String(), cipher.String()
		}

		if err := k.validate(); err != nil {
			cfg.logger.Debug("cipher: substitution key rejected", slog.Int("attempt", attempt), slog.Any("err", err))
			continue
		}

		return k, nil
	}

	return nil, cipherErrorf(method, ErrSearchExhausted, "%s %s after %d attempts", keying, mode, cfg.maxAttempts)
}

// generateSubstitution encodes plaintext with a fresh key. Aristocrat and
// Xenocrypt keep every non-letter in place; Patristocrat keeps letters only
// and groups them by five.
func generateSubstitution(cfg *config, info familyInfo, plaintext string) (draft, error) {
	base := (&SubstitutionKey{Mode: info.mode}).Base()
	text := alphabet.Normalize(base, plaintext)
	letters := alphabet.Letters(base, text)
	if letters == "" {
		return draft{}, cipherErrorf("Substitution", ErrEmptyPlaintext, "%q", plaintext)
	}
	key, err := newSubstitutionKey(cfg, info.keying, info.mode)
	if err != nil {
		return draft{}, err
	}
	m, err := key.Mapping()
	if err != nil {
		return draft{}, err
	}

	if info.mode == Patristocrat {
		return draft{
			key:       key,
			encrypted: blocks.Letters(m.Apply(letters), patristocratBlock),
			format:    Format{BlockSize: patristocratBlock},
		}, nil
	}

	return draft{
		key:       key,
		encrypted: m.Apply(text),
		format:    Format{WordPreserving: true},
	}, nil
}
