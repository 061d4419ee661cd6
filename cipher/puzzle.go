// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// KeyMaterial is the answer key of one puzzle. The concrete type is fixed per
// family: *SubstitutionKey, *HillKey, *NihilistKey, *CheckerboardKey,
// *PortaKey, *ColumnarKey, *CryptarithmKey, *CaesarKey, *AtbashKey,
// *AffineKey, *BaconianKey. The interface is sealed.
type KeyMaterial interface {
	// Family reports the family the key belongs to.
	Family() Family
	// Decrypt recovers the cleaned plaintext from ciphertext.
	Decrypt(ciphertext string) (string, error)

	validate() error
}

// Format records how the ciphertext was laid out.
type Format struct {
	// BlockSize is the number of tokens per block; 0 means ungrouped.
	BlockSize int `json:"blockSize"`
	// WordPreserving is set when the original word breaks were kept.
	WordPreserving bool `json:"wordPreserving"`
}

// Puzzle is one generated question. It is never mutated after Generate
// returns it.
type Puzzle struct {
	ID        uuid.UUID
	Encrypted string
	Key       KeyMaterial
	Format    Format
	Seed      int64 // resolved seed; 0 when WithRand supplied the source
}

// Family reports the puzzle's family, read from its key.
func (p *Puzzle) Family() Family {
	if p.Key == nil {
		return ""
	}

	return p.Key.Family()
}

// Decrypt recovers the cleaned plaintext with the puzzle's own key.
func (p *Puzzle) Decrypt() (string, error) {
	if p.Key == nil {
		return "", cipherErrorf("Puzzle.Decrypt", ErrInvalidKey, "no key")
	}

	return p.Key.Decrypt(p.Encrypted)
}

// puzzleJSON is the storage envelope; Family selects the Key type.
type puzzleJSON struct {
	ID        uuid.UUID       `json:"id"`
	Family    Family          `json:"family"`
	Encrypted string          `json:"encrypted"`
	Key       json.RawMessage `json:"key"`
	Format    Format          `json:"format"`
	Seed      int64           `json:"seed"`
}

// MarshalJSON writes the envelope {id, family, encrypted, key, format, seed}.
func (p *Puzzle) MarshalJSON() ([]byte, error) {
	if p.Key == nil {
		return nil, cipherErrorf("Puzzle.MarshalJSON", ErrInvalidKey, "no key")
	}
	key, err := json.Marshal(p.Key)
	if err != nil {
		return nil, fmt.Errorf("Puzzle.MarshalJSON: %w", err)
	}

	return json.Marshal(puzzleJSON{
		ID:        p.ID,
		Family:    p.Key.Family(),
		Encrypted: p.Encrypted,
		Key:       key,
		Format:    p.Format,
		Seed:      p.Seed,
	})
}

// UnmarshalJSON reads the envelope, decodes Key into the family's key type
// and validates it eagerly. A key that contradicts the family fails with
// ErrInvalidKey.
func (p *Puzzle) UnmarshalJSON(b []byte) error {
	var env puzzleJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("Puzzle.UnmarshalJSON: %w", err)
	}
	key, err := newKey(env.Family)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(env.Key, key); err != nil {
		return cipherErrorf("Puzzle.UnmarshalJSON", ErrInvalidKey, "%s key: %v", env.Family, err)
	}
	if err = key.validate(); err != nil {
		return err
	}
	if key.Family() != env.Family {
		return cipherErrorf("Puzzle.UnmarshalJSON", ErrInvalidKey,
			"key belongs to %q, envelope says %q", key.Family(), env.Family)
	}

	*p = Puzzle{
		ID:        env.ID,
		Encrypted: env.Encrypted,
		Key:       key,
		Format:    env.Format,
		Seed:      env.Seed,
	}

	return nil
}

// newKey returns an empty key of the type f uses.
func newKey(f Family) (KeyMaterial, error) {
	info, ok := familyTable[f]
	if !ok {
		return nil, cipherErrorf("newKey", ErrUnknownFamily, "%q", f)
	}
	switch info.kind {
	case kindSubstitution:
		return &SubstitutionKey{}, nil
	case kindHill:
		return &HillKey{}, nil
	case kindNihilist:
		return &NihilistKey{}, nil
	case kindCheckerboard:
		return &CheckerboardKey{}, nil
	case kindPorta:
		return &PortaKey{}, nil
	case kindColumnar:
		return &ColumnarKey{}, nil
	case kindCryptarithm:
		return &CryptarithmKey{}, nil
	case kindCaesar:
		return &CaesarKey{}, nil
	case kindAtbash:
		return &AtbashKey{}, nil
	case kindAffine:
		return &AffineKey{}, nil
	case kindBaconian:
		return &BaconianKey{}, nil
	case kindFractionatedMorse:
		return &FractionatedMorseKey{}, nil
	}

	return nil, cipherErrorf("newKey", ErrUnknownFamily, "%q", f)
}
