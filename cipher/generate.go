// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlcipher/rng"
)

// Stream ids split one seeded source. Key draws, the puzzle ID and filler
// symbols each read their own stream, so a change in one never shifts another.
const (
	streamID uint64 = iota + 1
	streamKey
	streamFiller
)

// draft is one family generator's output before the puzzle is sealed.
type draft struct {
	key       KeyMaterial
	encrypted string
	format    Format
}

// Generate builds a puzzle of family f from plaintext. Cleaning (case,
// accents, non-letters) happens per family; callers pass raw text.
// Cryptarithm ignores plaintext.
//
// Errors: ErrUnknownFamily, ErrEmptyPlaintext, ErrPlaintextTooShort,
// ErrSearchExhausted, ErrInvalidKey (WithMatrix overrides).
//
// Generation is all-or-nothing: on error no puzzle is returned.
func Generate(f Family, plaintext string, opts ...Option) (*Puzzle, error) {
	info, ok := familyTable[f]
	if !ok {
		return nil, cipherErrorf("Generate", ErrUnknownFamily, "%q", f)
	}
	cfg := newConfig(opts...)
	ids := rng.Derive(cfg.rng, streamID)
	cfg.rng = rng.Derive(cfg.rng, streamKey)

	var (
		d   draft
		err error
	)
	switch info.kind {
	case kindSubstitution:
		d, err = generateSubstitution(cfg, info, plaintext)
	case kindHill:
		d, err = generateHill(cfg, info, plaintext)
	case kindNihilist:
		d, err = generateNihilist(cfg, plaintext)
	case kindCheckerboard:
		d, err = generateCheckerboard(cfg, plaintext)
	case kindPorta:
		d, err = generatePorta(cfg, plaintext)
	case kindColumnar:
		d, err = generateColumnar(cfg, plaintext)
	case kindCryptarithm:
		d, err = generateCryptarithm(cfg)
	case kindCaesar:
		d, err = generateCaesar(cfg, plaintext)
	case kindAtbash:
		d, err = generateAtbash(cfg, plaintext)
	case kindAffine:
		d, err = generateAffine(cfg, plaintext)
	case kindBaconian:
		d, err = generateBaconian(cfg, plaintext)
	case kindFractionatedMorse:
		d, err = generateFractionatedMorse(cfg, plaintext)
	}
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(ids)
	if err != nil {
		return nil, fmt.Errorf("Generate: id: %w", err)
	}
	cfg.logger.Debug("cipher: puzzle generated",
		slog.String("family", string(f)),
		slog.String("id", id.String()),
		slog.Int64("seed", cfg.seed),
		slog.Int("blockSize", d.format.BlockSize))

	return &Puzzle{
		ID:        id,
		Encrypted: d.encrypted,
		Key:       d.key,
		Format:    d.format,
		Seed:      cfg.seed,
	}, nil
}

// MustGenerate is Generate that panics on error. Intended for examples and
// fixed fixtures.
func MustGenerate(f Family, plaintext string, opts ...Option) *Puzzle {
	p, err := Generate(f, plaintext, opts...)
	if err != nil {
		panic(err)
	}

	return p
}
