// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless values.
//   • Later options override earlier ones.
//   • Determinism is explicit: WithSeed or WithRand.

package cipher

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/cryptarithm"
	"github.com/katalvlaran/lvlcipher/rng"
)

// Option customizes a Generate call.
type Option func(*config)

// WithSeed seeds a fresh deterministic source. Seed 0 means rng.DefaultSeed.
// The resolved seed is recorded on the puzzle.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = rng.Resolve(seed)
		c.rng = nil
	}
}

// WithRand draws from r. Panics on nil. The puzzle records Seed 0.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cipher: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seed = 0
	}
}

// WithWordBank replaces the word bank used for keywords, labels and
// cryptarithms. Panics when no usable word remains.
func WithWordBank(words ...string) Option {
	bank := NewWordBank(words...)
	if len(bank) == 0 {
		panic("cipher: WithWordBank(no usable words)")
	}
	return func(c *config) { c.words = bank }
}

// WithKeyword fixes the keyword of the keyword-driven families (K1/K2/K3,
// Nihilist square, Porta, Fractionated Morse). Panics when kw has no letters.
func WithKeyword(kw string) Option {
	clean := alphabet.Letters(alphabet.Latin(), kw)
	if clean == "" {
		panic("cipher: WithKeyword(no letters)")
	}
	return func(c *config) { c.keyword = clean }
}

// WithMatrix fixes the Hill matrix. It is validated at generation time and a
// singular or mis-sized matrix fails with ErrInvalidKey. Panics on empty rows.
func WithMatrix(rows [][]int) Option {
	if len(rows) == 0 {
		panic("cipher: WithMatrix(empty)")
	}
	cp := make([][]int, len(rows))
	for i, row := range rows {
		cp[i] = append([]int(nil), row...)
	}
	return func(c *config) { c.matrix = cp }
}

// WithBlockSize fixes the output block size of the grouped families
// (Nihilist, Checkerboard, Porta); 0 keeps word breaks. Panics if n < 0.
func WithBlockSize(n int) Option {
	if n < 0 {
		panic("cipher: WithBlockSize(n<0)")
	}
	return func(c *config) { c.blockSize = n }
}

// WithMaxAttempts caps rejection sampling. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("cipher: WithMaxAttempts(n<1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithCryptarithmAttempts caps the cryptarithm search. Panics if n < 1.
func WithCryptarithmAttempts(n int) Option {
	if n < 1 {
		panic("cipher: WithCryptarithmAttempts(n<1)")
	}
	return func(c *config) { c.cryptAttempts = n }
}

// WithCryptarithmOperators sets the operators a cryptarithm may use. Panics
// when ops is empty or holds anything but cryptarithm.Add and
// cryptarithm.Subtract.
func WithCryptarithmOperators(ops ...cryptarithm.Operator) Option {
	if len(ops) == 0 {
		panic("cipher: WithCryptarithmOperators()")
	}
	for _, op := range ops {
		if !op.Valid() {
			panic("cipher: WithCryptarithmOperators(" + string(op) + ")")
		}
	}
	own := append([]cryptarithm.Operator(nil), ops...)
	return func(c *config) { c.cryptOps = own }
}

// WithDigitGroups sets how many bank words a cryptarithm shows as digits.
// Panics if n < 0.
func WithDigitGroups(n int) Option {
	if n < 0 {
		panic("cipher: WithDigitGroups(n<0)")
	}
	return func(c *config) { c.digitGroups = n }
}

// WithLogger routes retry and fallback diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cipher: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
