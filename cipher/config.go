// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher
//
// config.go — resolved generation settings and deterministic defaults.
//
// Defaults:
//   • rng          = rng.FromSeed(rng.DefaultSeed)
//   • words        = DefaultWordBank()
//   • keyword      = "" (drawn from the word bank)
//   • matrix       = nil (sampled)
//   • blockSize    = drawn from the family's weight table
//   • maxAttempts  = DefaultMaxAttempts
//   • cryptarithm  = cryptarithm.DefaultMaxAttempts attempts, cryptarithm.DefaultDigitGroups groups, additions only
//   • logger       = discard

package cipher

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/lvlcipher/blocks"
	"github.com/katalvlaran/lvlcipher/cryptarithm"
	"github.com/katalvlaran/lvlcipher/rng"
)

// DefaultMaxAttempts caps every rejection-sampling loop.
const DefaultMaxAttempts = 1000

// drawBlockSize marks "no block size requested".
const drawBlockSize = -1

// config aggregates the knobs every generator reads.
type config struct {
	rng  *rand.Rand
	seed int64 // 0 when the caller supplied the *rand.Rand

	words   WordBank
	keyword string
	matrix  [][]int

	blockSize   int
	maxAttempts int

	cryptAttempts int
	digitGroups   int
	cryptOps      []cryptarithm.Operator

	logger *slog.Logger
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		seed:          rng.DefaultSeed,
		words:         DefaultWordBank(),
		blockSize:     drawBlockSize,
		maxAttempts:   DefaultMaxAttempts,
		cryptAttempts: cryptarithm.DefaultMaxAttempts,
		digitGroups:   cryptarithm.DefaultDigitGroups,
		cryptOps:      []cryptarithm.Operator{cryptarithm.Add},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rng.FromSeed(cfg.seed)
	}

	return cfg
}

// pickWord returns the keyword override, else a bank word accepted by keep
// (any word when keep is nil), else "".
func (c *config) pickWord(keep func(string) bool) string {
	if c.keyword != "" {
		return c.keyword
	}

	return c.drawWord(keep, "")
}

// drawWord draws a bank word accepted by keep and different from avoid.
func (c *config) drawWord(keep func(string) bool, avoid string) string {
	pool := make([]string, 0, len(c.words))
	for _, w := range c.words {
		if w != avoid && (keep == nil || keep(w)) {
			pool = append(pool, w)
		}
	}
	w, _ := rng.Pick(c.rng, pool)

	return w
}

// layout resolves the block size: the override, else a draw from t.
func (c *config) layout(t blocks.Table) int {
	if c.blockSize != drawBlockSize {
		return c.blockSize
	}

	return t.Pick(c.rng)
}
