// SPDX-License-Identifier: MIT
// Package: lvlcipher/cryptarithm
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Generate itself never panics and never fails.

package cryptarithm

import (
	"io"
	"log/slog"
)

// Deterministic defaults.
const (
	DefaultMaxAttempts = 200 // generation attempts before the fallback
	DefaultMinWordLen  = 2   // shortest usable word
	DefaultMaxWordLen  = 6   // longest usable word
	DefaultDigitGroups = 3   // extra words shown as digits
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	maxAttempts int
	minLen      int
	maxLen      int
	digitGroups int
	ops         []Operator
	logger      *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		maxAttempts: DefaultMaxAttempts,
		minLen:      DefaultMinWordLen,
		maxLen:      DefaultMaxWordLen,
		digitGroups: DefaultDigitGroups,
		ops:         []Operator{Add},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxAttempts bounds the search. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("cryptarithm: WithMaxAttempts(n<1)")
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithWordLength restricts word lengths to [min, max]. Panics unless 1 <= min <= max.
func WithWordLength(min, max int) Option {
	if min < 1 || max < min {
		panic("cryptarithm: WithWordLength(bad range)")
	}
	return func(c *config) { c.minLen, c.maxLen = min, max }
}

// WithDigitGroups sets how many extra bank words are shown as digits. Panics if n < 0.
func WithDigitGroups(n int) Option {
	if n < 0 {
		panic("cryptarithm: WithDigitGroups(n<0)")
	}
	return func(c *config) { c.digitGroups = n }
}

// WithOperators sets the operators an attempt may draw from. Panics when ops
// is empty or holds anything but Add and Subtract.
func WithOperators(ops ...Operator) Option {
	if len(ops) == 0 {
		panic("cryptarithm: WithOperators()")
	}
	for _, op := range ops {
		if !op.Valid() {
			panic("cryptarithm: WithOperators(" + string(op) + ")")
		}
	}
	own := append([]Operator(nil), ops...)
	return func(c *config) { c.ops = own }
}

// WithLogger routes attempt and fallback diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("cryptarithm: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
