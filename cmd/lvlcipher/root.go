// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlcipher/cipher"
)

// Build metadata, set with -ldflags "-X main.Version=...".
var (
	Version   = "dev"
	GitCommit = "not set"
)

const (
	envPrefix  = "LVLCIPHER"
	configName = ".lvlcipher"
)

// Settings shared by every command. Each one is a persistent flag bound into
// viper, so it may also come from the environment or the config file.
const (
	keySeed     = "seed"
	keyLogLevel = "log-level"
	keyFormat   = "format"
	keyWordBank = "wordbank"
	keyWords    = "words" // config-file only: inline word list
)

// app carries the per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
	now     func() time.Time
}

// newRootCmd builds the command tree. Every call returns an independent tree
// with its own viper instance.
func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}

	root := &cobra.Command{
		Use:   "lvlcipher",
		Short: "Generate and solve classical cipher puzzles",
		Long: `lvlcipher builds classical cipher puzzles (keyed substitution, Hill,
Nihilist, checkerboard, Porta, columnar transposition, cryptarithms and
more) from plaintext, and recovers the plaintext from a stored puzzle.`,
		Version:           fmt.Sprintf("%s (%s)", Version, GitCommit),
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.initConfig(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.lvlcipher.yaml)")
	pf.Int64(keySeed, 0, "random seed; 0 or unset draws one from the clock")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	pf.StringP(keyFormat, "o", "", "output format: text, json or yaml (default text on a terminal, json otherwise)")
	pf.String(keyWordBank, "", "word file (YAML list or whitespace separated) replacing the built-in bank")
	for _, name := range []string{keySeed, keyLogLevel, keyFormat, keyWordBank} {
		cobra.CheckErr(a.v.BindPFlag(name, pf.Lookup(name)))
	}

	root.AddCommand(
		newGenerateCmd(a),
		newDecryptCmd(a),
		newSolveCmd(a),
		newFamiliesCmd(a),
	)

	return root
}

// initConfig reads in the config file and ENV variables if set, then builds
// the stderr logger.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(configName)
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfgErr := a.v.ReadInConfig()
	if cfgErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(cfgErr, &notFound) {
			return fmt.Errorf("config: %w", cfgErr)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("%s: %w", keyLogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if cfgErr == nil {
		a.logger.Debug("config loaded", slog.String("file", a.v.ConfigFileUsed()))
	}

	return nil
}

// seed returns the configured seed, or a clock-derived one when it is unset
// or zero. Either way the puzzle records it, so runs are reproducible.
func (a *app) seed() int64 {
	if s := a.v.GetInt64(keySeed); s != 0 {
		return s
	}

	return a.now().UnixNano()
}

// options turns the shared settings into generator options.
func (a *app) options() ([]cipher.Option, error) {
	seed := a.seed()
	a.logger.Debug("seed resolved", slog.Int64("seed", seed))
	opts := []cipher.Option{cipher.WithSeed(seed), cipher.WithLogger(a.logger)}

	words, err := a.words()
	if err != nil {
		return nil, err
	}
	if words != nil {
		if len(cipher.NewWordBank(words...)) == 0 {
			return nil, errors.New("word bank: no usable A-Z words")
		}
		opts = append(opts, cipher.WithWordBank(words...))
	}

	return opts, nil
}

// words returns the replacement word bank, or nil for the built-in one.
// A --wordbank file wins over an inline words list in the config file.
func (a *app) words() ([]string, error) {
	if path := a.v.GetString(keyWordBank); path != "" {
		return loadWordBank(path)
	}
	if a.v.IsSet(keyWords) {
		return a.v.GetStringSlice(keyWords), nil
	}

	return nil, nil
}
