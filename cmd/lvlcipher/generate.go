// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/katalvlaran/lvlcipher/cryptarithm"
)

// generateFlags are the generate-only knobs. Only flags the user changed
// become options, so the generator defaults apply otherwise.
type generateFlags struct {
	input         string
	keyword       string
	matrix        string
	blockSize     int
	maxAttempts   int
	cryptAttempts int
	digitGroups   int
	cryptOps      []string
	showKey       bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:     "generate FAMILY [PLAINTEXT...]",
		Aliases: []string{"gen"},
		Short:   "Generate a puzzle from plaintext",
		Long: `Generate enciphers PLAINTEXT (or the --input file, or stdin) with a
freshly keyed puzzle of FAMILY. Family names are case-insensitive and accept
'-' or '_' for spaces; see 'lvlcipher families'. Cryptarithm ignores the
plaintext.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := cipher.ParseFamily(args[0])
			if err != nil {
				return err
			}
			opts, err := a.options()
			if err != nil {
				return err
			}
			extra, err := gf.options(cmd)
			if err != nil {
				return err
			}
			opts = append(opts, extra...)

			var plaintext string
			if f != cipher.Cryptarithm {
				if plaintext, err = readPlaintext(cmd, args[1:], gf.input); err != nil {
					return err
				}
			}

			p, err := cipher.Generate(f, plaintext, opts...)
			if err != nil {
				return err
			}
			a.logger.Info("puzzle generated",
				slog.String("family", p.Family().String()),
				slog.String("id", p.ID.String()),
				slog.Int64("seed", p.Seed))

			format, err := a.outputFormat(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return writePuzzle(cmd.OutOrStdout(), format, p, gf.showKey)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&gf.input, "input", "i", "", "read plaintext from this file ('-' for stdin)")
	fl.StringVarP(&gf.keyword, "keyword", "k", "", "fixed keyword for K1/K2/K3, Nihilist and Porta")
	fl.StringVar(&gf.matrix, "matrix", "", "fixed Hill matrix, rows separated by ';' (e.g. \"3,3;2,5\")")
	fl.IntVarP(&gf.blockSize, "block-size", "b", 0, "block size for Nihilist, Checkerboard and Porta; 0 keeps word breaks")
	fl.IntVar(&gf.maxAttempts, "max-attempts", cipher.DefaultMaxAttempts, "cap on key rejection sampling")
	fl.IntVar(&gf.cryptAttempts, "cryptarithm-attempts", 0, "cap on the cryptarithm search")
	fl.IntVar(&gf.digitGroups, "digit-groups", 0, "bank words shown as digits under a cryptarithm")
	fl.StringSliceVar(&gf.cryptOps, "cryptarithm-ops", []string{"+"}, "cryptarithm operators to draw from: + and/or -")
	fl.BoolVar(&gf.showKey, "show-key", false, "print the key in text output")

	return cmd
}

// options validates the changed flags and maps them to generator options.
// The option constructors panic on bad values, so every check happens here.
func (gf *generateFlags) options(cmd *cobra.Command) ([]cipher.Option, error) {
	fl := cmd.Flags()
	var opts []cipher.Option

	if fl.Changed("keyword") {
		if alphabet.Letters(alphabet.Latin(), gf.keyword) == "" {
			return nil, fmt.Errorf("--keyword %q has no letters", gf.keyword)
		}
		opts = append(opts, cipher.WithKeyword(gf.keyword))
	}
	if fl.Changed("matrix") {
		rows, err := parseMatrix(gf.matrix)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cipher.WithMatrix(rows))
	}
	if fl.Changed("block-size") {
		if gf.blockSize < 0 {
			return nil, fmt.Errorf("--block-size %d is negative", gf.blockSize)
		}
		opts = append(opts, cipher.WithBlockSize(gf.blockSize))
	}
	if fl.Changed("max-attempts") {
		if gf.maxAttempts < 1 {
			return nil, fmt.Errorf("--max-attempts %d must be positive", gf.maxAttempts)
		}
		opts = append(opts, cipher.WithMaxAttempts(gf.maxAttempts))
	}
	if fl.Changed("cryptarithm-attempts") {
		if gf.cryptAttempts < 1 {
			return nil, fmt.Errorf("--cryptarithm-attempts %d must be positive", gf.cryptAttempts)
		}
		opts = append(opts, cipher.WithCryptarithmAttempts(gf.cryptAttempts))
	}
	if fl.Changed("digit-groups") {
		if gf.digitGroups < 0 {
			return nil, fmt.Errorf("--digit-groups %d is negative", gf.digitGroups)
		}
		opts = append(opts, cipher.WithDigitGroups(gf.digitGroups))
	}
	if fl.Changed("cryptarithm-ops") {
		ops := make([]cryptarithm.Operator, 0, len(gf.cryptOps))
		for _, s := range gf.cryptOps {
			op := cryptarithm.Operator(strings.TrimSpace(s))
			if !op.Valid() {
				return nil, fmt.Errorf("--cryptarithm-ops %q: want + or -", s)
			}
			ops = append(ops, op)
		}
		if len(ops) == 0 {
			return nil, fmt.Errorf("--cryptarithm-ops is empty")
		}
		opts = append(opts, cipher.WithCryptarithmOperators(ops...))
	}

	return opts, nil
}

// parseMatrix reads "a,b;c,d" into rows. Shape checks are left to the
// generator, which reports them as invalid keys.
func parseMatrix(s string) ([][]int, error) {
	var rows [][]int
	for _, line := range strings.Split(s, ";") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var row []int
		for _, cell := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("--matrix %q: %w", s, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("--matrix %q has no rows", s)
	}

	return rows, nil
}

// readPlaintext joins the positional words, or reads the --input file, or
// falls back to stdin.
func readPlaintext(cmd *cobra.Command, args []string, input string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var r io.Reader = cmd.InOrStdin()
	if input != "" && input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	} else if isTerminal(r) {
		return "", fmt.Errorf("no plaintext: pass it as arguments, --input or stdin")
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
