// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcipher/alphabet"
	"github.com/katalvlaran/lvlcipher/cryptarithm"
)

// solution is the document form of one solver answer.
type solution struct {
	Assignment cryptarithm.Assignment `json:"assignment"`
	Numeric    string                 `json:"numeric"`
}

func newSolveCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "solve EQUATION",
		Short: "Solve an alphametic such as \"SEND + MORE = MONEY\" or \"MONEY - MORE = SEND\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := parseEquation(strings.Join(args, " "))
			if err != nil {
				return err
			}
			sols, stats, err := cryptarithm.Solve(e, limit)
			if err != nil {
				return err
			}
			a.logger.Info("equation solved",
				slog.String("equation", e.String()),
				slog.Int("solutions", len(sols)),
				slog.Int("nodes", stats.Nodes))

			out := make([]solution, 0, len(sols))
			for _, s := range sols {
				num, err := cryptarithm.NumericExample(e, s)
				if err != nil {
					return err
				}
				out = append(out, solution{Assignment: s, Numeric: num})
			}

			w := cmd.OutOrStdout()
			format, err := a.outputFormat(w)
			if err != nil {
				return err
			}
			if format != formatText {
				return writeDoc(w, format, out)
			}
			if len(out) == 0 {
				_, err = fmt.Fprintf(w, "%s: no solution\n", e)
				return err
			}
			for _, s := range out {
				if _, err = fmt.Fprintf(w, "%s  %s\n", s.Numeric, s.Assignment); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many solutions; 0 lists all")

	return cmd
}

// parseEquation reads "W1 + W2 = W3" or "W1 - W2 = W3" in any case; accents
// are folded.
func parseEquation(s string) (cryptarithm.Equation, error) {
	lhs, sum, ok := strings.Cut(s, "=")
	if !ok {
		return cryptarithm.Equation{}, fmt.Errorf("equation %q: missing '='", s)
	}
	i := strings.IndexAny(lhs, "+-")
	if i < 0 {
		return cryptarithm.Equation{}, fmt.Errorf("equation %q: missing '+' or '-'", s)
	}
	w1, w2 := lhs[:i], lhs[i+1:]

	latin := alphabet.Latin()
	word := func(w string) string { return alphabet.Letters(latin, w) }
	e := cryptarithm.Equation{Addend1: word(w1), Addend2: word(w2), Sum: word(sum)}
	if lhs[i] == '-' {
		e.Op = cryptarithm.Subtract
	}
	if err := e.Validate(); err != nil {
		return cryptarithm.Equation{}, err
	}

	return e, nil
}
