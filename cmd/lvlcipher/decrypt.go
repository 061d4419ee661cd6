// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newDecryptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt [FILE]",
		Short: "Recover the plaintext of a stored puzzle",
		Long: `Decrypt reads a puzzle written by 'generate -o json' or '-o yaml' from
FILE (or stdin) and prints the cleaned plaintext recovered with its key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			raw, err := io.ReadAll(r)
			if err != nil {
				return err
			}

			p, err := parsePuzzle(raw)
			if err != nil {
				return err
			}
			plaintext, err := p.Decrypt()
			if err != nil {
				return err
			}
			a.logger.Info("puzzle decrypted",
				slog.String("family", p.Family().String()),
				slog.String("id", p.ID.String()))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return err
		},
	}
}
