// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlcipher/cipher"
)

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the supported puzzle families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			format, err := a.outputFormat(w)
			if err != nil {
				return err
			}
			fams := cipher.Families()
			if format != formatText {
				return writeDoc(w, format, fams)
			}
			for _, f := range fams {
				if _, err = fmt.Fprintln(w, f); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
