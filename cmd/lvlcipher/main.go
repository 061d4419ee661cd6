// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher
//
// lvlcipher is the command-line front end of the cipher package: it generates
// puzzles, decrypts stored puzzles and solves alphametic sums and differences.
//
// Usage:
//
//	lvlcipher generate "K2 Aristocrat" "Meet me at the old oak tree"
//	lvlcipher generate hill-2x2 --seed 7 -o json "Attack at dawn" > p.json
//	lvlcipher decrypt p.json
//	lvlcipher solve "SEND + MORE = MONEY"
//	lvlcipher families
//
// Settings resolve flag > LVLCIPHER_* environment > $HOME/.lvlcipher.yaml.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
