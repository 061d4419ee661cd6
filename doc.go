// Package lvlcipher generates classical cipher puzzles: keyed substitution,
// Hill, Polybius-square ciphers, Porta, columnar transposition and
// cryptarithms, each with the key material needed to check or reverse it.
//
// 🚀 What is lvlcipher?
//
//	A deterministic, seedable puzzle engine that brings together:
//		• Modular arithmetic over Z/26: residues, inverses, units
//		• Alphabets: keyed, rotated, Spanish (with Ñ), Polybius squares
//		• Derangements: alphabet pairs with no self-mapped letter
//		• Substitution: K1/K2/K3/Random × Aristocrat/Patristocrat/Xenocrypt
//		• Hill 2×2 and 3×3 with invertible matrices mod 26
//		• Nihilist, Checkerboard, Porta, Complete Columnar
//		• Caesar, Atbash, Affine, Baconian, Fractionated Morse
//		• Cryptarithms: random alphametic sums and differences plus an exact solver
//
// ✨ Why choose lvlcipher?
//
//   - Reproducible – every puzzle records the seed that built it
//   - Self-checking – every key can decrypt its own ciphertext
//   - Portable – puzzles serialize to a family-tagged JSON envelope
//   - Small surface – one Generate call, functional options for the rest
//
// Under the hood, everything is organized under these subpackages:
//
//	modular/     — Mod, GCD, Inverse, Units over Z/m
//	rng/         — seed policy, derived streams, Shuffle/Perm/Pick
//	alphabet/    — Alphabet, Mapping, Square, text normalization
//	derange/     — fixed-point counting and shift search
//	matrix/      — dense matrices mod 26: Mul, Det, Adjugate, Inverse
//	blocks/      — block layouts and token grouping
//	cryptarithm/ — equations, the column solver and the generator
//	cipher/      — families, keys, Puzzle and Generate
//	cmd/lvlcipher — the command-line front end
//
// Quick example:
//
//	p, err := cipher.Generate(cipher.K2Aristocrat, "Meet me at the old oak tree", cipher.WithSeed(7))
//	plain, err := p.Decrypt() // "MEETMEATTHEOLDOAKTREE"
//
//	go get github.com/katalvlaran/lvlcipher/cipher
package lvlcipher
