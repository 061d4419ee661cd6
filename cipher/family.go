// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import "strings"

// Family names one cipher family. The set is closed; see Families.
type Family string

// Substitution families: keying × presentation.
const (
	K1Aristocrat       Family = "K1 Aristocrat"
	K2Aristocrat       Family = "K2 Aristocrat"
	K3Aristocrat       Family = "K3 Aristocrat"
	RandomAristocrat   Family = "Random Aristocrat"
	K1Patristocrat     Family = "K1 Patristocrat"
	K2Patristocrat     Family = "K2 Patristocrat"
	K3Patristocrat     Family = "K3 Patristocrat"
	RandomPatristocrat Family = "Random Patristocrat"
	K1Xenocrypt        Family = "K1 Xenocrypt"
	K2Xenocrypt        Family = "K2 Xenocrypt"
	K3Xenocrypt        Family = "K3 Xenocrypt"
	RandomXenocrypt    Family = "Random Xenocrypt"
)

// Other families.
const (
	Hill2x2           Family = "Hill 2x2"
	Hill3x3           Family = "Hill 3x3"
	Nihilist          Family = "Nihilist"
	Checkerboard      Family = "Checkerboard"
	Porta             Family = "Porta"
	CompleteColumnar  Family = "Complete Columnar"
	Cryptarithm       Family = "Cryptarithm"
	Caesar            Family = "Caesar"
	Atbash            Family = "Atbash"
	Affine            Family = "Affine"
	Baconian          Family = "Baconian"
	FractionatedMorse Family = "Fractionated Morse"
)

// Keying is the substitution keying discipline.
type Keying string

// Keyings.
const (
	KeyingK1     Keying = "K1"
	KeyingK2     Keying = "K2"
	KeyingK3     Keying = "K3"
	KeyingRandom Keying = "Random"
)

// Mode is the substitution presentation.
type Mode string

// Modes.
const (
	Aristocrat   Mode = "Aristocrat"   // word breaks kept
	Patristocrat Mode = "Patristocrat" // letters only, blocks of 5
	Xenocrypt    Mode = "Xenocrypt"    // Spanish alphabet, word breaks kept
)

type kind int

const (
	kindSubstitution kind = iota
	kindHill
	kindNihilist
	kindCheckerboard
	kindPorta
	kindColumnar
	kindCryptarithm
	kindCaesar
	kindAtbash
	kindAffine
	kindBaconian
	kindFractionatedMorse
)

// familyInfo is the static description of a family.
type familyInfo struct {
	kind   kind
	keying Keying // substitution only
	mode   Mode   // substitution only
	size   int    // Hill block size
}

var familyOrder = []Family{
	K1Aristocrat, K2Aristocrat, K3Aristocrat, RandomAristocrat,
	K1Patristocrat, K2Patristocrat, K3Patristocrat, RandomPatristocrat,
	K1Xenocrypt, K2Xenocrypt, K3Xenocrypt, RandomXenocrypt,
	Hill2x2, Hill3x3,
	Nihilist, Checkerboard, Porta, CompleteColumnar, Cryptarithm,
	Caesar, Atbash, Affine, Baconian, FractionatedMorse,
}

var familyTable = map[Family]familyInfo{
	K1Aristocrat:       {kind: kindSubstitution, keying: KeyingK1, mode: Aristocrat},
	K2Aristocrat:       {kind: kindSubstitution, keying: KeyingK2, mode: Aristocrat},
	K3Aristocrat:       {kind: kindSubstitution, keying: KeyingK3, mode: Aristocrat},
	RandomAristocrat:   {kind: kindSubstitution, keying: KeyingRandom, mode: Aristocrat},
	K1Patristocrat:     {kind: kindSubstitution, keying: KeyingK1, mode: Patristocrat},
	K2Patristocrat:     {kind: kindSubstitution, keying: KeyingK2, mode: Patristocrat},
	K3Patristocrat:     {kind: kindSubstitution, keying: KeyingK3, mode: Patristocrat},
	RandomPatristocrat: {kind: kindSubstitution, keying: KeyingRandom, mode: Patristocrat},
	K1Xenocrypt:        {kind: kindSubstitution, keying: KeyingK1, mode: Xenocrypt},
	K2Xenocrypt:        {kind: kindSubstitution, keying: KeyingK2, mode: Xenocrypt},
	K3Xenocrypt:        {kind: kindSubstitution, keying: KeyingK3, mode: Xenocrypt},
	RandomXenocrypt:    {kind: kindSubstitution, keying: KeyingRandom, mode: Xenocrypt},
	Hill2x2:            {kind: kindHill, size: 2},
	Hill3x3:            {kind: kindHill, size: 3},
	Nihilist:           {kind: kindNihilist},
	Checkerboard:       {kind: kindCheckerboard},
	Porta:              {kind: kindPorta},
	CompleteColumnar:   {kind: kindColumnar},
	Cryptarithm:        {kind: kindCryptarithm},
	Caesar:             {kind: kindCaesar},
	Atbash:             {kind: kindAtbash},
	Affine:             {kind: kindAffine},
	Baconian:           {kind: kindBaconian},
	FractionatedMorse:  {kind: kindFractionatedMorse},
}

// Families lists every family in presentation order.
func Families() []Family {
	out := make([]Family, len(familyOrder))
	copy(out, familyOrder)

	return out
}

// ParseFamily matches s against the family names, ignoring case and treating
// '-' and '_' as spaces ("k2-aristocrat" → K2Aristocrat).
func ParseFamily(s string) (Family, error) {
	norm := strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(s)), " ")
	for _, f := range familyOrder {
		if strings.EqualFold(string(f), norm) {
			return f, nil
		}
	}

	return "", cipherErrorf("ParseFamily", ErrUnknownFamily, "%q", s)
}

// Valid reports whether f is one of Families().
func (f Family) Valid() bool {
	_, ok := familyTable[f]
	return ok
}

// String returns the display name.
func (f Family) String() string { return string(f) }

// substitutionFamily finds the family for a keying and mode.
func substitutionFamily(k Keying, m Mode) (Family, bool) {
	for _, f := range familyOrder {
		info := familyTable[f]
		if info.kind == kindSubstitution && info.keying == k && info.mode == m {
			return f, true
		}
	}

	return "", false
}

// hillFamily maps a block size to its family.
func hillFamily(size int) (Family, bool) {
	switch size {
	case 2:
		return Hill2x2, true
	case 3:
		return Hill3x3, true
	}

	return "", false
}
