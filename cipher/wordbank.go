// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher

package cipher

import (
	"strings"

	"github.com/katalvlaran/lvlcipher/alphabet"
)

// WordBank is a deduplicated list of upper-case A–Z words. Treat it as
// read-only once built.
type WordBank []string

// defaultWords feeds keywords, checkerboard labels and cryptarithms.
var defaultWords = []string{
	// short words for cryptarithm addends
	"AN", "AT", "BE", "GO", "HE", "IN", "IS", "IT", "ME", "NO", "OF", "ON",
	"SO", "TO", "UP", "US", "WE",
	"ACE", "AGE", "AIR", "ANT", "ARE", "ART", "BAT", "BED", "BOX", "CAT",
	"DOG", "EAR", "EAT", "EGG", "END", "FAN", "FOX", "HAT", "ICE", "INK",
	"JAM", "KEY", "MAP", "NET", "OAK", "ONE", "OWL", "PEN", "RAT", "RED",
	"SEA", "SUN", "TEA", "TEN", "TOP", "TWO", "WAR", "ZOO",
	"BEAR", "BIRD", "CODE", "DEER", "DOOR", "EAST", "FIRE", "FOUR", "GAME",
	"GOLD", "HEAT", "KING", "LAMP", "LION", "MAIN", "MORE", "NEST", "NINE",
	"NOTE", "ONCE", "RAIN", "ROAD", "SEND", "SNOW", "STAR", "TIME", "TREE",
	"WIND", "WOLF", "YEAR",
	"AM", "AS", "BY", "DO", "HI", "IF", "MY", "OR", "OX",
	"ANY", "APE", "ARM", "BAG", "BEE", "BIG", "BUS", "CAN", "CAP", "COW",
	"CUP", "DAY", "DEN", "DIG", "DRY", "ELM", "FIG", "FIN", "FLY", "FUN",
	"GAS", "GEM", "GUM", "HEN", "HIT", "HOP", "HOT", "HUT", "JAR", "JET",
	"JOY", "KID", "LAP", "LEG", "LID", "LOG", "MAN", "MOP", "MUD", "NAP",
	"NUT", "OIL", "PAN", "PIG", "PIN", "POT", "RAY", "RUG", "SAD", "SAW",
	"SKY", "SPY", "TAN", "TOY", "VAN", "WEB", "WIG", "YES", "ZIP",
	"BAKE", "BELT", "BOAT", "CAKE", "COIN", "CORN", "DUST", "FISH", "FROG",
	"GIFT", "HAND", "HOME", "JUMP", "KITE", "LAKE", "LEAF", "MILK", "MOON",
	"NAME", "PARK", "RING", "ROSE", "SAND", "SHIP", "SOUP", "TENT", "TOWN",
	"WAVE", "WORD", "ZONE",
	// five distinct letters, usable as checkerboard labels
	"BRAVE", "CHAIR", "CLOUD", "DRINK", "EARTH", "FIELD", "FLAME", "GHOST",
	"GRAPE", "HOUSE", "JUMPY", "LEMON", "LIGHT", "MONEY", "NIGHT", "OCEAN",
	"PLANT", "QUERY", "RADIO", "SHORE", "SPICE", "STORM", "TABLE", "TIGER",
	"TRAIN", "WATER", "WORLD", "YOUTH", "ZEBRA",
	// longer keywords
	"BOTTLE", "CIPHER", "DRAGON", "FOREST", "GARDEN", "HIDDEN", "ISLAND",
	"JUNGLE", "KNIGHT", "LETTER", "MARKET", "NUMBER", "ORANGE", "PLANET",
	"SECRET", "SILVER", "SPRING", "SUMMER", "WINTER", "ANCIENT", "BALANCE",
	"CAPTAIN", "COMPASS", "DIAMOND", "FREEDOM", "HISTORY", "JOURNEY",
	"KINGDOM", "LIBRARY", "MYSTERY", "PICTURE", "QUARTZ", "RAINBOW",
	"SCIENCE", "THUNDER", "VOLCANO", "WHISPER", "ALPHABET", "COMPUTER",
	"ELEPHANT", "MOUNTAIN", "NOTEBOOK", "PUZZLING", "TREASURE",
}

// DefaultWordBank returns a fresh copy of the built-in bank.
func DefaultWordBank() WordBank {
	return NewWordBank(defaultWords...)
}

// NewWordBank normalizes words (upper case, accents folded, surrounding
// space trimmed), drops anything that is not purely A–Z, and dedups while
// keeping first-seen order.
func NewWordBank(words ...string) WordBank {
	latin := alphabet.Latin()
	seen := make(map[string]struct{}, len(words))
	out := make(WordBank, 0, len(words))
	for _, w := range words {
		w = alphabet.Normalize(latin, strings.TrimSpace(w))
		if w == "" || alphabet.Letters(latin, w) != w {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	return out
}

// Filter returns the words accepted by keep.
func (b WordBank) Filter(keep func(string) bool) WordBank {
	out := make(WordBank, 0, len(b))
	for _, w := range b {
		if keep(w) {
			out = append(out, w)
		}
	}

	return out
}

// distinctLetters reports whether w repeats no letter.
func distinctLetters(w string) bool {
	var seen [26]bool
	for _, r := range w {
		if r < 'A' || r > 'Z' || seen[r-'A'] {
			return false
		}
		seen[r-'A'] = true
	}

	return true
}
