// SPDX-License-Identifier: MIT
// Package: lvlcipher/cipher
//
// errors.go — sentinel errors for the cipher package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with cipherErrorf, which keeps the sentinel in the chain.
//   • Generators never panic; option constructors do, on meaningless values.

package cipher

import (
	"errors"
	"fmt"
)

// ErrEmptyPlaintext indicates the plaintext has no letters left after cleaning.
var ErrEmptyPlaintext = errors.New("cipher: plaintext has no letters")

// ErrPlaintextTooShort indicates the family needs more letters than were given.
var ErrPlaintextTooShort = errors.New("cipher: plaintext too short")

// ErrSearchExhausted indicates a bounded rejection-sampling loop ran out of
// attempts (matrix invertibility, derangement shift).
var ErrSearchExhausted = errors.New("cipher: search exhausted")

// ErrInvalidKey indicates malformed key material: a singular matrix, a
// non-bijective alphabet pair, a repeated label letter, and so on.
var ErrInvalidKey = errors.New("cipher: invalid key material")

// ErrUnknownFamily indicates a family name outside Families().
var ErrUnknownFamily = errors.New("cipher: unknown family")

// ErrMalformedCiphertext indicates ciphertext that the key cannot decode.
var ErrMalformedCiphertext = errors.New("cipher: malformed ciphertext")

// cipherErrorf returns "<method>: <message>: <sentinel>" with sentinel wrapped.
func cipherErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
