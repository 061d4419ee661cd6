// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcipher/cipher"
	"github.com/katalvlaran/lvlcipher/cryptarithm"
)

const quote = "Meet me at the old oak tree at noon"

// run executes a fresh command tree. Unless args name a --config, an empty
// one is supplied so a config in the real home directory cannot leak in.
func run(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if !slices.Contains(args, "--config") {
		args = append([]string{"--config", writeFile(t, "config.yaml", "")}, args...)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestGenerateHillText(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "generate", "hill-2x2", "--seed", "5", "--matrix", "3,3; 2,5", "-o", "text", "--show-key", "Hello")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Hill 2x2  seed=5  id="), lines[0])
	assert.Equal(t, "LIOZHN", lines[1])
	assert.Contains(t, lines[2], `"padding":1`)
}

func TestGenerateReadsStdinAndFile(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "abc xyz", "generate", "atbash", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "\nZYX CBA\n")

	path := writeFile(t, "plain.txt", "abc xyz\n")
	out, _, err = run(t, "", "generate", "atbash", "-o", "text", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\nZYX CBA\n")
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	t.Parallel()
	args := []string{"generate", "K2 Aristocrat", "--seed", "42", "-o", "json", quote}
	a, _, err := run(t, "", args...)
	require.NoError(t, err)
	b, _, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(a), &doc))
	assert.Equal(t, "K2 Aristocrat", doc["family"])
	assert.EqualValues(t, 42, doc["seed"])
}

func TestGenerateDecryptRoundTrip(t *testing.T) {
	t.Parallel()
	// No J in the quote, so the Polybius families decode it exactly.
	want := "MEETMEATTHEOLDOAKTREEATNOON\n"
	for _, format := range []string{"json", "yaml"} {
		for _, fam := range []string{"K1 Patristocrat", "Hill 3x3", "Nihilist", "Checkerboard", "Porta", "Complete Columnar", "Affine", "Fractionated Morse"} {
			out, _, err := run(t, "", "generate", fam, "--seed", "9", "-o", format, quote)
			require.NoError(t, err, "%s/%s", fam, format)

			got, _, err := run(t, out, "decrypt")
			require.NoError(t, err, "%s/%s:\n%s", fam, format, out)
			assert.Equal(t, want, got, "%s/%s", fam, format)
		}
	}
}

func TestGenerateYAMLKeepsLargeSeed(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "generate", "caesar", "--seed", "1700000000123456789", "-o", "yaml", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 1700000000123456789")
	assert.Contains(t, out, "family: Caesar")

	path := writeFile(t, "p.yaml", out)
	got, _, err := run(t, "", "decrypt", path)
	require.NoError(t, err)
	assert.Equal(t, "HI\n", got)
}

func TestGenerateCryptarithmIgnoresPlaintext(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "generate", "cryptarithm", "--seed", "3", "-o", "json", "--digit-groups", "1")
	require.NoError(t, err)

	var p cipher.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	key, ok := p.Key.(*cipher.CryptarithmKey)
	require.True(t, ok)
	assert.Equal(t, key.Equation.String(), p.Encrypted)
}

func TestGenerateCryptarithmSubtraction(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "generate", "cryptarithm", "--seed", "3", "-o", "json", "--cryptarithm-ops=-")
	require.NoError(t, err)

	var p cipher.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	key := p.Key.(*cipher.CryptarithmKey)
	assert.Equal(t, cryptarithm.Subtract, key.Equation.Op)
	assert.Contains(t, p.Encrypted, " - ")

	got, _, err := run(t, out, "decrypt")
	require.NoError(t, err)
	assert.Equal(t, key.NumericExample+"\n", got)
}

func TestGenerateWordBankFile(t *testing.T) {
	t.Parallel()
	for name, body := range map[string]string{
		"list.yaml":  "- zebra\n",
		"words.yaml": "words: [zebra]\n",
		"plain.txt":  "  zebra\n\n",
	} {
		bank := writeFile(t, name, body)
		out, _, err := run(t, "", "generate", "porta", "--seed", "1", "-o", "json", "--wordbank", bank, quote)
		require.NoError(t, err, name)

		var p cipher.Puzzle
		require.NoError(t, json.Unmarshal([]byte(out), &p), name)
		assert.Equal(t, "ZEBRA", p.Key.(*cipher.PortaKey).Keyword, name)
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "lvlcipher.yaml", "seed: 7\nformat: json\nwords:\n  - tiger\n")
	out, _, err := run(t, "", "--config", cfg, "generate", "porta", quote)
	require.NoError(t, err)

	var p cipher.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.EqualValues(t, 7, p.Seed)
	assert.Equal(t, "TIGER", p.Key.(*cipher.PortaKey).Keyword)

	// Flags beat the file.
	out, _, err = run(t, "", "--config", cfg, "generate", "porta", "--seed", "8", "-o", "text", quote)
	require.NoError(t, err)
	assert.Contains(t, out, "seed=8")
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("LVLCIPHER_SEED", "11")
	t.Setenv("LVLCIPHER_FORMAT", "json")
	out, _, err := run(t, "", "generate", "caesar", "hi")
	require.NoError(t, err)

	var p cipher.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.EqualValues(t, 11, p.Seed)
}

func TestUnsetSeedUsesClock(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "generate", "caesar", "-o", "json", "hi")
	require.NoError(t, err)

	var p cipher.Puzzle
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.NotZero(t, p.Seed)
	assert.NotEqual(t, int64(1), p.Seed)
}

func TestDebugLogging(t *testing.T) {
	t.Parallel()
	_, stderr, err := run(t, "", "generate", "caesar", "--seed", "2", "--log-level", "debug", "-o", "json", "hi")
	require.NoError(t, err)
	assert.Contains(t, stderr, "cipher: puzzle generated")
	assert.Contains(t, stderr, "seed=2")

	_, stderr, err = run(t, "", "generate", "caesar", "--seed", "2", "-o", "json", "hi")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()
	cases := map[string][]string{
		"unknown family":   {"generate", "vigenere", "hi"},
		"no letters":       {"generate", "caesar", "-o", "json", "1234"},
		"bad keyword":      {"generate", "porta", "--keyword", "123", "hi"},
		"bad matrix":       {"generate", "hill-2x2", "--matrix", "1,x;2,3", "hi"},
		"singular matrix":  {"generate", "hill-2x2", "--matrix", "2,4;1,2", "hi"},
		"negative block":   {"generate", "porta", "--block-size", "-1", "hi"},
		"zero attempts":    {"generate", "porta", "--max-attempts", "0", "hi"},
		"bad format":       {"generate", "porta", "-o", "xml", "hi"},
		"bad log level":    {"generate", "porta", "--log-level", "loud", "hi"},
		"missing family":   {"generate"},
		"missing wordbank": {"generate", "porta", "--wordbank", "/nonexistent/words.txt", "hi"},
		"short columnar":   {"generate", "complete-columnar", "-o", "json", "ab"},
		"bad operator":     {"generate", "cryptarithm", "--cryptarithm-ops=*"},
	}
	for name, args := range cases {
		_, _, err := run(t, "", args...)
		assert.Error(t, err, name)
	}

	_, _, err := run(t, "", "generate", "caesar", "-o", "json", "1234")
	assert.ErrorIs(t, err, cipher.ErrEmptyPlaintext)
	_, _, err = run(t, "", "generate", "vigenere", "hi")
	assert.ErrorIs(t, err, cipher.ErrUnknownFamily)
	_, _, err = run(t, "", "generate", "hill-2x2", "--matrix", "2,4;1,2", "hi")
	assert.ErrorIs(t, err, cipher.ErrInvalidKey)
}

func TestDecryptErrors(t *testing.T) {
	t.Parallel()
	_, _, err := run(t, "  \n", "decrypt")
	assert.ErrorIs(t, err, errEmptyInput)

	_, _, err = run(t, `{"family":"Porta","encrypted":"AB","key":{"keyword":""}}`, "decrypt")
	assert.ErrorIs(t, err, cipher.ErrInvalidKey)

	_, _, err = run(t, "family: [", "decrypt")
	assert.Error(t, err)

	_, _, err = run(t, "", "decrypt", "/nonexistent/p.json")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "solve", "-o", "text", "send + more = money")
	require.NoError(t, err)
	assert.Equal(t, "9567 + 1085 = 10652  D=7 E=5 M=1 N=6 O=0 R=8 S=9 Y=2\n", out)

	out, _, err = run(t, "", "solve", "-o", "json", "SEND+MORE=MONEY")
	require.NoError(t, err)
	var sols []struct {
		Assignment map[string]int `json:"assignment"`
		Numeric    string         `json:"numeric"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sols))
	require.Len(t, sols, 1)
	assert.Equal(t, 9, sols[0].Assignment["S"])

	out, _, err = run(t, "", "solve", "-o", "text", "money - more = send")
	require.NoError(t, err)
	assert.Equal(t, "10652 - 1085 = 9567  D=7 E=5 M=1 N=6 O=0 R=8 S=9 Y=2\n", out)

	out, _, err = run(t, "", "solve", "-o", "text", "AB + CD = E")
	require.NoError(t, err)
	assert.Equal(t, "AB + CD = E: no solution\n", out)

	out, _, err = run(t, "", "solve", "-o", "text", "--limit", "2", "A + B = C")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestSolveErrors(t *testing.T) {
	t.Parallel()
	for _, eq := range []string{"SEND MORE = MONEY", "SEND + MORE", "SEND + = MONEY", "ABCDE + FGHIJ = KLMNOP"} {
		_, _, err := run(t, "", "solve", eq)
		assert.Error(t, err, eq)
	}
}

func TestFamilies(t *testing.T) {
	t.Parallel()
	out, _, err := run(t, "", "families", "-o", "text")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(cipher.Families()))
	assert.Equal(t, cipher.Families()[0].String(), lines[0])

	out, _, err = run(t, "", "families", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- Hill 2x2\n")
}

func TestParseMatrix(t *testing.T) {
	t.Parallel()
	rows, err := parseMatrix(" 6,24,1 ; 13,16,10; 20,17,15 ;")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, rows)

	_, err = parseMatrix(" ; ")
	assert.Error(t, err)
}
