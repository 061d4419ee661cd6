// SPDX-License-Identifier: MIT
// Package: lvlcipher/cmd/lvlcipher
//
// output.go — rendering and parsing of puzzles and word files.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlcipher/cipher"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// errEmptyInput is returned when a puzzle document has no content.
var errEmptyInput = errors.New("empty input")

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// outputFormat resolves the --format setting for w.
func (a *app) outputFormat(w io.Writer) (string, error) {
	f := strings.ToLower(strings.TrimSpace(a.v.GetString(keyFormat)))
	switch f {
	case "":
		if isTerminal(w) {
			return formatText, nil
		}
		return formatJSON, nil
	case formatText, formatJSON, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%s: unknown format %q (want text, json or yaml)", keyFormat, f)
	}
}

// writeDoc writes v as indented JSON or as YAML. YAML is re-read from the
// JSON form as a node tree, which keeps field names, field order and 64-bit
// integers intact.
func writeDoc(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	blockStyle(&doc)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(&doc); err != nil {
		return err
	}

	return enc.Close()
}

// blockStyle drops the flow and quoting styles inherited from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// writePuzzle renders p. The text form prints the header and ciphertext and,
// with showKey, the key as compact JSON.
func writePuzzle(w io.Writer, format string, p *cipher.Puzzle, showKey bool) error {
	if format != formatText {
		return writeDoc(w, format, p)
	}

	if _, err := fmt.Fprintf(w, "%s  seed=%d  id=%s\n%s\n", p.Family(), p.Seed, p.ID, p.Encrypted); err != nil {
		return err
	}
	if !showKey {
		return nil
	}
	key, err := json.Marshal(p.Key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "key: %s\n", key)

	return err
}

// parsePuzzle decodes a stored puzzle given as JSON or YAML.
func parsePuzzle(raw []byte) (*cipher.Puzzle, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errEmptyInput
	}

	if raw[0] != '{' {
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("puzzle yaml: %w", err)
		}
		js, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("puzzle yaml: %w", err)
		}
		raw = js
	}

	p := new(cipher.Puzzle)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	return p, nil
}

// wordFile is the mapping form of a word file.
type wordFile struct {
	Words []string `yaml:"words"`
}

// loadWordBank reads a word file: a YAML sequence, a YAML mapping with a
// words key, or plain whitespace-separated words.
func loadWordBank(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("word bank: %w", err)
	}

	var list []string
	if yaml.Unmarshal(raw, &list) == nil && len(list) > 0 {
		return list, nil
	}
	var doc wordFile
	if yaml.Unmarshal(raw, &doc) == nil && len(doc.Words) > 0 {
		return doc.Words, nil
	}

	return strings.Fields(string(raw)), nil
}
