package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/ictioscan/regex"
	"github.com/dekarrin/ictioscan/scanner"
	"github.com/dekarrin/ictioscan/token"
)

// tokenSetFile is the TOML shape accepted by --tokens: a declaratively
// described token set, for callers who want a scanner without writing Go.
type tokenSetFile struct {
	Token []tokenEntry `toml:"token"`
}

// tokenEntry describes one declared token type. Exactly one of Literal,
// Builtin, or Ranges should be set; Builtin selects one of the common
// patterns token.patterns.go ships, Literal matches fixed text (keywords,
// operators), and Ranges builds a one-or-more-of-charclass pattern from a
// list of inclusive [lo, hi] code point pairs.
type tokenEntry struct {
	ID      string    `toml:"id"`
	Name    string    `toml:"name"`
	Literal string    `toml:"literal"`
	Builtin string    `toml:"builtin"`
	Ranges  [][2]rune `toml:"ranges"`
}

// loadTokenSet reads a TOML token-set description from path and builds a
// Scanner from it, in declared order.
func loadTokenSet(path string) (*scanner.Scanner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token set %q: %w", path, err)
	}

	var file tokenSetFile
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("parsing token set %q: %w", path, err)
	}
	if len(file.Token) == 0 {
		return nil, fmt.Errorf("token set %q declares no [[token]] entries", path)
	}

	b := scanner.NewBuilder()
	for i, e := range file.Token {
		typ, err := buildTokenType(e)
		if err != nil {
			return nil, fmt.Errorf("token set %q: entry %d (%q): %w", path, i, e.ID, err)
		}
		b.AddType(typ)
	}
	return b.Build(), nil
}

func buildTokenType(e tokenEntry) (token.Type, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	human := e.Name
	if human == "" {
		human = e.ID
	}

	switch {
	case e.Literal != "":
		return token.NewLiteralType(e.ID, human, e.Literal), nil
	case e.Builtin != "":
		return builtinType(e.ID, human, e.Builtin)
	case len(e.Ranges) > 0:
		var parts []regex.RegEx
		for _, r := range e.Ranges {
			re, err := regex.CharRange(r[0], r[1])
			if err != nil {
				return nil, fmt.Errorf("range [%d,%d]: %w", r[0], r[1], err)
			}
			parts = append(parts, re)
		}
		pattern := regex.Repeated(regex.Choice(parts...))
		return token.NewType(e.ID, human, pattern, identityParse, identityStringify)
	default:
		return nil, fmt.Errorf("must set one of literal, builtin, or ranges")
	}
}

func identityParse(s string) (string, error) { return s, nil }
func identityStringify(s string) string      { return s }

func builtinType(id, human, kind string) (token.Type, error) {
	switch kind {
	case "identifier":
		return token.NewIdentifierType(id, human), nil
	case "integer":
		return token.NewIntegerType(id, human), nil
	case "float":
		return token.NewFloatType(id, human), nil
	case "whitespace":
		return token.NewWhitespaceType(id, human), nil
	case "string":
		return token.NewQuotedStringType(id, human), nil
	default:
		return nil, fmt.Errorf("unknown builtin kind %q", kind)
	}
}
