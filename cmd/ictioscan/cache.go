package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/ictioscan/scanner"
	"github.com/dekarrin/ictioscan/token"
)

// loadOrBuildCache tries to restore sc's combined DFA from path; if path
// doesn't exist yet, it builds the DFA and saves it there for next time.
func loadOrBuildCache(sc *scanner.Scanner, path string) error {
	data, err := os.ReadFile(path)
	if err == nil {
		byID := typesByID(sc)
		if err := sc.LoadDFA(data, byID); err != nil {
			return fmt.Errorf("loading cached DFA from %q: %w", path, err)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("reading DFA cache %q: %w", path, err)
	}

	encoded := sc.SaveDFA()
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("writing DFA cache %q: %w", path, err)
	}
	return nil
}

func typesByID(sc *scanner.Scanner) map[string]token.Type {
	byID := make(map[string]token.Type)
	for _, t := range sc.Types() {
		byID[t.ID()] = t
	}
	byID[sc.ErrorType().ID()] = sc.ErrorType()
	byID[sc.EOFType().ID()] = sc.EOFType()
	return byID
}
