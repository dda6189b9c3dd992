package scanner

import (
	"fmt"
	"path/filepath"
)

// CacheFileName returns the file name this Scanner's compiled DFA should be
// cached under within dir, namespaced by the Scanner's ID so that two
// Scanners sharing a cache directory never collide on the same file.
func (s *Scanner) CacheFileName(dir string) string {
	return filepath.Join(dir, fmt.Sprintf("dfa-%s.bin", s.id))
}
