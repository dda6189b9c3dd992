package scanner

import "github.com/dekarrin/ictioscan/token"

// Builder accumulates token types in declared order before producing a
// Scanner. A token type already carries its own pattern (via
// token.NewType), so AddType is the only mutation Builder needs.
type Builder struct {
	types []token.Type
	seen  map[string]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{seen: make(map[string]bool)}
}

// AddType appends typ to the declared order, returning the Builder for
// chaining. Re-adding an ID already present replaces the earlier entry in
// place rather than appending a duplicate.
func (b *Builder) AddType(typ token.Type) *Builder {
	id := typ.ID()
	if b.seen[id] {
		for i, t := range b.types {
			if t.ID() == id {
				b.types[i] = typ
				return b
			}
		}
	}
	b.seen[id] = true
	b.types = append(b.types, typ)
	return b
}

// Build returns a new Scanner over the types added so far, in the order
// they were added.
func (b *Builder) Build() *Scanner {
	return New(b.types...)
}
