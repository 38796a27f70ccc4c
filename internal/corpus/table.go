package corpus

// Table interns, per type name, every structurally distinct token
// sequence ("variant") seen across a corpus load. Variants are
// append-only; no entry is removed or mutated in place.
type Table struct {
	variants map[string][]Tokens
}

// NewTable creates an empty type table.
func NewTable() *Table {
	return &Table{variants: make(map[string][]Tokens)}
}

// Merge records tokens as a variant of name and returns the variant
// index. A sequence equal to an existing variant returns that variant's
// index; a structurally new sequence is appended.
func (t *Table) Merge(name string, tokens Tokens) int {
	existing := t.variants[name]
	for i, variant := range existing {
		if tokens.Equal(variant) {
			return i
		}
	}
	t.variants[name] = append(existing, tokens)
	return len(existing)
}

// Variants returns all recorded variants of name, nil if unseen.
func (t *Table) Variants(name string) []Tokens {
	return t.variants[name]
}

// Len returns the number of distinct type names in the table.
func (t *Table) Len() int {
	return len(t.variants)
}
