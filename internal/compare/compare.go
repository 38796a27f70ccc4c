// Package compare implements the recursive structural comparison of
// two symtypes corpora rooted at their shared exports.
package compare

import (
	"sort"

	"github.com/kabitools/kabidiff/internal/corpus"
)

// Change is one reported structural difference: the token sequences a
// type name resolves to on each side.
type Change struct {
	Name string
	A    corpus.Tokens
	B    corpus.Tokens
}

// Changes accumulates change records across all export roots of one
// comparison run, deduplicated by (name, A, B).
type Changes struct {
	byName map[string][]Change
}

// NewChanges creates an empty accumulator.
func NewChanges() *Changes {
	return &Changes{byName: make(map[string][]Change)}
}

// Add records a change unless an identical (name, A, B) triple is
// already present.
func (cs *Changes) Add(name string, a, b corpus.Tokens) {
	for _, c := range cs.byName[name] {
		if c.A.Equal(a) && c.B.Equal(b) {
			return
		}
	}
	cs.byName[name] = append(cs.byName[name], Change{Name: name, A: a, B: b})
}

// Len returns the number of recorded changes.
func (cs *Changes) Len() int {
	n := 0
	for _, v := range cs.byName {
		n += len(v)
	}
	return n
}

// All returns every recorded change, sorted by type name with each
// name's changes in recording order.
func (cs *Changes) All() []Change {
	names := make([]string, 0, len(cs.byName))
	for name := range cs.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Change, 0, cs.Len())
	for _, name := range names {
		out = append(out, cs.byName[name]...)
	}
	return out
}

// Report is the outcome of comparing corpus A against corpus B.
type Report struct {
	OnlyInA []string
	OnlyInB []string
	Changes *Changes
}

// Compare walks both corpora rooted at every shared export and collects
// structural differences. Exports present on only one side are reported
// by presence without structural comparison. Export names are processed
// in sorted order so output is reproducible.
func Compare(a, b *corpus.Corpus) (*Report, error) {
	report := &Report{Changes: NewChanges()}
	w := &walker{a: a, b: b, changes: report.Changes}

	for _, name := range sortedKeys(a.Exports) {
		fileB, ok := b.Exports[name]
		if !ok {
			report.OnlyInA = append(report.OnlyInA, name)
			continue
		}
		fileA := a.Exports[name]
		// Fresh visited state per export root; the change
		// accumulator is shared across roots.
		w.visited = make(map[string]bool)
		if err := w.walk(a.Files[fileA], b.Files[fileB], name); err != nil {
			return nil, err
		}
	}

	for _, name := range sortedKeys(b.Exports) {
		if _, ok := a.Exports[name]; !ok {
			report.OnlyInB = append(report.OnlyInB, name)
		}
	}

	return report, nil
}

type walker struct {
	a, b    *corpus.Corpus
	visited map[string]bool
	changes *Changes
}

// walk compares the declarations of name in the two files position by
// position. Matching type references recurse unconditionally so nested
// changes are discovered even when the outer declaration also differs.
// The visited set terminates cycles and keeps each name compared at
// most once per root.
func (w *walker) walk(fileA, fileB *corpus.File, name string) error {
	if w.visited[name] {
		return nil
	}
	w.visited[name] = true

	tokensA, err := w.a.TypeTokens(fileA, name)
	if err != nil {
		return err
	}
	tokensB, err := w.b.TypeTokens(fileB, name)
	if err != nil {
		return err
	}

	isEqual := len(tokensA) == len(tokensB)
	n := min(len(tokensA), len(tokensB))
	for i := 0; i < n; i++ {
		tokA, tokB := tokensA[i], tokensB[i]

		switch {
		case tokA.Ref && tokB.Ref:
			if tokA.Text != tokB.Text {
				isEqual = false
				continue
			}
			if err := w.walk(fileA, fileB, tokA.Text); err != nil {
				return err
			}
		case !tokA.Ref && !tokB.Ref:
			isEqual = isEqual && tokA.Text == tokB.Text
		default:
			isEqual = false
		}
	}
	if !isEqual {
		w.changes.Add(name, tokensA, tokensB)
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
