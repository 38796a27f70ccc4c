// Package corpus provides the in-memory model for kernel symtypes
// declarations: a deduplicated type table, per-file declaration records
// and an export index, loaded from one build tree.
package corpus

// Token is a single word of a type declaration. A token either carries
// literal text (an atom) or names another declared type (a reference
// such as s#foo, u#foo, e#foo or t#foo).
type Token struct {
	Text string
	Ref  bool
}

// Tokens is one declaration body. Order is significant; two sequences
// are equal only on exact positional match.
type Tokens []Token

// Atom returns a literal token.
func Atom(text string) Token {
	return Token{Text: text}
}

// TypeRef returns a token referencing the named type.
func TypeRef(name string) Token {
	return Token{Text: name, Ref: true}
}

// Classify converts a declaration word into a token. A word is a type
// reference iff its second character is '#'; everything else, including
// one-character words, is an atom.
func Classify(word string) Token {
	if IsRefName(word) {
		return TypeRef(word)
	}
	return Atom(word)
}

// IsRefName reports whether a declared name carries the reference
// marker, i.e. names an internal type rather than an export.
func IsRefName(name string) bool {
	return len(name) >= 2 && name[1] == '#'
}

// Equal reports exact positional equality of two token sequences.
func (t Tokens) Equal(other Tokens) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}
