package format

import (
	"reflect"
	"testing"

	"github.com/kabitools/kabidiff/internal/corpus"
)

func atoms(words ...string) corpus.Tokens {
	tokens := make(corpus.Tokens, len(words))
	for i, w := range words {
		tokens[i] = corpus.Atom(w)
	}
	return tokens
}

func TestPretty(t *testing.T) {
	tests := []struct {
		name   string
		tokens corpus.Tokens
		want   []string
	}{
		{
			name:   "typedef",
			tokens: atoms("typedef", "unsigned", "long", "long", "u64"),
			want:   []string{"typedef unsigned long long u64"},
		},
		{
			name: "enum",
			tokens: atoms("enum", "test", "{",
				"VALUE1", ",", "VALUE2", ",", "VALUE3", "}"),
			want: []string{
				"enum test {",
				"\tVALUE1,",
				"\tVALUE2,",
				"\tVALUE3",
				"}",
			},
		},
		{
			name: "struct",
			tokens: atoms("struct", "test", "{",
				"int", "ivalue", ";",
				"long", "lvalue", ";", "}"),
			want: []string{
				"struct test {",
				"\tint ivalue;",
				"\tlong lvalue;",
				"}",
			},
		},
		{
			name: "union",
			tokens: atoms("union", "test", "{",
				"int", "ivalue", ";",
				"long", "lvalue", ";", "}"),
			want: []string{
				"union test {",
				"\tint ivalue;",
				"\tlong lvalue;",
				"}",
			},
		},
		{
			name:   "enum constant",
			tokens: atoms("7"),
			want:   []string{"7"},
		},
		{
			name: "nested",
			tokens: atoms("union", "nested", "{",
				"struct", "{",
				"int", "ivalue1", ";",
				"int", "ivalue2", ";",
				"}", ";",
				"long", "lvalue", ";", "}"),
			want: []string{
				"union nested {",
				"\tstruct {",
				"\t\tint ivalue1;",
				"\t\tint ivalue2;",
				"\t};",
				"\tlong lvalue;",
				"}",
			},
		},
		{
			name: "imbalanced brackets",
			tokens: atoms("struct", "imbalanced", "{",
				"{", "}", "}", "}", ";", "{", "{"),
			want: []string{
				"struct imbalanced {",
				"\t{",
				"\t}",
				"}",
				"};",
				"{",
				"\t{",
			},
		},
		{
			name: "type reference",
			tokens: corpus.Tokens{
				corpus.Atom("struct"), corpus.Atom("typeref"), corpus.Atom("{"),
				corpus.TypeRef("s#other"), corpus.Atom("other"), corpus.Atom(";"),
				corpus.Atom("}"),
			},
			want: []string{
				"struct typeref {",
				"\ts#other other;",
				"}",
			},
		},
		{
			name:   "empty",
			tokens: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pretty(tt.tokens)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Pretty() = %q, want %q", got, tt.want)
			}
		})
	}
}
