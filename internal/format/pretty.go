// Package format renders token sequences as indented C-declaration
// style text and presents pairs of renderings as unified diffs.
package format

import (
	"strings"

	"github.com/kabitools/kabidiff/internal/corpus"
)

// Pretty renders a flat token sequence as indented multi-line text.
// Braces open and close indentation levels, ';' and ',' end lines.
// Unbalanced braces are tolerated: indentation never drops below zero
// and a trailing unterminated line is still flushed.
func Pretty(tokens corpus.Tokens) []string {
	var res []string
	indent := 0

	var line strings.Builder
	for _, token := range tokens {
		// A closing bracket ends any prior line and reduces
		// indentation before being placed on its own line.
		if token.Text == "}" {
			if line.Len() > 0 {
				res = append(res, line.String())
			}
			if indent > 0 {
				indent--
			}
			line.Reset()
		}

		isFirst := line.Len() == 0
		if isFirst {
			line.WriteString(strings.Repeat("\t", indent))
		}

		switch token.Text {
		case "{":
			if !isFirst {
				line.WriteByte(' ')
			}
			line.WriteByte('{')
			res = append(res, line.String())
			indent++
			line.Reset()
		case "}":
			line.WriteByte('}')
		case ";", ",":
			line.WriteString(token.Text)
			res = append(res, line.String())
			line.Reset()
		default:
			if !isFirst {
				line.WriteByte(' ')
			}
			line.WriteString(token.Text)
		}
	}

	if line.Len() > 0 {
		res = append(res, line.String())
	}
	return res
}
