package output

import (
	"fmt"
	"strings"
)

// FormatHeader formats a markdown header at the given level.
func FormatHeader(level int, text string) string {
	return strings.Repeat("#", level) + " " + text
}

// FormatKeyValue formats a markdown key/value bullet.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("- **%s:** %s", key, value)
}

// FormatCodeBlock wraps lines in a fenced code block.
func FormatCodeBlock(lang string, lines []string) string {
	var b strings.Builder
	b.WriteString("```" + lang + "\n")
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("```")
	return b.String()
}
