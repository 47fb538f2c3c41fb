// Package toolutil provides shared helper functions for sound-analysis
// MCP tools.
package toolutil

import (
	"fmt"
	"strings"
)

// SplitLines splits a textarea-style blob into trimmed, non-empty lines.
func SplitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Plural formats a count with a naively pluralized noun: Plural(3, "sound")
// is "3 sounds".
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
