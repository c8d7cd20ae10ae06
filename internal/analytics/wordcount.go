package analytics

import "strings"

// CountWords returns the number of whitespace-delimited tokens in text.
// Empty or whitespace-only text counts as 0.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
