package report

import (
	"html"
	"regexp"
	"strings"
)

var (
	brRe    = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockRe = regexp.MustCompile(`(?i)</(?:p|li|ul|ol)>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// StripHTML reduces rich-text markup to plain text for reports: <br> and
// closing block tags become line breaks, every remaining tag is removed
// and entities are decoded.
func StripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	s = brRe.ReplaceAllString(s, "\n")
	s = blockRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
