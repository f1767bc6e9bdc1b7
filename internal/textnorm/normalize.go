// Package textnorm provides text normalization and the regex detection
// rules used for skill matching. Each detection rule is a named,
// independently testable constructor so new rules can be added without
// touching existing ones.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenRe      = regexp.MustCompile(`[a-z0-9+#.]+`)
)

// Normalize lowercases text and collapses runs of whitespace to single
// spaces. All rule matching happens on normalized text.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text into word tokens, keeping the
// characters that occur inside real skill names (c++, c#, node.js).
func Tokenize(s string) []string {
	return tokenRe.FindAllString(Normalize(s), -1)
}
