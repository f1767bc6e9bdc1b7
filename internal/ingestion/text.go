// Package ingestion prepares raw resume and job text for the engine:
// line-ending normalization and extraction-artifact cleanup. PDF byte
// extraction itself happens upstream; this package receives plain text.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	spacesRe     = regexp.MustCompile(`[ \t]+`)
	blankLinesRe = regexp.MustCompile(`\n\n\n+`)
	// controlRe strips the stray control characters PDF extractors
	// leave behind; tabs and newlines survive.
	controlRe = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
)

// CleanText normalizes extracted text while preserving line structure:
// CRLF to LF, control characters removed, runs of spaces collapsed,
// at most two consecutive blank lines. Empty input yields empty output.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = controlRe.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses internal whitespace but keeps bullet markers,
// which often carry section structure in extracted resumes.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	for _, marker := range []string{"- ", "* ", "• ", "· "} {
		if strings.HasPrefix(trimmed, marker) {
			rest := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
			return "- " + spacesRe.ReplaceAllString(rest, " ")
		}
	}
	return spacesRe.ReplaceAllString(trimmed, " ")
}

// ReadTextFile reads and cleans a plain-text file.
func ReadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return CleanText(string(content)), nil
}
