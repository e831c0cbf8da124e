// Package ingestion prepares uploaded resume content for extraction.
// Uploads arrive as plain text or HTML exports; both are normalized into
// clean text before being handed to the LLM.
package ingestion

import (
	"regexp"
	"strings"
)

var spaceRuns = regexp.MustCompile(`\s+`)

// CleanText normalizes resume text while preserving its line structure.
// Line endings are unified, trailing whitespace stripped, space runs
// collapsed and blank-line runs reduced to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = removeExcessiveBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line, keeping bullet markers and their
// indentation so list structure survives cleanup.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	content := spaceRuns.ReplaceAllString(trimmed, " ")
	if indent > 0 && isBulletLine(line) {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") ||
		strings.HasPrefix(trimmed, "• ") || strings.HasPrefix(trimmed, "· ")
}

var blankRuns = regexp.MustCompile(`\n\n\n+`)

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	return blankRuns.ReplaceAllString(content, "\n\n")
}
