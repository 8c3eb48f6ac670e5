package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FallbackTitle is used when nothing presentable remains after all
// extractions. A title is never empty.
const FallbackTitle = "Aufgabe"

var (
	edgePunctRe = regexp.MustCompile(`^[,.\- ]+|[,.\- ]+$`)

	// Case-insensitive here: CleanTitle must be idempotent on its own
	// output, which starts with an uppercase letter.
	titleLeadingConnRe  = regexp.MustCompile(`(?i)^(?:` + connectorWords + `)\s+`)
	titleTrailingConnRe = regexp.MustCompile(`(?i)\s+(?:` + connectorWords + `)$`)
)

// CleanTitle trims residual punctuation and dangling connector words
// from the leftover working text and capitalizes the first rune.
func CleanTitle(text string) string {
	title := strings.TrimSpace(text)
	title = edgePunctRe.ReplaceAllString(title, "")
	title = titleTrailingConnRe.ReplaceAllString(title, "")
	title = titleLeadingConnRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	if title == "" {
		return FallbackTitle
	}

	r, size := utf8.DecodeRuneInString(title)
	return strings.ToUpper(string(r)) + title[size:]
}
