package parser

import (
	"regexp"
	"strings"
)

// Dangling connector words stripped from the edges of the working
// text after a matched phrase has been cut out. Closed set; the same
// list is used by the title cleaner.
const connectorWords = `am|um|im|in|zum|zur|beim|für|mit|ab|bis|on|at|ins`

var (
	spaceRunRe          = regexp.MustCompile(`\s+`)
	leadingConnectorRe  = regexp.MustCompile(`^(?:` + connectorWords + `) `)
	trailingConnectorRe = regexp.MustCompile(` (?:` + connectorWords + `)$`)
)

// normalize lowercases, trims and collapses whitespace runs to single
// spaces. Character content is otherwise untouched; umlaut folding is
// a separate utility and not part of the main pipeline.
func normalize(input string) string {
	return spaceRunRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), " ")
}

// word compiles a keyword alternation with explicit boundary guards.
// Go's \b only knows ASCII word characters and misfires on
// umlaut-initial words like "übermorgen", so boundaries are spelled
// out as non-letter, non-digit positions.
func word(alts string) *regexp.Regexp {
	return regexp.MustCompile(`(?:^|[^\p{L}\d])(?:` + alts + `)(?:$|[^\p{L}\d])`)
}

// consume removes the first match of re from text and tidies up the
// leftover: trim, strip a now-dangling connector word from either
// end, collapse whitespace. No-op if re does not match.
//
// Every extractor removes recognized phrases through consume (or
// consumeSpan for submatch-bearing patterns) so the leftover text
// always reaches the title cleaner in the same shape.
func consume(text string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return consumeSpan(text, loc[0], loc[1])
}

// consumeSpan removes text[start:end], replacing it with one space.
func consumeSpan(text string, start, end int) string {
	out := strings.TrimSpace(text[:start] + " " + text[end:])
	out = spaceRunRe.ReplaceAllString(out, " ")
	out = trailingConnectorRe.ReplaceAllString(out, "")
	out = leadingConnectorRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

var umlautReplacer = strings.NewReplacer(
	"ä", "ae", "ö", "oe", "ü", "ue",
	"Ä", "AE", "Ö", "OE", "Ü", "UE",
	"ß", "ss",
)

// RemoveUmlauts rewrites German umlauts to their ASCII digraphs.
func RemoveUmlauts(s string) string {
	return umlautReplacer.Replace(s)
}

// NormalizeForComparison produces an accent-agnostic, lowercase,
// whitespace-collapsed form of s. It is meant for callers that need
// to compare titles across spelling variants (the suggestion engine
// does); the main pipeline never applies it to title text.
func NormalizeForComparison(s string) string {
	return RemoveUmlauts(normalize(s))
}
