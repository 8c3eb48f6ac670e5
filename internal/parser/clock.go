package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "14:30", "14.30"
	clockRe = regexp.MustCompile(`(?:^|[^\p{L}\d])(\d{1,2})[:.](\d{2})(?:$|[^\p{L}\d])`)

	// "18 uhr", "6 pm", "7 a.m."
	meridiemRe = regexp.MustCompile(`(?:^|[^\p{L}\d])(\d{1,2})\s*(uhr|am|pm|a\.m\.|p\.m\.)(?:$|[^\p{L}\d])`)
)

// dayParts maps coarse time-of-day keywords to fixed clock hours.
// "morgens?" also covers a leftover "morgen": by the time the clock
// pass runs, a date-meaning "morgen" has already been consumed, so
// what remains is the time-of-day sense ("heute morgen").
var dayParts = []struct {
	re   *regexp.Regexp
	hour int
}{
	{word(`morgens?|morning|früh|early|vormittags?|frühstück|breakfast`), 8},
	{word(`mittags?|noon|lunch|mittagessen`), 12},
	{word(`nachmittags?|afternoon`), 15},
	{word(`abends?|evening|tonight|dinner|abendessen`), 19},
	{word(`nachts?|night|midnight`), 23},
}

// parseClock extracts an explicit clock time or a day-part keyword
// from the working text. Returns hour == -1 when nothing matched.
// The first matching rule returns immediately; multiple time cues in
// one input never stack. A numeric match with an out-of-range hour or
// minute is treated as a non-match and stays in the title text.
func parseClock(text string) (hour, minute int, remaining string) {
	if m := clockRe.FindStringSubmatchIndex(text); m != nil {
		h, _ := strconv.Atoi(text[m[2]:m[3]])
		min, _ := strconv.Atoi(text[m[4]:m[5]])
		if h <= 23 && min <= 59 {
			return h, min, consumeSpan(text, m[0], m[1])
		}
	}

	if m := meridiemRe.FindStringSubmatchIndex(text); m != nil {
		h, _ := strconv.Atoi(text[m[2]:m[3]])
		if h <= 23 {
			period := text[m[4]:m[5]]
			if strings.Contains(period, "pm") || strings.Contains(period, "p.m") {
				if h < 12 {
					h += 12
				}
			} else if strings.Contains(period, "am") || strings.Contains(period, "a.m") {
				if h == 12 {
					h = 0
				}
			}
			return h, 0, consumeSpan(text, m[0], m[1])
		}
	}

	for _, dp := range dayParts {
		if dp.re.MatchString(text) {
			return dp.hour, 0, consume(text, dp.re)
		}
	}

	return -1, 0, text
}
