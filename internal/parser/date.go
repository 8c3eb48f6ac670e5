package parser

import (
	"regexp"
	"strconv"
	"time"
)

var (
	todayRe    = word(`heute|today`)
	tomorrowRe = word(`morgen|tomorrow`)
	dayAfterRe = word(`übermorgen`)
	nextWeekRe = word(`nächste woche|next week`)

	// "in 3 tagen", "in 2 weeks"
	inAmountRe = regexp.MustCompile(`(?:^|[^\p{L}\d])in\s+(\d+)\s+(tage?n?|wochen?|monate?n?|days?|weeks?|months?)(?:$|[^\p{L}\d])`)
)

// parseRelativeDate resolves relative-date phrases. Rules are tried
// in a fixed order and the first match wins. "morgen" is checked
// before "übermorgen" can collide with it only lexically, not in the
// match itself: the boundary guard keeps "morgen" from matching
// inside "übermorgen".
func (p *Parser) parseRelativeDate(text string, now time.Time) (*time.Time, string) {
	if todayRe.MatchString(text) {
		d := now
		return &d, consume(text, todayRe)
	}
	if tomorrowRe.MatchString(text) {
		d := now.AddDate(0, 0, 1)
		return &d, consume(text, tomorrowRe)
	}
	if dayAfterRe.MatchString(text) {
		d := now.AddDate(0, 0, 2)
		return &d, consume(text, dayAfterRe)
	}
	if nextWeekRe.MatchString(text) {
		d := now.AddDate(0, 0, 7)
		return &d, consume(text, nextWeekRe)
	}
	if m := inAmountRe.FindStringSubmatchIndex(text); m != nil {
		amount, err := strconv.Atoi(text[m[2]:m[3]])
		if err == nil && amount > 0 {
			var d time.Time
			switch unitFromWord(text[m[4]:m[5]]) {
			case UnitDay:
				d = now.AddDate(0, 0, amount)
			case UnitWeek:
				d = now.AddDate(0, 0, amount*7)
			case UnitMonth:
				d = now.AddDate(0, amount, 0)
			}
			return &d, consumeSpan(text, m[0], m[1])
		}
	}
	return nil, text
}

// weekdayNames is the fixed-order lookup table for weekday matching,
// Sunday through Saturday, short German form first within each day.
// Iteration order is part of the contract: when several weekday names
// appear, the first table entry that matches wins and the rest stay
// ordinary text.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"so", time.Sunday}, {"sonntag", time.Sunday}, {"sunday", time.Sunday}, {"sun", time.Sunday},
	{"mo", time.Monday}, {"montag", time.Monday}, {"monday", time.Monday}, {"mon", time.Monday},
	{"di", time.Tuesday}, {"dienstag", time.Tuesday}, {"tuesday", time.Tuesday}, {"tue", time.Tuesday},
	{"mi", time.Wednesday}, {"mittwoch", time.Wednesday}, {"wednesday", time.Wednesday}, {"wed", time.Wednesday},
	{"do", time.Thursday}, {"donnerstag", time.Thursday}, {"thursday", time.Thursday}, {"thu", time.Thursday},
	{"fr", time.Friday}, {"freitag", time.Friday}, {"friday", time.Friday}, {"fri", time.Friday},
	{"sa", time.Saturday}, {"samstag", time.Saturday}, {"saturday", time.Saturday}, {"sat", time.Saturday},
}

type weekdayPattern struct {
	day time.Weekday
	re  *regexp.Regexp
}

var weekdayPatterns = buildWeekdayPatterns()

func buildWeekdayPatterns() []weekdayPattern {
	out := make([]weekdayPattern, 0, len(weekdayNames))
	for _, n := range weekdayNames {
		re := regexp.MustCompile(`(?:^|[^\p{L}\d])(?:(?:am|on|next|nächsten|nächster|nächste)\s+)?` + n.name + `(?:$|[^\p{L}\d])`)
		out = append(out, weekdayPattern{day: n.day, re: re})
	}
	return out
}

// weekdayFromName resolves a (full or abbreviated) weekday name.
func weekdayFromName(name string) (time.Weekday, bool) {
	for _, n := range weekdayNames {
		if n.name == name {
			return n.day, true
		}
	}
	return 0, false
}

// parseWeekdayDate resolves an explicit weekday name to its next
// future occurrence, strictly after now: naming today's weekday means
// the one seven days ahead, never today.
func (p *Parser) parseWeekdayDate(text string, now time.Time) (*time.Time, string) {
	for _, wp := range weekdayPatterns {
		if wp.re.MatchString(text) {
			daysUntil := int(wp.day - now.Weekday())
			if daysUntil <= 0 {
				daysUntil += 7
			}
			d := now.AddDate(0, 0, daysUntil)
			return &d, consume(text, wp.re)
		}
	}
	return nil, text
}
