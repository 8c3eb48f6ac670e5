package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

var (
	dailyRe   = word(`jeden tag|täglich|every day|daily`)
	monthlyRe = word(`jeden monat|monatlich|every month|monthly`)
	yearlyRe  = word(`jährlich|yearly|every year|annually|jedes jahr`)
	weeklyRe  = word(`jede woche|wöchentlich|every week|weekly`)

	// "alle 3 tage", "every 2 weeks"
	intervalRe = regexp.MustCompile(`(?:^|[^\p{L}\d])(?:alle|every)\s+(\d+)\s*(tage?n?|wochen?|monate?n?|days?|weeks?|months?)(?:$|[^\p{L}\d])`)

	// "jeden montag", "every monday". The qualifier is mandatory: a
	// bare weekday name is a one-off date, not a recurrence, and is
	// left for the weekday date pass.
	recurWeekdayRe = regexp.MustCompile(`(?:^|[^\p{L}\d])(?:jeden?|jede|alle|every)\s+(montag|monday|dienstag|tuesday|mittwoch|wednesday|donnerstag|thursday|freitag|friday|samstag|saturday|sonntag|sunday)(?:$|[^\p{L}\d])`)
)

// parseRecurrence detects a repetition phrase in the working text and
// removes it. Precedence is fixed, first match wins:
// daily > monthly > yearly > interval-N > named-weekday > weekly.
func parseRecurrence(text string) (*Recurrence, string) {
	if dailyRe.MatchString(text) {
		return &Recurrence{Type: RecurDaily}, consume(text, dailyRe)
	}
	if monthlyRe.MatchString(text) {
		return &Recurrence{Type: RecurMonthly}, consume(text, monthlyRe)
	}
	if yearlyRe.MatchString(text) {
		return &Recurrence{Type: RecurYearly}, consume(text, yearlyRe)
	}
	if m := intervalRe.FindStringSubmatchIndex(text); m != nil {
		amount, err := strconv.Atoi(text[m[2]:m[3]])
		if err == nil && amount > 0 {
			return &Recurrence{
				Type:     RecurInterval,
				Interval: amount,
				Unit:     unitFromWord(text[m[4]:m[5]]),
			}, consumeSpan(text, m[0], m[1])
		}
	}
	if m := recurWeekdayRe.FindStringSubmatchIndex(text); m != nil {
		if wd, ok := weekdayFromName(text[m[2]:m[3]]); ok {
			return &Recurrence{Type: RecurWeekday, Weekday: wd}, consumeSpan(text, m[0], m[1])
		}
	}
	if weeklyRe.MatchString(text) {
		return &Recurrence{Type: RecurWeekly}, consume(text, weeklyRe)
	}
	return nil, text
}

// unitFromWord maps a matched unit word (German or English, singular
// or plural) to its Unit.
func unitFromWord(w string) Unit {
	switch {
	case strings.HasPrefix(w, "tag"), strings.HasPrefix(w, "day"):
		return UnitDay
	case strings.HasPrefix(w, "woch"), strings.HasPrefix(w, "week"):
		return UnitWeek
	default:
		return UnitMonth
	}
}

var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// RRule converts the recurrence into an RFC 5545 rule anchored at
// dtstart, for next-occurrence computation.
func (r *Recurrence) RRule(dtstart time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{Dtstart: dtstart}
	switch r.Type {
	case RecurDaily:
		opt.Freq = rrule.DAILY
	case RecurWeekly:
		opt.Freq = rrule.WEEKLY
		for _, d := range r.DaysOfWeek {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
		}
	case RecurBiweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2
	case RecurMonthly:
		opt.Freq = rrule.MONTHLY
	case RecurYearly:
		opt.Freq = rrule.YEARLY
	case RecurInterval:
		opt.Interval = r.Interval
		switch r.Unit {
		case UnitDay:
			opt.Freq = rrule.DAILY
		case UnitWeek:
			opt.Freq = rrule.WEEKLY
		case UnitMonth:
			opt.Freq = rrule.MONTHLY
		default:
			return nil, fmt.Errorf("unknown interval unit %q", r.Unit)
		}
	case RecurWeekday:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rruleWeekdays[r.Weekday]}
	default:
		return nil, fmt.Errorf("unknown recurrence type %q", r.Type)
	}
	return rrule.NewRRule(opt)
}

// Next returns the first occurrence strictly after the given time,
// with after doubling as the rule anchor.
func (r *Recurrence) Next(after time.Time) (time.Time, error) {
	rule, err := r.RRule(after)
	if err != nil {
		return time.Time{}, err
	}
	next := rule.After(after, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("recurrence %q has no occurrence after %s", r.Type, after)
	}
	return next, nil
}
