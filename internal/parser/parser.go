// Package parser turns free-form German/English task input into a
// structured task: a clean title plus due date, recurrence rule,
// category tags and a representative icon. It uses fixed keyword
// tables and deterministic pattern matching only; there is no
// external NLP involved and the result depends solely on the input
// string and the reference time passed to Parse.
package parser

import (
	"fmt"
	"time"
)

// DefaultHour is the clock hour applied when a date was recognized
// but no time was mentioned.
const DefaultHour = 9

// Parser extracts structured task data from natural-language input.
// It is stateless apart from its timezone and safe for concurrent use.
type Parser struct {
	location *time.Location
}

// New creates a Parser for the given IANA timezone string,
// e.g. "Europe/Berlin".
func New(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse runs the full pipeline over one input sentence. The stages
// share a single shrinking working text: recurrence is stripped first
// so that a phrase like "jeden montag" is not mis-read as a one-off
// weekday date, then the date, then the time. Tags and icon are
// matched against the untouched original input, and whatever text is
// left over becomes the title.
//
// now is read once and anchors every relative-date computation of
// this call. Parse never fails: unrecognized input simply leaves the
// corresponding fields absent.
func (p *Parser) Parse(input string, now time.Time) ParsedTask {
	now = now.In(p.location)

	text := normalize(input)

	rec, text := parseRecurrence(text)

	date, text := p.parseRelativeDate(text, now)
	if date == nil {
		date, text = p.parseWeekdayDate(text, now)
	}

	hour, minute, text := parseClock(text)

	tags, icon := extractMetadata(input)

	return ParsedTask{
		Title:      CleanTitle(text),
		DueDate:    p.compose(date, hour, minute, now),
		Recurrence: rec,
		Tags:       tags,
		Icon:       icon,
	}
}

// compose merges the resolved date and time into one timestamp.
// Date without time gets the default hour. Time without date is
// anchored to today and rolled forward by one day when that moment
// has already passed. Neither present means no due timestamp.
func (p *Parser) compose(date *time.Time, hour, minute int, now time.Time) *time.Time {
	switch {
	case date != nil && hour >= 0:
		t := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, p.location)
		return &t
	case date != nil:
		t := time.Date(date.Year(), date.Month(), date.Day(), DefaultHour, 0, 0, 0, p.location)
		return &t
	case hour >= 0:
		t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, p.location)
		if t.Before(now) {
			t = t.AddDate(0, 0, 1)
		}
		return &t
	default:
		return nil
	}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
