package parser

import (
	"testing"
	"time"
)

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      *Recurrence
		remaining string
	}{
		{
			name:      "daily german",
			in:        "medikamente täglich",
			want:      &Recurrence{Type: RecurDaily},
			remaining: "medikamente",
		},
		{
			name:      "daily phrase",
			in:        "jeden tag lesen",
			want:      &Recurrence{Type: RecurDaily},
			remaining: "lesen",
		},
		{
			name:      "monthly english",
			in:        "pay rent monthly",
			want:      &Recurrence{Type: RecurMonthly},
			remaining: "pay rent",
		},
		{
			name:      "yearly",
			in:        "tüv jährlich",
			want:      &Recurrence{Type: RecurYearly},
			remaining: "tüv",
		},
		{
			name:      "interval days",
			in:        "blumen gießen alle 3 tage",
			want:      &Recurrence{Type: RecurInterval, Interval: 3, Unit: UnitDay},
			remaining: "blumen gießen",
		},
		{
			name:      "interval months keeps interval type",
			in:        "filter wechseln alle 2 monate",
			want:      &Recurrence{Type: RecurInterval, Interval: 2, Unit: UnitMonth},
			remaining: "filter wechseln",
		},
		{
			name:      "named weekday needs qualifier",
			in:        "jeden freitag putzen",
			want:      &Recurrence{Type: RecurWeekday, Weekday: time.Friday},
			remaining: "putzen",
		},
		{
			name:      "bare weekday is not a recurrence",
			in:        "freitag putzen",
			want:      nil,
			remaining: "freitag putzen",
		},
		{
			name:      "generic weekly",
			in:        "wöchentlich rasen mähen",
			want:      &Recurrence{Type: RecurWeekly},
			remaining: "rasen mähen",
		},
		{
			name:      "daily beats weekday",
			in:        "täglich jeden montag",
			want:      &Recurrence{Type: RecurDaily},
			remaining: "jeden montag",
		},
		{
			name:      "zero interval is a non-match",
			in:        "alle 0 tage",
			want:      nil,
			remaining: "alle 0 tage",
		},
		{
			name:      "no recurrence",
			in:        "einkaufen gehen",
			want:      nil,
			remaining: "einkaufen gehen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, remaining := parseRecurrence(tt.in)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseRecurrence(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got != nil {
				if got.Type != tt.want.Type || got.Interval != tt.want.Interval || got.Unit != tt.want.Unit || got.Weekday != tt.want.Weekday {
					t.Errorf("parseRecurrence(%q) = %+v, want %+v", tt.in, got, tt.want)
				}
			}
			if remaining != tt.remaining {
				t.Errorf("remaining = %q, want %q", remaining, tt.remaining)
			}
		})
	}
}

func TestRecurrenceNext(t *testing.T) {
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name string
		rec  Recurrence
		want time.Time
	}{
		{"daily", Recurrence{Type: RecurDaily}, base.AddDate(0, 0, 1)},
		{"weekly", Recurrence{Type: RecurWeekly}, base.AddDate(0, 0, 7)},
		{"biweekly", Recurrence{Type: RecurBiweekly}, base.AddDate(0, 0, 14)},
		{"monthly", Recurrence{Type: RecurMonthly}, base.AddDate(0, 1, 0)},
		{"yearly", Recurrence{Type: RecurYearly}, base.AddDate(1, 0, 0)},
		{"interval 3 days", Recurrence{Type: RecurInterval, Interval: 3, Unit: UnitDay}, base.AddDate(0, 0, 3)},
		{"interval 2 weeks", Recurrence{Type: RecurInterval, Interval: 2, Unit: UnitWeek}, base.AddDate(0, 0, 14)},
		{"weekday monday", Recurrence{Type: RecurWeekday, Weekday: time.Monday}, base.AddDate(0, 0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rec.Next(base)
			if err != nil {
				t.Fatalf("Next: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Next(%s) = %s, want %s", base, got, tt.want)
			}
		})
	}
}

func TestRecurrenceNextUnknownType(t *testing.T) {
	rec := Recurrence{Type: RecurrenceType("lunar")}
	if _, err := rec.Next(time.Now()); err == nil {
		t.Fatal("expected error for unknown recurrence type")
	}
}
