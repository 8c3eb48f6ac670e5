package parser

import "time"

// ParsedTask is the structured result of parsing one input sentence.
// Title is always non-empty; every other field may be absent.
type ParsedTask struct {
	Title      string      `json:"title"`
	DueDate    *time.Time  `json:"due_date,omitempty"`
	Recurrence *Recurrence `json:"recurrence,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	Icon       string      `json:"icon,omitempty"`
}

// RecurrenceType identifies which repetition rule was recognized.
type RecurrenceType string

const (
	RecurDaily    RecurrenceType = "daily"
	RecurWeekly   RecurrenceType = "weekly"
	RecurBiweekly RecurrenceType = "biweekly"
	RecurMonthly  RecurrenceType = "monthly"
	RecurYearly   RecurrenceType = "yearly"
	RecurInterval RecurrenceType = "interval"
	RecurWeekday  RecurrenceType = "weekday"
)

// Unit is the step unit of an interval recurrence.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
)

// Recurrence is a structured repetition rule. Exactly one variant is
// produced per parse; which fields are meaningful depends on Type:
// Interval uses Interval+Unit, Weekday uses Weekday, Weekly may carry
// DaysOfWeek. Weekday indices follow time.Weekday (Sunday = 0).
type Recurrence struct {
	Type       RecurrenceType `json:"type"`
	Interval   int            `json:"interval,omitempty"`
	Unit       Unit           `json:"unit,omitempty"`
	Weekday    time.Weekday   `json:"weekday,omitempty"`
	DaysOfWeek []time.Weekday `json:"days_of_week,omitempty"`
}
