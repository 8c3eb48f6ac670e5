package suggest

import "time"

// EventType classifies a recorded task event.
type EventType string

const (
	EventCreated   EventType = "created"
	EventCompleted EventType = "completed"
	EventPostponed EventType = "postponed"
	EventEdited    EventType = "edited"
)

// Event is one observation about a task, recorded by the task
// usecase as a side effect of its operations.
type Event struct {
	TaskID    string
	Title     string
	Type      EventType
	Timestamp time.Time
	DueDate   *time.Time
}

// SuggestionType names the heuristic that produced a suggestion.
type SuggestionType string

const (
	SuggestRecurringWeekly SuggestionType = "recurring_weekly"
	SuggestDailyHabit      SuggestionType = "daily_habit"
	SuggestSetTime         SuggestionType = "set_time"
	SuggestAdjustDate      SuggestionType = "adjust_date"
)

// Suggestion is a proposed improvement to how a recurring chore is
// tracked, derived from historical completion patterns.
type Suggestion struct {
	Type       SuggestionType `json:"type"`
	Title      string         `json:"title"`
	Message    string         `json:"message"`
	Action     string         `json:"action"`
	Confidence float64        `json:"confidence"` // 0..1
}

// Recorder is the part of the engine the task usecase depends on.
type Recorder interface {
	Record(ev Event)
}
