package model

import (
	"time"

	"aufgabe/internal/parser"
)

// Task is one persisted task. The parser only ever produces a
// parser.ParsedTask; the task usecase copies it into a Task and owns
// every lifecycle field from there on.
type Task struct {
	ID      string             `json:"id" yaml:"id"`
	Content string             `json:"content" yaml:"content"` // raw input as typed
	Title   string             `json:"title" yaml:"title"`
	DueDate *time.Time         `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Recur   *parser.Recurrence `json:"recurrence,omitempty" yaml:"recurrence,omitempty"`
	Tags    []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
	Icon    string             `json:"icon,omitempty" yaml:"icon,omitempty"`

	IsCompleted     bool       `json:"is_completed" yaml:"is_completed"`
	CreatedAt       time.Time  `json:"created_at" yaml:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	PostponedCount  int        `json:"postponed_count" yaml:"postponed_count"`
	OriginalDueDate *time.Time `json:"original_due_date,omitempty" yaml:"original_due_date,omitempty"`
}
