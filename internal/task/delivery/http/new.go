package http

import (
	"time"

	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/pkg/log"
)

// Suggester is the read side of the suggestion engine.
type Suggester interface {
	Suggestions() []suggest.Suggestion
}

type handler struct {
	l    log.Logger
	uc   task.UseCase
	sugg Suggester

	// loc interprets day filters; it matches the parser timezone.
	loc *time.Location
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, sugg Suggester, loc *time.Location) *handler {
	return &handler{
		l:    l,
		uc:   uc,
		sugg: sugg,
		loc:  loc,
	}
}
