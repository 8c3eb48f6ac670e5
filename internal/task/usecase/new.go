package usecase

import (
	"time"

	"aufgabe/internal/parser"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task/repository"
	"aufgabe/pkg/gcalendar"
	pkgLog "aufgabe/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	parser   *parser.Parser
	recorder suggest.Recorder

	// calendar is optional. Nil disables the push entirely; a push
	// failure is logged and never fails the task operation.
	calendar   *gcalendar.Client
	calendarID string

	now func() time.Time
}

// New creates a new task UseCase instance. calendar may be nil when
// no Google Calendar integration is configured.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	p *parser.Parser,
	recorder suggest.Recorder,
	calendar *gcalendar.Client,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		parser:     p,
		recorder:   recorder,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}
