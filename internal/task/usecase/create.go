package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aufgabe/internal/model"
	"aufgabe/internal/parser"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/pkg/gcalendar"
)

func (uc implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	now := uc.now()
	parsed := uc.parser.Parse(input.Text, now)

	t := model.Task{
		ID:        uuid.NewString(),
		Content:   input.Text,
		Title:     parsed.Title,
		DueDate:   parsed.DueDate,
		Recur:     parsed.Recurrence,
		Tags:      parsed.Tags,
		Icon:      parsed.Icon,
		CreatedAt: now,
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.repo.Create: %v", err)
		return model.Task{}, err
	}

	uc.recorder.Record(suggest.Event{
		TaskID:    t.ID,
		Title:     t.Title,
		Type:      suggest.EventCreated,
		Timestamp: now,
		DueDate:   t.DueDate,
	})

	uc.pushToCalendar(ctx, t)

	return t, nil
}

func (uc implUseCase) Preview(ctx context.Context, text string) parser.ParsedTask {
	return uc.parser.Parse(text, uc.now())
}

// pushToCalendar mirrors a dated task into Google Calendar. Failures
// are logged only; the local store stays the source of truth.
func (uc implUseCase) pushToCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	summary := t.Title
	if t.Icon != "" {
		summary = t.Icon + " " + t.Title
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     summary,
		Description: t.Content,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(30 * time.Minute),
		Timezone:    uc.parser.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.pushToCalendar: %v", err)
	}
}
