package usecase

import (
	"context"
	"errors"

	"aufgabe/internal/model"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/internal/task/repository"
)

// Update re-parses the edited text. Fields the new parse produced
// overwrite stored ones; fields it left absent keep their previous
// value, except the due date when ClearDate is set.
func (uc implUseCase) Update(ctx context.Context, id string, input task.UpdateInput) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.repo.Get: %v", err)
		return model.Task{}, err
	}

	now := uc.now()
	parsed := uc.parser.Parse(input.Text, now)

	t.Content = input.Text
	t.Title = parsed.Title
	if parsed.DueDate != nil {
		t.DueDate = parsed.DueDate
	} else if input.ClearDate {
		t.DueDate = nil
	}
	if parsed.Recurrence != nil {
		t.Recur = parsed.Recurrence
	}
	if len(parsed.Tags) > 0 {
		t.Tags = parsed.Tags
	}
	if parsed.Icon != "" {
		t.Icon = parsed.Icon
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.repo.Update: %v", err)
		return model.Task{}, err
	}

	uc.recorder.Record(suggest.Event{
		TaskID:    t.ID,
		Title:     t.Title,
		Type:      suggest.EventEdited,
		Timestamp: now,
		DueDate:   t.DueDate,
	})

	return t, nil
}
