package usecase

import (
	"context"
	"errors"

	"aufgabe/internal/model"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/internal/task/repository"
)

// Postpone pushes the due date one day out. The first postpone keeps
// the original due date around so later inspection can see how far a
// task has drifted.
func (uc implUseCase) Postpone(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Postpone.repo.Get: %v", err)
		return model.Task{}, err
	}

	if t.DueDate == nil {
		return model.Task{}, task.ErrNoDueDate
	}

	if t.OriginalDueDate == nil {
		orig := *t.DueDate
		t.OriginalDueDate = &orig
	}
	next := t.DueDate.AddDate(0, 0, 1)
	t.DueDate = &next
	t.PostponedCount++

	if err := uc.repo.Update(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Postpone.repo.Update: %v", err)
		return model.Task{}, err
	}

	uc.recorder.Record(suggest.Event{
		TaskID:    t.ID,
		Title:     t.Title,
		Type:      suggest.EventPostponed,
		Timestamp: uc.now(),
		DueDate:   t.DueDate,
	})

	return t, nil
}
