package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aufgabe/internal/model"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
	"aufgabe/internal/task/repository"
)

// Toggle flips the completion state. Completing a recurring task also
// creates the next occurrence as a fresh task; un-completing only
// clears the completion fields and never un-spawns anything.
func (uc implUseCase) Toggle(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Toggle.repo.Get: %v", err)
		return model.Task{}, err
	}

	now := uc.now()
	if t.IsCompleted {
		t.IsCompleted = false
		t.CompletedAt = nil
	} else {
		t.IsCompleted = true
		t.CompletedAt = &now
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Toggle.repo.Update: %v", err)
		return model.Task{}, err
	}

	if !t.IsCompleted {
		return t, nil
	}

	uc.recorder.Record(suggest.Event{
		TaskID:    t.ID,
		Title:     t.Title,
		Type:      suggest.EventCompleted,
		Timestamp: now,
		DueDate:   t.DueDate,
	})

	if t.Recur != nil && t.DueDate != nil {
		if err := uc.spawnNextOccurrence(ctx, t); err != nil {
			uc.l.Errorf(ctx, "task.usecase.Toggle.spawnNextOccurrence: %v", err)
		}
	}

	return t, nil
}

// spawnNextOccurrence persists a fresh copy of a recurring task due
// at its next occurrence after the current due date.
func (uc implUseCase) spawnNextOccurrence(ctx context.Context, t model.Task) error {
	next, err := t.Recur.Next(*t.DueDate)
	if err != nil {
		return err
	}

	spawn := model.Task{
		ID:        uuid.NewString(),
		Content:   t.Content,
		Title:     t.Title,
		DueDate:   &next,
		Recur:     t.Recur,
		Tags:      t.Tags,
		Icon:      t.Icon,
		CreatedAt: uc.now(),
	}
	return uc.repo.Create(ctx, spawn)
}
