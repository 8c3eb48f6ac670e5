package usecase

import (
	"context"
	"errors"

	"aufgabe/internal/model"
	"aufgabe/internal/task"
	"aufgabe/internal/task/repository"
)

func (uc implUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Get.repo.Get: %v", err)
		return model.Task{}, err
	}
	return t, nil
}

func (uc implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	out, err := uc.repo.List(ctx, repository.ListOptions{
		Day:              input.Day,
		IncludeCompleted: input.IncludeCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List.repo.List: %v", err)
		return nil, err
	}
	return out, nil
}

func (uc implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete.repo.Delete: %v", err)
		return err
	}
	return nil
}
