package repository

import (
	"context"

	"aufgabe/internal/model"
)

// Repository is the task store: a key-value store keyed by task id
// with a secondary lookup by due-date day.
type Repository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Upsert(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
}
