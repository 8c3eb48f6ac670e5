package task

import (
	"context"

	"aufgabe/internal/model"
	"aufgabe/internal/parser"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create parses free text and persists the resulting task.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Update re-parses edited text for an existing task.
	Update(ctx context.Context, id string, input UpdateInput) (model.Task, error)

	// Toggle flips completion. Completing a recurring task also
	// schedules its next occurrence.
	Toggle(ctx context.Context, id string) (model.Task, error)

	// Postpone pushes the due date one day out.
	Postpone(ctx context.Context, id string) (model.Task, error)

	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, input ListInput) ([]model.Task, error)

	// Export serializes all tasks; Import merges serialized tasks in
	// by id.
	Export(ctx context.Context, format ExportFormat) ([]byte, error)
	Import(ctx context.Context, data []byte, format ExportFormat) (ImportOutput, error)

	// Preview parses text without persisting anything.
	Preview(ctx context.Context, text string) parser.ParsedTask
}
