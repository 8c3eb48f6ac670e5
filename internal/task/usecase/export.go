package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"aufgabe/internal/model"
	"aufgabe/internal/task"
	"aufgabe/internal/task/repository"
)

func (uc implUseCase) Export(ctx context.Context, format task.ExportFormat) ([]byte, error) {
	tasks, err := uc.repo.List(ctx, repository.ListOptions{IncludeCompleted: true})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Export.repo.List: %v", err)
		return nil, err
	}

	switch format {
	case task.FormatJSON:
		return json.MarshalIndent(tasks, "", "  ")
	case task.FormatYAML:
		return yaml.Marshal(tasks)
	default:
		return nil, fmt.Errorf("%w: %q", task.ErrBadFormat, format)
	}
}

// Import merges serialized tasks in by id. Existing tasks with the
// same id are replaced; everything else is left alone.
func (uc implUseCase) Import(ctx context.Context, data []byte, format task.ExportFormat) (task.ImportOutput, error) {
	var tasks []model.Task

	switch format {
	case task.FormatJSON:
		if err := json.Unmarshal(data, &tasks); err != nil {
			return task.ImportOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidImport, err)
		}
	case task.FormatYAML:
		if err := yaml.Unmarshal(data, &tasks); err != nil {
			return task.ImportOutput{}, fmt.Errorf("%w: %v", task.ErrInvalidImport, err)
		}
	default:
		return task.ImportOutput{}, fmt.Errorf("%w: %q", task.ErrBadFormat, format)
	}

	imported := 0
	for _, t := range tasks {
		if t.ID == "" {
			return task.ImportOutput{Imported: imported}, fmt.Errorf("%w: task without id", task.ErrInvalidImport)
		}
		if err := uc.repo.Upsert(ctx, t); err != nil {
			uc.l.Errorf(ctx, "task.usecase.Import.repo.Upsert: %v", err)
			return task.ImportOutput{Imported: imported}, err
		}
		imported++
	}

	return task.ImportOutput{Imported: imported}, nil
}
