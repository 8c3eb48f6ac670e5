package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"aufgabe/internal/model"
	"aufgabe/internal/task"
)

func TestExportImportRoundtripJSON(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	texts := []string{"Zahnarzt morgen 14:30", "Gym jeden Montag 18 Uhr", "Einkaufen"}
	for _, txt := range texts {
		if _, err := uc.Create(ctx, task.CreateInput{Text: txt}); err != nil {
			t.Fatalf("Create(%q) error = %v", txt, err)
		}
	}

	data, err := uc.Export(ctx, task.FormatJSON)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	var exported []model.Task
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(exported) != 3 {
		t.Fatalf("exported %d tasks, want 3", len(exported))
	}

	// Import into a fresh store.
	uc2, repo2, _ := newTestUseCase(t)
	out, err := uc2.Import(ctx, data, task.FormatJSON)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if out.Imported != 3 {
		t.Errorf("Imported = %d, want 3", out.Imported)
	}
	if len(repo2.tasks) != 3 {
		t.Errorf("stored tasks = %d, want 3", len(repo2.tasks))
	}
	for _, ex := range exported {
		got, err := repo2.Get(ctx, ex.ID)
		if err != nil {
			t.Fatalf("imported task %s missing: %v", ex.ID, err)
		}
		if got.Title != ex.Title {
			t.Errorf("Title = %q, want %q", got.Title, ex.Title)
		}
		if (got.Recur == nil) != (ex.Recur == nil) {
			t.Errorf("Recur presence mismatch for %q", ex.Title)
		}
	}
}

func TestExportImportRoundtripYAML(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	if _, err := uc.Create(ctx, task.CreateInput{Text: "Müll rausbringen übermorgen"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	data, err := uc.Export(ctx, task.FormatYAML)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	uc2, repo2, _ := newTestUseCase(t)
	out, err := uc2.Import(ctx, data, task.FormatYAML)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if out.Imported != 1 || len(repo2.tasks) != 1 {
		t.Errorf("Imported = %d, stored = %d, want 1/1", out.Imported, len(repo2.tasks))
	}
}

func TestImportReplacesById(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "Einkaufen"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.Title = "Wocheneinkauf"
	data, err := json.Marshal([]model.Task{created})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if _, err := uc.Import(ctx, data, task.FormatJSON); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Wocheneinkauf" {
		t.Errorf("Title = %q, want replaced", got.Title)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("stored tasks = %d, want 1", len(repo.tasks))
	}
}

func TestExportIncludesCompleted(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "Einkaufen"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uc.Toggle(ctx, created.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	data, err := uc.Export(ctx, task.FormatJSON)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	var exported []model.Task
	if err := json.Unmarshal(data, &exported); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(exported) != 1 || !exported[0].IsCompleted {
		t.Errorf("exported = %+v, want one completed task", exported)
	}
}

func TestBadFormatAndBadData(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	if _, err := uc.Export(ctx, task.ExportFormat("xml")); !errors.Is(err, task.ErrBadFormat) {
		t.Errorf("Export(xml) error = %v, want ErrBadFormat", err)
	}
	if _, err := uc.Import(ctx, []byte("{not json"), task.FormatJSON); !errors.Is(err, task.ErrInvalidImport) {
		t.Errorf("Import(bad) error = %v, want ErrInvalidImport", err)
	}
	if _, err := uc.Import(ctx, []byte(`[{"title":"no id"}]`), task.FormatJSON); !errors.Is(err, task.ErrInvalidImport) {
		t.Errorf("Import(no id) error = %v, want ErrInvalidImport", err)
	}
}
