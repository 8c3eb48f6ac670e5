package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
)

func TestCreateParsesAndPersists(t *testing.T) {
	uc, repo, rec := newTestUseCase(t)

	got, err := uc.Create(context.Background(), task.CreateInput{Text: "Zahnarzt morgen 14:30"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got.ID == "" {
		t.Error("ID is empty")
	}
	if got.Title != "Zahnarzt" {
		t.Errorf("Title = %q, want %q", got.Title, "Zahnarzt")
	}
	if got.Content != "Zahnarzt morgen 14:30" {
		t.Errorf("Content = %q", got.Content)
	}
	want := time.Date(2024, 5, 2, 14, 30, 0, 0, berlin())
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, want)
	}
	if !got.CreatedAt.Equal(fixedNow) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, fixedNow)
	}

	stored, err := repo.Get(context.Background(), got.ID)
	if err != nil {
		t.Fatalf("stored task missing: %v", err)
	}
	if stored.Title != got.Title {
		t.Errorf("stored Title = %q", stored.Title)
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded events = %d, want 1", len(rec.events))
	}
	ev := rec.last()
	if ev.Type != suggest.EventCreated || ev.TaskID != got.ID || ev.Title != "Zahnarzt" {
		t.Errorf("event = %+v", ev)
	}
}

func TestCreateRepoErrorPropagates(t *testing.T) {
	uc, repo, rec := newTestUseCase(t)
	boom := errors.New("disk full")
	repo.err = boom

	_, err := uc.Create(context.Background(), task.CreateInput{Text: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("Create() error = %v, want %v", err, boom)
	}
	if len(rec.events) != 0 {
		t.Errorf("events recorded on failed create: %v", rec.events)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	uc, repo, rec := newTestUseCase(t)

	parsed := uc.Preview(context.Background(), "Gym jeden Montag 18 Uhr")
	if parsed.Title != "Gym" {
		t.Errorf("Title = %q, want %q", parsed.Title, "Gym")
	}
	if parsed.Recurrence == nil {
		t.Error("Recurrence is nil")
	}
	if len(repo.tasks) != 0 {
		t.Errorf("preview persisted %d tasks", len(repo.tasks))
	}
	if len(rec.events) != 0 {
		t.Errorf("preview recorded events: %v", rec.events)
	}
}
