package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aufgabe/internal/suggest"
	"aufgabe/internal/task"
)

func TestToggleCompletesAndUncompletes(t *testing.T) {
	uc, _, rec := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "Einkaufen"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	done, err := uc.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !done.IsCompleted {
		t.Error("IsCompleted = false after first toggle")
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(fixedNow) {
		t.Errorf("CompletedAt = %v, want %v", done.CompletedAt, fixedNow)
	}
	if ev := rec.last(); ev.Type != suggest.EventCompleted {
		t.Errorf("last event = %+v, want completed", ev)
	}

	undone, err := uc.Toggle(ctx, created.ID)
	if err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if undone.IsCompleted || undone.CompletedAt != nil {
		t.Errorf("after second toggle: completed=%v at=%v", undone.IsCompleted, undone.CompletedAt)
	}
}

func TestToggleSpawnsNextOccurrence(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "Gym jeden Montag 18 Uhr"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Recur == nil || created.DueDate == nil {
		t.Fatalf("setup: recur=%v due=%v", created.Recur, created.DueDate)
	}

	if _, err := uc.Toggle(ctx, created.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	if len(repo.tasks) != 2 {
		t.Fatalf("stored tasks = %d, want original plus spawn", len(repo.tasks))
	}
	var spawn *time.Time
	for id, stored := range repo.tasks {
		if id == created.ID {
			continue
		}
		if stored.IsCompleted {
			t.Error("spawned task is completed")
		}
		if stored.Recur == nil {
			t.Error("spawned task lost its recurrence")
		}
		spawn = stored.DueDate
	}
	// "jeden Montag" anchors the first instance to today; the spawn
	// lands on the following Monday.
	want := time.Date(2024, 5, 6, 18, 0, 0, 0, berlin())
	if spawn == nil || !spawn.Equal(want) {
		t.Errorf("spawned DueDate = %v, want %v", spawn, want)
	}
}

func TestToggleNonRecurringSpawnsNothing(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, task.CreateInput{Text: "Zahnarzt morgen 14:30"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uc.Toggle(ctx, created.ID); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if len(repo.tasks) != 1 {
		t.Errorf("stored tasks = %d, want 1", len(repo.tasks))
	}
}

func TestToggleMissingTask(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	_, err := uc.Toggle(context.Background(), "nope")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("Toggle() error = %v, want ErrTaskNotFound", err)
	}
}
