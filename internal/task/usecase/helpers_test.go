package usecase

import (
	"context"
	"testing"
	"time"

	"aufgabe/internal/model"
	"aufgabe/internal/parser"
	"aufgabe/internal/suggest"
	"aufgabe/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo is an in-memory Repository.
type mockRepo struct {
	tasks map[string]model.Task
	err   error // forced error for every call when set
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.Task)}
}

func (m *mockRepo) Create(ctx context.Context, t model.Task) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tasks[t.ID]; ok {
		return repository.ErrConflict
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (model.Task, error) {
	if m.err != nil {
		return model.Task{}, m.err
	}
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *mockRepo) Update(ctx context.Context, t model.Task) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tasks[t.ID]; !ok {
		return repository.ErrNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) Upsert(ctx context.Context, t model.Task) error {
	if m.err != nil {
		return m.err
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, t := range m.tasks {
		if !opt.IncludeCompleted && t.IsCompleted {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// mockRecorder captures events for assertions.
type mockRecorder struct {
	events []suggest.Event
}

func (m *mockRecorder) Record(ev suggest.Event) {
	m.events = append(m.events, ev)
}

func (m *mockRecorder) last() suggest.Event {
	return m.events[len(m.events)-1]
}

// fixedNow is a Wednesday morning in Berlin.
var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, berlin())

func berlin() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic(err)
	}
	return loc
}

func newTestUseCase(t *testing.T) (*implUseCase, *mockRepo, *mockRecorder) {
	t.Helper()
	p, err := parser.New("Europe/Berlin")
	if err != nil {
		t.Fatalf("parser.New() error = %v", err)
	}
	repo := newMockRepo()
	rec := &mockRecorder{}
	uc := New(&mockLogger{}, repo, p, rec, nil, "")
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, rec
}
