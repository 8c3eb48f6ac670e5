package reminder

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"aufgabe/internal/task/repository"
	"aufgabe/pkg/log"
)

// Scanner runs on a cron schedule and notifies about open tasks due
// within the lead window. The fired set remembers which task/due-date
// pairs have already been announced; postponing a task changes its
// due date and re-arms it.
type Scanner struct {
	l        log.Logger
	repo     repository.Repository
	notifier Notifier
	lead     time.Duration

	cron *cron.Cron
	now  func() time.Time

	mu    sync.Mutex
	fired map[string]struct{}
}

func NewScanner(l log.Logger, repo repository.Repository, notifier Notifier, lead time.Duration) *Scanner {
	return &Scanner{
		l:        l,
		repo:     repo,
		notifier: notifier,
		lead:     lead,
		now:      time.Now,
		fired:    make(map[string]struct{}),
	}
}

// Start schedules scans under spec (standard cron, e.g. "* * * * *")
// and launches the cron runner.
func (s *Scanner) Start(spec string) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(spec, func() {
		s.Scan(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the cron runner and waits for a running scan to finish.
func (s *Scanner) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// Scan performs one pass. Notifier failures are logged and the task
// stays armed for the next pass.
func (s *Scanner) Scan(ctx context.Context) {
	now := s.now()
	horizon := now.Add(s.lead)

	tasks, err := s.repo.List(ctx, repository.ListOptions{DueBefore: &horizon})
	if err != nil {
		s.l.Errorf(ctx, "reminder.Scan.repo.List: %v", err)
		return
	}

	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		key := t.ID + "@" + t.DueDate.UTC().Format(time.RFC3339)
		if s.alreadyFired(key) {
			continue
		}
		if err := s.notifier.Notify(ctx, t); err != nil {
			s.l.Errorf(ctx, "reminder.Scan.notify %s: %v", t.ID, err)
			continue
		}
		s.markFired(key)
	}
}

func (s *Scanner) alreadyFired(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.fired[key]
	return ok
}

func (s *Scanner) markFired(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fired[key] = struct{}{}
}
