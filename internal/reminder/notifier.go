// Package reminder periodically scans for tasks coming due and fans
// them out to a Notifier. Each task fires at most once per due date.
package reminder

import (
	"context"

	"aufgabe/internal/model"
	"aufgabe/pkg/log"
)

// Notifier delivers one reminder. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(ctx context.Context, t model.Task) error
}

// LogNotifier writes reminders to the structured log. It is the
// default sink when no external channel is configured.
type LogNotifier struct {
	l log.Logger
}

func NewLogNotifier(l log.Logger) *LogNotifier {
	return &LogNotifier{l: l}
}

func (n *LogNotifier) Notify(ctx context.Context, t model.Task) error {
	n.l.Infof(ctx, "reminder: %s %s due at %s", t.Icon, t.Title, t.DueDate.Format("15:04"))
	return nil
}
