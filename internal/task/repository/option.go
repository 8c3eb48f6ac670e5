package repository

import "time"

// ListOptions narrows List results.
type ListOptions struct {
	// Day filters to tasks due on that calendar day (store timezone).
	Day *time.Time

	// IncludeCompleted keeps completed tasks in the result.
	IncludeCompleted bool

	// DueBefore filters to tasks due strictly before the given
	// instant; used by the reminder scanner.
	DueBefore *time.Time
}
