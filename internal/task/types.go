package task

import "time"

// CreateInput is the input for creating a task from free text.
type CreateInput struct {
	Text string // natural-language task description
}

// UpdateInput is the input for editing a task's text. The edited text
// is re-parsed; fields the parser recognized overwrite the stored
// ones, fields it returned absent keep their previous value. ClearDate
// additionally drops a stored due date when the new text mentions
// none — the default is to keep it.
type UpdateInput struct {
	Text      string
	ClearDate bool
}

// ListInput filters task listings. Day selects tasks due on that
// calendar day (the store's secondary index); nil lists everything.
type ListInput struct {
	Day              *time.Time
	IncludeCompleted bool
}

// ExportFormat selects the serialization used by Export/Import.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ImportOutput reports how many tasks an import merged in.
type ImportOutput struct {
	Imported int
}
