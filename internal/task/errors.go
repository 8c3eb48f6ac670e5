package task

import "errors"

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrNoDueDate     = errors.New("task has no due date to postpone")
	ErrBadFormat     = errors.New("unsupported export format")
	ErrInvalidImport = errors.New("import data is not valid")
)
