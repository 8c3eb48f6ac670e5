package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aufgabe/internal/task"
	"aufgabe/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Unknown
// errors become a generic 500; the detail stays in the logs.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrNoDueDate),
		errors.Is(err, task.ErrBadFormat),
		errors.Is(err, task.ErrInvalidImport):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
