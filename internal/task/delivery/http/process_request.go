package http

import (
	"github.com/gin-gonic/gin"

	"aufgabe/internal/task"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, err
	}
	return req.toInput(h.loc)
}

// processParseReq binds the parse preview request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// exportFormat reads the format query parameter, defaulting to JSON.
func exportFormat(c *gin.Context) task.ExportFormat {
	switch c.Query("format") {
	case "yaml", "yml":
		return task.FormatYAML
	default:
		return task.FormatJSON
	}
}
