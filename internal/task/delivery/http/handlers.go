package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"aufgabe/internal/task"
	"aufgabe/pkg/response"
)

// Create godoc
// @Summary     Create a task from free text
// @Description Parses a German/English sentence into title, due date, recurrence, tags and icon, then persists the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks, optionally limited to one calendar day. Completed tasks are hidden unless requested.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       day               query string false "Calendar day filter (YYYY-MM-DD)"
// @Param       include_completed query bool   false "Include completed tasks"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Get one task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Update godoc
// @Summary     Edit a task's text
// @Description Re-parses the edited text. Recognized fields overwrite stored ones; absent fields keep their previous value.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Edited text"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, c.Param("id"), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Completing a recurring task also schedules its next occurrence as a new task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Toggle(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Postpone godoc
// @Summary     Postpone a task by one day
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request - task has no due date"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/postpone [POST]
func (h *handler) Postpone(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Postpone(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Postpone: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output))
}

// Export godoc
// @Summary     Export all tasks
// @Tags        Tasks
// @Produce     json
// @Param       format query string false "json or yaml (default json)"
// @Success     200 {string} string "serialized tasks"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	format := exportFormat(c)
	data, err := h.uc.Export(ctx, format)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		h.mapError(c, err)
		return
	}

	contentType := "application/json"
	if format == task.FormatYAML {
		contentType = "application/yaml"
	}
	c.Data(http.StatusOK, contentType, data)
}

// Import godoc
// @Summary     Import tasks
// @Description Merges serialized tasks into the store by id.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       format query string false "json or yaml (default json)"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/import [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Import(ctx, data, exportFormat(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, importResp{Imported: output.Imported})
}

// Parse godoc
// @Summary     Preview a parse
// @Description Parses text without persisting anything. Used for live previews while typing.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Text to parse"
// @Success     200 {object} parser.ParsedTask
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.uc.Preview(ctx, req.Text))
}

// Suggestions godoc
// @Summary     List behavioral suggestions
// @Description Returns recurrence and scheduling proposals derived from task history.
// @Tags        Suggestions
// @Produce     json
// @Success     200 {array} suggest.Suggestion
// @Router      /api/v1/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	response.OK(c, h.sugg.Suggestions())
}
