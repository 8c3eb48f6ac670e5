package http

import (
	"time"

	"aufgabe/internal/model"
	"aufgabe/internal/parser"
	"aufgabe/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{Text: r.Text}
}

type updateReq struct {
	Text      string `json:"text" binding:"required,min=1,max=1000"`
	ClearDate bool   `json:"clear_date"`
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{Text: r.Text, ClearDate: r.ClearDate}
}

type listReq struct {
	Day              string `form:"day"` // YYYY-MM-DD
	IncludeCompleted bool   `form:"include_completed"`
}

func (r listReq) toInput(loc *time.Location) (task.ListInput, error) {
	input := task.ListInput{IncludeCompleted: r.IncludeCompleted}
	if r.Day != "" {
		day, err := time.ParseInLocation("2006-01-02", r.Day, loc)
		if err != nil {
			return task.ListInput{}, err
		}
		input.Day = &day
	}
	return input, nil
}

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              string             `json:"id"`
	Content         string             `json:"content"`
	Title           string             `json:"title"`
	DueDate         *time.Time         `json:"due_date,omitempty"`
	Recurrence      *parser.Recurrence `json:"recurrence,omitempty"`
	Tags            []string           `json:"tags,omitempty"`
	Icon            string             `json:"icon,omitempty"`
	IsCompleted     bool               `json:"is_completed"`
	CreatedAt       time.Time          `json:"created_at"`
	CompletedAt     *time.Time         `json:"completed_at,omitempty"`
	PostponedCount  int                `json:"postponed_count"`
	OriginalDueDate *time.Time         `json:"original_due_date,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Content:         t.Content,
		Title:           t.Title,
		DueDate:         t.DueDate,
		Recurrence:      t.Recur,
		Tags:            t.Tags,
		Icon:            t.Icon,
		IsCompleted:     t.IsCompleted,
		CreatedAt:       t.CreatedAt,
		CompletedAt:     t.CompletedAt,
		PostponedCount:  t.PostponedCount,
		OriginalDueDate: t.OriginalDueDate,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}

type importResp struct {
	Imported int `json:"imported"`
}
