package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"aufgabe/internal/model"
	"aufgabe/internal/parser"
	"aufgabe/internal/task/repository"
)

const taskColumns = `id, content, title, due_date, due_day, recurrence, tags, icon,
	is_completed, created_at, completed_at, postponed_count, original_due`

func (r *implRepository) Create(ctx context.Context, t model.Task) error {
	return r.insert(ctx, t, "INSERT")
}

func (r *implRepository) Upsert(ctx context.Context, t model.Task) error {
	return r.insert(ctx, t, "INSERT OR REPLACE")
}

func (r *implRepository) insert(ctx context.Context, t model.Task, verb string) error {
	row, err := r.toRow(t)
	if err != nil {
		return err
	}

	query := verb + ` INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		row.id, row.content, row.title, row.dueDate, row.dueDay, row.recurrence,
		row.tags, row.icon, row.isCompleted, row.createdAt, row.completedAt,
		row.postponedCount, row.originalDue,
	)
	if err != nil {
		if verb == "INSERT" && strings.Contains(err.Error(), "UNIQUE constraint") {
			return repository.ErrConflict
		}
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	return nil
}

func (r *implRepository) Get(ctx context.Context, id string) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	t, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}

func (r *implRepository) Update(ctx context.Context, t model.Task) error {
	row, err := r.toRow(t)
	if err != nil {
		return err
	}

	query := `UPDATE tasks SET content = ?, title = ?, due_date = ?, due_day = ?,
		recurrence = ?, tags = ?, icon = ?, is_completed = ?, completed_at = ?,
		postponed_count = ?, original_due = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		row.content, row.title, row.dueDate, row.dueDay, row.recurrence, row.tags,
		row.icon, row.isCompleted, row.completedAt, row.postponedCount,
		row.originalDue, row.id,
	)
	if err != nil {
		return fmt.Errorf("update task %s: %w", t.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task %s: %w", t.ID, err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var (
		conds []string
		args  []any
	)
	if opt.Day != nil {
		conds = append(conds, "due_day = ?")
		args = append(args, opt.Day.In(r.loc).Format("2006-01-02"))
	}
	if opt.DueBefore != nil {
		conds = append(conds, "due_date IS NOT NULL AND due_date < ?")
		args = append(args, opt.DueBefore.UTC().Format(time.RFC3339))
	}
	if !opt.IncludeCompleted {
		conds = append(conds, "is_completed = 0")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var out []model.Task
	for rows.Next() {
		t, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// taskRow is the flat column representation of a task.
type taskRow struct {
	id, content, title string
	dueDate            sql.NullString
	dueDay             sql.NullString
	recurrence         sql.NullString
	tags               string
	icon               string
	isCompleted        bool
	createdAt          string
	completedAt        sql.NullString
	postponedCount     int
	originalDue        sql.NullString
}

func (r *implRepository) toRow(t model.Task) (taskRow, error) {
	row := taskRow{
		id:             t.ID,
		content:        t.Content,
		title:          t.Title,
		icon:           t.Icon,
		isCompleted:    t.IsCompleted,
		createdAt:      t.CreatedAt.UTC().Format(time.RFC3339),
		postponedCount: t.PostponedCount,
	}

	if t.DueDate != nil {
		row.dueDate = sql.NullString{String: t.DueDate.UTC().Format(time.RFC3339), Valid: true}
		row.dueDay = sql.NullString{String: t.DueDate.In(r.loc).Format("2006-01-02"), Valid: true}
	}
	if t.CompletedAt != nil {
		row.completedAt = sql.NullString{String: t.CompletedAt.UTC().Format(time.RFC3339), Valid: true}
	}
	if t.OriginalDueDate != nil {
		row.originalDue = sql.NullString{String: t.OriginalDueDate.UTC().Format(time.RFC3339), Valid: true}
	}
	if t.Recur != nil {
		b, err := json.Marshal(t.Recur)
		if err != nil {
			return taskRow{}, fmt.Errorf("marshal recurrence: %w", err)
		}
		row.recurrence = sql.NullString{String: string(b), Valid: true}
	}

	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return taskRow{}, fmt.Errorf("marshal tags: %w", err)
	}
	row.tags = string(tags)

	return row, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func (r *implRepository) scan(src scannable) (model.Task, error) {
	var row taskRow
	err := src.Scan(
		&row.id, &row.content, &row.title, &row.dueDate, &row.dueDay,
		&row.recurrence, &row.tags, &row.icon, &row.isCompleted, &row.createdAt,
		&row.completedAt, &row.postponedCount, &row.originalDue,
	)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:             row.id,
		Content:        row.content,
		Title:          row.title,
		Icon:           row.icon,
		IsCompleted:    row.isCompleted,
		PostponedCount: row.postponedCount,
	}

	if t.CreatedAt, err = r.parseTime(row.createdAt); err != nil {
		return model.Task{}, err
	}
	if t.DueDate, err = r.parseNullTime(row.dueDate); err != nil {
		return model.Task{}, err
	}
	if t.CompletedAt, err = r.parseNullTime(row.completedAt); err != nil {
		return model.Task{}, err
	}
	if t.OriginalDueDate, err = r.parseNullTime(row.originalDue); err != nil {
		return model.Task{}, err
	}

	if row.recurrence.Valid {
		var rec parser.Recurrence
		if err := json.Unmarshal([]byte(row.recurrence.String), &rec); err != nil {
			return model.Task{}, fmt.Errorf("unmarshal recurrence: %w", err)
		}
		t.Recur = &rec
	}
	if err := json.Unmarshal([]byte(row.tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("unmarshal tags: %w", err)
	}

	return t, nil
}

func (r *implRepository) parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", s, err)
	}
	return t.In(r.loc), nil
}

func (r *implRepository) parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := r.parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
