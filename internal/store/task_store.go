package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hdng/taskboard/internal/model"
)

// CreateTask inserts a new task. Generates a UUID if ID is empty and
// returns the stored task.
func (s *SQLiteStore) CreateTask(
	ctx context.Context,
	task model.Task,
) (model.Task, error) {
	if strings.TrimSpace(task.Name) == "" {
		return model.Task{}, fmt.Errorf("task name must not be empty")
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Progress < 0 {
		task.Progress = 0
	}
	if task.Progress > 100 {
		task.Progress = 100
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, date, project_id, progress, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Name, task.Date, task.ProjectID, task.Progress,
		task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

// UpdateTaskField applies a single-field edit. The raw value is decoded per
// the field's rule (see model.TaskField.Apply) and the updated task is
// returned. An unknown field or a rejected decode leaves the row unchanged.
func (s *SQLiteStore) UpdateTaskField(
	ctx context.Context,
	id string,
	field model.TaskField,
	raw string,
) (model.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	if err := field.Apply(task, raw); err != nil {
		return model.Task{}, fmt.Errorf("decoding %s for task %s: %w", field, id, err)
	}
	task.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET name = ?, date = ?, project_id = ?, progress = ?, updated_at = ?
		WHERE id = ?`,
		task.Name, task.Date, task.ProjectID, task.Progress, task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("updating task %s: %w", id, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return model.Task{}, fmt.Errorf("task %s not found", id)
	}
	return *task, nil
}

// DeleteTask removes a task by ID.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// GetTaskByID retrieves a single task by ID.
func (s *SQLiteStore) GetTaskByID(
	ctx context.Context,
	id string,
) (*model.Task, error) {
	var task model.Task
	err := s.db.GetContext(ctx, &task, "SELECT * FROM tasks WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return &task, nil
}

// GetTasks retrieves tasks matching the filter, ordered by creation time so
// that in-memory sorting starts from a deterministic snapshot.
func (s *SQLiteStore) GetTasks(
	ctx context.Context,
	filter TaskFilter,
) ([]model.Task, error) {
	var conditions []string
	var args []interface{}

	if filter.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *filter.ProjectID)
	}

	query := "SELECT * FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	var tasks []model.Task
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}
