package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-day format used for task dates and project
// due dates. Dates are stored as entered; parsing happens at sort and
// calendar-placement time.
const DateLayout = "2006-01-02"

// Task is a single work item. ProjectID is a weak reference: a value that
// no longer resolves to a project renders as a placeholder, never an error.
type Task struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Date      string    `json:"date" db:"date"`
	ProjectID string    `json:"project_id" db:"project_id"`
	Progress  int       `json:"progress" db:"progress"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ParseDate parses an ISO calendar-day string. Unparsable input yields the
// zero time so that malformed dates still order consistently.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// TaskField identifies an editable task field. Each field carries its own
// decoding rule; see Apply.
type TaskField string

const (
	TaskFieldName     TaskField = "name"
	TaskFieldDate     TaskField = "date"
	TaskFieldProject  TaskField = "project"
	TaskFieldProgress TaskField = "progress"
)

// ParseTaskField validates a raw field name (e.g. from a route query).
func ParseTaskField(s string) (TaskField, error) {
	switch f := TaskField(s); f {
	case TaskFieldName, TaskFieldDate, TaskFieldProject, TaskFieldProgress:
		return f, nil
	}
	return "", fmt.Errorf("unknown task field %q", s)
}

// Apply decodes raw input per the field's rule and writes it to the task.
// String fields are trimmed and stored as-is. Progress parses as an integer;
// empty or non-numeric input coerces to 0 and out-of-range values clamp to
// [0,100]. This is the single numeric edit policy for the whole application.
func (f TaskField) Apply(t *Task, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f {
	case TaskFieldName:
		t.Name = raw
	case TaskFieldDate:
		t.Date = raw
	case TaskFieldProject:
		t.ProjectID = raw
	case TaskFieldProgress:
		n, err := strconv.Atoi(raw)
		if err != nil {
			n = 0
		}
		t.Progress = clampProgress(n)
	default:
		return fmt.Errorf("unknown task field %q", string(f))
	}
	return nil
}

func clampProgress(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
