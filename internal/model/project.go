package model

import (
	"fmt"
	"strings"
	"time"
)

// Project status constants.
const (
	ProjectStatusNotStarted = "not-started"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusComplete   = "complete"
)

// Project is a grouping container that tasks reference by ID.
type Project struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Due       string    `json:"due" db:"due"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ValidProjectStatus reports whether s is one of the project status values.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusNotStarted, ProjectStatusInProgress, ProjectStatusComplete:
		return true
	}
	return false
}

// ProjectField identifies an editable project field.
type ProjectField string

const (
	ProjectFieldName   ProjectField = "name"
	ProjectFieldDue    ProjectField = "due"
	ProjectFieldStatus ProjectField = "status"
)

// ParseProjectField validates a raw field name.
func ParseProjectField(s string) (ProjectField, error) {
	switch f := ProjectField(s); f {
	case ProjectFieldName, ProjectFieldDue, ProjectFieldStatus:
		return f, nil
	}
	return "", fmt.Errorf("unknown project field %q", s)
}

// Apply decodes raw input per the field's rule and writes it to the project.
// Status is a closed set: an invalid value rejects the edit and keeps the
// previous value.
func (f ProjectField) Apply(p *Project, raw string) error {
	raw = strings.TrimSpace(raw)
	switch f {
	case ProjectFieldName:
		p.Name = raw
	case ProjectFieldDue:
		p.Due = raw
	case ProjectFieldStatus:
		if !ValidProjectStatus(raw) {
			return fmt.Errorf("invalid project status %q", raw)
		}
		p.Status = raw
	default:
		return fmt.Errorf("unknown project field %q", string(f))
	}
	return nil
}
