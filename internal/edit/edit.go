// Package edit implements the inline cell-editing state machine used by the
// tasks table: viewing -> editing -> viewing, committing on blur.
package edit

import (
	"fmt"

	"github.com/hdng/taskboard/internal/model"
)

// Session identifies the cell currently being edited.
type Session struct {
	RowID string
	Field model.TaskField
}

// Commit carries a committed edit back to the owner for dispatch.
type Commit struct {
	RowID string
	Field model.TaskField
	Value string
}

// Controller tracks row edit mode and the single active edit session for a
// view. Per-cell editing is gated behind row edit mode: a cell can only be
// opened on the row that was explicitly put into edit mode.
type Controller struct {
	rowID    string
	session  *Session
	pending  string
	original string
}

// EnterRow puts a row into edit mode, making its cells editable. Entering a
// different row first abandons any in-flight session without committing.
func (c *Controller) EnterRow(rowID string) {
	if c.rowID != rowID {
		c.session = nil
	}
	c.rowID = rowID
}

// ExitRow leaves row edit mode, discarding any uncommitted session.
func (c *Controller) ExitRow() {
	c.rowID = ""
	c.session = nil
}

// InRowMode reports whether the given row is in edit mode.
func (c *Controller) InRowMode(rowID string) bool {
	return c.rowID != "" && c.rowID == rowID
}

// Begin opens an edit session on a cell. The row must be in edit mode and no
// other session may be active.
func (c *Controller) Begin(rowID string, field model.TaskField, current string) error {
	if !c.InRowMode(rowID) {
		return fmt.Errorf("row %s is not in edit mode", rowID)
	}
	if c.session != nil {
		return fmt.Errorf("cell %s/%s is already being edited", c.session.RowID, c.session.Field)
	}
	c.session = &Session{RowID: rowID, Field: field}
	c.pending = current
	c.original = current
	return nil
}

// Editing returns the active session, or nil when in viewing state.
func (c *Controller) Editing() *Session {
	return c.session
}

// Pending returns the in-flight input value.
func (c *Controller) Pending() string {
	return c.pending
}

// SetPending records typed input without committing it.
func (c *Controller) SetPending(value string) {
	c.pending = value
}

// Blur ends the session on loss of focus and returns the commit to apply.
// This is the only transition out of editing besides Cancel.
func (c *Controller) Blur() (Commit, bool) {
	if c.session == nil {
		return Commit{}, false
	}
	commit := Commit{
		RowID: c.session.RowID,
		Field: c.session.Field,
		Value: c.pending,
	}
	c.session = nil
	c.pending = ""
	c.original = ""
	return commit, true
}

// Cancel discards pending input and returns to viewing; the last committed
// value is left untouched.
func (c *Controller) Cancel() {
	c.session = nil
	c.pending = ""
	c.original = ""
}

// Original returns the value the cell held when editing began.
func (c *Controller) Original() string {
	return c.original
}
