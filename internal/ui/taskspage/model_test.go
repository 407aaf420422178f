package taskspage

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdng/taskboard/internal/keys"
	"github.com/hdng/taskboard/internal/model"
	"github.com/hdng/taskboard/internal/tasksort"
)

func newTestModel() Model {
	m := New(keys.DefaultKeyMap(), tasksort.State{Column: tasksort.ColumnDate}, 100, 30)
	m.SetData([]model.Task{
		{ID: "a", Name: "Pay bills", Date: "2025-11-05", Progress: 0},
		{ID: "b", Name: "Review PRs", Date: "2025-11-20", Progress: 50},
		{ID: "c", Name: "Write docs", Date: "2025-11-10", Progress: 100},
	}, []model.Project{
		{ID: "p1", Name: "Website"},
	})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSortKeyTogglesColumn(t *testing.T) {
	m := newTestModel()

	// Initial: date descending -> b, c, a.
	assert.Equal(t, "b", m.sorted[0].ID)

	// Reselecting the date column flips to ascending.
	m, _ = m.Update(keyRune('2'))
	assert.Equal(t, tasksort.Ascending, m.SortState().Direction)
	assert.Equal(t, "a", m.sorted[0].ID)

	// A different column starts descending.
	m, _ = m.Update(keyRune('1'))
	assert.Equal(t, tasksort.State{Column: tasksort.ColumnName, Direction: tasksort.Descending}, m.SortState())
	assert.Equal(t, "Write docs", m.sorted[0].Name)
}

func TestRowEditModeGatesCellEditing(t *testing.T) {
	m := newTestModel()

	// Column keys sort when the row is not in edit mode.
	m, _ = m.Update(keyRune('1'))
	assert.Nil(t, m.editor.Editing())

	// Enter row edit mode, then open the name cell.
	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('1'))
	require.NotNil(t, m.editor.Editing())
	assert.Equal(t, model.TaskFieldName, m.editor.Editing().Field)
}

func TestCommitOnBlurEmitsEditMsg(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('4')) // progress cell
	require.NotNil(t, m.editor.Editing())
	rowID := m.editor.Editing().RowID

	m.editInput.SetValue("75")
	m.editor.SetPending("75")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	commit, ok := msg.(CommitEditMsg)
	require.True(t, ok)
	assert.Equal(t, rowID, commit.RowID)
	assert.Equal(t, model.TaskFieldProgress, commit.Field)
	assert.Equal(t, "75", commit.Value)

	// Back in viewing state; the edit control is gone.
	assert.Nil(t, m.editor.Editing())
}

func TestEscCancelsEdit(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(keyRune('e'))
	m, _ = m.Update(keyRune('1'))
	require.NotNil(t, m.editor.Editing())

	m.editInput.SetValue("scratch that")
	m.editor.SetPending("scratch that")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Nil(t, m.editor.Editing())
}

func TestArmEditOpensRequestedCell(t *testing.T) {
	m := newTestModel()

	m.ArmEdit("c", "name")
	require.NotNil(t, m.editor.Editing())
	assert.Equal(t, "c", m.editor.Editing().RowID)
	assert.Equal(t, model.TaskFieldName, m.editor.Editing().Field)

	sel, ok := m.selectedTask()
	require.True(t, ok)
	assert.Equal(t, "c", sel.ID)
}

func TestDeleteConfirmEmitsDeleteMsg(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(keyRune('x'))
	assert.Equal(t, modeConfirm, m.mode)

	// Short-circuit the confirm dialog the way the form would.
	m.fb.confirm = true
	id := m.deleteID
	assert.NotEmpty(t, id)
}

func TestStatusColumnReflectsProgress(t *testing.T) {
	m := newTestModel()

	rows := m.table.Rows()
	require.Len(t, rows, 3)

	byName := map[string]string{}
	for _, r := range rows {
		byName[r[0]] = r[4]
	}
	assert.Equal(t, "Todo", byName["Pay bills"])
	assert.Equal(t, "Ongoing", byName["Review PRs"])
	assert.Equal(t, "Complete", byName["Write docs"])
}
