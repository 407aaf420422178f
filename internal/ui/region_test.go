package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func TestRegionContains(t *testing.T) {
	r := Region{X: 10, Y: 0, Width: 20, Height: 3}

	assert.True(t, r.Contains(10, 0))
	assert.True(t, r.Contains(29, 2))
	assert.False(t, r.Contains(30, 0)) // right edge is exclusive
	assert.False(t, r.Contains(9, 0))
	assert.False(t, r.Contains(15, 3))
}

func TestOutsideClick(t *testing.T) {
	r := Region{X: 10, Y: 0, Width: 20, Height: 3}

	assert.False(t, OutsideClick(r, press(15, 1)))
	assert.True(t, OutsideClick(r, press(5, 1)))
	assert.True(t, OutsideClick(r, press(15, 10)))
}

func TestOutsideClickIgnoresNonPress(t *testing.T) {
	r := Region{X: 0, Y: 0, Width: 5, Height: 1}

	motion := tea.MouseMsg{X: 50, Y: 50, Action: tea.MouseActionMotion}
	assert.False(t, OutsideClick(r, motion))

	release := tea.MouseMsg{X: 50, Y: 50, Action: tea.MouseActionRelease}
	assert.False(t, OutsideClick(r, release))
}
