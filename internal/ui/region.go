package ui

import tea "github.com/charmbracelet/bubbletea"

// Region is a rectangular screen area in terminal cell coordinates. It is
// the bound root a component registers so that pointer events can be
// hit-tested against it.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) lies within the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// OutsideClick reports whether msg is a mouse press landing outside the
// region. Each component holds its own region, so multiple detectors do not
// interfere; the detector disappears with the model that owns it.
func OutsideClick(r Region, msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	return !r.Contains(msg.X, msg.Y)
}
