package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hdng/taskboard/internal/theme"
)

// Layout manages the terminal layout dimensions: a header row with page
// tabs and the searchbar, the content area, and a status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar: page tabs on the left and the
// searchbar on the right. The searchbar's screen region starts where the
// tabs end, which is what the outside-click hit test is measured against.
func (l Layout) RenderHeader(tabs string, searchbar string) string {
	gap := l.Width -
		lipgloss.Width(tabs) -
		lipgloss.Width(searchbar)
	if gap < 0 {
		gap = 0
	}

	filler := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs, filler, searchbar)
}

// SearchbarRegion returns the screen region occupied by a searchbar of the
// given rendered width, anchored at the right edge of the header. The
// dropdown below it is part of the region so result clicks are "inside".
func (l Layout) SearchbarRegion(barWidth, dropdownHeight int) Region {
	x := l.Width - barWidth
	if x < 0 {
		x = 0
	}
	return Region{
		X:      x,
		Y:      0,
		Width:  barWidth,
		Height: l.HeaderHeight + dropdownHeight,
	}
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		statusBar,
	)
}
