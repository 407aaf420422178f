package nav

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg asks the root model to move to a route path.
type NavigateMsg struct {
	Path string
}

// Go returns a command that navigates to the given route path.
func Go(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}
