package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Search
	Search key.Binding

	// Page switching
	NextPage key.Binding
	PrevPage key.Binding

	// Help toggle
	Help key.Binding

	// Item actions
	New     key.Binding
	Delete  key.Binding
	EditRow key.Binding

	// Column keys: outside row edit mode they select the sort column,
	// inside row edit mode they open that cell's editor.
	ColName     key.Binding
	ColDate     key.Binding
	ColProject  key.Binding
	ColProgress key.Binding

	// Calendar
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		EditRow: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit row"),
		),
		ColName: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "name column"),
		),
		ColDate: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "date column"),
		),
		ColProject: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "project column"),
		),
		ColProgress: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "progress column"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next month"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help, k.Search,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.Search, k.NextPage, k.PrevPage, k.Help},
		{k.New, k.Delete, k.EditRow},
		{k.ColName, k.ColDate, k.ColProject, k.ColProgress},
		{k.PrevMonth, k.NextMonth, k.Today},
	}
}
