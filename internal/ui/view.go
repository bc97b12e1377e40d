package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a self-contained region with its own Init/Update/View cycle, such
// as a modal drawn over the panes.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
