package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// OpenFileModal is a modal for entering the name of a file to open in the
// active pane.
type OpenFileModal struct {
	input  textinput.Model
	styles Styles
}

// Ensure OpenFileModal implements View.
var _ View = (*OpenFileModal)(nil)

// NewOpenFileModal creates an open-file modal.
func NewOpenFileModal(s Styles) *OpenFileModal {
	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.Width = 40
	ti.Focus()
	return &OpenFileModal{input: ti, styles: s}
}

// Init implements View.
func (m *OpenFileModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *OpenFileModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			name := strings.TrimSpace(m.input.Value())
			if name != "" {
				return m, func() tea.Msg { return OpenFileMsg{Name: name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *OpenFileModal) View() string {
	content := m.styles.Title.Render("Open file") + "\n\n"
	content += m.input.View() + "\n\n"
	content += m.styles.Hint.Render("Enter: open  Esc: cancel")
	return m.styles.Box.Render(content)
}
