package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - active pane border, titles
	ColorHighlight = "205" // Magenta - cursor, leader keys
	ColorDanger    = "196" // Red - error status
	ColorMuted     = "241" // Gray - gutter, hints
	ColorText      = "252" // Light gray - buffer text
	ColorDim       = "238" // Dark gray - inactive borders
	ColorBase      = "235" // Near black - status line background
)

// Theme assigns a color to each role the renderer draws.
type Theme struct {
	Foreground   lipgloss.Color
	Background   lipgloss.Color
	Border       lipgloss.Color
	ActiveBorder lipgloss.Color
	Cursor       lipgloss.Color
	Gutter       lipgloss.Color
	Status       lipgloss.Color
}

// DefaultTheme returns the built-in 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Foreground:   lipgloss.Color(ColorText),
		Background:   lipgloss.Color(ColorBase),
		Border:       lipgloss.Color(ColorDim),
		ActiveBorder: lipgloss.Color(ColorAccent),
		Cursor:       lipgloss.Color(ColorHighlight),
		Gutter:       lipgloss.Color(ColorMuted),
		Status:       lipgloss.Color(ColorAccent),
	}
}

// Styles derived from a Theme.
type Styles struct {
	Pane       lipgloss.Style // Leaf box with a normal border
	ActivePane lipgloss.Style // Leaf box of the active pane
	Text       lipgloss.Style
	Cursor     lipgloss.Style
	Gutter     lipgloss.Style
	Status     lipgloss.Style
	Empty      lipgloss.Style // Placeholder text of empty panes
	Hint       lipgloss.Style
	Error      lipgloss.Style
	Key        lipgloss.Style // Key names in the help bar
	Box        lipgloss.Style // Modal box
	Title      lipgloss.Style
}

// Styles builds the lipgloss styles for t.
func (t Theme) Styles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border)
	return Styles{
		Pane:       pane,
		ActivePane: pane.BorderForeground(t.ActiveBorder),
		Text:       lipgloss.NewStyle().Foreground(t.Foreground),
		Cursor:     lipgloss.NewStyle().Reverse(true).Foreground(t.Cursor),
		Gutter:     lipgloss.NewStyle().Foreground(t.Gutter),
		Status: lipgloss.NewStyle().
			Foreground(t.Status).
			Background(t.Background),
		Empty: lipgloss.NewStyle().
			Foreground(t.Gutter).
			Italic(true),
		Hint:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHighlight)).
			Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorHighlight)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccent)),
	}
}
