package ui

import "framepad/internal/controller"

// CommandMsg asks the app to dispatch a controller command.
type CommandMsg struct {
	Command controller.Command
}

// ShowOpenPromptMsg opens the file prompt (C-a o).
type ShowOpenPromptMsg struct{}

// OpenFileMsg is sent when the user confirms a file name in the prompt.
type OpenFileMsg struct {
	Name string
}

// DismissModalMsg closes the open modal without acting.
type DismissModalMsg struct{}

// ToggleHelpMsg shows or hides the full key help (C-a ?).
type ToggleHelpMsg struct{}
