package ui

// AppMode decides where key input goes.
type AppMode int

const (
	// ModeEdit routes keys to the keybind handler and the active pad.
	ModeEdit AppMode = iota
	// ModePrompt routes keys to the open-file prompt.
	ModePrompt
	// ModeHelp shows the full key help until dismissed.
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeEdit:
		return "Edit"
	case ModePrompt:
		return "Prompt"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
