package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

func newHelpModel(s Styles) help.Model {
	m := help.New()
	m.Styles.ShortKey = s.Key
	m.Styles.ShortDesc = s.Hint
	m.Styles.ShortSeparator = s.Hint
	m.Styles.FullKey = s.Key
	m.Styles.FullDesc = s.Hint
	m.Styles.FullSeparator = s.Hint
	return m
}

// RenderKeybindHelp produces the one-line hint bar shown after the leader
// key: the keys that may follow the current sequence, truncated to width.
func RenderKeybindHelp(keyHandler *KeyHandler, s Styles, width int) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	helpModel := newHelpModel(s)
	prefix := s.Hint.Render(strings.Join(keyHandler.Buffer, " ")) + " "
	helpModel.Width = max(width-len(strings.Join(keyHandler.Buffer, " "))-1, 0)
	return prefix + helpModel.ShortHelpView(bindings)
}

// RenderFullHelp renders every binding in a titled box.
func RenderFullHelp(keyHandler *KeyHandler, s Styles) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler)
	helpModel := newHelpModel(s)
	content := s.Title.Render("Keys") + "\n\n"
	content += helpModel.FullHelpView(km.FullHelp()) + "\n\n"
	content += s.Hint.Render(LeaderSeq + " ? or esc: close")
	return s.Box.Render(content)
}
