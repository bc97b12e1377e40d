package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"framepad/internal/controller"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("C-a q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("C-a   q") == nil {
		t.Error("expected C-a q to be bound after normalizing spaces")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
	if !reg.HasPrefix("C-a") {
		t.Error("expected C-a to be a prefix")
	}
	if reg.HasPrefix("q") {
		t.Error("q should not be a prefix")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("C-a x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+a"))
	if !consumed || cmd != nil {
		t.Errorf("ctrl+a: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after ctrl+a")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected a command for C-a x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("C-a x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+a"))
	if !h.LeaderWaiting {
		t.Fatal("expected leader waiting")
	}

	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}
}

func TestKeyHandler_UnknownSequenceSwallowed(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("C-a x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg("ctrl+a"))
	consumed, cmd := h.Handle(keyMsg("z"))
	if !consumed || cmd != nil {
		t.Errorf("C-a z: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("an unbound sequence should leave leader mode")
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+q"))
	if !consumed || cmd == nil {
		t.Errorf("ctrl+q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	DefaultKeybinds(reg)
	h := NewKeyHandler(reg)

	for _, s := range []string{"j", " ", "esc"} {
		if consumed, _ := h.Handle(keyMsg(s)); consumed {
			t.Errorf("unbound %q should not be consumed", s)
		}
	}
}

func TestDefaultKeybinds_Commands(t *testing.T) {
	reg := NewKeybindRegistry()
	DefaultKeybinds(reg)

	tests := []struct {
		seq  string
		want controller.Op
	}{
		{"up", controller.OpUp},
		{"enter", controller.OpNewline},
		{"backspace", controller.OpBackspace},
		{"ctrl+end", controller.OpBufferEnd},
		{"tab", controller.OpTab},
		{"ctrl+q", controller.OpExit},
		{"C-a |", controller.OpSplitHorizontal},
		{"C-a -", controller.OpSplitVertical},
		{"C-a x", controller.OpClose},
		{"C-a c", controller.OpNewPad},
	}
	for _, tt := range tests {
		cmd := reg.Lookup(tt.seq)
		if cmd == nil {
			t.Errorf("%s: not bound", tt.seq)
			continue
		}
		msg, ok := cmd().(CommandMsg)
		if !ok {
			t.Errorf("%s: got %T, want CommandMsg", tt.seq, cmd())
			continue
		}
		if msg.Command.Op != tt.want {
			t.Errorf("%s: op = %v, want %v", tt.seq, msg.Command.Op, tt.want)
		}
	}

	if _, ok := reg.Lookup("C-a o")().(ShowOpenPromptMsg); !ok {
		t.Error("C-a o should show the open prompt")
	}
	if _, ok := reg.Lookup("C-a ?")().(ToggleHelpMsg); !ok {
		t.Error("C-a ? should toggle help")
	}
}

func TestKeybindRegistry_LeaderHints(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("C-a x", tea.Quit, "close")
	reg.BindWithDesc("C-a w h", tea.Quit, "left")
	reg.BindWithDesc("q", tea.Quit, "quit")

	hints := reg.LeaderHints("")
	if len(hints) != 2 {
		t.Fatalf("hints = %v, want 2 entries", hints)
	}
	if hints["x"] != "close" {
		t.Errorf("x hint = %q", hints["x"])
	}
	if hints["w"] != "w…" {
		t.Errorf("w hint = %q, want a group marker", hints["w"])
	}

	sub := reg.LeaderHints("C-a w")
	if sub["h"] != "left" {
		t.Errorf("C-a w hints = %v", sub)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+q":
		return tea.KeyMsg{Type: tea.KeyCtrlQ}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
