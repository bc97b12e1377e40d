package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"framepad/internal/controller"
)

// LeaderSeq is how the leader key is written in sequences: "C-a |" is ctrl+a
// followed by |.
const LeaderSeq = "C-a"

// KeybindRegistry maps key sequences to commands.
// Single keys use tea.KeyMsg.String() notation: "up", "ctrl+q", "enter".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key sequence to a command.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDesc(seq, cmd, "")
}

// BindWithDesc registers a key sequence with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	n := normalizeSeq(seq)
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
}

// BindCommand binds seq to a controller command.
func (r *KeybindRegistry) BindCommand(seq string, cmd controller.Command, desc string) {
	r.BindWithDesc(seq, func() tea.Msg { return CommandMsg{Command: cmd} }, desc)
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns all bound sequences with descriptions for display.
// Keys are normalized sequences; values are descriptions (or the sequence if none set).
func (r *KeybindRegistry) Hints() map[string]string {
	out := make(map[string]string)
	for seq, cmd := range r.bindings {
		if cmd == nil {
			continue
		}
		if d, ok := r.descriptions[seq]; ok && d != "" {
			out[seq] = d
		} else {
			out[seq] = seq
		}
	}
	return out
}

// LeaderHints returns the next keys available after currentSeq ("" means
// right after the leader) with their descriptions.
func (r *KeybindRegistry) LeaderHints(currentSeq string) map[string]string {
	out := make(map[string]string)
	prefix := LeaderSeq + " "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		key := rest
		if parts := strings.Fields(rest); len(parts) > 0 {
			key = parts[0]
		}
		if r.HasPrefix(prefix + key) {
			out[key] = key + "…"
		} else if d, ok := r.descriptions[seq]; ok && d != "" {
			out[key] = d
		} else {
			out[key] = seq
		}
	}
	return out
}

// normalizeSeq collapses runs of whitespace between sequence parts.
func normalizeSeq(seq string) string {
	return strings.Join(strings.Fields(seq), " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // "ctrl+a" (tea.KeyMsg.String() format)
	LeaderSeq     string   // "C-a" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with ctrl+a as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: "ctrl+a",
		LeaderSeq: LeaderSeq,
	}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and must not
// be inserted as text. cmd is the command to run, if any.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	// In leader mode: append key and look up
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s)); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to a sequence part. Space cannot be
// a part because parts are space separated.
func keyToSeqPart(s string) string {
	if s == " " {
		return "space"
	}
	return s
}

// DefaultKeybinds binds the editing, navigation and pane commands.
func DefaultKeybinds(reg *KeybindRegistry) {
	single := []struct {
		seq  string
		op   controller.Op
		desc string
	}{
		{"up", controller.OpUp, "up"},
		{"down", controller.OpDown, "down"},
		{"left", controller.OpLeft, "left"},
		{"right", controller.OpRight, "right"},
		{"home", controller.OpLineStart, "line start"},
		{"end", controller.OpLineEnd, "line end"},
		{"pgup", controller.OpPageUp, "page up"},
		{"pgdown", controller.OpPageDown, "page down"},
		{"ctrl+home", controller.OpBufferStart, "buffer start"},
		{"ctrl+end", controller.OpBufferEnd, "buffer end"},
		{"backspace", controller.OpBackspace, "delete left"},
		{"enter", controller.OpNewline, "new line"},
		{"tab", controller.OpTab, "next pane"},
		{"shift+tab", controller.OpPrevPane, "previous pane"},
		{"ctrl+q", controller.OpExit, "quit"},
		{"ctrl+c", controller.OpExit, "quit"},
	}
	for _, b := range single {
		reg.BindCommand(b.seq, controller.Cmd(b.op), b.desc)
	}

	leader := []struct {
		key  string
		op   controller.Op
		desc string
	}{
		{"|", controller.OpSplitHorizontal, "split side by side"},
		{"-", controller.OpSplitVertical, "split stacked"},
		{"x", controller.OpClose, "close pane"},
		{"n", controller.OpNextPane, "next pane"},
		{"p", controller.OpPrevPane, "previous pane"},
		{"+", controller.OpGrow, "grow"},
		{"_", controller.OpShrink, "shrink"},
		{"c", controller.OpNewPad, "new pad"},
	}
	for _, b := range leader {
		reg.BindCommand(LeaderSeq+" "+b.key, controller.Cmd(b.op), b.desc)
	}
	reg.BindWithDesc(LeaderSeq+" o", func() tea.Msg { return ShowOpenPromptMsg{} }, "open file")
	reg.BindWithDesc(LeaderSeq+" ?", func() tea.Msg { return ToggleHelpMsg{} }, "help")
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
}

// NewKeyMap creates a KeyMap for the given registry and handler.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler}
}

// ShortHelp returns the keys available in the current leader sequence.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil && len(km.keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(km.keyHandler.Buffer, " ")
	}
	bindings := bindingsFor(km.registry.LeaderHints(currentSeq))
	if len(bindings) == 0 {
		return nil
	}
	return append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))
}

// FullHelp returns every binding, single keys in one column group and leader
// sequences in another.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if km.registry == nil {
		return nil
	}
	singles := make(map[string]string)
	leaders := make(map[string]string)
	for seq, desc := range km.registry.Hints() {
		if strings.HasPrefix(seq, LeaderSeq+" ") {
			leaders[seq] = desc
		} else {
			singles[seq] = desc
		}
	}
	var cols [][]key.Binding
	for _, group := range []map[string]string{singles, leaders} {
		bindings := bindingsFor(group)
		for len(bindings) > 0 {
			n := min(len(bindings), 8)
			cols = append(cols, bindings[:n])
			bindings = bindings[n:]
		}
	}
	return cols
}

// bindingsFor converts hints to key.Bindings sorted by key.
func bindingsFor(hints map[string]string) []key.Binding {
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	return bindings
}
