package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"framepad/internal/content"
	"framepad/internal/controller"
)

// barHeight is the number of rows below the panes used by the hint bar.
const barHeight = 1

// AppModel is the root model: the pane layout plus a one-line bar, with an
// optional modal (open-file prompt or key help) drawn in place of the panes.
type AppModel struct {
	Mode       AppMode
	Controller *controller.Controller
	KeyHandler *KeyHandler
	Store      *content.Store
	Styles     Styles
	Prompt     *OpenFileModal
	// Status is the last error or notice, shown in the bar until the next
	// command succeeds.
	Status string
	// Err is set when an err command ended the program.
	Err    error
	Width  int
	Height int

	ctx context.Context
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around ctrl. store may be
// nil, in which case the open-file prompt reports an error.
func NewAppModel(ctx context.Context, ctrl *controller.Controller, store *content.Store, theme Theme) *AppModel {
	reg := NewKeybindRegistry()
	DefaultKeybinds(reg)
	return &AppModel{
		Mode:       ModeEdit,
		Controller: ctrl,
		KeyHandler: NewKeyHandler(reg),
		Store:      store,
		Styles:     theme.Styles(),
		ctx:        ctx,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.Controller.Layout(0, 0, msg.Width, max(msg.Height-barHeight, 0))
		return a, nil
	case tea.MouseMsg:
		if a.Mode == ModeEdit && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			a.Controller.FocusAt(msg.X, msg.Y)
		}
		return a, nil
	case CommandMsg:
		return a, a.dispatch(msg.Command)
	case ShowOpenPromptMsg:
		a.Prompt = NewOpenFileModal(a.Styles)
		a.Mode = ModePrompt
		return a, a.Prompt.Init()
	case DismissModalMsg:
		a.closeModal()
		return a, nil
	case OpenFileMsg:
		a.closeModal()
		a.open(msg.Name)
		return a, nil
	case ToggleHelpMsg:
		if a.Mode == ModeHelp {
			a.Mode = ModeEdit
		} else {
			a.Mode = ModeHelp
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blink and other prompt-internal messages.
	if a.Mode == ModePrompt && a.Prompt != nil {
		return a, a.updatePrompt(msg)
	}
	return a, nil
}

func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.Mode {
	case ModePrompt:
		if a.Prompt != nil {
			return a, a.updatePrompt(msg)
		}
	case ModeHelp:
		if msg.String() == "esc" {
			a.Mode = ModeEdit
			return a, nil
		}
	}

	if a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			if cmd == nil {
				return a, nil
			}
			// Bindings only build messages; applying them in line keeps
			// keystrokes in order.
			return a.Update(cmd())
		}
	}
	if a.Mode != ModeEdit {
		return a, nil
	}
	switch msg.Type {
	case tea.KeyRunes:
		return a, a.dispatch(controller.Char(string(msg.Runes)))
	case tea.KeySpace:
		return a, a.dispatch(controller.Char(" "))
	}
	return a, nil
}

func (a *AppModel) updatePrompt(msg tea.Msg) tea.Cmd {
	v, cmd := a.Prompt.Update(msg)
	if p, ok := v.(*OpenFileModal); ok {
		a.Prompt = p
	}
	return cmd
}

func (a *AppModel) closeModal() {
	a.Prompt = nil
	a.Mode = ModeEdit
}

// dispatch runs cmd on the controller and turns its Result into a tea.Cmd.
func (a *AppModel) dispatch(cmd controller.Command) tea.Cmd {
	res := a.Controller.Dispatch(a.ctx, cmd)
	if res.Quit {
		a.Err = res.Err
		return tea.Quit
	}
	if res.Err != nil {
		a.Status = res.Err.Error()
	} else {
		a.Status = ""
	}
	return nil
}

// open loads name into the active pane. Unsupported content still opens, as
// a placeholder pad.
func (a *AppModel) open(name string) {
	if a.Store == nil {
		a.Status = "no file store configured"
		return
	}
	doc, err := a.Store.Load(name)
	if err != nil {
		log.Printf("ui.open: %v", err)
		a.Status = err.Error()
		if !errors.Is(err, content.ErrUnsupported) {
			return
		}
	}
	a.Controller.OpenDoc(doc)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Width <= 0 || a.Height <= 0 {
		return ""
	}
	h := max(a.Height-barHeight, 0)

	var body string
	switch {
	case a.Mode == ModeHelp:
		body = lipgloss.Place(a.Width, h, lipgloss.Center, lipgloss.Center, RenderFullHelp(a.KeyHandler, a.Styles))
	case a.Mode == ModePrompt && a.Prompt != nil:
		body = lipgloss.Place(a.Width, h, lipgloss.Center, lipgloss.Center, a.Prompt.View())
	default:
		body = RenderPanes(a.Controller, a.Styles)
	}
	if h == 0 {
		return a.bar()
	}
	return body + "\n" + a.bar()
}

// bar is the bottom line: leader hints while a sequence is pending, else the
// status message, else a help hint and the last command.
func (a *AppModel) bar() string {
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return fitWidth(RenderKeybindHelp(a.KeyHandler, a.Styles, a.Width), a.Width)
	}
	if a.Status != "" {
		return fitWidth(a.Styles.Error.Render(a.Status), a.Width)
	}
	left := a.Styles.Hint.Render(LeaderSeq + " ?: help")
	right := ""
	if recs := a.Controller.Journal().Recent(); len(recs) > 0 {
		right = a.Styles.Hint.Render(fmt.Sprintf("%s %s", recs[0].Command, recs[0].Outcome))
	}
	gap := a.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return fitWidth(left, a.Width)
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}
