package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"framepad/internal/content"
	"framepad/internal/controller"
	"framepad/internal/layout"
)

// Inset is the border width drawn inside every leaf rect. The controller must
// be created with the same inset so pads fit their boxes.
const Inset = 1

const emptyLabel = "empty  " + LeaderSeq + " o: open  " + LeaderSeq + " c: new"

// RenderPanes draws every pane of ctrl. Leaves tile the surface exactly, so an
// internal frame is drawn by joining its two children along its split axis.
func RenderPanes(ctrl *controller.Controller, s Styles) string {
	panes := make(map[layout.FrameID]controller.Pane)
	for _, p := range ctrl.Panes() {
		panes[p.ID] = p
	}
	t := ctrl.Tree()
	return renderFrame(t, t.Root(), panes, s)
}

func renderFrame(t *layout.Tree, id layout.FrameID, panes map[layout.FrameID]controller.Pane, s Styles) string {
	f, ok := t.Frame(id)
	if !ok {
		return ""
	}
	if f.IsLeaf() {
		return renderPane(panes[id], s)
	}
	first := renderFrame(t, f.Left, panes, s)
	second := renderFrame(t, f.Right, panes, s)
	// A zero-sized child renders as "", which Join would count as a line.
	switch {
	case first == "":
		return second
	case second == "":
		return first
	case f.Dir == layout.Horizontal:
		return lipgloss.JoinHorizontal(lipgloss.Top, first, second)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, first, second)
	}
}

// renderPane draws one leaf as a bordered box of exactly its rect.
func renderPane(p controller.Pane, s Styles) string {
	r := p.Rect
	if r.W <= 0 || r.H <= 0 {
		return ""
	}
	w, h := r.W-2*Inset, r.H-2*Inset
	if w <= 0 || h <= 0 {
		return blank(r.W, r.H)
	}

	var lines []string
	if p.HasContent {
		lines = paneLines(p, w, s)
	} else {
		lines = []string{s.Empty.Render(runewidth.Truncate(emptyLabel, w, ""))}
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	for i := range lines {
		lines[i] = fitWidth(lines[i], w)
	}
	for len(lines) < h {
		lines = append(lines, strings.Repeat(" ", w))
	}

	style := s.Pane
	if p.Active {
		style = s.ActivePane
	}
	return style.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func paneLines(p controller.Pane, w int, s Styles) []string {
	sc := p.Screen
	lines := make([]string, 0, len(sc.Rows)+1)
	for i, row := range sc.Rows {
		cursor := -1
		if p.Active && i == sc.CursorRow {
			cursor = sc.CursorCol
		}
		var gutter string
		if sc.Gutter != nil {
			gutter = s.Gutter.Render(sc.Gutter[i])
		}
		lines = append(lines, gutter+renderRow(row, p.Kind, cursor, s))
	}
	if sc.Status != "" {
		lines = append(lines, s.Status.Render(runewidth.FillRight(runewidth.Truncate(sc.Status, w, ""), w)))
	}
	return lines
}

// renderRow styles one text row. The row is first normalized to its rune
// count in cells so wide runes cannot push the border out. cursor is the
// column to highlight, or -1. A cursor just past the last cell (after an
// end-of-line snap) is drawn on the last cell.
func renderRow(row string, kind content.Kind, cursor int, s Styles) string {
	row = strings.ReplaceAll(row, "\t", " ")
	cells := len([]rune(row))
	row = runewidth.FillRight(runewidth.Truncate(row, cells, ""), cells)

	runes := []rune(row)
	if cursor == len(runes) && cursor > 0 {
		cursor--
	}
	if cursor < 0 || cursor >= len(runes) {
		return styleCells(row, kind, s)
	}
	return styleCells(string(runes[:cursor]), kind, s) +
		s.Cursor.Render(string(runes[cursor])) +
		styleCells(string(runes[cursor+1:]), kind, s)
}

func styleCells(text string, kind content.Kind, s Styles) string {
	if text == "" {
		return ""
	}
	cells, err := content.Tokenize(kind, text)
	if err != nil {
		return s.Empty.Render(text)
	}
	var b strings.Builder
	for _, c := range cells {
		if c.Role == content.RoleSpace {
			b.WriteString(c.Text)
			continue
		}
		b.WriteString(s.Text.Render(c.Text))
	}
	return b.String()
}

// fitWidth truncates or pads a styled line to exactly w cells.
func fitWidth(line string, w int) string {
	line = ansi.Truncate(line, w, "")
	if n := ansi.StringWidth(line); n < w {
		line += strings.Repeat(" ", w-n)
	}
	return line
}

func blank(w, h int) string {
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
