// Package pad implements a scrollable text viewport with an edit cursor.
//
// A Pad owns a line buffer, the origin of the visible window into it and a
// cursor relative to that origin. Every motion and edit re-establishes:
//
//	0 <= curX <= textWidth, 0 <= curY < textHeight
//	bufX+curX <= len(current line), bufY+curY < len(lines)
//
// curX reaches textWidth only directly after an end-of-line snap, where the
// cursor sits just past the last visible column.
package pad

import (
	"strings"
	"unicode/utf8"
)

const (
	// GutterWidth is the number of columns reserved for line numbers.
	GutterWidth = 6
	// StatusHeight is the number of rows reserved for the status line.
	StatusHeight = 1
)

// Options configure a new Pad. Width and Height are the full pane size,
// gutter and status line included.
type Options struct {
	Width       int
	Height      int
	LineNumbers bool
	StatusLine  bool
	Name        string
}

// Pad is a line buffer shown through a bounded window.
type Pad struct {
	lines      []string
	bufX, bufY int // origin of the window in buffer coordinates
	curX, curY int // cursor relative to the origin
	width      int
	height     int
	gutter     int
	status     int
	name       string
	snapped    bool // last horizontal motion was an end-of-line snap
}

// New creates a pad over lines. The slice is copied; an empty slice becomes a
// single empty line.
func New(lines []string, opts Options) *Pad {
	buf := make([]string, len(lines))
	copy(buf, lines)
	if len(buf) == 0 {
		buf = []string{""}
	}
	p := &Pad{lines: buf, name: opts.Name}
	if opts.LineNumbers {
		p.gutter = GutterWidth
	}
	if opts.StatusLine {
		p.status = StatusHeight
	}
	p.Resize(opts.Width, opts.Height)
	return p
}

// Resize changes the pane size. The buffer is untouched; the cursor is
// clamped back into the new window.
func (p *Pad) Resize(width, height int) {
	p.width, p.height = max(width, 0), max(height, 0)
	p.clamp(p.snapped)
}

// textWidth and textHeight are the editable area, never less than one cell.
func (p *Pad) textWidth() int  { return max(p.width-p.gutter, 1) }
func (p *Pad) textHeight() int { return max(p.height-p.status, 1) }

func (p *Pad) lineLen(row int) int {
	return utf8.RuneCountInString(p.lines[row])
}

// Name returns the label shown in the status line.
func (p *Pad) Name() string { return p.name }

// SetName changes the status line label.
func (p *Pad) SetName(name string) { p.name = name }

// Lines returns a copy of the buffer.
func (p *Pad) Lines() []string {
	out := make([]string, len(p.lines))
	copy(out, p.lines)
	return out
}

// Value returns the buffer joined with newlines.
func (p *Pad) Value() string { return strings.Join(p.lines, "\n") }

// LineCount returns the number of lines in the buffer.
func (p *Pad) LineCount() int { return len(p.lines) }

// Origin returns the buffer coordinate of the window's top-left cell.
func (p *Pad) Origin() (x, y int) { return p.bufX, p.bufY }

// Cursor returns the cursor relative to the origin.
func (p *Pad) Cursor() (x, y int) { return p.curX, p.curY }

// Abs returns the cursor in buffer coordinates.
func (p *Pad) Abs() (x, y int) { return p.bufX + p.curX, p.bufY + p.curY }

// Size returns the editable area in cells.
func (p *Pad) Size() (width, height int) { return p.textWidth(), p.textHeight() }

// PaneSize returns the full pane size, gutter and status line included.
func (p *Pad) PaneSize() (width, height int) { return p.width, p.height }
