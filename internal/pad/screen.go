package pad

import (
	"fmt"
	"strings"
)

// Screen is the fixed-size display derived from the buffer and the origin.
type Screen struct {
	// Rows holds exactly one entry per text row, each exactly text-width
	// runes long, space padded.
	Rows []string
	// Gutter holds the line-number label of each row, or nil when line
	// numbers are off. Rows past the end of the buffer get a blank label.
	Gutter []string
	// Status is the status line, padded to the full pane width, or "" when
	// the status line is off.
	Status string
	// CursorRow and CursorCol locate the cursor within Rows.
	CursorRow int
	CursorCol int
}

// Screen renders the visible window.
func (p *Pad) Screen() Screen {
	w, h := p.textWidth(), p.textHeight()
	s := Screen{
		Rows:      make([]string, h),
		CursorRow: p.curY,
		CursorCol: p.curX,
	}
	if p.gutter > 0 {
		s.Gutter = make([]string, h)
	}
	for i := 0; i < h; i++ {
		row := p.bufY + i
		if row >= len(p.lines) {
			s.Rows[i] = strings.Repeat(" ", w)
			if s.Gutter != nil {
				s.Gutter[i] = strings.Repeat(" ", p.gutter)
			}
			continue
		}
		line := []rune(p.lines[row])
		var visible []rune
		if p.bufX < len(line) {
			visible = line[p.bufX:min(p.bufX+w, len(line))]
		}
		s.Rows[i] = fit(string(visible), w)
		if s.Gutter != nil {
			s.Gutter[i] = fit(fmt.Sprintf("%*d ", p.gutter-1, row+1), p.gutter)
		}
	}
	if p.status > 0 {
		x, y := p.Abs()
		s.Status = fit(fmt.Sprintf("%s (%d,%d)", p.name, y+1, x+1), max(p.width, 1))
	}
	return s
}

// fit pads or truncates s to exactly n runes.
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) >= n {
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
