package tmux

import (
	"fmt"
	"strings"

	"framepad/internal/layout"
)

// Layout renders t as a tmux window layout string for a w x h window, the
// format accepted by select-layout. Horizontal splits become {} cells and
// vertical splits [] cells. tmux draws a one-cell separator between
// siblings, so child sizes are derived from the extent minus that cell.
func Layout(t *layout.Tree, w, h int) string {
	var b strings.Builder
	pane := 0
	writeCell(&b, t, t.Root(), layout.Rect{W: w, H: h}, &pane)
	body := b.String()
	return Checksum(body) + "," + body
}

func writeCell(b *strings.Builder, t *layout.Tree, id layout.FrameID, r layout.Rect, pane *int) {
	f, ok := t.Frame(id)
	if !ok {
		return
	}
	fmt.Fprintf(b, "%dx%d,%d,%d", r.W, r.H, r.X, r.Y)
	if f.IsLeaf() {
		fmt.Fprintf(b, ",%d", *pane)
		*pane++
		return
	}

	first, second := r, r
	open, end := "{", "}"
	switch f.Dir {
	case layout.Horizontal:
		first.W = int(float64(max(r.W-1, 0)) * f.Ratio)
		second.X = r.X + first.W + 1
		second.W = max(r.W-1-first.W, 0)
	case layout.Vertical:
		open, end = "[", "]"
		first.H = int(float64(max(r.H-1, 0)) * f.Ratio)
		second.Y = r.Y + first.H + 1
		second.H = max(r.H-1-first.H, 0)
	}
	b.WriteString(open)
	writeCell(b, t, f.Left, first, pane)
	b.WriteByte(',')
	writeCell(b, t, f.Right, second, pane)
	b.WriteString(end)
}

// Checksum is tmux's 16-bit layout checksum, as four hex digits.
func Checksum(s string) string {
	var csum uint16
	for i := 0; i < len(s); i++ {
		csum = (csum >> 1) + ((csum & 1) << 15)
		csum += uint16(s[i])
	}
	return fmt.Sprintf("%04x", csum)
}
