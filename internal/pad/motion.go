package pad

// End, used with Abs, addresses the end of the current line or of the buffer.
const End = -1

// Axis is a relative or absolute target along one axis. The zero Axis leaves
// the axis alone.
type Axis struct {
	abs bool
	set bool
	n   int
}

// Rel moves by n cells.
func Rel(n int) Axis { return Axis{n: n, set: n != 0} }

// Abs moves to buffer position n. 0 is the start and End the end.
func Abs(n int) Axis { return Axis{abs: true, set: true, n: n} }

// Motion combines one Axis per direction. Y is applied before X, so a
// horizontal target is resolved against the destination line.
type Motion struct {
	X, Y Axis
}

// MoveBy moves the cursor by (dx, dy).
func (p *Pad) MoveBy(dx, dy int) {
	p.Move(Motion{X: Rel(dx), Y: Rel(dy)})
}

// MoveTo moves the cursor to the buffer position (x, y). Either may be End.
func (p *Pad) MoveTo(x, y int) {
	p.Move(Motion{X: Abs(x), Y: Abs(y)})
}

// Move applies m and then re-validates the cursor against the current line
// length and the window size.
func (p *Pad) Move(m Motion) {
	if m.Y.set {
		p.snapped = false
		p.moveY(m.Y)
	}
	if m.X.set {
		p.snapped = p.moveX(m.X)
	}
	p.clamp(p.snapped)
}

func (p *Pad) moveY(a Axis) {
	last := len(p.lines) - 1
	h := p.textHeight()
	if !a.abs {
		p.showRow(clamp(p.bufY+p.curY+a.n, 0, last))
		return
	}
	switch {
	case a.n == End:
		p.bufY = max(0, len(p.lines)-h)
		p.curY = last - p.bufY
	case a.n <= 0:
		p.bufY, p.curY = 0, 0
	default:
		target := min(a.n, last)
		if target < h {
			p.bufY, p.curY = 0, target
		} else {
			p.bufY, p.curY = target, 0
		}
	}
}

// moveX reports whether the motion was an end-of-line snap.
func (p *Pad) moveX(a Axis) bool {
	n := p.lineLen(p.bufY + p.curY)
	w := p.textWidth()
	if !a.abs {
		p.showCol(clamp(p.bufX+p.curX+a.n, 0, n))
		return false
	}
	switch {
	case a.n == End:
		p.bufX = max(0, n-w)
		p.curX = n - p.bufX
		return true
	case a.n <= 0:
		p.bufX, p.curX = 0, 0
	default:
		target := min(a.n, n)
		if target < w {
			p.bufX, p.curX = 0, target
		} else {
			p.bufX, p.curX = target, 0
		}
	}
	return false
}

// showRow puts the cursor on buffer row target, moving the cursor inside the
// window first and scrolling the origin only when target is outside it.
func (p *Pad) showRow(target int) {
	h := p.textHeight()
	switch {
	case target < p.bufY:
		p.bufY, p.curY = target, 0
	case target >= p.bufY+h:
		p.bufY, p.curY = target-h+1, h-1
	default:
		p.curY = target - p.bufY
	}
}

func (p *Pad) showCol(target int) {
	w := p.textWidth()
	switch {
	case target < p.bufX:
		p.bufX, p.curX = target, 0
	case target >= p.bufX+w:
		p.bufX, p.curX = target-w+1, w-1
	default:
		p.curX = target - p.bufX
	}
}

// clamp restores the cursor invariants after a motion, an edit or a resize.
// The line-length step needs at most one adjustment: both branches land the
// cursor exactly on the line end.
func (p *Pad) clamp(snapped bool) {
	if p.bufY+p.curY > len(p.lines)-1 {
		p.showRow(len(p.lines) - 1)
	}
	if h := p.textHeight(); p.curY >= h {
		p.bufY += p.curY - (h - 1)
		p.curY = h - 1
	}

	n := p.lineLen(p.bufY + p.curY)
	if over := p.bufX + p.curX - n; over > 0 {
		if p.curX >= over {
			p.curX -= over
		} else {
			p.bufX -= over
			if p.bufX < 0 {
				p.bufX, p.curX = 0, n
			}
		}
	}

	limit := p.textWidth() - 1
	if snapped {
		limit++
	}
	if p.curX > limit {
		p.bufX += p.curX - limit
		p.curX = limit
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
