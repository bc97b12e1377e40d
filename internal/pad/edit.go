package pad

// InsertChar splices r into the current line at the cursor and advances the
// cursor. Control characters (below 0x20) are ignored.
func (p *Pad) InsertChar(r rune) {
	if r < 0x20 {
		return
	}
	x, y := p.Abs()
	line := []rune(p.lines[y])
	out := make([]rune, 0, len(line)+1)
	out = append(out, line[:x]...)
	out = append(out, r)
	out = append(out, line[x:]...)
	p.lines[y] = string(out)
	p.Move(Motion{X: Rel(1)})
}

// InsertText inserts s rune by rune; '\n' starts a new line.
func (p *Pad) InsertText(s string) {
	for _, r := range s {
		if r == '\n' {
			p.Newline()
			continue
		}
		p.InsertChar(r)
	}
}

// Newline splits the current line at the cursor. The text right of the cursor
// becomes a new line below and the cursor moves to its start.
func (p *Pad) Newline() {
	x, y := p.Abs()
	line := []rune(p.lines[y])
	left, right := string(line[:x]), string(line[x:])

	p.lines[y] = left
	p.lines = append(p.lines, "")
	copy(p.lines[y+2:], p.lines[y+1:])
	p.lines[y+1] = right

	p.Move(Motion{Y: Rel(1), X: Abs(0)})
}

// Backspace deletes the character left of the cursor. At the start of a line
// it joins the line onto the previous one and leaves the cursor at the join
// point. At the start of the buffer it does nothing.
func (p *Pad) Backspace() {
	x, y := p.Abs()
	if x > 0 {
		p.Move(Motion{X: Rel(-1)})
		line := []rune(p.lines[y])
		p.lines[y] = string(append(line[:x-1:x-1], line[x:]...))
		return
	}
	if y == 0 {
		return
	}
	tail := p.lines[y]
	p.Move(Motion{Y: Rel(-1)})
	p.Move(Motion{X: Abs(End)})
	p.lines[y-1] += tail
	p.lines = append(p.lines[:y], p.lines[y+1:]...)
	p.clamp(p.snapped)
}
