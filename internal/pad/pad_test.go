package pad

import (
	"math/rand"
	"reflect"
	"testing"
	"unicode/utf8"
)

func checkInvariants(t *testing.T, p *Pad) {
	t.Helper()
	w, h := p.Size()
	cx, cy := p.Cursor()
	ax, ay := p.Abs()
	if cx < 0 || cx > w {
		t.Fatalf("cursor x %d outside [0,%d]", cx, w)
	}
	if cy < 0 || cy >= h {
		t.Fatalf("cursor y %d outside [0,%d)", cy, h)
	}
	if ay >= p.LineCount() {
		t.Fatalf("cursor row %d past buffer of %d lines", ay, p.LineCount())
	}
	if n := utf8.RuneCountInString(p.Lines()[ay]); ax > n {
		t.Fatalf("cursor column %d past line length %d", ax, n)
	}
}

func TestNew_EmptyBufferHasOneLine(t *testing.T) {
	p := New(nil, Options{Width: 10, Height: 5})
	if got := p.Lines(); !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Lines: got %q", got)
	}
}

func TestNew_CopiesLines(t *testing.T) {
	src := []string{"abc"}
	p := New(src, Options{Width: 10, Height: 5})
	p.InsertChar('x')
	if src[0] != "abc" {
		t.Errorf("caller slice mutated: %q", src[0])
	}
}

func TestMove_EndOfLineSnapsOrigin(t *testing.T) {
	p := New([]string{"abc"}, Options{Width: 2, Height: 3})

	p.Move(Motion{X: Abs(End)})
	if x, _ := p.Origin(); x != 1 {
		t.Errorf("origin x: expected 1, got %d", x)
	}
	if x, _ := p.Cursor(); x != 2 {
		t.Errorf("cursor x: expected 2, got %d", x)
	}
	if got := p.Screen().Rows[0]; got != "bc" {
		t.Errorf("visible row: expected %q, got %q", "bc", got)
	}

	p.Move(Motion{X: Abs(0)})
	bx, _ := p.Origin()
	cx, _ := p.Cursor()
	if bx != 0 || cx != 0 {
		t.Errorf("start: expected origin 0 cursor 0, got %d %d", bx, cx)
	}
}

func TestMove_RightScrollsAtWindowEdge(t *testing.T) {
	p := New([]string{"abcdef"}, Options{Width: 3, Height: 1})
	for i := 0; i < 4; i++ {
		p.MoveBy(1, 0)
		checkInvariants(t, p)
	}
	bx, _ := p.Origin()
	cx, _ := p.Cursor()
	if bx != 2 || cx != 2 {
		t.Errorf("expected origin 2 cursor 2, got %d %d", bx, cx)
	}

	// Moving left consumes cursor slack before scrolling back.
	p.MoveBy(-2, 0)
	bx, _ = p.Origin()
	cx, _ = p.Cursor()
	if bx != 2 || cx != 0 {
		t.Errorf("expected origin 2 cursor 0, got %d %d", bx, cx)
	}
	p.MoveBy(-1, 0)
	bx, _ = p.Origin()
	if bx != 1 {
		t.Errorf("expected origin 1, got %d", bx)
	}
}

func TestMove_RightStopsAtEndOfLine(t *testing.T) {
	p := New([]string{"ab"}, Options{Width: 10, Height: 1})
	p.MoveBy(5, 0)
	if x, _ := p.Abs(); x != 2 {
		t.Errorf("expected column 2, got %d", x)
	}
	p.MoveBy(1, 0)
	if x, _ := p.Abs(); x != 2 {
		t.Errorf("past EOL: expected column 2, got %d", x)
	}
}

func TestMove_DownScrollsAndClampsAtLastLine(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	p := New(lines, Options{Width: 10, Height: 3})

	for i := 0; i < 5; i++ {
		p.MoveBy(0, 1)
	}
	if _, y := p.Origin(); y != 3 {
		t.Errorf("origin y: expected 3, got %d", y)
	}
	if _, y := p.Cursor(); y != 2 {
		t.Errorf("cursor y: expected 2, got %d", y)
	}

	p.MoveBy(0, 100)
	if _, y := p.Abs(); y != 9 {
		t.Errorf("page down: expected row 9, got %d", y)
	}
	checkInvariants(t, p)

	p.MoveBy(0, -100)
	_, oy := p.Origin()
	_, cy := p.Cursor()
	if oy != 0 || cy != 0 {
		t.Errorf("page up: expected origin 0 cursor 0, got %d %d", oy, cy)
	}
}

func TestMove_AbsoluteEndOfBuffer(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "last"}
	p := New(lines, Options{Width: 10, Height: 3})

	p.MoveTo(End, End)
	if _, y := p.Origin(); y != 7 {
		t.Errorf("origin y: expected 7, got %d", y)
	}
	x, y := p.Abs()
	if x != 4 || y != 9 {
		t.Errorf("abs: expected (4,9), got (%d,%d)", x, y)
	}
	if got := p.Screen().Rows[2]; got != "last      " {
		t.Errorf("last visible row: got %q", got)
	}
}

func TestMove_AbsoluteRowPlacement(t *testing.T) {
	lines := make([]string, 20)
	p := New(lines, Options{Width: 10, Height: 5})

	p.Move(Motion{Y: Abs(3)})
	_, oy := p.Origin()
	_, cy := p.Cursor()
	if oy != 0 || cy != 3 {
		t.Errorf("fits in first window: expected origin 0 cursor 3, got %d %d", oy, cy)
	}

	p.Move(Motion{Y: Abs(12)})
	_, oy = p.Origin()
	_, cy = p.Cursor()
	if oy != 12 || cy != 0 {
		t.Errorf("beyond first window: expected origin 12 cursor 0, got %d %d", oy, cy)
	}

	p.Move(Motion{Y: Abs(500)})
	if _, y := p.Abs(); y != 19 {
		t.Errorf("clamped: expected row 19, got %d", y)
	}
}

func TestMove_OntoShorterLine(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		width int
		wantX int
		wantB int
	}{
		{name: "cursor pulled back", lines: []string{"abcdef", "ab"}, width: 10, wantX: 2, wantB: 0},
		{name: "origin reset", lines: []string{"abcdefghij", "ab"}, width: 4, wantX: 2, wantB: 0},
		{name: "origin kept", lines: []string{"abcdefghij", "abcdefgh"}, width: 4, wantX: 2, wantB: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.lines, Options{Width: tt.width, Height: 4})
			p.Move(Motion{X: Abs(End)})
			p.MoveBy(0, 1)
			checkInvariants(t, p)
			ax, ay := p.Abs()
			if ay != 1 || ax != len(tt.lines[1]) {
				t.Errorf("abs: expected (%d,1), got (%d,%d)", len(tt.lines[1]), ax, ay)
			}
			cx, _ := p.Cursor()
			bx, _ := p.Origin()
			if cx != tt.wantX || bx != tt.wantB {
				t.Errorf("expected origin %d cursor %d, got %d %d", tt.wantB, tt.wantX, bx, cx)
			}
		})
	}
}

func TestResize_ShrinkKeepsCursorVisible(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5"}
	p := New(lines, Options{Width: 10, Height: 5})
	p.MoveBy(0, 4)

	p.Resize(10, 2)
	checkInvariants(t, p)
	if _, y := p.Abs(); y != 4 {
		t.Errorf("abs row changed on resize: got %d", y)
	}
	if _, y := p.Cursor(); y != 1 {
		t.Errorf("cursor y: expected 1, got %d", y)
	}
	if got := p.Lines(); !reflect.DeepEqual(got, lines) {
		t.Errorf("resize changed buffer: %q", got)
	}
}

func TestResize_NarrowWindow(t *testing.T) {
	p := New([]string{"abcdefgh"}, Options{Width: 10, Height: 2})
	p.MoveBy(6, 0)
	p.Resize(3, 2)
	checkInvariants(t, p)
	if x, _ := p.Abs(); x != 6 {
		t.Errorf("abs column changed on resize: got %d", x)
	}
	if x, _ := p.Cursor(); x != 2 {
		t.Errorf("cursor x: expected 2, got %d", x)
	}
}

func TestRandomMotions_KeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lines := []string{"", "short", "a much longer line of text", "x", "", "medium length"}
	p := New(lines, Options{Width: 8, Height: 3, LineNumbers: rng.Intn(2) == 0})
	p.Resize(14, 4)
	for i := 0; i < 3000; i++ {
		switch rng.Intn(9) {
		case 0:
			p.MoveBy(rng.Intn(7)-3, 0)
		case 1:
			p.MoveBy(0, rng.Intn(7)-3)
		case 2:
			p.Move(Motion{X: Abs(rng.Intn(30) - 1)})
		case 3:
			p.Move(Motion{Y: Abs(rng.Intn(10) - 1)})
		case 4:
			p.InsertChar(rune('a' + rng.Intn(26)))
		case 5:
			p.Backspace()
		case 6:
			if p.LineCount() < 30 {
				p.Newline()
			}
		case 7:
			p.Resize(rng.Intn(20), rng.Intn(8))
		case 8:
			p.Move(Motion{X: Abs(End), Y: Rel(rng.Intn(3) - 1)})
		}
		checkInvariants(t, p)
	}
}
