package pad

import (
	"reflect"
	"testing"
)

func TestInsertChar_SplicesAtCursor(t *testing.T) {
	p := New([]string{"ac"}, Options{Width: 10, Height: 3})
	p.MoveBy(1, 0)
	p.InsertChar('b')
	if got := p.Lines()[0]; got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	if x, _ := p.Abs(); x != 2 {
		t.Errorf("cursor: expected column 2, got %d", x)
	}
}

func TestInsertChar_IgnoresControlCharacters(t *testing.T) {
	p := New([]string{"ab"}, Options{Width: 10, Height: 3})
	for _, r := range []rune{0x00, '\t', 0x1b, 0x1f} {
		p.InsertChar(r)
	}
	if got := p.Lines()[0]; got != "ab" {
		t.Errorf("expected buffer unchanged, got %q", got)
	}
	if x, _ := p.Abs(); x != 0 {
		t.Errorf("expected cursor unchanged, got column %d", x)
	}
}

func TestInsertChar_Unicode(t *testing.T) {
	p := New([]string{"héllo"}, Options{Width: 10, Height: 3})
	p.MoveBy(2, 0)
	p.InsertChar('ñ')
	if got := p.Lines()[0]; got != "héñllo" {
		t.Errorf("expected %q, got %q", "héñllo", got)
	}
}

func TestNewline_SplitsLine(t *testing.T) {
	p := New([]string{"ab"}, Options{Width: 10, Height: 3})
	p.MoveBy(1, 0)
	p.Newline()

	if got := p.Lines(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("expected [a b], got %q", got)
	}
	x, y := p.Abs()
	if x != 0 || y != 1 {
		t.Errorf("cursor: expected (0,1), got (%d,%d)", x, y)
	}
}

func TestNewline_InsertsInMiddle(t *testing.T) {
	p := New([]string{"one", "two", "three"}, Options{Width: 10, Height: 5})
	p.MoveTo(End, 0)
	p.Newline()
	want := []string{"one", "", "two", "three"}
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNewline_ScrollsAtBottom(t *testing.T) {
	p := New([]string{"a", "b"}, Options{Width: 10, Height: 2})
	p.MoveTo(End, End)
	p.Newline()
	if _, y := p.Origin(); y != 1 {
		t.Errorf("origin y: expected 1, got %d", y)
	}
	if _, y := p.Cursor(); y != 1 {
		t.Errorf("cursor y: expected 1, got %d", y)
	}
}

func TestBackspace_DeletesLeft(t *testing.T) {
	p := New([]string{"abc"}, Options{Width: 10, Height: 3})
	p.MoveBy(2, 0)
	p.Backspace()
	if got := p.Lines()[0]; got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
	if x, _ := p.Abs(); x != 1 {
		t.Errorf("cursor: expected column 1, got %d", x)
	}
}

func TestBackspace_JoinsLines(t *testing.T) {
	p := New([]string{"abc", "de", "f"}, Options{Width: 10, Height: 3})
	p.MoveBy(0, 1)
	p.Backspace()

	if got := p.Lines(); !reflect.DeepEqual(got, []string{"abcde", "f"}) {
		t.Errorf("expected [abcde f], got %q", got)
	}
	x, y := p.Abs()
	if x != 3 || y != 0 {
		t.Errorf("cursor: expected join point (3,0), got (%d,%d)", x, y)
	}
}

func TestBackspace_JoinIntoScrolledLine(t *testing.T) {
	p := New([]string{"abcdefgh", "xy"}, Options{Width: 4, Height: 3})
	p.MoveBy(0, 1)
	p.Backspace()
	checkInvariants(t, p)
	if got := p.Lines(); !reflect.DeepEqual(got, []string{"abcdefghxy"}) {
		t.Errorf("got %q", got)
	}
	if x, _ := p.Abs(); x != 8 {
		t.Errorf("cursor: expected column 8, got %d", x)
	}
}

func TestBackspace_AtStartIsNoop(t *testing.T) {
	p := New([]string{"abc", "d"}, Options{Width: 10, Height: 3})
	p.Backspace()
	if got := p.Lines(); !reflect.DeepEqual(got, []string{"abc", "d"}) {
		t.Errorf("expected no change, got %q", got)
	}

	single := New([]string{""}, Options{Width: 10, Height: 3})
	single.Backspace()
	if single.LineCount() != 1 {
		t.Errorf("single line buffer lost its line")
	}
}

// From an unscrolled start, typing then deleting the same text restores the
// buffer, the origin and the cursor exactly.
func TestInsertBackspace_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		width int
		text  string
	}{
		{name: "fits", lines: []string{"xyz"}, width: 20, text: "hello"},
		{name: "scrolls", lines: []string{""}, width: 4, text: "abcdefghij"},
		{name: "mid line", lines: []string{"start", "end"}, width: 6, text: "inserted text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.lines, Options{Width: tt.width, Height: 3})
			wantOX, wantOY := p.Origin()
			wantCX, wantCY := p.Cursor()

			for _, r := range tt.text {
				p.InsertChar(r)
				checkInvariants(t, p)
			}
			for range []rune(tt.text) {
				p.Backspace()
				checkInvariants(t, p)
			}

			if got := p.Lines(); !reflect.DeepEqual(got, tt.lines) {
				t.Errorf("buffer: expected %q, got %q", tt.lines, got)
			}
			ox, oy := p.Origin()
			cx, cy := p.Cursor()
			if ox != wantOX || oy != wantOY || cx != wantCX || cy != wantCY {
				t.Errorf("position: expected origin (%d,%d) cursor (%d,%d), got origin (%d,%d) cursor (%d,%d)",
					wantOX, wantOY, wantCX, wantCY, ox, oy, cx, cy)
			}
		})
	}
}

// From a scrolled start, the round trip restores the buffer and the absolute
// cursor. The origin/cursor split may differ: after an end-of-line snap the
// cursor sits past the last visible column, and the plain motions used by
// the edits never recreate that placement.
func TestInsertBackspace_RoundTripFromSnappedEnd(t *testing.T) {
	p := New([]string{"abcde"}, Options{Width: 3, Height: 2})
	p.Move(Motion{X: Abs(End)})
	if ox, _ := p.Origin(); ox != 2 {
		t.Fatalf("setup: origin x = %d, want 2", ox)
	}
	if cx, _ := p.Cursor(); cx != 3 {
		t.Fatalf("setup: cursor x = %d, want 3", cx)
	}

	p.InsertChar('x')
	checkInvariants(t, p)
	p.Backspace()
	checkInvariants(t, p)

	if got := p.Lines(); !reflect.DeepEqual(got, []string{"abcde"}) {
		t.Errorf("buffer: got %q", got)
	}
	if x, y := p.Abs(); x != 5 || y != 0 {
		t.Errorf("absolute cursor: expected (5,0), got (%d,%d)", x, y)
	}
	ox, _ := p.Origin()
	cx, _ := p.Cursor()
	if ox != 4 || cx != 1 {
		t.Errorf("split: expected origin 4 cursor 1, got origin %d cursor %d", ox, cx)
	}
}

func TestInsertText_HandlesNewlines(t *testing.T) {
	p := New(nil, Options{Width: 10, Height: 4})
	p.InsertText("ab\ncd\x07")
	if got := p.Lines(); !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Errorf("got %q", got)
	}
	if p.Value() != "ab\ncd" {
		t.Errorf("Value: got %q", p.Value())
	}
}
