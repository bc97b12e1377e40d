package layout

import "fmt"

// FrameID identifies a frame within one Tree. IDs are never reused, so a stale
// handle is detectable after the frame it named has been closed.
type FrameID uint64

// ContentID is an opaque handle to whatever a leaf displays. Zero means empty.
type ContentID uint64

// Direction is the split axis of an internal frame.
type Direction int

const (
	None Direction = iota
	// Horizontal places the children side by side and divides the width.
	Horizontal
	// Vertical stacks the children and divides the height.
	Vertical
)

func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Rect is a frame's position and size in surface cells.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Frame is one node of the layout tree. A leaf has no children and may carry
// content; an internal frame has exactly two children, a direction and a ratio.
// Rect of an internal frame is bookkeeping only; renderers draw leaves.
type Frame struct {
	ID      FrameID
	Parent  FrameID // 0 for the root
	Left    FrameID // 0 for a leaf
	Right   FrameID // 0 for a leaf
	Dir     Direction
	Ratio   float64
	Rect    Rect
	Content ContentID
}

// IsLeaf reports whether f has no children.
func (f Frame) IsLeaf() bool {
	return f.Left == 0 && f.Right == 0
}
