// Package layout implements the frame tree: a binary space partition of a
// drawing surface into panes that can be split, resized, closed and walked.
//
// Frames live in a flat, insertion-ordered store keyed by FrameID. Child links
// point down and a denormalized Parent link points up, so closing a pane never
// scans the store. Exactly one leaf is active at any time.
package layout

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultRatio is the ratio given to a freshly split frame.
	DefaultRatio = 0.5
	// MinRatio and MaxRatio bound Resize so each side keeps a visible minimum.
	MinRatio = 0.2
	MaxRatio = 0.8
)

var (
	ErrNoFrame      = errors.New("no such frame")
	ErrNotLeaf      = errors.New("frame has children")
	ErrRoot         = errors.New("cannot close the root frame")
	ErrBadDirection = errors.New("invalid split direction")
	// ErrInvariant marks structural corruption. It indicates a bug in tree
	// maintenance and is never expected under correct use of the API.
	ErrInvariant = errors.New("layout invariant violated")
)

// Tree owns every frame of one layout.
type Tree struct {
	frames map[FrameID]*Frame
	order  []FrameID // insertion order of frames
	root   FrameID
	lastID FrameID
	focus  FocusRing
}

// New creates a tree holding a single active root leaf.
func New() *Tree {
	t := &Tree{frames: make(map[FrameID]*Frame)}
	t.root = t.create()
	t.focus.Current = t.root
	return t
}

// OnFocus registers fn to be called whenever the active leaf changes.
func (t *Tree) OnFocus(fn func(from, to FrameID)) {
	t.focus.OnChange = fn
}

// create allocates a leaf with zeroed geometry. IDs come from a strictly
// increasing counter.
func (t *Tree) create() FrameID {
	t.lastID++
	id := t.lastID
	t.frames[id] = &Frame{ID: id}
	t.order = append(t.order, id)
	return id
}

func (t *Tree) remove(id FrameID) {
	delete(t.frames, id)
	if i := indexOf(t.order, id); i >= 0 {
		t.order = append(t.order[:i], t.order[i+1:]...)
	}
}

// resolve maps the 0 shorthand to the active leaf.
func (t *Tree) resolve(id FrameID) FrameID {
	if id == 0 {
		return t.focus.Current
	}
	return id
}

// Root returns the root frame ID.
func (t *Tree) Root() FrameID { return t.root }

// Active returns the active leaf.
func (t *Tree) Active() FrameID { return t.focus.Current }

// Len returns the number of frames in the store, internal frames included.
func (t *Tree) Len() int { return len(t.frames) }

// IDs returns every frame ID in insertion order.
func (t *Tree) IDs() []FrameID {
	out := make([]FrameID, len(t.order))
	copy(out, t.order)
	return out
}

// Frame returns a copy of the frame with the given ID.
func (t *Tree) Frame(id FrameID) (Frame, bool) {
	f, ok := t.frames[t.resolve(id)]
	if !ok {
		return Frame{}, false
	}
	return *f, true
}

// Split turns the leaf id (0 = active) into an internal frame with two new
// leaf children. The leaf's content moves to the left child only; the right
// child starts empty. If id was active, the left child becomes active.
func (t *Tree) Split(id FrameID, dir Direction) error {
	id = t.resolve(id)
	if dir != Horizontal && dir != Vertical {
		return fmt.Errorf("split %d: %w: %v", id, ErrBadDirection, dir)
	}
	f, ok := t.frames[id]
	if !ok {
		return fmt.Errorf("split %d: %w", id, ErrNoFrame)
	}
	if !f.IsLeaf() {
		return fmt.Errorf("split %d: %w", id, ErrNotLeaf)
	}

	left, right := t.create(), t.create()
	t.frames[left].Parent = id
	t.frames[left].Content = f.Content
	t.frames[right].Parent = id

	f.Left, f.Right = left, right
	f.Dir = dir
	f.Ratio = DefaultRatio
	f.Content = 0

	if t.focus.Current == id {
		t.focus.set(left)
	}
	return nil
}

// Delete closes the leaf id (0 = active). Its sibling takes the parent's slot
// in the grandparent (or becomes the root) and both the leaf and its parent
// are removed. An empty sibling leaf adopts the closed leaf's content. If the
// closed leaf was active, the leaf that followed it in Leaves order becomes
// active.
//
// On an invariant violation the tree is left untouched.
func (t *Tree) Delete(id FrameID) error {
	id = t.resolve(id)
	f, ok := t.frames[id]
	if !ok {
		return fmt.Errorf("close %d: %w", id, ErrNoFrame)
	}
	if id == t.root {
		return fmt.Errorf("close %d: %w", id, ErrRoot)
	}
	if !f.IsLeaf() {
		return fmt.Errorf("close %d: %w", id, ErrNotLeaf)
	}
	parent, ok := t.frames[f.Parent]
	if !ok {
		return fmt.Errorf("close %d: %w: parent %d missing", id, ErrInvariant, f.Parent)
	}
	var sibID FrameID
	switch id {
	case parent.Left:
		sibID = parent.Right
	case parent.Right:
		sibID = parent.Left
	default:
		return fmt.Errorf("close %d: %w: parent %d does not link back", id, ErrInvariant, parent.ID)
	}
	sib, ok := t.frames[sibID]
	if !ok {
		return fmt.Errorf("close %d: %w: sibling %d missing", id, ErrInvariant, sibID)
	}
	var grand *Frame
	if parent.ID != t.root {
		grand, ok = t.frames[parent.Parent]
		if !ok || (grand.Left != parent.ID && grand.Right != parent.ID) {
			return fmt.Errorf("close %d: %w: grandparent %d does not link to %d",
				id, ErrInvariant, parent.Parent, parent.ID)
		}
	}

	wasActive := t.focus.Current == id
	var successor FrameID
	if wasActive {
		leaves := t.Leaves()
		successor = leaves[(indexOf(leaves, id)+1)%len(leaves)]
	}

	if grand == nil {
		t.root = sib.ID
		sib.Parent = 0
	} else {
		if grand.Left == parent.ID {
			grand.Left = sib.ID
		} else {
			grand.Right = sib.ID
		}
		sib.Parent = grand.ID
	}
	if sib.IsLeaf() && sib.Content == 0 {
		sib.Content = f.Content
	}
	t.remove(id)
	t.remove(parent.ID)

	if wasActive {
		t.focus.set(successor)
	}
	return nil
}

// Resize grows id's side of its parent split by delta (a negative delta
// shrinks it). The parent's ratio stays within [MinRatio, MaxRatio]. Resizing
// the root is a no-op.
func (t *Tree) Resize(id FrameID, delta float64) error {
	id = t.resolve(id)
	f, ok := t.frames[id]
	if !ok {
		return fmt.Errorf("resize %d: %w", id, ErrNoFrame)
	}
	if f.Parent == 0 {
		return nil
	}
	parent, ok := t.frames[f.Parent]
	if !ok {
		return fmt.Errorf("resize %d: %w: parent %d missing", id, ErrInvariant, f.Parent)
	}
	switch id {
	case parent.Left:
		parent.Ratio = clampRatio(parent.Ratio + delta)
	case parent.Right:
		parent.Ratio = clampRatio(parent.Ratio - delta)
	default:
		return fmt.Errorf("resize %d: %w: parent %d does not link back", id, ErrInvariant, parent.ID)
	}
	return nil
}

func clampRatio(r float64) float64 {
	return math.Min(MaxRatio, math.Max(MinRatio, r))
}

// SetContent attaches c to the leaf id (0 = active).
func (t *Tree) SetContent(id FrameID, c ContentID) error {
	id = t.resolve(id)
	f, ok := t.frames[id]
	if !ok {
		return fmt.Errorf("set content %d: %w", id, ErrNoFrame)
	}
	if !f.IsLeaf() {
		return fmt.Errorf("set content %d: %w", id, ErrNotLeaf)
	}
	f.Content = c
	return nil
}

// Leaves returns the leaf IDs in pre-order. This order defines Next and Prev.
func (t *Tree) Leaves() []FrameID {
	var out []FrameID
	t.Walk(func(f Frame) bool {
		if f.IsLeaf() {
			out = append(out, f.ID)
		}
		return true
	})
	return out
}

// Walk visits every reachable frame in pre-order, left before right. Returning
// false from fn skips the frame's subtree.
func (t *Tree) Walk(fn func(Frame) bool) {
	t.walk(t.root, fn)
}

func (t *Tree) walk(id FrameID, fn func(Frame) bool) {
	f, ok := t.frames[id]
	if !ok {
		return
	}
	if !fn(*f) || f.IsLeaf() {
		return
	}
	t.walk(f.Left, fn)
	t.walk(f.Right, fn)
}

// Next activates the leaf after the active one, wrapping around.
func (t *Tree) Next() FrameID {
	return t.focus.Next(t.Leaves())
}

// Prev activates the leaf before the active one, wrapping around.
func (t *Tree) Prev() FrameID {
	return t.focus.Prev(t.Leaves())
}

// Focus makes the leaf id active.
func (t *Tree) Focus(id FrameID) error {
	if !t.focus.SetFocus(t.Leaves(), id) {
		return fmt.Errorf("focus %d: %w", id, ErrNoFrame)
	}
	return nil
}

// LeafAt returns the leaf whose rectangle contains (x, y).
func (t *Tree) LeafAt(x, y int) (FrameID, bool) {
	for _, id := range t.Leaves() {
		if t.frames[id].Rect.Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}
