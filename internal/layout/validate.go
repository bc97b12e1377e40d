package layout

import "fmt"

// Validate checks the structural invariants of the tree: one root, every
// frame reachable, child and parent links agreeing, internal frames with two
// children, a direction and no content, and an active leaf that exists.
// Any violation is reported wrapping ErrInvariant.
func (t *Tree) Validate() error {
	root, ok := t.frames[t.root]
	if !ok {
		return fmt.Errorf("%w: root %d missing", ErrInvariant, t.root)
	}
	if root.Parent != 0 {
		return fmt.Errorf("%w: root %d has parent %d", ErrInvariant, t.root, root.Parent)
	}

	seen := make(map[FrameID]bool, len(t.frames))
	leaves, internal := 0, 0
	stack := []FrameID{t.root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[id] {
			return fmt.Errorf("%w: frame %d reachable twice", ErrInvariant, id)
		}
		seen[id] = true
		f, ok := t.frames[id]
		if !ok {
			return fmt.Errorf("%w: frame %d linked but missing", ErrInvariant, id)
		}
		if f.IsLeaf() {
			leaves++
			continue
		}
		internal++
		if f.Left == 0 || f.Right == 0 {
			return fmt.Errorf("%w: frame %d has a single child", ErrInvariant, id)
		}
		if f.Dir != Horizontal && f.Dir != Vertical {
			return fmt.Errorf("%w: frame %d has direction %v", ErrInvariant, id, f.Dir)
		}
		if f.Content != 0 {
			return fmt.Errorf("%w: internal frame %d carries content", ErrInvariant, id)
		}
		for _, c := range []FrameID{f.Left, f.Right} {
			child, ok := t.frames[c]
			if !ok {
				return fmt.Errorf("%w: frame %d child %d missing", ErrInvariant, id, c)
			}
			if child.Parent != id {
				return fmt.Errorf("%w: frame %d parent is %d, want %d", ErrInvariant, c, child.Parent, id)
			}
			stack = append(stack, c)
		}
	}

	if len(seen) != len(t.frames) {
		return fmt.Errorf("%w: %d frames stored, %d reachable", ErrInvariant, len(t.frames), len(seen))
	}
	if leaves != internal+1 {
		return fmt.Errorf("%w: %d leaves for %d internal frames", ErrInvariant, leaves, internal)
	}
	active, ok := t.frames[t.focus.Current]
	if !ok || !active.IsLeaf() {
		return fmt.Errorf("%w: active %d is not a leaf", ErrInvariant, t.focus.Current)
	}
	return nil
}
