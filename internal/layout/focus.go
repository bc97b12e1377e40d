package layout

// FocusRing tracks the active leaf and rotates it across a leaf order.
// The order is supplied on every call because splits and closes change it.
type FocusRing struct {
	Current  FrameID // the active leaf
	OnChange func(from, to FrameID)
}

// Next advances focus to the leaf after Current in order, wrapping around.
// Returns the new current leaf.
func (f *FocusRing) Next(order []FrameID) FrameID {
	return f.step(order, 1)
}

// Prev moves focus to the leaf before Current in order, wrapping around.
func (f *FocusRing) Prev(order []FrameID) FrameID {
	return f.step(order, -1)
}

func (f *FocusRing) step(order []FrameID, by int) FrameID {
	if len(order) == 0 {
		return f.Current
	}
	idx := indexOf(order, f.Current)
	if idx < 0 {
		// Current fell out of the order; restart from the first leaf.
		f.set(order[0])
		return f.Current
	}
	n := len(order)
	f.set(order[((idx+by)%n+n)%n])
	return f.Current
}

// SetFocus makes id current if it appears in order.
// Returns true if the ID exists in order.
func (f *FocusRing) SetFocus(order []FrameID, id FrameID) bool {
	if indexOf(order, id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusRing) set(id FrameID) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

func indexOf(order []FrameID, id FrameID) int {
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return -1
}
