package layout

// Geometry recomputes the rectangle of every frame by subdividing (x, y, w, h)
// from the root. A Horizontal frame gives its left child floor(w*ratio) columns
// and the right child the rest; Vertical does the same with rows. Children
// therefore never overlap and always sum to the parent's extent.
func (t *Tree) Geometry(x, y, w, h int) {
	t.place(t.root, Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)})
}

func (t *Tree) place(id FrameID, r Rect) {
	f, ok := t.frames[id]
	if !ok {
		return
	}
	f.Rect = r
	if f.IsLeaf() {
		return
	}
	first, second := splitRect(r, f.Dir, f.Ratio)
	t.place(f.Left, first)
	t.place(f.Right, second)
}

func splitRect(r Rect, dir Direction, ratio float64) (Rect, Rect) {
	switch dir {
	case Vertical:
		top := int(float64(r.H) * ratio)
		return Rect{X: r.X, Y: r.Y, W: r.W, H: top},
			Rect{X: r.X, Y: r.Y + top, W: r.W, H: r.H - top}
	default:
		left := int(float64(r.W) * ratio)
		return Rect{X: r.X, Y: r.Y, W: left, H: r.H},
			Rect{X: r.X + left, Y: r.Y, W: r.W - left, H: r.H}
	}
}
