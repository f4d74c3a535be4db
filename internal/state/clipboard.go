package state

import "VectorBoard/internal/shape"

// Clipboard holds copies of the shapes most recently copied or cut.
// Shapes are stored from the top of the board downwards.
type Clipboard struct {
	shapes []shape.Shape
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy replaces the clipboard contents with copies of the selected shapes
// and returns how many were copied. An empty selection leaves the clipboard
// untouched.
func (c *Clipboard) Copy(shapes []shape.Shape) int {
	var copied []shape.Shape
	for i := len(shapes) - 1; i >= 0; i-- {
		if !shapes[i].Selected() {
			continue
		}
		cp := shapes[i].DeepCopy()
		cp.SetSelected(false)
		copied = append(copied, cp)
	}
	if len(copied) == 0 {
		return 0
	}
	c.shapes = copied
	return len(copied)
}

// Cut copies the selected shapes and returns the list without them. The
// input slice is not modified. It returns false for an empty selection.
func (c *Clipboard) Cut(shapes []shape.Shape) ([]shape.Shape, bool) {
	if c.Copy(shapes) == 0 {
		return shapes, false
	}
	remaining := make([]shape.Shape, 0, len(shapes))
	for _, s := range shapes {
		if s.Selected() {
			s.SetSelected(false)
			continue
		}
		remaining = append(remaining, s)
	}
	return remaining, true
}

// Paste returns fresh copies of the clipboard contents in storage order,
// top of the board first. Every call hands out new shapes.
func (c *Clipboard) Paste() []shape.Shape {
	return shape.DeepCopyAll(c.shapes)
}

// Len returns the number of shapes held.
func (c *Clipboard) Len() int { return len(c.shapes) }

// Empty reports whether there is nothing to paste.
func (c *Clipboard) Empty() bool { return len(c.shapes) == 0 }
