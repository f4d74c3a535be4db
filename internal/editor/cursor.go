package editor

import (
	"fyne.io/fyne/v2/driver/desktop"

	"VectorBoard/internal/shape"
)

// CursorManager maps resize anchors to pointer cursors.
type CursorManager struct {
	cursors map[shape.Anchor]desktop.Cursor
}

// NewCursorManager creates the default mapping. fyne has no diagonal resize
// cursors, so corners use the crosshair.
func NewCursorManager() *CursorManager {
	return &CursorManager{cursors: map[shape.Anchor]desktop.Cursor{
		shape.AnchorNone: desktop.PointerCursor,
		shape.AnchorNW:   desktop.CrosshairCursor,
		shape.AnchorNE:   desktop.CrosshairCursor,
		shape.AnchorSE:   desktop.CrosshairCursor,
		shape.AnchorSW:   desktop.CrosshairCursor,
		shape.AnchorN:    desktop.VResizeCursor,
		shape.AnchorS:    desktop.VResizeCursor,
		shape.AnchorE:    desktop.HResizeCursor,
		shape.AnchorW:    desktop.HResizeCursor,
	}}
}

// Get returns the cursor for a, or the default cursor for unknown anchors.
func (m *CursorManager) Get(a shape.Anchor) desktop.Cursor {
	if c, ok := m.cursors[a]; ok {
		return c
	}
	return desktop.DefaultCursor
}
