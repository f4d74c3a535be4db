// Package editor implements the interaction state machine of the board: it
// turns pointer events into drawing, moving, resizing and selection gestures
// and commits their results to the undo history.
package editor

import (
	"image/color"
	"log"
	"slices"

	"fyne.io/fyne/v2/driver/desktop"

	"VectorBoard/internal/config"
	"VectorBoard/internal/shape"
	"VectorBoard/internal/state"
)

// Controller owns the shape list, the current mode and the active gesture.
// It is driven from the UI event loop and is not safe for concurrent use.
type Controller struct {
	mode     Mode
	shapes   []shape.Shape
	tool     shape.Shape
	selected shape.Shape
	pending  shape.Shape

	active  Transformer
	drawer  *Drawer
	mover   *Mover
	resizer *Resizer
	grouper *Grouper

	fillColor   color.Color
	lineColor   color.Color
	marqueeLine color.Color

	history   *state.History
	clipboard *state.Clipboard
	cursors   *CursorManager

	OnRefresh func()
	OnCursor  func(c desktop.Cursor)
	// OnChange is called after the history moved: a commit, an undo or a redo.
	OnChange func(label string)
}

// NewController creates an idle controller with the select tool active.
func NewController(cfg config.Config) *Controller {
	return &Controller{
		mode:        Idle,
		tool:        shape.NewTemplate(shape.KindMarquee),
		fillColor:   cfg.FillColor,
		lineColor:   cfg.LineColor,
		marqueeLine: cfg.LineColor,
		history:     state.NewHistory(cfg.HistoryLimit),
		clipboard:   state.NewClipboard(),
		cursors:     NewCursorManager(),
	}
}

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Shapes returns the top-level shapes in paint order.
func (c *Controller) Shapes() []shape.Shape { return slices.Clone(c.shapes) }

// Selected returns the primary selection, or nil.
func (c *Controller) Selected() shape.Shape { return c.selected }

// Pending returns the shape being drawn or the marquee being dragged. It is
// not part of the shape list until the gesture commits.
func (c *Controller) Pending() shape.Shape { return c.pending }

// Tool returns the active tool template.
func (c *Controller) Tool() shape.Shape { return c.tool }

// History returns the undo history.
func (c *Controller) History() *state.History { return c.history }

// Clipboard returns the clipboard.
func (c *Controller) Clipboard() *state.Clipboard { return c.clipboard }

// FillColor returns the fill used for the next new shape.
func (c *Controller) FillColor() color.Color { return c.fillColor }

// LineColor returns the outline used for the next new shape.
func (c *Controller) LineColor() color.Color { return c.lineColor }

// SetTool makes template the active tool. Templates are cloned for every
// gesture and never enter the shape list themselves.
func (c *Controller) SetTool(template shape.Shape) {
	if template == nil {
		return
	}
	c.tool = template
}

// SetFillColor restyles the primary selection, or sets the fill of the next
// new shape when nothing is selected.
func (c *Controller) SetFillColor(col color.Color) {
	if c.selected != nil {
		c.selected.SetFillColor(col)
		c.commit("fill colour")
		c.refresh()
		return
	}
	c.fillColor = col
}

// SetLineColor restyles the primary selection, or sets the outline of the
// next new shape when nothing is selected.
func (c *Controller) SetLineColor(col color.Color) {
	if c.selected != nil {
		c.selected.SetLineColor(col)
		c.commit("line colour")
		c.refresh()
		return
	}
	c.lineColor = col
}

// Press starts a gesture at p. It is ignored unless the controller is idle.
func (c *Controller) Press(p shape.Point) {
	if c.mode != Idle || c.tool == nil {
		return
	}
	if c.tool.Kind() == shape.KindMarquee {
		c.pressSelect(p)
		return
	}

	c.clearSelection()
	c.selected = nil
	c.pending = c.newShape()
	c.drawer = NewDrawer(c.pending)
	mode := TwoPointsDrawing
	if c.pending.Kind() == shape.KindPolygon {
		mode = NPointsDrawing
	}
	c.begin(mode, c.drawer, p)
}

func (c *Controller) pressSelect(p shape.Point) {
	c.selected = c.hitTest(p)
	c.clearSelection()
	if c.selected == nil {
		c.pending = c.newShape()
		c.grouper = NewGrouper(c.pending)
		c.begin(Selecting, c.grouper, p)
		return
	}

	c.selected.SetSelected(true)
	if anchor := shape.AnchorAt(c.selected, p); anchor != shape.AnchorNone {
		c.resizer = NewResizer(c.selected, anchor)
		c.begin(Resizing, c.resizer, p)
		return
	}
	c.mover = NewMover(c.selected)
	c.begin(Moving, c.mover, p)
}

// Drag forwards p to the active gesture.
func (c *Controller) Drag(p shape.Point) {
	if c.mode == Idle || c.active == nil {
		return
	}
	c.active.Update(p)
	c.refresh()
}

// Release ends the press-drag gesture. A polygon in progress ignores it, but
// the board is redrawn either way.
func (c *Controller) Release(shape.Point) {
	switch c.mode {
	case Idle, NPointsDrawing:
		c.refresh()
		return
	case TwoPointsDrawing:
		c.commitDrawing()
	case Resizing:
		c.resizer.Finalize(c.shapes)
		c.commit("resize")
	case Selecting:
		c.grouper.Finalize(c.shapes)
	case Moving:
		if c.mover.Moved() {
			c.commit("move")
		}
	}
	c.end()
	c.refresh()
}

// Click handles a click with the given repeat count. Single primary clicks
// add polygon vertices and a double click closes the polygon. Independently,
// a double click runs a normalise pass on the primary selection.
func (c *Controller) Click(p shape.Point, button Button, count int) {
	if button == ButtonPrimary && c.mode == NPointsDrawing {
		switch count {
		case 1:
			c.drawer.AddVertex(p)
			c.refresh()
		case 2:
			c.commitDrawing()
			c.end()
			c.refresh()
		}
	}

	if c.selected != nil && count == 2 {
		r := NewResizer(c.selected, shape.AnchorNone)
		r.Prepare()
		r.Finalize(c.shapes)
		c.commit("normalise")
		c.refresh()
	}
}

// Move handles pointer movement with no button held: it previews the next
// polygon edge, or updates the cursor over a selected shape.
func (c *Controller) Move(p shape.Point) {
	switch c.mode {
	case NPointsDrawing:
		c.drawer.Update(p)
		c.refresh()
	case Idle:
		var cursor desktop.Cursor = desktop.DefaultCursor
		if s := c.hitTest(p); s != nil && s.Selected() {
			cursor = c.cursors.Get(shape.AnchorAt(s, p))
		}
		if c.OnCursor != nil {
			c.OnCursor(cursor)
		}
	}
}

// Group moves the selected top-level shapes into a new selected group.
func (c *Controller) Group() {
	group := shape.NewGroup()
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if !s.Selected() {
			continue
		}
		s.SetSelected(false)
		group.Adopt(s)
		c.shapes = slices.Delete(c.shapes, i, i+1)
	}
	if group.Len() == 0 {
		return
	}
	group.SetSelected(true)
	c.shapes = append(c.shapes, group)
	c.selected = group
	c.commit("group")
	c.refresh()
}

// Ungroup dissolves every selected group, putting its children back on the
// board as selected top-level shapes. It does not record history.
func (c *Controller) Ungroup() {
	var released []shape.Shape
	for i := len(c.shapes) - 1; i >= 0; i-- {
		g, ok := c.shapes[i].(*shape.Group)
		if !ok || !g.Selected() {
			continue
		}
		for _, child := range g.Release() {
			child.SetSelected(true)
			released = append(released, child)
		}
		c.shapes = slices.Delete(c.shapes, i, i+1)
		if c.selected == shape.Shape(g) {
			c.selected = nil
		}
	}
	if len(released) == 0 {
		return
	}
	c.shapes = append(c.shapes, released...)
	c.refresh()
}

// Copy puts copies of the selected shapes on the clipboard.
func (c *Controller) Copy() {
	if n := c.clipboard.Copy(c.shapes); n > 0 {
		log.Printf("[EDITOR] copied %d shapes", n)
		c.refresh()
	}
}

// Cut moves the selected shapes to the clipboard.
func (c *Controller) Cut() {
	remaining, ok := c.clipboard.Cut(c.shapes)
	if !ok {
		return
	}
	c.shapes = remaining
	c.dropStaleSelection()
	c.commit("cut")
	c.refresh()
}

// Paste adds fresh copies of the clipboard contents on top of the board and
// selects them.
func (c *Controller) Paste() {
	pasted := c.clipboard.Paste()
	if len(pasted) == 0 {
		return
	}
	c.clearSelection()
	c.selected = nil
	for i := len(pasted) - 1; i >= 0; i-- {
		pasted[i].SetSelected(true)
		c.shapes = append(c.shapes, pasted[i])
	}
	c.commit("paste")
	c.refresh()
}

// Delete removes the selected shapes.
func (c *Controller) Delete() {
	removed := 0
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if !s.Selected() {
			continue
		}
		s.SetSelected(false)
		c.shapes = slices.Delete(c.shapes, i, i+1)
		removed++
	}
	if removed == 0 {
		return
	}
	c.dropStaleSelection()
	c.commit("delete")
	c.refresh()
}

// Undo restores the board to the previous snapshot.
func (c *Controller) Undo() {
	shapes, ok := c.history.Undo()
	if !ok {
		return
	}
	c.restore(shapes, "undo")
}

// Redo restores the snapshot that was last undone.
func (c *Controller) Redo() {
	shapes, ok := c.history.Redo()
	if !ok {
		return
	}
	c.restore(shapes, "redo")
}

func (c *Controller) restore(shapes []shape.Shape, label string) {
	c.shapes = shapes
	c.selected = nil
	log.Printf("[EDITOR] %s (entry %d of %d)", label, c.history.Cursor()+1, c.history.Len())
	if c.OnChange != nil {
		c.OnChange(label)
	}
	c.refresh()
}

// Paint draws the committed shapes in list order, then the pending shape.
func (c *Controller) Paint(s shape.Surface) {
	for _, sh := range c.shapes {
		sh.Draw(s)
	}
	if c.pending != nil {
		c.pending.Draw(s)
	}
}

// hitTest walks the list from the top. A selected shape is also hit on its
// resize handles, which may stick out of its outline.
func (c *Controller) hitTest(p shape.Point) shape.Shape {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if s.Contains(p) {
			return s
		}
		if s.Selected() && shape.AnchorAt(s, p) != shape.AnchorNone {
			return s
		}
	}
	return nil
}

func (c *Controller) newShape() shape.Shape {
	s := c.tool.Clone()
	if s.Kind() == shape.KindMarquee {
		s.SetLineColor(c.marqueeLine)
		s.SetFillColor(color.Transparent)
		return s
	}
	s.SetFillColor(c.fillColor)
	s.SetLineColor(c.lineColor)
	return s
}

func (c *Controller) begin(mode Mode, t Transformer, p shape.Point) {
	c.active = t
	t.Init(p)
	c.mode = mode
	c.refresh()
}

func (c *Controller) end() {
	c.mode = Idle
	c.active = nil
	c.drawer = nil
	c.mover = nil
	c.resizer = nil
	c.grouper = nil
	c.pending = nil
}

func (c *Controller) commitDrawing() {
	c.drawer.Finalize(c.shapes)
	c.shapes = append(c.shapes, c.pending)
	c.commit("draw " + c.pending.Kind().String())
}

func (c *Controller) commit(label string) {
	c.history.Push(label, c.shapes)
	log.Printf("[EDITOR] %s (entry %d, %d shapes)", label, c.history.Len(), len(c.shapes))
	if c.OnChange != nil {
		c.OnChange(label)
	}
}

func (c *Controller) clearSelection() {
	for _, s := range c.shapes {
		s.SetSelected(false)
	}
}

// dropStaleSelection forgets the primary selection once it left the board.
func (c *Controller) dropStaleSelection() {
	if c.selected != nil && !slices.Contains(c.shapes, c.selected) {
		c.selected = nil
	}
}

func (c *Controller) refresh() {
	if c.OnRefresh != nil {
		c.OnRefresh()
	}
}
