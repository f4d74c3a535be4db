package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/editor"
	"VectorBoard/internal/shape"
)

// BoardWidget is the drawing surface. It translates desktop pointer events
// into calls on the editor controller and paints the controller's shapes.
type BoardWidget struct {
	widget.BaseWidget
	editor     *editor.Controller
	background color.Color
	cursor     desktop.Cursor
	statusBar  *widget.Label
	lastDrag   fyne.Position
	watchers   []func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Tappable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ fyne.SecondaryTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(ed *editor.Controller, background color.Color) *BoardWidget {
	b := &BoardWidget{
		editor:     ed,
		background: background,
		cursor:     desktop.DefaultCursor,
		statusBar:  widget.NewLabel("Ready"),
	}
	ed.OnRefresh = b.refresh
	ed.OnCursor = func(c desktop.Cursor) { b.cursor = c }
	b.ExtendBaseWidget(b)
	return b
}

// Editor returns the controller behind the board.
func (b *BoardWidget) Editor() *editor.Controller {
	return b.editor
}

// StatusBar returns the label showing the last editor change.
func (b *BoardWidget) StatusBar() *widget.Label {
	return b.statusBar
}

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// UpdateStatus describes the history position after an editor change.
func (b *BoardWidget) UpdateStatus(label string) {
	h := b.editor.History()
	shapes := 0
	if e, ok := h.Current(); ok {
		shapes = e.Count()
	}
	b.SetStatus(fmt.Sprintf("%s (%d of %d, %d shapes)", label, h.Cursor()+1, h.Len(), shapes))
}

// Watch registers f to run after every repaint requested by the editor.
func (b *BoardWidget) Watch(f func()) {
	b.watchers = append(b.watchers, f)
}

func (b *BoardWidget) refresh() {
	b.Refresh()
	for _, f := range b.watchers {
		f()
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.editor.Press(e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.editor.Release(e.Position)
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.lastDrag = e.Position
	b.editor.Drag(e.Position)
}

// DragEnd finishes the gesture when the button was released over another
// object, which gets the MouseUp instead of the board.
func (b *BoardWidget) DragEnd() {
	switch b.editor.Mode() {
	case editor.Idle, editor.NPointsDrawing:
		return
	}
	b.editor.Release(b.lastDrag)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.editor.Move(e.Position)
}

func (b *BoardWidget) MouseOut() {
	b.cursor = desktop.DefaultCursor
}

func (b *BoardWidget) Tapped(e *fyne.PointEvent) {
	b.editor.Click(e.Position, editor.ButtonPrimary, 1)
}

func (b *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	b.editor.Click(e.Position, editor.ButtonPrimary, 2)
}

func (b *BoardWidget) TappedSecondary(e *fyne.PointEvent) {
	b.editor.Click(e.Position, editor.ButtonSecondary, 1)
}

func (b *BoardWidget) Cursor() desktop.Cursor {
	return b.cursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	surface := &shape.Canvas{Objects: []fyne.CanvasObject{r.background}}
	r.board.editor.Paint(surface)
	return surface.Objects
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
