package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VectorBoard/internal/config"
	"VectorBoard/internal/editor"
	"VectorBoard/internal/shape"
)

func newTestBoard(t *testing.T) *BoardWidget {
	test.NewTempApp(t)
	b := NewBoardWidget(editor.NewController(config.Default()), color.White)
	b.Resize(fyne.NewSize(400, 400))
	return b
}

func mouse(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	e := &desktop.MouseEvent{Button: button}
	e.Position = fyne.NewPos(x, y)
	return e
}

func dragTo(x, y float32) *fyne.DragEvent {
	e := &fyne.DragEvent{}
	e.Position = fyne.NewPos(x, y)
	return e
}

func TestBoardWidgetDrawsWithMouse(t *testing.T) {
	b := newTestBoard(t)
	b.Editor().SetTool(shape.NewTemplate(shape.KindRectangle))

	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(dragTo(30, 30))
	b.Dragged(dragTo(50, 40))
	b.DragEnd()
	b.MouseUp(mouse(50, 40, desktop.MouseButtonPrimary))

	shapes := b.Editor().Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, shape.NewRect(fyne.NewPos(10, 10), fyne.NewPos(50, 40)), shapes[0].Bounds())

	objects := test.WidgetRenderer(b).Objects()
	require.Len(t, objects, 2, "background and rectangle")
	assert.Equal(t, fyne.NewSize(400, 400), objects[0].Size())
}

func TestBoardWidgetIgnoresSecondaryButton(t *testing.T) {
	b := newTestBoard(t)
	b.Editor().SetTool(shape.NewTemplate(shape.KindRectangle))

	b.MouseDown(mouse(10, 10, desktop.MouseButtonSecondary))
	assert.Equal(t, editor.Idle, b.Editor().Mode())
	b.TappedSecondary(&fyne.PointEvent{Position: fyne.NewPos(10, 10)})
	assert.Empty(t, b.Editor().Shapes())
}

func TestBoardWidgetPolygonTaps(t *testing.T) {
	b := newTestBoard(t)
	b.Editor().SetTool(shape.NewTemplate(shape.KindPolygon))

	tap := func(x, y float32) {
		b.MouseDown(mouse(x, y, desktop.MouseButtonPrimary))
		b.MouseUp(mouse(x, y, desktop.MouseButtonPrimary))
		b.Tapped(&fyne.PointEvent{Position: fyne.NewPos(x, y)})
	}
	tap(0, 0)
	tap(100, 0)
	b.MouseMoved(mouse(100, 100, 0))
	tap(100, 100)
	b.DoubleTapped(&fyne.PointEvent{Position: fyne.NewPos(100, 100)})

	shapes := b.Editor().Shapes()
	require.Len(t, shapes, 1)
	assert.Len(t, shapes[0].Points(), 3)
	assert.Equal(t, editor.Idle, b.Editor().Mode())
}

func TestBoardWidgetCursor(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, desktop.DefaultCursor, b.Cursor())

	b.Editor().SetTool(shape.NewTemplate(shape.KindRectangle))
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(dragTo(50, 40))
	b.MouseUp(mouse(50, 40, desktop.MouseButtonPrimary))

	b.Editor().SetTool(shape.NewTemplate(shape.KindMarquee))
	b.MouseDown(mouse(30, 25, desktop.MouseButtonPrimary))
	b.MouseUp(mouse(30, 25, desktop.MouseButtonPrimary))

	b.MouseIn(mouse(50, 25, 0))
	b.MouseMoved(mouse(50, 25, 0))
	assert.Equal(t, desktop.HResizeCursor, b.Cursor())

	b.MouseOut()
	assert.Equal(t, desktop.DefaultCursor, b.Cursor())
}

func TestToolPickerSetsTemplate(t *testing.T) {
	b := newTestBoard(t)
	picker := newToolPicker(b)
	assert.Equal(t, ToolSelect, picker.Selected)
	assert.Equal(t, shape.KindMarquee, b.Editor().Tool().Kind())

	picker.SetSelected(ToolEllipse)
	ellipse := b.Editor().Tool()
	assert.Equal(t, shape.KindEllipse, ellipse.Kind())

	picker.SetSelected(ToolLine)
	picker.SetSelected(ToolEllipse)
	assert.Same(t, ellipse, b.Editor().Tool(), "templates are reused")
}

func TestPaletteSwatchSetsColour(t *testing.T) {
	b := newTestBoard(t)
	red := palette[2]
	box := newPaletteBox(palette, b.Editor().SetFillColor)
	require.Len(t, box.Objects, len(palette))

	test.Tap(box.Objects[2].(*colorSwatch))
	assert.Equal(t, red, b.Editor().FillColor())
}

func TestNewWindowTracksHistory(t *testing.T) {
	a := test.NewTempApp(t)
	cfg := config.Default()
	w, b := NewWindow(a, cfg)
	defer w.Close()

	assert.Equal(t, appTitle, w.Title())
	require.NotNil(t, w.MainMenu())

	ed := b.Editor()
	ed.SetTool(shape.NewTemplate(shape.KindLine))
	ed.Press(fyne.NewPos(0, 0))
	ed.Drag(fyne.NewPos(20, 20))
	ed.Release(fyne.NewPos(20, 20))

	assert.Equal(t, appTitle+" - revision 1", w.Title())
	assert.Equal(t, "draw line (1 of 1, 1 shapes)", b.StatusBar().Text)

	menu := w.MainMenu().Items[0]
	require.Equal(t, "Edit", menu.Label)
	menu.Items[0].Action()
	assert.Empty(t, ed.Shapes())
	assert.Equal(t, "undo (0 of 1, 0 shapes)", b.StatusBar().Text)
}

func TestNewWindowSavesColoursOnClose(t *testing.T) {
	a := test.NewTempApp(t)
	w, b := NewWindow(a, config.Default())
	blue := color.NRGBA{B: 255, A: 255}
	b.Editor().SetLineColor(blue)
	w.Close()

	cfg := config.Load(a.Preferences())
	assert.Equal(t, blue, cfg.LineColor)
}

func TestBoardWidgetDragEndFinishesLostRelease(t *testing.T) {
	b := newTestBoard(t)
	ed := b.Editor()
	ed.SetTool(shape.NewTemplate(shape.KindRectangle))

	// released over the toolbar: no MouseUp reaches the board
	b.MouseDown(mouse(10, 10, desktop.MouseButtonPrimary))
	b.Dragged(dragTo(50, 40))
	b.DragEnd()

	assert.Equal(t, editor.Idle, ed.Mode())
	shapes := ed.Shapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, shape.NewRect(fyne.NewPos(10, 10), fyne.NewPos(50, 40)), shapes[0].Bounds())
	assert.Equal(t, 1, ed.History().Len())

	// the next gesture starts afresh instead of being ignored
	ed.SetTool(shape.NewTemplate(shape.KindMarquee))
	b.MouseDown(mouse(30, 25, desktop.MouseButtonPrimary))
	assert.Equal(t, editor.Moving, ed.Mode())
	b.Dragged(dragTo(40, 35))
	b.DragEnd()
	b.MouseUp(mouse(40, 35, desktop.MouseButtonPrimary))

	assert.Equal(t, shape.NewRect(fyne.NewPos(20, 20), fyne.NewPos(60, 50)), shapes[0].Bounds())
	assert.Equal(t, 2, ed.History().Len(), "a release after DragEnd does not commit twice")
}

func TestBoardWidgetDragEndKeepsPolygonOpen(t *testing.T) {
	b := newTestBoard(t)
	ed := b.Editor()
	ed.SetTool(shape.NewTemplate(shape.KindPolygon))

	b.MouseDown(mouse(0, 0, desktop.MouseButtonPrimary))
	b.Dragged(dragTo(30, 30))
	b.DragEnd()

	assert.Equal(t, editor.NPointsDrawing, ed.Mode())
	assert.Empty(t, ed.Shapes())
}

func TestEditButtonsFollowHistoryAndClipboard(t *testing.T) {
	b := newTestBoard(t)
	ed := b.Editor()
	buttons := newEditButtons(b)
	assert.True(t, buttons.undo.Disabled())
	assert.True(t, buttons.redo.Disabled())
	assert.True(t, buttons.paste.Disabled())
	assert.False(t, buttons.copy.Disabled())

	ed.SetTool(shape.NewTemplate(shape.KindRectangle))
	ed.Press(fyne.NewPos(10, 10))
	ed.Drag(fyne.NewPos(50, 40))
	ed.Release(fyne.NewPos(50, 40))
	assert.False(t, buttons.undo.Disabled())
	assert.True(t, buttons.redo.Disabled())

	ed.SetTool(shape.NewTemplate(shape.KindMarquee))
	ed.Press(fyne.NewPos(30, 25))
	ed.Release(fyne.NewPos(30, 25))
	test.Tap(buttons.copy)
	assert.False(t, buttons.paste.Disabled())

	test.Tap(buttons.undo)
	assert.Empty(t, ed.Shapes())
	assert.True(t, buttons.undo.Disabled())
	assert.False(t, buttons.redo.Disabled())
}
