package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"VectorBoard/internal/editor"
	"VectorBoard/internal/shape"
)

// Tool names in toolbar order.
const (
	ToolSelect    = "Select"
	ToolRectangle = "Rectangle"
	ToolEllipse   = "Ellipse"
	ToolLine      = "Line"
	ToolPolygon   = "Polygon"
)

var toolKinds = map[string]shape.Kind{
	ToolSelect:    shape.KindMarquee,
	ToolRectangle: shape.KindRectangle,
	ToolEllipse:   shape.KindEllipse,
	ToolLine:      shape.KindLine,
	ToolPolygon:   shape.KindPolygon,
}

var palette = []color.Color{
	color.Black,
	color.White,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func newPaletteBox(colors []color.Color, tapped func(color.Color)) *fyne.Container {
	box := container.NewHBox()
	for _, c := range colors {
		box.Add(newColorSwatch(c, tapped))
	}
	return box
}

// newToolPicker builds the radio group choosing the active tool. Templates
// are created once and reused for every gesture.
func newToolPicker(board *BoardWidget) *widget.RadioGroup {
	templates := make(map[string]shape.Shape, len(toolKinds))
	for name, kind := range toolKinds {
		templates[name] = shape.NewTemplate(kind)
	}
	picker := widget.NewRadioGroup(
		[]string{ToolSelect, ToolRectangle, ToolEllipse, ToolLine, ToolPolygon},
		func(name string) {
			if t, ok := templates[name]; ok {
				board.Editor().SetTool(t)
			}
		},
	)
	picker.Horizontal = true
	picker.Required = true
	picker.SetSelected(ToolSelect)
	return picker
}

// editButtons are the toolbar commands. Undo, redo and paste are only
// enabled when the history or the clipboard has something for them.
type editButtons struct {
	editor                               *editor.Controller
	undo, redo, cut, copy, paste, delete *widget.Button
}

func newEditButtons(board *BoardWidget) *editButtons {
	ed := board.Editor()
	button := func(icon fyne.Resource, action func()) *widget.Button {
		b := widget.NewButtonWithIcon("", icon, action)
		b.Importance = widget.LowImportance
		return b
	}
	e := &editButtons{
		editor: ed,
		undo:   button(theme.ContentUndoIcon(), ed.Undo),
		redo:   button(theme.ContentRedoIcon(), ed.Redo),
		cut:    button(theme.ContentCutIcon(), ed.Cut),
		copy:   button(theme.ContentCopyIcon(), ed.Copy),
		paste:  button(theme.ContentPasteIcon(), ed.Paste),
		delete: button(theme.DeleteIcon(), ed.Delete),
	}
	board.Watch(e.update)
	e.update()
	return e
}

func (e *editButtons) update() {
	setEnabled(e.undo, e.editor.History().CanUndo())
	setEnabled(e.redo, e.editor.History().CanRedo())
	setEnabled(e.paste, !e.editor.Clipboard().Empty())
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled == !b.Disabled() {
		return
	}
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (e *editButtons) objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		e.undo, e.redo, widget.NewSeparator(),
		e.cut, e.copy, e.paste, e.delete,
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	ed := board.Editor()
	fills := append([]color.Color{color.Transparent}, palette...)

	top := container.NewHBox(widget.NewLabel("Tool:"), newToolPicker(board), widget.NewSeparator())
	for _, o := range newEditButtons(board).objects() {
		top.Add(o)
	}
	top.Add(layout.NewSpacer())

	return container.NewVBox(
		top,
		container.NewHBox(
			widget.NewLabel("Fill:"),
			newPaletteBox(fills, ed.SetFillColor),
			widget.NewSeparator(),
			widget.NewLabel("Line:"),
			newPaletteBox(palette, ed.SetLineColor),
			layout.NewSpacer(),
		),
	)
}
