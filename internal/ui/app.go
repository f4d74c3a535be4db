package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"VectorBoard/internal/config"
	"VectorBoard/internal/editor"
	"VectorBoard/internal/shape"
)

const appTitle = "Vector Board"

// NewWindow builds the editor window for cfg without showing it.
func NewWindow(a fyne.App, cfg config.Config) (fyne.Window, *BoardWidget) {
	shape.AnchorSize = cfg.AnchorSize
	shape.LineTolerance = cfg.LineTolerance

	myWindow := a.NewWindow(appTitle)
	myWindow.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))

	// Create the interactive board widget
	board := NewBoardWidget(editor.NewController(cfg), cfg.BackgroundColor)
	board.Editor().OnChange = func(label string) {
		board.UpdateStatus(label)
		myWindow.SetTitle(windowTitle(board.Editor()))
	}

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board)

	myWindow.SetMainMenu(newMainMenu(board.Editor()))
	addShortcuts(myWindow.Canvas(), board.Editor())

	// Set up the main layout
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)

	// Remember the window size and the colours for new shapes
	myWindow.SetOnClosed(func() {
		size := myWindow.Canvas().Size()
		cfg.WindowWidth, cfg.WindowHeight = size.Width, size.Height
		cfg.FillColor = board.Editor().FillColor()
		cfg.LineColor = board.Editor().LineColor()
		cfg.Save(a.Preferences())
	})
	return myWindow, board
}

// RunApp shows the editor window and blocks until it is closed.
func RunApp(a fyne.App, cfg config.Config) {
	w, _ := NewWindow(a, cfg)
	w.ShowAndRun()
}

func windowTitle(ed *editor.Controller) string {
	rev := ed.History().Revision()
	if rev == 0 {
		return appTitle
	}
	return fmt.Sprintf("%s - revision %d", appTitle, rev)
}

func newMainMenu(ed *editor.Controller) *fyne.MainMenu {
	edit := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", ed.Undo),
		fyne.NewMenuItem("Redo", ed.Redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Cut", ed.Cut),
		fyne.NewMenuItem("Copy", ed.Copy),
		fyne.NewMenuItem("Paste", ed.Paste),
		fyne.NewMenuItem("Delete", ed.Delete),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Group", ed.Group),
		fyne.NewMenuItem("Ungroup", ed.Ungroup),
	)
	return fyne.NewMainMenu(edit)
}

// addShortcuts routes the keyboard shortcuts of the Edit menu to the same
// editor commands.
func addShortcuts(c fyne.Canvas, ed *editor.Controller) {
	shortcut := fyne.KeyModifierShortcutDefault
	bind := func(key fyne.KeyName, mod fyne.KeyModifier, action func()) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) { action() })
	}
	bind(fyne.KeyZ, shortcut, ed.Undo)
	bind(fyne.KeyZ, shortcut|fyne.KeyModifierShift, ed.Redo)
	bind(fyne.KeyG, shortcut, ed.Group)
	bind(fyne.KeyG, shortcut|fyne.KeyModifierShift, ed.Ungroup)

	c.AddShortcut(&fyne.ShortcutCut{}, func(fyne.Shortcut) { ed.Cut() })
	c.AddShortcut(&fyne.ShortcutCopy{}, func(fyne.Shortcut) { ed.Copy() })
	c.AddShortcut(&fyne.ShortcutPaste{}, func(fyne.Shortcut) { ed.Paste() })
}
