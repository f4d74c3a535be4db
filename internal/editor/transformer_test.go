package editor

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/stretchr/testify/assert"

	"VectorBoard/internal/shape"
)

func TestDrawerGrowsShape(t *testing.T) {
	r := shape.NewTemplate(shape.KindRectangle).Clone()
	d := NewDrawer(r)
	d.Init(fyne.NewPos(10, 10))
	d.Update(fyne.NewPos(30, 30))
	d.Update(fyne.NewPos(50, 40))
	d.Finalize(nil)

	assert.Equal(t, shape.NewRect(fyne.NewPos(10, 10), fyne.NewPos(50, 40)), r.Bounds())
}

func TestMoverOnlyCountsRealDisplacement(t *testing.T) {
	r := shape.NewRectangle(fyne.NewPos(0, 0), fyne.NewPos(10, 10))
	m := NewMover(r)
	m.Init(fyne.NewPos(5, 5))
	m.Update(fyne.NewPos(5, 5))
	assert.False(t, m.Moved())

	m.Update(fyne.NewPos(8, 9))
	m.Update(fyne.NewPos(10, 10))
	assert.True(t, m.Moved())
	assert.Equal(t, []shape.Point{fyne.NewPos(5, 5), fyne.NewPos(15, 15)}, r.Points())
}

func TestResizerMapsFromInitialGeometry(t *testing.T) {
	r := shape.NewRectangle(fyne.NewPos(10, 10), fyne.NewPos(50, 40))
	rs := NewResizer(r, shape.AnchorSE)
	rs.Init(fyne.NewPos(50, 40))

	// collapsing to nothing and coming back loses no information
	rs.Update(fyne.NewPos(10, 10))
	rs.Update(fyne.NewPos(70, 60))
	rs.Finalize(nil)
	assert.Equal(t, []shape.Point{fyne.NewPos(10, 10), fyne.NewPos(70, 60)}, r.Points())
}

func TestResizerPastOppositeEdgeNormalizes(t *testing.T) {
	r := shape.NewRectangle(fyne.NewPos(10, 10), fyne.NewPos(50, 40))
	rs := NewResizer(r, shape.AnchorE)
	rs.Init(fyne.NewPos(50, 25))
	rs.Update(fyne.NewPos(0, 25))
	assert.Equal(t, []shape.Point{fyne.NewPos(10, 10), fyne.NewPos(0, 40)}, r.Points())

	rs.Finalize(nil)
	assert.Equal(t, []shape.Point{fyne.NewPos(0, 10), fyne.NewPos(10, 40)}, r.Points())
}

func TestResizerScalesGroups(t *testing.T) {
	a := shape.NewRectangle(fyne.NewPos(0, 0), fyne.NewPos(10, 10))
	b := shape.NewLine(fyne.NewPos(10, 10), fyne.NewPos(20, 20))
	g := shape.NewGroup(a, b)

	rs := NewResizer(g, shape.AnchorSE)
	rs.Init(fyne.NewPos(20, 20))
	rs.Update(fyne.NewPos(40, 40))
	rs.Finalize(nil)

	assert.Equal(t, []shape.Point{fyne.NewPos(0, 0), fyne.NewPos(20, 20)}, a.Points())
	assert.Equal(t, []shape.Point{fyne.NewPos(20, 20), fyne.NewPos(40, 40)}, b.Points())
}

func TestGrouperSelectsIntersectingShapes(t *testing.T) {
	a := shape.NewRectangle(fyne.NewPos(10, 10), fyne.NewPos(50, 40))
	b := shape.NewLine(fyne.NewPos(60, 0), fyne.NewPos(60, 100))
	c := shape.NewRectangle(fyne.NewPos(200, 200), fyne.NewPos(240, 240))

	g := NewGrouper(shape.NewMarquee())
	g.Init(fyne.NewPos(100, 50))
	g.Update(fyne.NewPos(40, 30))
	g.Finalize([]shape.Shape{a, b, c})

	assert.True(t, a.Selected())
	assert.True(t, b.Selected())
	assert.False(t, c.Selected())
}

func TestGrouperWithoutAreaSelectsNothing(t *testing.T) {
	e := shape.NewEllipse(fyne.NewPos(200, 0), fyne.NewPos(300, 100))
	g := NewGrouper(shape.NewMarquee())
	g.Init(fyne.NewPos(202, 2))
	g.Finalize([]shape.Shape{e})
	assert.False(t, e.Selected())

	// a flat marquee has no area either
	g.Update(fyne.NewPos(280, 2))
	g.Finalize([]shape.Shape{e})
	assert.False(t, e.Selected())
}

func TestCursorManager(t *testing.T) {
	m := NewCursorManager()
	assert.Equal(t, desktop.PointerCursor, m.Get(shape.AnchorNone))
	assert.Equal(t, desktop.HResizeCursor, m.Get(shape.AnchorE))
	assert.Equal(t, desktop.VResizeCursor, m.Get(shape.AnchorS))
	assert.Equal(t, desktop.CrosshairCursor, m.Get(shape.AnchorSW))
	assert.Equal(t, desktop.DefaultCursor, m.Get(shape.Anchor(42)))
}
