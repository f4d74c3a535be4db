package editor

import "VectorBoard/internal/shape"

// Transformer carries out one gesture on the board. Init records where the
// gesture started, Update follows the pointer and Finalize commits the result.
type Transformer interface {
	Init(p shape.Point)
	Update(p shape.Point)
	Finalize(shapes []shape.Shape)
}

var (
	_ Transformer = (*Drawer)(nil)
	_ Transformer = (*Mover)(nil)
	_ Transformer = (*Resizer)(nil)
	_ Transformer = (*Grouper)(nil)
)

// Drawer grows a new shape. Two-point shapes follow the pointer with their
// second corner; polygons take vertices through AddVertex and use Update for
// the preview edge.
type Drawer struct {
	shape shape.Shape
}

func NewDrawer(s shape.Shape) *Drawer {
	return &Drawer{shape: s}
}

func (d *Drawer) Init(p shape.Point)   { d.shape.StartAt(p) }
func (d *Drawer) Update(p shape.Point) { d.shape.ExtendTo(p) }

// AddVertex fixes the next polygon vertex at p.
func (d *Drawer) AddVertex(p shape.Point) { d.shape.AddVertex(p) }

func (d *Drawer) Finalize([]shape.Shape) { d.shape.Finish() }

// Mover translates a shape by the pointer movement since the last update.
type Mover struct {
	shape shape.Shape
	last  shape.Point
	moved bool
}

func NewMover(s shape.Shape) *Mover {
	return &Mover{shape: s}
}

func (m *Mover) Init(p shape.Point) {
	m.last = p
}

func (m *Mover) Update(p shape.Point) {
	dx, dy := p.X-m.last.X, p.Y-m.last.Y
	m.last = p
	if dx == 0 && dy == 0 {
		return
	}
	m.shape.Translate(dx, dy)
	m.moved = true
}

// Moved reports whether any update displaced the shape.
func (m *Mover) Moved() bool { return m.moved }

func (m *Mover) Finalize([]shape.Shape) {}

// Resizer reshapes a shape as if the grabbed anchor were dragged. Every update
// maps the control points captured at Init, so shrinking through zero and
// back loses nothing.
type Resizer struct {
	shape  shape.Shape
	anchor shape.Anchor
	start  shape.Point
	origin []shape.Point
	frame  shape.Rect
}

func NewResizer(s shape.Shape, anchor shape.Anchor) *Resizer {
	return &Resizer{shape: s, anchor: anchor}
}

// Prepare captures the geometry without a grab point. Followed directly by
// Finalize it is a normalise pass over the shape.
func (r *Resizer) Prepare() {
	r.origin = r.shape.Points()
	r.frame = r.shape.Bounds()
}

func (r *Resizer) Init(p shape.Point) {
	r.Prepare()
	r.start = p
}

func (r *Resizer) Update(p shape.Point) {
	if r.origin == nil {
		return
	}
	target := r.anchor.Resize(r.frame, p.X-r.start.X, p.Y-r.start.Y)
	r.shape.SetPoints(shape.MapPoints(r.origin, r.frame, target))
}

// Finalize leaves the geometry in canonical form.
func (r *Resizer) Finalize([]shape.Shape) {
	r.shape.Normalize()
}

// Grouper drives the selection marquee and selects what it touches.
type Grouper struct {
	marquee shape.Shape
}

func NewGrouper(marquee shape.Shape) *Grouper {
	return &Grouper{marquee: marquee}
}

func (g *Grouper) Init(p shape.Point)   { g.marquee.StartAt(p) }
func (g *Grouper) Update(p shape.Point) { g.marquee.ExtendTo(p) }

// Finalize selects every shape whose bounds intersect the marquee. A marquee
// without area, such as a plain click, selects nothing.
func (g *Grouper) Finalize(shapes []shape.Shape) {
	area := g.marquee.Bounds()
	if area.Empty() {
		return
	}
	for _, s := range shapes {
		if s.Bounds().Intersects(area) {
			s.SetSelected(true)
		}
	}
}
