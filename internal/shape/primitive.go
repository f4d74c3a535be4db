package shape

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2/canvas"
)

// Primitive is a two-point shape: a rectangle, an ellipse, a line or the
// selection marquee. Rectangles, ellipses and the marquee fill the frame
// spanned by the points; a line joins them.
type Primitive struct {
	style
	kind     Kind
	from, to Point
}

var _ Shape = (*Primitive)(nil)

func newPrimitive(kind Kind, from, to Point) *Primitive {
	return &Primitive{style: newStyle(), kind: kind, from: from, to: to}
}

// NewRectangle creates a rectangle spanning from and to.
func NewRectangle(from, to Point) *Primitive { return newPrimitive(KindRectangle, from, to) }

// NewEllipse creates an ellipse inscribed in the frame spanning from and to.
func NewEllipse(from, to Point) *Primitive { return newPrimitive(KindEllipse, from, to) }

// NewLine creates a line segment.
func NewLine(from, to Point) *Primitive { return newPrimitive(KindLine, from, to) }

// NewMarquee creates the rubber-band rectangle used by the select tool.
func NewMarquee() *Primitive { return newPrimitive(KindMarquee, Point{}, Point{}) }

func (p *Primitive) Kind() Kind { return p.kind }

func (p *Primitive) Bounds() Rect {
	return NewRect(p.from, p.to).Canon()
}

func (p *Primitive) Contains(pt Point) bool {
	switch p.kind {
	case KindRectangle:
		return p.Bounds().Contains(pt)
	case KindEllipse:
		b := p.Bounds()
		rx, ry := b.Width()/2, b.Height()/2
		if rx == 0 || ry == 0 {
			return segmentDistance(pt, p.from, p.to) <= LineTolerance
		}
		c := b.Center()
		dx, dy := (pt.X-c.X)/rx, (pt.Y-c.Y)/ry
		return dx*dx+dy*dy <= 1
	case KindLine:
		return segmentDistance(pt, p.from, p.to) <= LineTolerance
	}
	return false
}

func (p *Primitive) Points() []Point {
	return []Point{p.from, p.to}
}

func (p *Primitive) SetPoints(points []Point) {
	if len(points) < 2 {
		return
	}
	p.from, p.to = points[0], points[1]
}

func (p *Primitive) Translate(dx, dy float32) {
	p.from = p.from.AddXY(dx, dy)
	p.to = p.to.AddXY(dx, dy)
}

// Normalize orders the frame corners. The endpoints of a line keep their
// direction.
func (p *Primitive) Normalize() {
	if p.kind == KindLine {
		return
	}
	b := p.Bounds()
	p.from, p.to = b.Min, b.Max
}

func (p *Primitive) StartAt(pt Point) {
	p.from, p.to = pt, pt
}

func (p *Primitive) ExtendTo(pt Point) {
	p.to = pt
}

func (p *Primitive) AddVertex(Point) {}

func (p *Primitive) Finish() {}

func (p *Primitive) Clone() Shape {
	c := &Primitive{style: p.style.fresh(), kind: p.kind}
	c.selected = false
	return c
}

func (p *Primitive) DeepCopy() Shape {
	c := *p
	c.style = p.style.fresh()
	return &c
}

func (p *Primitive) Draw(s Surface) {
	b := p.Bounds()
	switch p.kind {
	case KindRectangle, KindMarquee:
		fill := p.fill
		if p.kind == KindMarquee {
			fill = color.Transparent
		}
		r := canvas.NewRectangle(fill)
		r.StrokeColor = p.line
		r.StrokeWidth = StrokeWidth
		r.Move(b.Min)
		r.Resize(b.Size())
		s.Add(r)
	case KindEllipse:
		c := canvas.NewCircle(p.fill)
		c.StrokeColor = p.line
		c.StrokeWidth = StrokeWidth
		c.Position1 = b.Min
		c.Position2 = b.Max
		s.Add(c)
	case KindLine:
		l := canvas.NewLine(p.line)
		l.StrokeWidth = StrokeWidth
		l.Position1 = p.from
		l.Position2 = p.to
		s.Add(l)
	}
	if p.selected && p.kind != KindMarquee {
		drawAnchors(s, b)
	}
}

func (p *Primitive) String() string {
	return fmt.Sprintf("%s (%g,%g)-(%g,%g)", p.kind, p.from.X, p.from.Y, p.to.X, p.to.Y)
}
