package shape

import "image/color"

// Group is a composite shape. It owns its children exclusively: a child is
// never also a top-level shape or a member of another group.
type Group struct {
	style
	children []Shape
}

var _ Shape = (*Group)(nil)

// NewGroup creates an empty group.
func NewGroup(children ...Shape) *Group {
	g := &Group{style: newStyle()}
	g.children = append(g.children, children...)
	return g
}

func (g *Group) Kind() Kind { return KindGroup }

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }

// Children returns the children in paint order.
func (g *Group) Children() []Shape {
	return append([]Shape(nil), g.children...)
}

// Adopt inserts s beneath the current children. Shapes adopted while walking
// a list from top to bottom therefore keep their relative paint order.
func (g *Group) Adopt(s Shape) {
	g.children = append([]Shape{s}, g.children...)
}

// Release empties the group and hands its children back to the caller.
func (g *Group) Release() []Shape {
	children := g.children
	g.children = nil
	return children
}

func (g *Group) SetFillColor(c color.Color) {
	g.fill = c
	for _, child := range g.children {
		child.SetFillColor(c)
	}
}

func (g *Group) SetLineColor(c color.Color) {
	g.line = c
	for _, child := range g.children {
		child.SetLineColor(c)
	}
}

func (g *Group) Bounds() Rect {
	if len(g.children) == 0 {
		return Rect{}
	}
	b := g.children[0].Bounds()
	for _, child := range g.children[1:] {
		b = b.Union(child.Bounds())
	}
	return b
}

func (g *Group) Contains(p Point) bool {
	for i := len(g.children) - 1; i >= 0; i-- {
		if g.children[i].Contains(p) {
			return true
		}
	}
	return false
}

func (g *Group) Points() []Point {
	var points []Point
	for _, child := range g.children {
		points = append(points, child.Points()...)
	}
	return points
}

func (g *Group) SetPoints(points []Point) {
	for _, child := range g.children {
		n := len(child.Points())
		if n > len(points) {
			return
		}
		child.SetPoints(points[:n])
		points = points[n:]
	}
}

func (g *Group) Translate(dx, dy float32) {
	for _, child := range g.children {
		child.Translate(dx, dy)
	}
}

func (g *Group) Normalize() {
	for _, child := range g.children {
		child.Normalize()
	}
}

func (g *Group) StartAt(Point)   {}
func (g *Group) ExtendTo(Point)  {}
func (g *Group) AddVertex(Point) {}
func (g *Group) Finish()         {}

func (g *Group) Clone() Shape {
	c := &Group{style: g.style.fresh()}
	c.selected = false
	return c
}

func (g *Group) DeepCopy() Shape {
	return &Group{style: g.style.fresh(), children: DeepCopyAll(g.children)}
}

func (g *Group) Draw(s Surface) {
	for _, child := range g.children {
		child.Draw(s)
	}
	if g.selected && len(g.children) > 0 {
		drawAnchors(s, g.Bounds())
	}
}
