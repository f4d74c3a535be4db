package shape

import (
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Polygon is a closed shape with any number of vertices. While it is being
// drawn the last vertex follows the pointer as a preview.
type Polygon struct {
	style
	vertices []Point
	open     bool
}

var _ Shape = (*Polygon)(nil)

// NewPolygon creates a closed polygon through vertices.
func NewPolygon(vertices ...Point) *Polygon {
	return &Polygon{style: newStyle(), vertices: slices.Clone(vertices)}
}

func (p *Polygon) Kind() Kind { return KindPolygon }

func (p *Polygon) Bounds() Rect {
	return boundsOf(p.vertices)
}

// Contains uses the even-odd rule. Polygons with fewer than three vertices
// are hit along their edges.
func (p *Polygon) Contains(pt Point) bool {
	n := len(p.vertices)
	if n < 3 {
		for i := 0; i+1 < n; i++ {
			if segmentDistance(pt, p.vertices[i], p.vertices[i+1]) <= LineTolerance {
				return true
			}
		}
		return false
	}
	return containsEvenOdd(p.vertices, pt)
}

func containsEvenOdd(vertices []Point, pt Point) bool {
	inside := false
	for i, j := 0, len(vertices)-1; i < len(vertices); j, i = i, i+1 {
		a, b := vertices[i], vertices[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func (p *Polygon) Points() []Point {
	return slices.Clone(p.vertices)
}

func (p *Polygon) SetPoints(points []Point) {
	if len(points) != len(p.vertices) {
		return
	}
	copy(p.vertices, points)
}

func (p *Polygon) Translate(dx, dy float32) {
	for i, v := range p.vertices {
		p.vertices[i] = v.AddXY(dx, dy)
	}
}

func (p *Polygon) Normalize() {}

// StartAt places the first vertex and a preview vertex on pt.
func (p *Polygon) StartAt(pt Point) {
	p.vertices = []Point{pt, pt}
	p.open = true
}

// ExtendTo moves the preview vertex.
func (p *Polygon) ExtendTo(pt Point) {
	if len(p.vertices) == 0 {
		p.StartAt(pt)
		return
	}
	p.vertices[len(p.vertices)-1] = pt
}

// AddVertex fixes the preview vertex at pt and starts a new preview there.
// Clicking again on the last fixed vertex only moves the preview.
func (p *Polygon) AddVertex(pt Point) {
	p.ExtendTo(pt)
	if n := len(p.vertices); n >= 2 && p.vertices[n-2] == pt {
		return
	}
	p.vertices = append(p.vertices, pt)
}

// Finish closes the polygon, dropping preview vertices that repeat the
// vertex before them.
func (p *Polygon) Finish() {
	for n := len(p.vertices); n > 1 && p.vertices[n-1] == p.vertices[n-2]; n-- {
		p.vertices = p.vertices[:n-1]
	}
	p.open = false
}

func (p *Polygon) Clone() Shape {
	c := &Polygon{style: p.style.fresh()}
	c.selected = false
	return c
}

func (p *Polygon) DeepCopy() Shape {
	return &Polygon{style: p.style.fresh(), vertices: slices.Clone(p.vertices), open: p.open}
}

func (p *Polygon) Draw(s Surface) {
	if len(p.vertices) == 0 {
		return
	}
	b := p.Bounds()
	if !p.open && len(p.vertices) >= 3 && opaque(p.fill) && !b.Empty() {
		s.Add(p.fillRaster(b))
	}
	last := len(p.vertices) - 1
	for i := 0; i < last; i++ {
		s.Add(p.edge(p.vertices[i], p.vertices[i+1]))
	}
	if !p.open && last >= 2 {
		s.Add(p.edge(p.vertices[last], p.vertices[0]))
	}
	if p.selected {
		drawAnchors(s, b)
	}
}

func (p *Polygon) edge(a, b Point) *canvas.Line {
	l := canvas.NewLine(p.line)
	l.StrokeWidth = StrokeWidth
	l.Position1 = a
	l.Position2 = b
	return l
}

// fillRaster paints the interior pixel by pixel over the bounds b.
func (p *Polygon) fillRaster(b Rect) fyne.CanvasObject {
	vertices := slices.Clone(p.vertices)
	fill := p.fill
	bw, bh := b.Width(), b.Height()
	r := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w == 0 || h == 0 {
			return color.Transparent
		}
		pt := fyne.NewPos(
			b.Min.X+(float32(x)+0.5)*bw/float32(w),
			b.Min.Y+(float32(y)+0.5)*bh/float32(h),
		)
		if containsEvenOdd(vertices, pt) {
			return fill
		}
		return color.Transparent
	})
	r.Move(b.Min)
	r.Resize(b.Size())
	return r
}
