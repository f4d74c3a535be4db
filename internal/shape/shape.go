package shape

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/google/uuid"
)

// Kind tags the closed set of shape variants.
type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
	KindLine
	KindPolygon
	KindGroup
	KindMarquee
)

var kindNames = [...]string{"rectangle", "ellipse", "line", "polygon", "group", "marquee"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// StrokeWidth is the outline width used when painting shapes.
var StrokeWidth float32 = 2

// LineTolerance is how far from a line, in pixels, a point still hits it.
var LineTolerance float32 = 4

// Shape is a geometry object on the board.
type Shape interface {
	ID() string
	Kind() Kind

	FillColor() color.Color
	SetFillColor(c color.Color)
	LineColor() color.Color
	SetLineColor(c color.Color)
	Selected() bool
	SetSelected(selected bool)

	// Bounds returns the normalised bounding rectangle.
	Bounds() Rect
	// Contains is the hit-test for p.
	Contains(p Point) bool
	// Points returns a copy of the control points. Groups concatenate the
	// points of their children in child order.
	Points() []Point
	// SetPoints replaces the control points with a slice shaped like the
	// one returned by Points.
	SetPoints(points []Point)
	Translate(dx, dy float32)
	// Normalize puts the geometry in canonical form after a resize.
	Normalize()

	// StartAt, ExtendTo, AddVertex and Finish drive a drawing gesture.
	StartAt(p Point)
	ExtendTo(p Point)
	AddVertex(p Point)
	Finish()

	// Clone returns a new shape of the same variant and style with no geometry.
	Clone() Shape
	// DeepCopy returns an independent copy, children included.
	DeepCopy() Shape

	Draw(s Surface)
}

// Surface receives the canvas objects that paint a shape.
type Surface interface {
	Add(objs ...fyne.CanvasObject)
}

// Canvas is a Surface collecting objects in paint order.
type Canvas struct {
	Objects []fyne.CanvasObject
}

// Add appends objs on top of the already painted objects.
func (c *Canvas) Add(objs ...fyne.CanvasObject) {
	c.Objects = append(c.Objects, objs...)
}

// NewTemplate returns the tool template for kind.
func NewTemplate(kind Kind) Shape {
	switch kind {
	case KindEllipse:
		return NewEllipse(Point{}, Point{})
	case KindLine:
		return NewLine(Point{}, Point{})
	case KindPolygon:
		return NewPolygon()
	case KindGroup:
		return NewGroup()
	case KindMarquee:
		return NewMarquee()
	}
	return NewRectangle(Point{}, Point{})
}

// DeepCopyAll returns independent copies of shapes in the same order.
func DeepCopyAll(shapes []Shape) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.DeepCopy()
	}
	return out
}

// style holds the attributes shared by every variant.
type style struct {
	id       string
	fill     color.Color
	line     color.Color
	selected bool
}

func newStyle() style {
	return style{
		id:   uuid.NewString(),
		fill: color.Transparent,
		line: color.Black,
	}
}

// fresh returns a copy of the style under a new identity.
func (s style) fresh() style {
	s.id = uuid.NewString()
	return s
}

func (s *style) ID() string                 { return s.id }
func (s *style) FillColor() color.Color     { return s.fill }
func (s *style) SetFillColor(c color.Color) { s.fill = c }
func (s *style) LineColor() color.Color     { return s.line }
func (s *style) SetLineColor(c color.Color) { s.line = c }
func (s *style) Selected() bool             { return s.selected }
func (s *style) SetSelected(selected bool)  { s.selected = selected }

var (
	anchorFill   = color.White
	anchorStroke = color.NRGBA{R: 0x1E, G: 0x63, B: 0xD6, A: 0xFF}
)

// drawAnchors paints the resize handles around r.
func drawAnchors(s Surface, r Rect) {
	half := AnchorSize / 2
	for _, a := range Handles {
		c := a.Center(r)
		h := canvas.NewRectangle(anchorFill)
		h.StrokeColor = anchorStroke
		h.StrokeWidth = 1
		h.Move(fyne.NewPos(c.X-half, c.Y-half))
		h.Resize(fyne.NewSize(AnchorSize, AnchorSize))
		s.Add(h)
	}
}

func opaque(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a != 0
}
