// Package shape provides the geometry variants drawn on the board: rectangles,
// ellipses, lines, polygons, groups and the selection marquee.
package shape

import (
	"math"

	"fyne.io/fyne/v2"
)

// Point is a position on the board in widget coordinates.
type Point = fyne.Position

// Rect is an axis-aligned rectangle given by two corners. While a gesture is
// running the corners may be inverted; Canon returns the normalised form.
type Rect struct {
	Min Point
	Max Point
}

// NewRect creates a rectangle spanning the two corners.
func NewRect(a, b Point) Rect {
	return Rect{Min: a, Max: b}
}

// Canon returns r with Min at the top-left and Max at the bottom-right.
func (r Rect) Canon() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float32 {
	c := r.Canon()
	return c.Max.X - c.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float32 {
	c := r.Canon()
	return c.Max.Y - c.Min.Y
}

// Size returns the extent of r as a fyne size.
func (r Rect) Size() fyne.Size {
	return fyne.NewSize(r.Width(), r.Height())
}

// Center returns the centre point of r.
func (r Rect) Center() Point {
	return fyne.NewPos((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	c := r.Canon()
	return p.X >= c.Min.X && p.X <= c.Max.X &&
		p.Y >= c.Min.Y && p.Y <= c.Max.Y
}

// Intersects reports whether r and other overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	a, b := r.Canon(), other.Canon()
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	a, b := r.Canon(), other.Canon()
	return Rect{
		Min: fyne.NewPos(min(a.Min.X, b.Min.X), min(a.Min.Y, b.Min.Y)),
		Max: fyne.NewPos(max(a.Max.X, b.Max.X), max(a.Max.Y, b.Max.Y)),
	}
}

// boundsOf returns the bounding rectangle of a non-empty point set.
func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// segmentDistance returns the distance from p to the segment a-b.
func segmentDistance(p, a, b Point) float32 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	px, py := float64(p.X-a.X), float64(p.Y-a.Y)
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return float32(math.Hypot(px, py))
	}
	t := (px*dx + py*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return float32(math.Hypot(px-t*dx, py-t*dy))
}

// MapPoints maps every point from the frame `from` onto the frame `to`.
// The target frame may be inverted, which mirrors the points. A degenerate
// source axis is translated rather than scaled.
func MapPoints(points []Point, from, to Rect) []Point {
	from = from.Canon()
	fw, fh := from.Max.X-from.Min.X, from.Max.Y-from.Min.Y
	tw, th := to.Max.X-to.Min.X, to.Max.Y-to.Min.Y

	out := make([]Point, len(points))
	for i, p := range points {
		x := to.Min.X + (p.X - from.Min.X)
		if fw != 0 {
			x = to.Min.X + (p.X-from.Min.X)*tw/fw
		}
		y := to.Min.Y + (p.Y - from.Min.Y)
		if fh != 0 {
			y = to.Min.Y + (p.Y-from.Min.Y)*th/fh
		}
		out[i] = fyne.NewPos(x, y)
	}
	return out
}
