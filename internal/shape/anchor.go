package shape

import "fyne.io/fyne/v2"

// Anchor identifies a resize handle on the bounds of a selected shape.
type Anchor int

const (
	AnchorNone Anchor = iota
	AnchorNW
	AnchorN
	AnchorNE
	AnchorE
	AnchorSE
	AnchorS
	AnchorSW
	AnchorW
)

var anchorNames = [...]string{"none", "nw", "n", "ne", "e", "se", "s", "sw", "w"}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return "unknown"
	}
	return anchorNames[a]
}

// AnchorSize is the edge length of a resize handle.
var AnchorSize float32 = 8

// Handles lists the resize anchors in probe order.
var Handles = []Anchor{AnchorNW, AnchorN, AnchorNE, AnchorE, AnchorSE, AnchorS, AnchorSW, AnchorW}

// Center returns the centre of a's handle on the rectangle r.
func (a Anchor) Center(r Rect) Point {
	r = r.Canon()
	mid := r.Center()
	switch a {
	case AnchorNW:
		return r.Min
	case AnchorN:
		return fyne.NewPos(mid.X, r.Min.Y)
	case AnchorNE:
		return fyne.NewPos(r.Max.X, r.Min.Y)
	case AnchorE:
		return fyne.NewPos(r.Max.X, mid.Y)
	case AnchorSE:
		return r.Max
	case AnchorS:
		return fyne.NewPos(mid.X, r.Max.Y)
	case AnchorSW:
		return fyne.NewPos(r.Min.X, r.Max.Y)
	case AnchorW:
		return fyne.NewPos(r.Min.X, mid.Y)
	}
	return mid
}

// Resize moves the edges of r that a controls by (dx, dy). The result is not
// normalised: dragging an edge past its opposite inverts the rectangle.
func (a Anchor) Resize(r Rect, dx, dy float32) Rect {
	switch a {
	case AnchorNW:
		r.Min.X += dx
		r.Min.Y += dy
	case AnchorN:
		r.Min.Y += dy
	case AnchorNE:
		r.Min.Y += dy
		r.Max.X += dx
	case AnchorE:
		r.Max.X += dx
	case AnchorSE:
		r.Max.X += dx
		r.Max.Y += dy
	case AnchorS:
		r.Max.Y += dy
	case AnchorSW:
		r.Min.X += dx
		r.Max.Y += dy
	case AnchorW:
		r.Min.X += dx
	}
	return r
}

// AnchorAt returns the handle of s that contains p, or AnchorNone. Handles
// are probed in the order of Handles, so the first match wins when they
// overlap on very small shapes.
func AnchorAt(s Shape, p Point) Anchor {
	b := s.Bounds()
	half := AnchorSize / 2
	for _, a := range Handles {
		c := a.Center(b)
		if abs(p.X-c.X) <= half && abs(p.Y-c.Y) <= half {
			return a
		}
	}
	return AnchorNone
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
