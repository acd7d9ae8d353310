package facefit

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
)

// Descriptor is the common contract for every fitted-curve result, one
// implementation per curve variant. The concrete types live in the
// features and series packages; callers switch on the concrete type (or
// on Kind) to unpack parameters.
type Descriptor interface {
	Kind() string
}

// Bounds is the axis-aligned bounding box of a point sequence. Every
// feature descriptor carries the bounds of its input points, so callers
// can verify that fitted control geometry stays within the observed
// extent.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoundsOf computes the bounding box of a point sequence. An empty
// sequence yields the zero Bounds.
func BoundsOf(points []Pair) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	contour := make(polyclip.Contour, len(points))
	for i, p := range points {
		contour[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	box := contour.BoundingBox()
	return Bounds{
		MinX: box.Min.X, MaxX: box.Max.X,
		MinY: box.Min.Y, MaxY: box.Max.Y,
	}
}

// Contains reports whether p lies within the bounds, inclusive of the
// edges (up to ε).
func (b Bounds) Contains(p Pair) bool {
	x, y := p.F()
	return x >= b.MinX-Epsilon && x <= b.MaxX+Epsilon &&
		y >= b.MinY-Epsilon && y <= b.MaxY+Epsilon
}

// Debug Stringer for bounds.
func (b Bounds) String() string {
	return fmt.Sprintf("x:[%g,%g] y:[%g,%g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Centroid returns the arithmetic mean of a point sequence, or origin for
// an empty sequence.
func Centroid(points []Pair) Pair {
	if len(points) == 0 {
		return Origin
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X()
		sy += p.Y()
	}
	n := float64(len(points))
	return P(sx/n, sy/n)
}
