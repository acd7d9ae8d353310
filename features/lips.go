package features

import (
	"fmt"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
)

// bowPoints is the number of leading upper-lip landmarks handled by the
// Cupid's-bow fit.
const bowPoints = 5

// fitOuterLips splits the outer lip contour at its midpoint index into
// upper and lower halves. The first five upper points receive the
// Cupid's-bow treatment; a cubic Bézier covers the remaining upper
// points (the upper half minus its first four) and another the full
// lower half.
func fitOuterLips(points []facefit.Pair) (facefit.Descriptor, error) {
	n := len(points)
	mid := n / 2
	// five bow points, at least two points for the remaining upper curve
	if mid < bowPoints+1 {
		return nil, fmt.Errorf("%w: outer lips need at least %d points, got %d", ErrInsufficientPoints, 2*(bowPoints+1), n)
	}
	left, right := xExtremes(points)
	upper := points[:mid]
	lower := points[mid:]
	bow, err := fitCupidsBow(upper[:bowPoints])
	if err != nil {
		return nil, fmt.Errorf("cupid's bow: %w", err)
	}
	upperCurve, err := fitkit.FitBezier(upper[bowPoints-1:], 3)
	if err != nil {
		return nil, fmt.Errorf("upper lip: %w", err)
	}
	lowerCurve, err := fitkit.FitBezier(lower, 3)
	if err != nil {
		return nil, fmt.Errorf("lower lip: %w", err)
	}
	return CompositeLips{
		CupidsBow: bow,
		Upper:     upperCurve,
		Lower:     lowerCurve,
		Corners:   [2]facefit.Pair{left, right},
		Bounds:    facefit.BoundsOf(points),
	}, nil
}

// fitInnerLips splits the inner contour at its midpoint index and fits a
// quadratic Bézier to each half. No Cupid's-bow handling: the inner lip
// line is smooth enough for the simpler model.
func fitInnerLips(points []facefit.Pair) (facefit.Descriptor, error) {
	n := len(points)
	mid := n / 2
	if mid < 2 {
		return nil, fmt.Errorf("%w: inner lips need at least 4 points, got %d", ErrInsufficientPoints, n)
	}
	upper, err := fitkit.FitBezier(points[:mid], 2)
	if err != nil {
		return nil, fmt.Errorf("upper lip: %w", err)
	}
	lower, err := fitkit.FitBezier(points[mid:], 2)
	if err != nil {
		return nil, fmt.Errorf("lower lip: %w", err)
	}
	return InnerLipsCurves{
		Upper:  upper,
		Lower:  lower,
		Bounds: facefit.BoundsOf(points),
	}, nil
}

// fitCupidsBow builds the characteristic M-shape of the upper lip from a
// small point subset: the middle point (by index) is the bow's peak, and
// each side becomes a 3-point quadratic arc. The arc's control point
// sits on the perpendicular of the segment's start–end chord, offset by
// a quarter of the chord length, which produces visible curvature where
// a least-squares fit over so few points would flatten out.
func fitCupidsBow(points []facefit.Pair) (BowSegments, error) {
	if len(points) < 3 {
		return BowSegments{}, fmt.Errorf("%w: bow needs at least 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	mid := len(points) / 2
	peak := points[mid]
	leftPts := points[:mid+1]
	rightPts := points[mid:]

	leftCtrl, err := bowControl(leftPts[0], leftPts[len(leftPts)-1])
	if err != nil {
		return BowSegments{}, err
	}
	rightCtrl, err := bowControl(rightPts[len(rightPts)-1], rightPts[0])
	if err != nil {
		return BowSegments{}, err
	}
	return BowSegments{
		PeakPoint: peak,
		Left:      BowArc{Start: leftPts[0], Control: leftCtrl, End: peak},
		Right:     BowArc{Start: peak, Control: rightCtrl, End: rightPts[len(rightPts)-1]},
		Bounds:    facefit.BoundsOf(points),
	}, nil
}

// bowControl places a quadratic control point perpendicular to the
// start–end chord at a quarter of its length.
func bowControl(start, end facefit.Pair) (facefit.Pair, error) {
	direction := end - start
	length := start.Dist(end)
	if facefit.Is0(length) {
		return facefit.Origin, fmt.Errorf("%w: bow segment collapses to a point", fitkit.ErrDegenerateInput)
	}
	normal := facefit.P(-direction.Y()/length, direction.X()/length)
	mid := (start + end).Scaled(0.5)
	return mid + normal.Scaled(length*0.25), nil
}
