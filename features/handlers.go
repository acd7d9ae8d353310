package features

import (
	"fmt"
	"sort"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
)

// argMaxY returns the index of the point with the largest y-coordinate.
func argMaxY(points []facefit.Pair) int {
	idx := 0
	for i, p := range points {
		if p.Y() > points[idx].Y() {
			idx = i
		}
	}
	return idx
}

// argMinY returns the index of the point with the smallest y-coordinate.
func argMinY(points []facefit.Pair) int {
	idx := 0
	for i, p := range points {
		if p.Y() < points[idx].Y() {
			idx = i
		}
	}
	return idx
}

func sortedByX(points []facefit.Pair) []facefit.Pair {
	out := append([]facefit.Pair(nil), points...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].X() < out[j].X() })
	return out
}

func sortedByY(points []facefit.Pair) []facefit.Pair {
	out := append([]facefit.Pair(nil), points...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y() < out[j].Y() })
	return out
}

// xExtremes returns the leftmost and rightmost point of a sequence.
func xExtremes(points []facefit.Pair) (facefit.Pair, facefit.Pair) {
	left, right := points[0], points[0]
	for _, p := range points[1:] {
		if p.X() < left.X() {
			left = p
		}
		if p.X() > right.X() {
			right = p
		}
	}
	return left, right
}

// fitJawline splits the jaw contour at the chin (the point of maximum y,
// located by index) and fits a natural cubic spline to each side. Both
// segments include the chin, so they share it as an endpoint.
func fitJawline(points []facefit.Pair) (facefit.Descriptor, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: jawline split needs at least 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	chin := argMaxY(points)
	left, err := fitkit.FitNaturalSpline(points[:chin+1])
	if err != nil {
		return nil, fmt.Errorf("left of chin: %w", err)
	}
	right, err := fitkit.FitNaturalSpline(points[chin:])
	if err != nil {
		return nil, fmt.Errorf("right of chin: %w", err)
	}
	return PiecewiseSpline{
		Left:      left,
		Right:     right,
		ChinPoint: points[chin],
		Bounds:    facefit.BoundsOf(points),
	}, nil
}

// fitEyebrow sorts the brow by x, splits it at its peak (the point of
// minimum y) and fits a quadratic Bézier to the inner and outer segment,
// both inclusive of the peak.
func fitEyebrow(points []facefit.Pair) (facefit.Descriptor, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: eyebrow split needs at least 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	sorted := sortedByX(points)
	peak := argMinY(sorted)
	inner, err := fitkit.FitBezier(sorted[:peak+1], 2)
	if err != nil {
		return nil, fmt.Errorf("inner segment: %w", err)
	}
	outer, err := fitkit.FitBezier(sorted[peak:], 2)
	if err != nil {
		return nil, fmt.Errorf("outer segment: %w", err)
	}
	return CompositeBezier{
		Inner:     inner,
		Outer:     outer,
		PeakPoint: sorted[peak],
		Bounds:    facefit.BoundsOf(points),
	}, nil
}

// fitEye centers the eye contour at its centroid and fits an ellipse to
// the centered points. The corner points are the x-extremes of the
// original, uncentered sequence; callers re-translating the ellipse into
// the original frame must shift by Center.
func fitEye(points []facefit.Pair) (facefit.Descriptor, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: eye fit needs at least 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	center := facefit.Centroid(points)
	centered := make([]facefit.Pair, len(points))
	for i, p := range points {
		centered[i] = p - center
	}
	params, err := fitkit.FitEllipse(centered)
	if err != nil {
		return nil, err
	}
	left, right := xExtremes(points)
	return ParametricEllipse{
		Center:  center,
		Params:  params,
		Corners: [2]facefit.Pair{left, right},
		Bounds:  facefit.BoundsOf(points),
	}, nil
}

// fitNoseBridge sorts the bridge landmarks by y and fits x as a natural
// cubic function of y, avoiding the near-vertical-tangent singularity of
// the ordinary parameterization.
func fitNoseBridge(points []facefit.Pair) (facefit.Descriptor, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: nose bridge needs at least 2 points, got %d", ErrInsufficientPoints, len(points))
	}
	sorted := sortedByY(points)
	params, err := fitkit.FitHermite(sorted)
	if err != nil {
		return nil, err
	}
	return HermiteSpline{
		ControlPoints: sorted,
		Params:        params,
		Bounds:        facefit.BoundsOf(points),
	}, nil
}

// fitNoseTip takes the structurally middle landmark (by index, not
// geometry) as a representative center and fits a parabola to all
// points.
func fitNoseTip(points []facefit.Pair) (facefit.Descriptor, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: nose tip needs at least 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	coeffs, err := fitkit.FitParabola(points)
	if err != nil {
		return nil, err
	}
	return Parabola{
		CenterPoint: points[len(points)/2],
		Coeffs:      coeffs,
		Bounds:      facefit.BoundsOf(points),
	}, nil
}
