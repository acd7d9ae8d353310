package features

import (
	"fmt"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
)

// Descriptor kinds, one per curve variant produced by the router.
const (
	KindPiecewiseSpline   = "piecewise_spline"
	KindCompositeBezier   = "composite_bezier"
	KindParametricEllipse = "parametric_ellipse"
	KindHermiteSpline     = "hermite_spline"
	KindParabola          = "parabola"
	KindCompositeLips     = "composite_lips"
	KindInnerLips         = "inner_lips"
)

// PiecewiseSpline is the jawline descriptor: one natural cubic spline per
// side of the chin, which both segments share as an endpoint.
type PiecewiseSpline struct {
	Left, Right fitkit.SplineParams
	ChinPoint   facefit.Pair
	Bounds      facefit.Bounds
}

func (d PiecewiseSpline) Kind() string { return KindPiecewiseSpline }

func (d PiecewiseSpline) String() string {
	return fmt.Sprintf("%s[chin %s, left %s, right %s]", d.Kind(), d.ChinPoint, d.Left, d.Right)
}

// CompositeBezier is the eyebrow descriptor: a quadratic Bézier per side
// of the brow's peak.
type CompositeBezier struct {
	Inner, Outer fitkit.BezierParams
	PeakPoint    facefit.Pair
	Bounds       facefit.Bounds
}

func (d CompositeBezier) Kind() string { return KindCompositeBezier }

func (d CompositeBezier) String() string {
	return fmt.Sprintf("%s[peak %s, inner %s, outer %s]", d.Kind(), d.PeakPoint, d.Inner, d.Outer)
}

// ParametricEllipse is the eye descriptor. The ellipse parameters live in
// the centered frame (points translated so their centroid is the origin);
// Center and Corners are in the original frame. Callers re-translating
// the ellipse must shift by Center consistently.
type ParametricEllipse struct {
	Center  facefit.Pair
	Params  fitkit.EllipseParams
	Corners [2]facefit.Pair // leftmost, rightmost input point
	Bounds  facefit.Bounds
}

func (d ParametricEllipse) Kind() string { return KindParametricEllipse }

func (d ParametricEllipse) String() string {
	return fmt.Sprintf("%s[center %s, %s]", d.Kind(), d.Center, d.Params)
}

// HermiteSpline is the nose-bridge descriptor: x as a natural cubic
// function of y, plus the y-sorted control points the spline passes
// through.
type HermiteSpline struct {
	ControlPoints []facefit.Pair
	Params        fitkit.HermiteParams
	Bounds        facefit.Bounds
}

func (d HermiteSpline) Kind() string { return KindHermiteSpline }

func (d HermiteSpline) String() string {
	return fmt.Sprintf("%s[%d control points, %s]", d.Kind(), len(d.ControlPoints), d.Params)
}

// Parabola is the nose-tip descriptor: the structurally middle input
// point plus least-squares parabola coefficients over all points.
type Parabola struct {
	CenterPoint facefit.Pair
	Coeffs      fitkit.ParabolaCoeffs
	Bounds      facefit.Bounds
}

func (d Parabola) Kind() string { return KindParabola }

func (d Parabola) String() string {
	return fmt.Sprintf("%s[center %s, %s]", d.Kind(), d.CenterPoint, d.Coeffs)
}

// BowArc is one half of a Cupid's bow: a 3-point quadratic arc.
type BowArc struct {
	Start, Control, End facefit.Pair
}

func (a BowArc) String() string {
	return fmt.Sprintf("%s .. controls %s .. %s", a.Start, a.Control, a.End)
}

// BowSegments is the Cupid's-bow sub-descriptor: two quadratic arcs
// sharing the bow's peak as their junction.
type BowSegments struct {
	PeakPoint   facefit.Pair
	Left, Right BowArc
	Bounds      facefit.Bounds
}

// CompositeLips is the outer-lips descriptor: Cupid's-bow arcs for the
// first part of the upper lip, cubic Béziers for the remaining upper and
// the full lower contour.
type CompositeLips struct {
	CupidsBow    BowSegments
	Upper, Lower fitkit.BezierParams
	Corners      [2]facefit.Pair // leftmost, rightmost input point
	Bounds       facefit.Bounds
}

func (d CompositeLips) Kind() string { return KindCompositeLips }

func (d CompositeLips) String() string {
	return fmt.Sprintf("%s[bow peak %s, upper %s, lower %s]",
		d.Kind(), d.CupidsBow.PeakPoint, d.Upper, d.Lower)
}

// InnerLipsCurves is the inner-lips descriptor: a quadratic Bézier per lip half.
type InnerLipsCurves struct {
	Upper, Lower fitkit.BezierParams
	Bounds       facefit.Bounds
}

func (d InnerLipsCurves) Kind() string { return KindInnerLips }

func (d InnerLipsCurves) String() string {
	return fmt.Sprintf("%s[upper %s, lower %s]", d.Kind(), d.Upper, d.Lower)
}
