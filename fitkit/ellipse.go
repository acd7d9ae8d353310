package fitkit

import (
	"fmt"
	"math"

	"github.com/landmarq/facefit"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// ellipseMaxIter caps the Nelder-Mead iterations so non-convergent
// inputs fail instead of looping.
const ellipseMaxIter = 1000

// EllipseParams describes an origin-centered ellipse: semi-axis lengths
// along the fitting frame's x- and y-directions and the frame's rotation
// in radians.
//
// Because an ellipse maps onto itself under a 180° rotation, the
// minimizer may return any of the equivalent (SemiMajor, SemiMinor,
// Rotation) combinations for the same shape. The axis lengths are stable
// up to ordering; callers must not compare raw rotation angles. This
// ambiguity is accepted, not a defect.
type EllipseParams struct {
	SemiMajor float64 // semi-axis along the rotated x-direction
	SemiMinor float64 // semi-axis along the rotated y-direction
	Rotation  float64
}

// Debug Stringer.
func (ep EllipseParams) String() string {
	return fmt.Sprintf("ellipse[a=%.4g, b=%.4g, θ=%.4g]", ep.SemiMajor, ep.SemiMinor, ep.Rotation)
}

// FitEllipse fits an ellipse to points already centered at their
// centroid (the eye handler centers before calling). The rotation and
// axis lengths minimize the sum of squared deviations of
// (x_rot/a)² + (y_rot/b)² from 1, found by derivative-free Nelder-Mead
// minimization seeded at twice the per-axis standard deviation and zero
// rotation. There is no closed-form solve: the rotation parameter makes
// the system nonlinear.
func FitEllipse(points []facefit.Pair) (EllipseParams, error) {
	n := len(points)
	if n < 3 {
		return EllipseParams{}, fmt.Errorf("%w: ellipse fit needs at least 3 points, got %d", ErrTooFewPoints, n)
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = p.F()
	}
	a0 := 2 * stat.StdDev(xs, nil)
	b0 := 2 * stat.StdDev(ys, nil)
	if facefit.Is0(a0) || facefit.Is0(b0) {
		return EllipseParams{}, fmt.Errorf("%w: points collapse onto an axis", ErrDegenerateInput)
	}

	objective := func(params []float64) float64 {
		a, b, theta := params[0], params[1], params[2]
		if math.Abs(a) < 1e-12 || math.Abs(b) < 1e-12 {
			return math.Inf(1)
		}
		rot := facefit.Rotation(-theta)
		var sum float64
		for _, p := range points {
			xr, yr := rot.Transform(p).F()
			dev := (xr/a)*(xr/a) + (yr/b)*(yr/b) - 1
			sum += dev * dev
		}
		return sum
	}

	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{MajorIterations: ellipseMaxIter}
	result, err := optimize.Minimize(problem, []float64{a0, b0, 0}, settings, &optimize.NelderMead{})
	if err != nil {
		return EllipseParams{}, fmt.Errorf("%w: %v", ErrFitDivergence, err)
	}
	if result.Status == optimize.IterationLimit || result.Status == optimize.FunctionEvaluationLimit {
		return EllipseParams{}, fmt.Errorf("%w: minimizer hit iteration cap after %d iterations", ErrFitDivergence, ellipseMaxIter)
	}
	a, b, theta := result.X[0], result.X[1], result.X[2]
	if !facefit.IsFinite(a) || !facefit.IsFinite(b) || !facefit.IsFinite(theta) ||
		facefit.Is0(a) || facefit.Is0(b) {
		return EllipseParams{}, fmt.Errorf("%w: minimizer returned unusable axes (a=%g, b=%g)", ErrFitDivergence, a, b)
	}
	ep := EllipseParams{SemiMajor: math.Abs(a), SemiMinor: math.Abs(b), Rotation: theta}
	tracer().Debugf("fitted %s to %d points, residual %.4g", ep, n, result.F)
	return ep, nil
}
