package fitkit

import (
	"fmt"
	"sort"

	"github.com/landmarq/facefit"
)

// Cubic holds the coefficients of one spline interval,
//
//	s(u) = A + B·u + C·u² + D·u³  with  u = t − Knots[i].
type Cubic struct {
	A, B, C, D float64
}

func (c Cubic) at(u float64) float64 {
	return c.A + u*(c.B+u*(c.C+u*c.D))
}

// SplineParams describes a parametric natural cubic spline: one cubic
// polynomial per knot interval and per axis, with zero second derivative
// at both ends. Knots are chord-length-proportional parameter values in
// [0,1]; the spline interpolates its input points exactly at the knots.
type SplineParams struct {
	Knots  []float64
	X, Y   []Cubic
	Degree int
}

// At evaluates the spline at parameter t. Values outside [0,1] are
// clamped to the terminal intervals.
func (sp SplineParams) At(t float64) facefit.Pair {
	i := intervalIndex(sp.Knots, t)
	u := t - sp.Knots[i]
	return facefit.P(sp.X[i].at(u), sp.Y[i].at(u))
}

// Debug Stringer for a spline segment.
func (sp SplineParams) String() string {
	return fmt.Sprintf("spline[deg=%d, %d knots, %s..%s]",
		sp.Degree, len(sp.Knots), sp.At(0), sp.At(1))
}

func intervalIndex(knots []float64, t float64) int {
	i := sort.SearchFloat64s(knots, t)
	// SearchFloat64s returns the insertion point; map it onto the
	// interval whose left knot governs t.
	if i > 0 {
		i--
	}
	if i > len(knots)-2 {
		i = len(knots) - 2
	}
	return i
}

// FitNaturalSpline fits a parametric cubic spline through all points with
// natural boundary conditions. The parameter is proportional to the
// cumulative chord length, normalized to [0,1]. This is interpolation,
// not approximation: At(Knots[i]) reproduces points[i] exactly (up to
// floating point).
func FitNaturalSpline(points []facefit.Pair) (SplineParams, error) {
	n := len(points)
	if n < 2 {
		return SplineParams{}, fmt.Errorf("%w: spline needs at least 2 points, got %d", ErrTooFewPoints, n)
	}
	knots, err := chordParams(points)
	if err != nil {
		return SplineParams{}, err
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = p.F()
	}
	sp := SplineParams{
		Knots:  knots,
		X:      solveNaturalCubic(knots, xs),
		Y:      solveNaturalCubic(knots, ys),
		Degree: 3,
	}
	tracer().Debugf("fitted %s to %d points", sp, n)
	return sp, nil
}

// chordParams returns the cumulative chord-length parameterization of a
// point sequence, normalized to [0,1].
func chordParams(points []facefit.Pair) ([]float64, error) {
	t := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		d := points[i].Dist(points[i-1])
		if facefit.Is0(d) {
			return nil, fmt.Errorf("%w: coincident points %d and %d", ErrDegenerateInput, i-1, i)
		}
		t[i] = t[i-1] + d
	}
	total := t[len(t)-1]
	for i := range t {
		t[i] /= total
	}
	return t, nil
}

// solveNaturalCubic computes per-interval cubic coefficients for a
// natural cubic spline through (knots[i], vals[i]). The tridiagonal
// system for the interior second derivatives is solved by forward
// elimination and back substitution; the natural boundary condition
// pins the terminal second derivatives to zero.
func solveNaturalCubic(knots, vals []float64) []Cubic {
	n := len(knots)
	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = knots[i+1] - knots[i]
	}
	m := make([]float64, n) // second derivatives, m[0] = m[n-1] = 0
	if n > 2 {
		// interior equations:
		// h[i-1]·m[i-1] + 2(h[i-1]+h[i])·m[i] + h[i]·m[i+1] = rhs[i]
		diag := make([]float64, n)
		rhs := make([]float64, n)
		for i := 1; i < n-1; i++ {
			diag[i] = 2 * (h[i-1] + h[i])
			rhs[i] = 6 * ((vals[i+1]-vals[i])/h[i] - (vals[i]-vals[i-1])/h[i-1])
		}
		for i := 2; i < n-1; i++ { // forward elimination
			f := h[i-1] / diag[i-1]
			diag[i] -= f * h[i-1]
			rhs[i] -= f * rhs[i-1]
		}
		for i := n - 2; i >= 1; i-- { // back substitution
			m[i] = (rhs[i] - h[i]*m[i+1]) / diag[i]
		}
	}
	coeffs := make([]Cubic, n-1)
	for i := 0; i < n-1; i++ {
		coeffs[i] = Cubic{
			A: vals[i],
			B: (vals[i+1]-vals[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6,
			C: m[i] / 2,
			D: (m[i+1] - m[i]) / (6 * h[i]),
		}
	}
	return coeffs
}
