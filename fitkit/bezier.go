package fitkit

import (
	"fmt"
	"math"

	"github.com/landmarq/facefit"
	"gonum.org/v1/gonum/mat"
)

// BezierParams describes a fitted Bézier curve of degree 2 or 3.
// Invariant: len(ControlPoints) == Degree+1.
type BezierParams struct {
	ControlPoints []facefit.Pair
	Degree        int
}

// At evaluates the curve at parameter t ∈ [0,1] using the Bernstein basis.
func (bz BezierParams) At(t float64) facefit.Pair {
	var x, y float64
	n := len(bz.ControlPoints) - 1
	for i, cp := range bz.ControlPoints {
		w := Bernstein(n, i, t)
		x += w * cp.X()
		y += w * cp.Y()
	}
	return facefit.P(x, y)
}

// Sample evaluates the curve at k evenly spaced parameter values,
// including both endpoints. Used for verification and rendering.
func (bz BezierParams) Sample(k int) []facefit.Pair {
	if k < 2 {
		k = 2
	}
	pts := make([]facefit.Pair, k)
	for i := 0; i < k; i++ {
		pts[i] = bz.At(float64(i) / float64(k-1))
	}
	return pts
}

// Debug Stringer for a Bézier segment.
func (bz BezierParams) String() string {
	s := fmt.Sprintf("bezier[%d]", bz.Degree)
	for _, cp := range bz.ControlPoints {
		s += " " + cp.String()
	}
	return s
}

// Binomial computes the binomial coefficient C(n,i).
func Binomial(n, i int) float64 {
	if i < 0 || i > n {
		return 0
	}
	if i == 0 || i == n {
		return 1
	}
	// multiplicative form, exact for the small n used here
	b := 1.0
	for k := 1; k <= i; k++ {
		b = b * float64(n-i+k) / float64(k)
	}
	return b
}

// Bernstein computes the Bernstein basis polynomial B(n,i) at t.
func Bernstein(n, i int, t float64) float64 {
	return Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// FitBezier fits a Bézier curve of the given degree (2 or 3) to an
// ordered point sequence by linear least squares. The design matrix
// evaluates the Bernstein basis at len(points) parameter values evenly
// spaced in [0,1]; the x- and y-systems are solved independently.
//
// Fewer points than degree+1 leave the system underdetermined; the SVD
// solve then yields the minimum-norm control points rather than an
// error. The requested degree is never degraded. At least 2 points are
// required.
func FitBezier(points []facefit.Pair, degree int) (BezierParams, error) {
	if degree != 2 && degree != 3 {
		return BezierParams{}, fmt.Errorf("%w: %d", ErrUnsupportedDegree, degree)
	}
	n := len(points)
	if n < 2 {
		return BezierParams{}, fmt.Errorf("%w: Bézier fit needs at least 2 points, got %d", ErrTooFewPoints, n)
	}
	cols := degree + 1
	design := mat.NewDense(n, cols, nil)
	bx := mat.NewVecDense(n, nil)
	by := mat.NewVecDense(n, nil)
	for i, p := range points {
		t := float64(i) / float64(n-1)
		for j := 0; j < cols; j++ {
			design.Set(i, j, Bernstein(degree, j, t))
		}
		bx.SetVec(i, p.X())
		by.SetVec(i, p.Y())
	}
	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDThin) {
		return BezierParams{}, fmt.Errorf("%w: SVD factorization of Bernstein matrix failed", ErrFitDivergence)
	}
	rank := svd.Rank(1e-12)
	if rank == 0 {
		return BezierParams{}, fmt.Errorf("%w: Bernstein matrix has rank 0", ErrFitDivergence)
	}
	cx := mat.NewVecDense(cols, nil)
	cy := mat.NewVecDense(cols, nil)
	svd.SolveVecTo(cx, bx, rank)
	svd.SolveVecTo(cy, by, rank)
	ctrl := make([]facefit.Pair, cols)
	for j := 0; j < cols; j++ {
		ctrl[j] = facefit.P(cx.AtVec(j), cy.AtVec(j))
		if !ctrl[j].IsFinite() {
			return BezierParams{}, fmt.Errorf("%w: non-finite control point %d", ErrFitDivergence, j)
		}
	}
	bz := BezierParams{ControlPoints: ctrl, Degree: degree}
	tracer().Debugf("fitted %s to %d points", bz, n)
	return bz, nil
}
