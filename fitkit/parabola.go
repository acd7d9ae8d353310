package fitkit

import (
	"fmt"

	"github.com/landmarq/facefit"
	"gonum.org/v1/gonum/mat"
)

// ParabolaCoeffs describes a fitted parabola y = A·x² + B·x + C.
type ParabolaCoeffs struct {
	A, B, C float64
}

// At evaluates the parabola at x.
func (pc ParabolaCoeffs) At(x float64) float64 {
	return pc.A*x*x + pc.B*x + pc.C
}

// Debug Stringer.
func (pc ParabolaCoeffs) String() string {
	return fmt.Sprintf("parabola[%.4g·x² + %.4g·x + %.4g]", pc.A, pc.B, pc.C)
}

// FitParabola solves y = a·x² + b·x + c by ordinary least squares over a
// Vandermonde design matrix.
func FitParabola(points []facefit.Pair) (ParabolaCoeffs, error) {
	n := len(points)
	if n < 3 {
		return ParabolaCoeffs{}, fmt.Errorf("%w: parabola fit needs at least 3 points, got %d", ErrTooFewPoints, n)
	}
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = p.F()
	}
	a := vandermonde(xs, 2)
	b := mat.NewVecDense(n, ys)
	c := mat.NewVecDense(3, nil)

	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return ParabolaCoeffs{}, fmt.Errorf("%w: singular parabola system: %v", ErrFitDivergence, err)
	}
	pc := ParabolaCoeffs{A: c.AtVec(2), B: c.AtVec(1), C: c.AtVec(0)}
	if !facefit.IsFinite(pc.A) || !facefit.IsFinite(pc.B) || !facefit.IsFinite(pc.C) {
		return ParabolaCoeffs{}, fmt.Errorf("%w: non-finite parabola coefficients", ErrFitDivergence)
	}
	tracer().Debugf("fitted %s to %d points", pc, n)
	return pc, nil
}

// vandermonde calculates the Vandermonde matrix for xs and the given
// degree; column j holds xs^j.
func vandermonde(xs []float64, degree int) *mat.Dense {
	m := mat.NewDense(len(xs), degree+1, nil)
	for i := range xs {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*xs[i] {
			m.Set(i, j, p)
		}
	}
	return m
}
