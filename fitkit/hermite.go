package fitkit

import (
	"fmt"

	"github.com/landmarq/facefit"
)

// HermiteParams describes x as a natural cubic function of y. Knots are
// the y-coordinates of the input points in increasing order; Coeffs[i]
// covers [Knots[i], Knots[i+1]].
//
// Treating y as the independent parameter sidesteps the near-vertical
// tangent singularity of the ordinary y = f(x) form for features that
// run mostly vertically, such as a nose bridge.
type HermiteParams struct {
	Knots  []float64
	Coeffs []Cubic
	Degree int
}

// At evaluates x at the given y. Values outside the knot range are
// extrapolated from the terminal intervals.
func (hp HermiteParams) At(y float64) float64 {
	i := intervalIndex(hp.Knots, y)
	return hp.Coeffs[i].at(y - hp.Knots[i])
}

// Debug Stringer.
func (hp HermiteParams) String() string {
	return fmt.Sprintf("hermite[deg=%d, %d knots]", hp.Degree, len(hp.Knots))
}

// FitHermite fits x as a natural cubic spline function of y. The input
// must already be ordered by y (the nose-bridge handler sorts before
// calling); strictly increasing y-coordinates are required, since a
// duplicate y makes the x(y) parameterization singular.
func FitHermite(points []facefit.Pair) (HermiteParams, error) {
	n := len(points)
	if n < 2 {
		return HermiteParams{}, fmt.Errorf("%w: Hermite fit needs at least 2 points, got %d", ErrTooFewPoints, n)
	}
	knots := make([]float64, n)
	xs := make([]float64, n)
	for i, p := range points {
		xs[i], knots[i] = p.F()
		if i > 0 && knots[i]-knots[i-1] <= facefit.Epsilon {
			return HermiteParams{}, fmt.Errorf("%w: y-coordinates not strictly increasing at %d", ErrDegenerateInput, i)
		}
	}
	hp := HermiteParams{
		Knots:  knots,
		Coeffs: solveNaturalCubic(knots, xs),
		Degree: 3,
	}
	tracer().Debugf("fitted %s to %d points", hp, n)
	return hp, nil
}
