package series

import (
	"fmt"
	"sort"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
	"gonum.org/v1/gonum/mat"
)

// PolynomialSeries describes a least-squares polynomial fit of the
// outline. Coefficients are in ascending power order and live in the
// normalized [0,1]² frame recorded by the axis ranges; At maps back to
// original coordinates.
type PolynomialSeries struct {
	Coefficients []float64 // Coefficients[i] multiplies x^i
	Degree       int
	Equation     string

	xr, yr axisRange
}

func (d PolynomialSeries) Kind() string { return "polynomial" }

// At evaluates the fitted polynomial at x (original coordinates).
func (d PolynomialSeries) At(x float64) float64 {
	u := d.xr.normalize(x)
	var y float64
	for i := d.Degree; i >= 0; i-- {
		y = y*u + d.Coefficients[i]
	}
	return d.yr.denormalize(y)
}

func (d PolynomialSeries) String() string { return d.Equation }

// fitPolynomial sorts the outline by x and solves the Vandermonde
// least-squares system of the requested degree.
func fitPolynomial(points []facefit.Pair, degree int) (facefit.Descriptor, error) {
	if len(points) < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d points, got %d",
			ErrInsufficientPoints, degree, degree+1, len(points))
	}
	sorted := append([]facefit.Pair(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X() < sorted[j].X() })
	xs, ys, rx, ry, err := normalizeAxes(sorted)
	if err != nil {
		return nil, err
	}

	a := vandermonde(xs, degree)
	b := mat.NewVecDense(len(ys), ys)
	c := mat.NewVecDense(degree+1, nil)
	qr := new(mat.QR)
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: singular Vandermonde system: %v", fitkit.ErrFitDivergence, err)
	}
	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = c.AtVec(i)
		if !facefit.IsFinite(coeffs[i]) {
			return nil, fmt.Errorf("%w: non-finite coefficient %d", fitkit.ErrFitDivergence, i)
		}
	}
	return PolynomialSeries{
		Coefficients: coeffs,
		Degree:       degree,
		Equation:     renderPolynomial(coeffs),
		xr:           rx,
		yr:           ry,
	}, nil
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
