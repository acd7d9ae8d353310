package series

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	m, err := ParseMethod("fourier")
	assert.NoError(t, err)
	assert.Equal(t, Fourier, m)
	_, err = ParseMethod("wavelet")
	assert.True(t, errors.Is(err, ErrUnknownMethod))
	assert.Len(t, Methods(), 3)
}

func TestFitRejectsSinglePoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Fit([]facefit.Pair{facefit.P(0.5, 0.5)}, Polynomial, 3)
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
}

func TestFitRejectsUnknownMethod(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []facefit.Pair{facefit.P(0, 0), facefit.P(1, 1), facefit.P(2, 0)}
	_, err := Fit(pts, Method("wavelet"), 3)
	assert.True(t, errors.Is(err, ErrUnknownMethod))
}

func TestFitRejectsDegenerateOutline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []facefit.Pair{facefit.P(0.5, 0), facefit.P(0.5, 1), facefit.P(0.5, 2)}
	_, err := Fit(pts, Polynomial, 2)
	assert.True(t, errors.Is(err, fitkit.ErrDegenerateInput))
}

func TestPolynomialInterpolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// degree d over d+1 distinct x-values: the Vandermonde system is
	// square and the fit reproduces every value exactly
	pts := []facefit.Pair{facefit.P(0, 0.2), facefit.P(1, 0.9), facefit.P(2, 0.3)}
	d, err := Fit(pts, Polynomial, 2)
	assert.NoError(t, err)
	poly, ok := d.(PolynomialSeries)
	assert.True(t, ok, "expected PolynomialSeries, got %T", d)
	assert.Equal(t, 2, poly.Degree)
	assert.Len(t, poly.Coefficients, 3)
	for _, p := range pts {
		assert.InDelta(t, p.Y(), poly.At(p.X()), 1e-9, "at x=%g", p.X())
	}
}

func TestPolynomialEquationElidesZeroTerms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// a straight line fitted with a cubic: the quadratic and cubic
	// coefficients vanish and must not appear in the equation string
	var pts []facefit.Pair
	for i := 0; i <= 8; i++ {
		x := float64(i) / 8.0
		pts = append(pts, facefit.P(x, x))
	}
	d, err := Fit(pts, Polynomial, 3)
	assert.NoError(t, err)
	poly := d.(PolynomialSeries)
	assert.Contains(t, poly.Equation, "x")
	assert.NotContains(t, poly.Equation, "x^3")
	assert.NotContains(t, poly.Equation, "x^2")
}

func TestPolynomialTooFewForDegree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []facefit.Pair{facefit.P(0, 0), facefit.P(1, 1), facefit.P(2, 0)}
	_, err := Fit(pts, Polynomial, 4)
	assert.True(t, errors.Is(err, ErrInsufficientPoints))
}

func TestTrigonometricFitsHalfSine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// y = sin(πx) on [0,1] is exactly the first sine basis function, so
	// a single-term fit should land near c0=0, a1=1, b1=0
	var pts []facefit.Pair
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20.0
		pts = append(pts, facefit.P(x, math.Sin(math.Pi*x)))
	}
	d, err := Fit(pts, Trigonometric, 1)
	assert.NoError(t, err)
	trig, ok := d.(TrigSeries)
	assert.True(t, ok, "expected TrigSeries, got %T", d)
	assert.Equal(t, 1, trig.Terms)
	assert.Len(t, trig.Parameters, 3)
	assert.InDelta(t, 1.0, trig.Parameters[1], 0.05, "a1")
	for _, p := range pts {
		assert.InDelta(t, p.Y(), trig.At(p.X()), 0.05, "at x=%g", p.X())
	}
}

func TestFourierRecoversPureSinusoid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// one full period of y = sin(x) on the periodic index grid: b1 ≈ 1,
	// everything else ≈ 0
	const n = 64
	var pts []facefit.Pair
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i) / n
		pts = append(pts, facefit.P(x, math.Sin(x)))
	}
	d, err := Fit(pts, Fourier, 3)
	assert.NoError(t, err)
	four, ok := d.(FourierSeries)
	assert.True(t, ok, "expected FourierSeries, got %T", d)
	assert.InDelta(t, 0.0, four.A0, 1e-2)
	assert.InDelta(t, 1.0, four.Sin[0], 1e-2)
	assert.InDelta(t, 0.0, four.Cos[0], 1e-2)
	assert.InDelta(t, 0.0, four.Sin[1], 1e-2)
	assert.InDelta(t, 0.0, four.Cos[1], 1e-2)
	assert.InDelta(t, 0.0, four.Sin[2], 1e-2)
	assert.InDelta(t, 0.0, four.Cos[2], 1e-2)
	// the reconstruction tracks the samples
	for i, p := range pts {
		tt := 2 * math.Pi * float64(i) / n
		assert.InDelta(t, p.Y(), four.At(tt), 1e-6)
	}
}

func TestFourierEquationRendering(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const n = 32
	var pts []facefit.Pair
	for i := 0; i < n; i++ {
		x := 2 * math.Pi * float64(i) / n
		pts = append(pts, facefit.P(x, 0.5+math.Cos(2*x)))
	}
	d, err := Fit(pts, Fourier, 2)
	assert.NoError(t, err)
	four := d.(FourierSeries)
	assert.True(t, strings.HasPrefix(four.Equation, "y = "))
	assert.Contains(t, four.Equation, "cos(2t)")
	assert.NotContains(t, four.Equation, "sin(1t)")
}
