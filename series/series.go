package series

import (
	"fmt"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
)

// Method selects the equation family for a series fit.
type Method string

// The supported series methods.
const (
	Polynomial    Method = "polynomial"
	Trigonometric Method = "trigonometric"
	Fourier       Method = "fourier"
)

// Methods returns all supported series methods.
func Methods() []Method {
	return []Method{Polynomial, Trigonometric, Fourier}
}

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	switch m {
	case Polynomial, Trigonometric, Fourier:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// axisRange records the normalization of one axis, so fitted
// coefficients (which live in normalized space) can be evaluated in the
// original coordinates.
type axisRange struct {
	Min, Max float64
}

func (r axisRange) normalize(v float64) float64 {
	return (v - r.Min) / (r.Max - r.Min)
}

func (r axisRange) denormalize(v float64) float64 {
	return r.Min + v*(r.Max-r.Min)
}

// Fit fits one outline with the requested method. degree is the
// polynomial degree or the number of trigonometric/Fourier terms. The
// call is all-or-nothing: there is no partial result to fall back to,
// so any failure fails the whole fit.
func Fit(points []facefit.Pair, method Method, degree int) (facefit.Descriptor, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: series fit needs at least 2 points, got %d", ErrInsufficientPoints, len(points))
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: degree/terms must be positive, got %d", fitkit.ErrDegenerateInput, degree)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w: non-finite point %d", fitkit.ErrDegenerateInput, i)
		}
	}
	var d facefit.Descriptor
	var err error
	switch method {
	case Polynomial:
		d, err = fitPolynomial(points, degree)
	case Trigonometric:
		d, err = fitTrigonometric(points, degree)
	case Fourier:
		d, err = fitFourier(points, degree)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, string(method))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	tracer().Infof("fitted %s series to %d points", method, len(points))
	return d, nil
}

// normalizeAxes maps both coordinate axes into [0,1] and returns the
// normalized values together with the recorded ranges. A degenerate
// axis (zero extent) cannot be normalized.
func normalizeAxes(points []facefit.Pair) (xs, ys []float64, rx, ry axisRange, err error) {
	b := facefit.BoundsOf(points)
	rx = axisRange{Min: b.MinX, Max: b.MaxX}
	ry = axisRange{Min: b.MinY, Max: b.MaxY}
	if facefit.Is0(rx.Max-rx.Min) || facefit.Is0(ry.Max-ry.Min) {
		return nil, nil, rx, ry, fmt.Errorf("%w: outline collapses onto an axis", fitkit.ErrDegenerateInput)
	}
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = rx.normalize(p.X())
		ys[i] = ry.normalize(p.Y())
	}
	return xs, ys, rx, ry, nil
}
