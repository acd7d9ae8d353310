package series

import (
	"math"

	"github.com/landmarq/facefit"
	"gonum.org/v1/gonum/stat"
)

// FourierSeries describes a direct Fourier coefficient estimate of the
// outline's y-values,
//
//	y(t) = A0 + Σ Cos[n-1]·cos(nt) + Sin[n-1]·sin(nt),  n = 1..Terms,
//
// where t is the point index resampled onto [0,2π). The raw y-values
// are used; no normalization is involved.
type FourierSeries struct {
	A0       float64
	Cos, Sin []float64
	Terms    int
	Equation string
}

func (d FourierSeries) Kind() string { return "fourier" }

// At evaluates the series at parameter t ∈ [0,2π).
func (d FourierSeries) At(t float64) float64 {
	y := d.A0
	for n := 1; n <= d.Terms; n++ {
		y += d.Cos[n-1]*math.Cos(float64(n)*t) + d.Sin[n-1]*math.Sin(float64(n)*t)
	}
	return y
}

func (d FourierSeries) String() string { return d.Equation }

// fitFourier estimates Fourier coefficients by numerical integration:
// the point index range is resampled onto the periodic grid tᵢ = 2πi/n,
// A0 is the mean of y, and each pair of term coefficients is twice the
// mean of y·cos(nt) resp. y·sin(nt). Every term is accumulated
// independently per n.
func fitFourier(points []facefit.Pair, terms int) (facefit.Descriptor, error) {
	n := len(points)
	ts := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		ts[i] = 2 * math.Pi * float64(i) / float64(n)
		ys[i] = p.Y()
	}
	d := FourierSeries{
		A0:    stat.Mean(ys, nil),
		Cos:   make([]float64, terms),
		Sin:   make([]float64, terms),
		Terms: terms,
	}
	prod := make([]float64, n)
	for k := 1; k <= terms; k++ {
		for i := range ts {
			prod[i] = ys[i] * math.Cos(float64(k)*ts[i])
		}
		d.Cos[k-1] = 2 * stat.Mean(prod, nil)
		for i := range ts {
			prod[i] = ys[i] * math.Sin(float64(k)*ts[i])
		}
		d.Sin[k-1] = 2 * stat.Mean(prod, nil)
	}
	d.Equation = renderFourier(d)
	return d, nil
}
