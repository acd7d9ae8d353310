package series

import (
	"fmt"
	"math"

	"github.com/landmarq/facefit"
	"github.com/landmarq/facefit/fitkit"
	"gonum.org/v1/gonum/optimize"
)

// trigMaxIter caps the Nelder-Mead iterations of the trigonometric fit.
const trigMaxIter = 5000

// TrigSeries describes a trigonometric series fit,
//
//	y = c0 + Σ aᵢ·sin(iπx) + bᵢ·cos(iπx),  i = 1..Terms,
//
// in the normalized [0,1]² frame. Parameters is laid out as
// [c0, a1, b1, a2, b2, ...].
type TrigSeries struct {
	Parameters []float64
	Terms      int
	Equation   string

	xr, yr axisRange
}

func (d TrigSeries) Kind() string { return "trigonometric" }

// At evaluates the fitted series at x (original coordinates).
func (d TrigSeries) At(x float64) float64 {
	u := d.xr.normalize(x)
	return d.yr.denormalize(trigModel(d.Parameters, u))
}

func (d TrigSeries) String() string { return d.Equation }

// trigModel evaluates c0 + Σ aᵢ·sin(iπx) + bᵢ·cos(iπx) for the packed
// parameter vector [c0, a1, b1, a2, b2, ...].
func trigModel(params []float64, x float64) float64 {
	y := params[0]
	for i := 1; 2*i < len(params); i++ {
		freq := float64(i) * math.Pi * x
		y += params[2*i-1]*math.Sin(freq) + params[2*i]*math.Cos(freq)
	}
	return y
}

// fitTrigonometric solves the series by nonlinear least squares: a
// derivative-free minimization of the residual sum of squares, seeded
// at all-zero parameters, capped at trigMaxIter iterations.
func fitTrigonometric(points []facefit.Pair, terms int) (facefit.Descriptor, error) {
	xs, ys, rx, ry, err := normalizeAxes(points)
	if err != nil {
		return nil, err
	}
	objective := func(params []float64) float64 {
		var sse float64
		for i, x := range xs {
			r := trigModel(params, x) - ys[i]
			sse += r * r
		}
		return sse
	}
	problem := optimize.Problem{Func: objective}
	settings := &optimize.Settings{MajorIterations: trigMaxIter}
	seed := make([]float64, 2*terms+1)
	result, err := optimize.Minimize(problem, seed, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fitkit.ErrFitDivergence, err)
	}
	if result.Status == optimize.IterationLimit || result.Status == optimize.FunctionEvaluationLimit {
		return nil, fmt.Errorf("%w: minimizer hit iteration cap after %d iterations", fitkit.ErrFitDivergence, trigMaxIter)
	}
	for i, p := range result.X {
		if !facefit.IsFinite(p) {
			return nil, fmt.Errorf("%w: non-finite parameter %d", fitkit.ErrFitDivergence, i)
		}
	}
	params := append([]float64(nil), result.X...)
	return TrigSeries{
		Parameters: params,
		Terms:      terms,
		Equation:   renderTrig(params),
		xr:         rx,
		yr:         ry,
	}, nil
}
