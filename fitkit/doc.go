// Package fitkit provides the reusable numerical fitting primitives the
// facial feature handlers are built from.
/*

Fitting a named facial feature decomposes into a small number of basis
problems, each solved here independently of feature semantics:

   ▪ least-squares Bézier fitting (quadratic and cubic) over a Bernstein
     design matrix,
   ▪ parametric natural cubic spline interpolation with chord-length
     parameterization,
   ▪ "Hermite" interpolation of x as a natural cubic function of y, for
     near-vertical features where the usual parameterization degenerates,
   ▪ ordinary least-squares parabola fitting,
   ▪ nonlinear ellipse fitting (axis lengths and rotation) by
     derivative-free minimization.

All fitters are pure functions over their inputs: no shared state, no
I/O, safe for concurrent use. Linear systems are solved with gonum
(QR for overdetermined Vandermonde systems, SVD for Bernstein systems so
that underdetermined segments receive the minimum-norm solution), the
nonlinear ellipse objective with gonum's Nelder-Mead implementation.

BSD License

Copyright (c) Landmarq contributors

All rights reserved.

Please refer to the license file for more information.
*/
package fitkit

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'facefit.fitkit'
func tracer() tracing.Trace {
	return tracing.Select("facefit.fitkit")
}

var (
	// ErrTooFewPoints indicates the input cannot support the requested fit.
	ErrTooFewPoints = errors.New("too few points for fit")
	// ErrUnsupportedDegree indicates a Bézier degree outside {2, 3}.
	ErrUnsupportedDegree = errors.New("unsupported Bézier degree")
	// ErrDegenerateInput indicates coincident or non-monotonic input that
	// collapses the fit's parameterization.
	ErrDegenerateInput = errors.New("degenerate input geometry")
	// ErrFitDivergence indicates a singular linear system or a nonlinear
	// minimizer that failed to converge.
	ErrFitDivergence = errors.New("fit did not converge")
)
