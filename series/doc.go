// Package series fits a single outline with a global equation series,
// independent of facial feature semantics.
/*

Three methods are supported:

   ▪ polynomial — ordinary least squares of the requested degree over a
     Vandermonde design matrix, points sorted by x,
   ▪ trigonometric — y = c0 + Σ aᵢ·sin(iπx) + bᵢ·cos(iπx), solved by
     derivative-free nonlinear least squares seeded at zero,
   ▪ fourier — direct numerical-integration estimates of the Fourier
     coefficients over the point index range resampled onto [0,2π].

Unlike the per-feature router, a series fit is all-or-nothing: exactly
one method is requested and the whole call fails if that method fails.
Results carry the coefficients, the term/degree count and a rendered
equation string in which near-zero terms are elided.

For the polynomial and trigonometric methods both axes are normalized
into [0,1] before fitting (the sin(iπx)/cos(iπx) basis spans exactly one
half-period family over that interval); the normalization is recorded in
the descriptor so that At evaluates in the original coordinates. The
Fourier method works on the raw y-values, parameterized by point index,
and needs no normalization.

BSD License

Copyright (c) Landmarq contributors

All rights reserved.

Please refer to the license file for more information.
*/
package series

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'facefit.series'
func tracer() tracing.Trace {
	return tracing.Select("facefit.series")
}

var (
	// ErrUnknownMethod indicates a method name outside the supported set.
	ErrUnknownMethod = errors.New("unknown series method")
	// ErrInsufficientPoints indicates an outline too small to fit.
	ErrInsufficientPoints = errors.New("insufficient outline points")
)
