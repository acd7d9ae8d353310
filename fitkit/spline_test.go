package fitkit

import (
	"errors"
	"testing"

	"github.com/landmarq/facefit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNaturalSplineInterpolates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []facefit.Pair{
		facefit.P(0, 0), facefit.P(1, 2), facefit.P(2.5, 1.5),
		facefit.P(3, 3), facefit.P(4.2, 2),
	}
	sp, err := FitNaturalSpline(pts)
	assert.NoError(t, err)
	assert.Equal(t, 3, sp.Degree)
	assert.Len(t, sp.Knots, len(pts))
	assert.Equal(t, 0.0, sp.Knots[0])
	assert.InDelta(t, 1.0, sp.Knots[len(pts)-1], 1e-12)
	for i, p := range pts {
		at := sp.At(sp.Knots[i])
		assert.InDelta(t, p.X(), at.X(), 1e-9, "knot %d x", i)
		assert.InDelta(t, p.Y(), at.Y(), 1e-9, "knot %d y", i)
	}
}

func TestNaturalSplineTwoPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Two knots degenerate to a straight segment.
	sp, err := FitNaturalSpline([]facefit.Pair{facefit.P(0, 0), facefit.P(2, 2)})
	assert.NoError(t, err)
	mid := sp.At(0.5)
	assert.InDelta(t, 1.0, mid.X(), 1e-9)
	assert.InDelta(t, 1.0, mid.Y(), 1e-9)
}

func TestNaturalSplineZeroEndCurvature(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []facefit.Pair{
		facefit.P(0, 1), facefit.P(1, 0), facefit.P(2, 1), facefit.P(3, 0),
	}
	sp, err := FitNaturalSpline(pts)
	assert.NoError(t, err)
	// natural boundary condition: s''=0 at both ends, i.e. the quadratic
	// coefficient of the first interval and s'' at the last knot vanish
	first := sp.Y[0]
	assert.InDelta(t, 0.0, 2*first.C, 1e-9)
	last := sp.Y[len(sp.Y)-1]
	h := sp.Knots[len(sp.Knots)-1] - sp.Knots[len(sp.Knots)-2]
	assert.InDelta(t, 0.0, 2*last.C+6*last.D*h, 1e-9)
}

func TestNaturalSplineErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FitNaturalSpline([]facefit.Pair{facefit.P(1, 1)})
	assert.True(t, errors.Is(err, ErrTooFewPoints))
	_, err = FitNaturalSpline([]facefit.Pair{facefit.P(1, 1), facefit.P(1, 1), facefit.P(2, 2)})
	assert.True(t, errors.Is(err, ErrDegenerateInput))
}

func TestHermiteInterpolates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// nose-bridge-like input: x as a function of strictly increasing y
	pts := []facefit.Pair{
		facefit.P(0.50, 0.30), facefit.P(0.51, 0.38),
		facefit.P(0.50, 0.46), facefit.P(0.52, 0.54),
	}
	hp, err := FitHermite(pts)
	assert.NoError(t, err)
	for i, p := range pts {
		assert.InDelta(t, p.X(), hp.At(p.Y()), 1e-9, "knot %d", i)
	}
}

func TestHermiteDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := FitHermite([]facefit.Pair{
		facefit.P(0.5, 0.3), facefit.P(0.6, 0.3), facefit.P(0.5, 0.4),
	})
	assert.True(t, errors.Is(err, ErrDegenerateInput))
	_, err = FitHermite([]facefit.Pair{facefit.P(0, 0)})
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}
