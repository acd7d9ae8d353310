package facefit

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestBoundsOf(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pts := []Pair{P(0.2, 0.5), P(0.9, 0.1), P(0.4, 0.7)}
	b := BoundsOf(pts)
	assert.Equal(t, 0.2, b.MinX)
	assert.Equal(t, 0.9, b.MaxX)
	assert.Equal(t, 0.1, b.MinY)
	assert.Equal(t, 0.7, b.MaxY)
	for _, p := range pts {
		assert.True(t, b.Contains(p), "point %v outside bounds %v", p, b)
	}
	assert.False(t, b.Contains(P(1.0, 0.5)))
}

func TestBoundsOfEmpty(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, Bounds{}, BoundsOf(nil))
}

func TestCentroid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := Centroid([]Pair{P(0, 0), P(2, 0), P(2, 2), P(0, 2)})
	if !c.Equal(P(1, 1)) {
		t.Errorf("Expected centroid (1,1), got %v", c)
	}
	if !Centroid(nil).IsOrigin() {
		t.Errorf("Expected empty centroid to be origin")
	}
}

func TestIsFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, P(1, 2).IsFinite())
	nan := P(0, 1) / P(0, 0) // (NaN,NaN)
	assert.False(t, nan.IsFinite())
}
