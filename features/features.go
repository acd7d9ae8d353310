// Package features routes named facial features to feature-specific
// curve fitting.
/*

Each of the nine features of the 68-landmark layout gets its own
handler, which preprocesses the ordered landmark sequence (sorting,
peak/chin detection, midpoint splitting) and delegates the numerical
work to package fitkit. The result is a tagged descriptor carrying the
fitted parameters and the bounding box of the input points.

The feature set is closed: dispatch is a switch over the Feature
enumeration, checked at compile time against the descriptor variants,
not a runtime handler table. The Engine carries no state; construct one
explicitly and share it freely, all fits are pure functions.

BSD License

Copyright (c) Landmarq contributors

All rights reserved.

Please refer to the license file for more information.
*/
package features

import (
	"errors"
	"fmt"

	"github.com/landmarq/facefit"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'facefit.features'
func tracer() tracing.Trace {
	return tracing.Select("facefit.features")
}

var (
	// ErrUnknownFeature indicates a feature name outside the fixed set.
	ErrUnknownFeature = errors.New("unknown facial feature")
	// ErrInsufficientPoints indicates too few landmarks for the feature's
	// structural split.
	ErrInsufficientPoints = errors.New("insufficient landmark points")
)

// Feature names a contiguous group of facial landmarks.
type Feature string

// The fixed feature set of the 68-point landmark layout.
const (
	Jawline      Feature = "jawline"
	RightEyebrow Feature = "right_eyebrow"
	LeftEyebrow  Feature = "left_eyebrow"
	NoseBridge   Feature = "nose_bridge"
	NoseTip      Feature = "nose_tip"
	RightEye     Feature = "right_eye"
	LeftEye      Feature = "left_eye"
	OuterLips    Feature = "outer_lips"
	InnerLips    Feature = "inner_lips"
)

// Features returns all known features in landmark order.
func Features() []Feature {
	return []Feature{
		Jawline, RightEyebrow, LeftEyebrow, NoseBridge, NoseTip,
		RightEye, LeftEye, OuterLips, InnerLips,
	}
}

// ParseFeature validates a feature name. Unknown names are a contract
// violation and are rejected, never silently ignored.
func ParseFeature(name string) (Feature, error) {
	f := Feature(name)
	switch f {
	case Jawline, RightEyebrow, LeftEyebrow, NoseBridge, NoseTip,
		RightEye, LeftEye, OuterLips, InnerLips:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// Engine fits curve descriptors to facial features. It is a stateless
// value: the zero value and NewEngine() are equivalent, and an Engine
// may be used concurrently without locking.
type Engine struct{}

// NewEngine constructs a fitting engine.
func NewEngine() Engine {
	return Engine{}
}

// Fit dispatches a feature's landmark sequence to its handler and
// returns the fitted descriptor. The input sequence is never mutated;
// handlers that sort work on a copy. Coordinates may be normalized or
// raw pixels, any finite scale works.
func (e Engine) Fit(f Feature, points []facefit.Pair) (facefit.Descriptor, error) {
	for i, p := range points {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%s: non-finite landmark %d", f, i)
		}
	}
	var d facefit.Descriptor
	var err error
	switch f {
	case Jawline:
		d, err = fitJawline(points)
	case RightEyebrow, LeftEyebrow:
		d, err = fitEyebrow(points)
	case RightEye, LeftEye:
		d, err = fitEye(points)
	case NoseBridge:
		d, err = fitNoseBridge(points)
	case NoseTip:
		d, err = fitNoseTip(points)
	case OuterLips:
		d, err = fitOuterLips(points)
	case InnerLips:
		d, err = fitInnerLips(points)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	tracer().Infof("fitted %s: %v", f, d)
	return d, nil
}

// FitAll fits every feature in the input mapping. Failures are isolated:
// a feature that cannot be fitted is traced, reported in the error map
// and excluded from the result, without aborting the remaining features.
// Partial success is a valid outcome.
func (e Engine) FitAll(landmarks map[Feature][]facefit.Pair) (map[Feature]facefit.Descriptor, map[Feature]error) {
	descriptors := make(map[Feature]facefit.Descriptor, len(landmarks))
	failures := make(map[Feature]error)
	for f, pts := range landmarks {
		d, err := e.Fit(f, pts)
		if err != nil {
			tracer().Errorf("fit failed for %s: %v", f, err)
			failures[f] = err
			continue
		}
		descriptors[f] = d
	}
	return descriptors, failures
}
