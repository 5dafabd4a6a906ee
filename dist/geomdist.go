// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// GeometricDist is the distribution of the number of Bernoulli
// trials, each succeeding with probability P, needed to get one
// success. It is supported on {1, 2, 3, ...}.
type GeometricDist struct {
	// P is the per-trial success probability. 0 <= P <= 1.
	P float64
}

// NewGeometricDist returns a geometric distribution with the given
// per-trial success probability. It fails with ErrBadParam if p is
// outside [0, 1]; both boundaries are valid.
func NewGeometricDist(p float64) (GeometricDist, error) {
	if !(p >= 0 && p <= 1) {
		return GeometricDist{}, fmt.Errorf("%w: success probability %v outside [0, 1]", ErrBadParam, p)
	}
	return GeometricDist{P: p}, nil
}

// PMF is the probability P*(1-P)^(k-1) that the first success takes
// exactly int(k) trials, and 0 for k below the support.
func (d GeometricDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 1 {
		return 0
	}
	return d.P * math.Pow(1-d.P, float64(ki-1))
}

// CDF is the probability 1-(1-P)^floor(x) that the first success
// takes at most x trials.
func (d GeometricDist) CDF(x float64) float64 {
	if x < 1 {
		return 0
	}
	return 1 - math.Pow(1-d.P, math.Floor(x))
}

func (d GeometricDist) Step() float64 {
	return 1
}

func (d GeometricDist) Bounds() (float64, float64) {
	switch d.P {
	case 0:
		// Every trial fails; the first success never comes.
		return 1, inf
	case 1:
		return 1, 1
	}
	// Beyond n trials with (1-P)^n <= 1e-10 the remaining weight
	// is negligible.
	return 1, math.Ceil(math.Log(1e-10) / math.Log1p(-d.P))
}

// Mean returns 1/P. For P == 0 the mean is undefined, since a
// success never arrives.
func (d GeometricDist) Mean() (float64, bool) {
	if d.P == 0 {
		return 0, false
	}
	return 1 / d.P, true
}

// Variance returns (1-P)/P². Like Mean, it is undefined for P == 0.
func (d GeometricDist) Variance() (float64, bool) {
	if d.P == 0 {
		return 0, false
	}
	return (1 - d.P) / (d.P * d.P), true
}
