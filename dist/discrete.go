// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// CDFSum computes the CDF of dist at x by summing its PMF at every
// defined point from the lower bound of its support through x,
// inclusive. This is how discrete distributions without a closed-form
// CDF implement the DistCommon contract.
//
// The result is clamped to a maximum of 1. Summing many mass terms
// accumulates floating-point roundoff, and without the clamp a CDF
// could report a probability slightly above 1. The clamp is a
// correctness guard on the result, not a mask for summation bugs;
// tests observe the unclamped sum through sumPMF.
//
// Each call is O(n) in the number of summed points. Callers that
// need the CDF at many increasing values of x should accumulate the
// sum incrementally instead.
func CDFSum(dist DiscreteDist, x float64) float64 {
	return math.Min(1, sumPMF(dist, x))
}

// sumPMF is CDFSum without the final clamp.
func sumPMF(dist DiscreteDist, x float64) float64 {
	lo, hi := dist.Bounds()
	if x < lo {
		return 0
	}
	if x > hi {
		// Per the Bounds contract the mass above hi is
		// (approximately) zero, so stop summing there.
		x = hi
	}
	sum := 0.0
	for k, step := lo, dist.Step(); k <= x; k += step {
		sum += dist.PMF(k)
	}
	return sum
}
