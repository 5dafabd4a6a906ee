// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements special functions missing from the math package.
package mathx // import "github.com/probmath/go-probdist/mathx"

import "math"

// Choose returns the binomial coefficient of n and k, the number of
// k-element subsets of an n-element set. It is 0 for k < 0 or
// k > n.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	// Work in log space so intermediate factorials cannot
	// overflow, then round back to the nearest integer.
	return math.Round(math.Exp(Lchoose(n, k)))
}

// Lchoose returns the log of the binomial coefficient of n and k.
func Lchoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}
