// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

const (
	// findRootMaxIter bounds the number of root-finder
	// iterations. Bisection shrinks the bracket every step it
	// runs, so this cap guarantees termination without making
	// well-behaved inversions slower.
	findRootMaxIter = 150

	// findRootTol is the step magnitude below which the root
	// finder considers itself converged.
	findRootTol = 1e-15
)

// FindRoot returns the x at which dist's CDF reaches p, that is, the
// root of CDF(x)-p.
//
// x0 is the initial estimate and [lo, hi] is a bracket that must
// contain the root, with lo <= x0 <= hi. The bracket is not
// validated; a bad bracket degrades convergence but the iteration
// cap still guarantees termination.
//
// FindRoot takes Newton-Raphson steps using dist's density as the
// derivative of its CDF, which converges superlinearly when the CDF
// is well-behaved near the root. Whenever a Newton step would land
// outside the bracket, or the density is zero at the current
// estimate, it bisects the bracket instead, so a flat region of the
// density cannot stall the search and an overshooting Newton step
// cannot escape the known-valid interval.
func FindRoot(dist Dist, p, x0, lo, hi float64) float64 {
	x := x0
	step := hi - lo
	for iter := 0; iter < findRootMaxIter && math.Abs(step) > findRootTol; iter++ {
		err := dist.CDF(x) - p

		// Narrow the bracket. If the CDF at x falls short of
		// p, the root lies above x; otherwise at or below.
		if err < 0 {
			lo = x
		} else {
			hi = x
		}

		if pdf := dist.PDF(x); pdf != 0 {
			if next := x - err/pdf; lo <= next && next <= hi {
				// The Newton step stayed inside the
				// narrowed bracket. Take it.
				x, step = next, err/pdf
				continue
			}
		}

		// The density vanished at x or Newton overshot the
		// bracket. Bisect. The reported step is the distance
		// actually moved so convergence is judged on real
		// progress.
		mid := (lo + hi) / 2
		x, step = mid, mid-x
	}
	return x
}

// bisectBool locates the boundary between the true and false regions
// of a monotone predicate f on [lo, hi], where f(lo) is true and
// f(hi) is false. It returns x1, x2 with x1 <= x2 and x2-x1 <= xtol
// such that f(x1) is true and f(x2) is false.
func bisectBool(f func(float64) bool, lo, hi, xtol float64) (float64, float64) {
	for hi-lo > xtol {
		mid := (lo + hi) / 2
		if mid <= lo || mid >= hi {
			// xtol is finer than the float64 spacing at
			// this magnitude. The bracket cannot shrink
			// further.
			break
		}
		if f(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, hi
}

// InvCDF returns the inverse CDF function of the given distribution
// (also known as the quantile function or the percent point
// function). This is a function f such that f(dist.CDF(x)) == x. If
// dist.CDF is only weakly monotonic (that is, there are intervals
// over which it is constant) and y > 0, f returns the smallest x
// that satisfies this condition. In general, the inverse CDF is not
// well-defined for y==0, but for convenience if y==0, f returns the
// largest x that satisfies this condition. For distributions with
// infinite support both the largest and smallest x are -Inf;
// however, for distributions with finite support, this is the lower
// bound of the support.
//
// The returned function panics if y < 0 or y > 1; probabilities
// outside [0, 1] are a caller bug and must not produce a number.
//
// If dist implements InvCDF(float64) float64, this returns that
// method. If dist is a continuous Dist, this returns a function that
// inverts the CDF numerically with FindRoot, using dist's density.
// Otherwise, it returns a function that brackets y with pure
// bisection on the CDF, which may have poor precision around points
// of discontinuity, including f(0) and f(1).
func InvCDF(dist DistCommon) func(y float64) (x float64) {
	type invCDF interface {
		InvCDF(float64) float64
	}
	if dist, ok := dist.(invCDF); ok {
		return dist.InvCDF
	}

	// Otherwise, use a numerical algorithm.
	//
	// TODO: For discrete distributions, use the step size to
	// inform this computation.
	return func(y float64) (x float64) {
		const xtol = 1e-16

		if y < 0 || y > 1 {
			panic("dist: InvCDF called with probability outside [0, 1]")
		} else if y == 0 {
			l, _ := dist.Bounds()
			if dist.CDF(l) == 0 {
				// Finite support.
				return l
			}
			// Infinite support.
			return -inf
		} else if y == 1 {
			_, h := dist.Bounds()
			if dist.CDF(h) == 1 {
				// Finite support.
				return h
			}
			// Infinite support.
			return inf
		}

		// Find loX, hiX for which cdf(loX) < y <= cdf(hiX),
		// growing the interval by doubling until it straddles
		// y.
		var loX, loY, hiX, hiY float64
		x1, y1 := 0.0, dist.CDF(0)
		xdelta := 1.0
		if y1 < y {
			hiX, hiY = x1, y1
			for hiY < y && hiX != inf {
				loX, loY, hiX = hiX, hiY, hiX+xdelta
				hiY = dist.CDF(hiX)
				xdelta *= 2
			}
		} else {
			loX, loY = x1, y1
			for y <= loY && loX != -inf {
				hiX, hiY, loX = loX, loY, loX-xdelta
				loY = dist.CDF(loX)
				xdelta *= 2
			}
		}
		if loX == -inf {
			return loX
		} else if hiX == inf {
			return hiX
		}

		if d, ok := dist.(Dist); ok {
			// A density is available, so use the hybrid
			// Newton-Raphson/bisection inversion with the
			// straddling interval as the bracket.
			return FindRoot(d, y, (loX+hiX)/2, loX, hiX)
		}

		// Use bisection on the interval to find the smallest
		// x at which cdf(x) >= y.
		_, x = bisectBool(func(x float64) bool {
			return dist.CDF(x) < y
		}, loX, hiX, xtol)
		return
	}
}
