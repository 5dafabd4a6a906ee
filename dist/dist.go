// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
)

// ErrBadParam is returned by distribution constructors when a
// parameter lies outside its mathematically valid domain. It is
// always wrapped with the offending value, so test for it with
// errors.Is.
var ErrBadParam = errors.New("distribution parameter outside valid domain")

// A DistCommon is a statistical distribution. DistCommon is a base
// interface provided by both continuous and discrete distributions.
type DistCommon interface {
	// CDF returns the cumulative probability Pr[X <= x].
	//
	// For continuous distributions, the CDF is the integral of
	// the PDF from -inf to x.
	//
	// For discrete distributions, the CDF is the sum of the PMF
	// at all defined points from -inf to x, inclusive. Note that
	// the CDF of a discrete distribution is defined for the whole
	// real line (unlike the PMF) but has discontinuities where
	// the PMF is non-zero.
	//
	// The CDF is a monotonically increasing function and has a
	// domain of all real numbers. If the distribution has bounded
	// support, it has a range of [0, 1]; otherwise it has a range
	// of (0, 1). Finally, CDF(-inf)==0 and CDF(inf)==1.
	CDF(x float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF/PMF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	//
	// For a discrete distribution, both bounds are integer
	// multiples of Step().
	//
	// If this distribution has finite support, it returns exact
	// bounds l, h such that CDF(l')=0 for all l' < l and
	// CDF(h')=1 for all h' >= h.
	Bounds() (float64, float64)
}

// A Dist is a continuous statistical distribution.
type Dist interface {
	DistCommon

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64
}

// A DiscreteDist is a discrete statistical distribution.
//
// Most discrete distributions are defined only at integral values of
// the random variable. However, some are defined at other intervals,
// so this interface takes a float64 value for the random variable.
// The probability mass function rounds down to the nearest defined
// point. Note that float64 values can exactly represent integer
// values between ±2**53, so this generally shouldn't be an issue for
// integer-valued distributions (likewise, for half-integer-valued
// distributions, float64 can exactly represent all values between
// ±2**52).
type DiscreteDist interface {
	DistCommon

	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	//
	// Note for implementers: for integer-valued distributions,
	// round x using int(math.Floor(x)). Do not use int(x), since
	// that truncates toward zero (unless all x <= 0 are handled
	// the same).
	PMF(x float64) float64

	// Step returns s, where the distribution is defined for sℕ.
	Step() float64
}

// A DistMean is a distribution that reports its mean. The second
// result is false when the mean is undefined for the distribution's
// current parameters; implementations must never report an undefined
// mean as NaN or some other sentinel value.
type DistMean interface {
	Mean() (float64, bool)
}

// A DistVariance is a distribution that reports its variance,
// following the same convention as DistMean for undefined values.
//
// A distribution need not provide both DistVariance and DistStdDev;
// the package-level Variance and StdDev functions derive either one
// from the other.
type DistVariance interface {
	Variance() (float64, bool)
}

// A DistStdDev is a distribution that reports its standard
// deviation, following the same convention as DistMean for undefined
// values.
type DistStdDev interface {
	StdDev() (float64, bool)
}

// TODO: Add a Support method for finite support distributions? Or
// maybe just another return value from Bounds indicating that the
// bounds are exact?

// ComplCDF returns the complementary cumulative probability
// Pr[X > x] of dist.
//
// If dist implements ComplCDF(float64) float64, this calls that
// method; a distribution should provide one when it can compute the
// upper tail more precisely than 1-CDF(x), which loses all precision
// once the CDF is within one ulp of 1. Otherwise this falls back to
// 1-CDF(x).
func ComplCDF(dist DistCommon, x float64) float64 {
	type complCDF interface {
		ComplCDF(float64) float64
	}
	if dist, ok := dist.(complCDF); ok {
		return dist.ComplCDF(x)
	}
	return 1 - dist.CDF(x)
}

// Mean returns the mean of dist. ok is false if the mean is
// undefined for dist's parameters or dist does not report a mean.
func Mean(dist DistCommon) (mean float64, ok bool) {
	if dist, ok := dist.(DistMean); ok {
		return dist.Mean()
	}
	return 0, false
}

// Variance returns the variance of dist. If dist reports only a
// standard deviation, the variance is derived by squaring it. ok is
// false if the variance is undefined for dist's parameters or dist
// reports neither a variance nor a standard deviation.
func Variance(dist DistCommon) (variance float64, ok bool) {
	if dist, ok := dist.(DistVariance); ok {
		return dist.Variance()
	}
	if dist, ok := dist.(DistStdDev); ok {
		// An undefined standard deviation means an undefined
		// variance, too.
		sd, ok := dist.StdDev()
		if !ok {
			return 0, false
		}
		return sd * sd, true
	}
	return 0, false
}

// StdDev returns the standard deviation of dist. If dist reports
// only a variance, the standard deviation is derived as its square
// root. ok is false if the standard deviation is undefined for
// dist's parameters or dist reports neither a standard deviation nor
// a variance.
func StdDev(dist DistCommon) (stddev float64, ok bool) {
	if dist, ok := dist.(DistStdDev); ok {
		return dist.StdDev()
	}
	if dist, ok := dist.(DistVariance); ok {
		v, ok := dist.Variance()
		if !ok {
			return 0, false
		}
		return math.Sqrt(v), true
	}
	return 0, false
}
