// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"

	"github.com/probmath/go-probdist/mathx"
)

// BinomialDist is a binomial distribution.
type BinomialDist struct {
	// N is the number of independent Bernoulli trials. N >= 0.
	//
	// If N=1, this is equivalent to the Bernoulli distribution.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64
}

// NewBinomialDist returns a binomial distribution over n trials with
// per-trial success probability p. It fails with ErrBadParam if n is
// negative or p is outside [0, 1].
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, fmt.Errorf("%w: trial count %v is negative", ErrBadParam, n)
	}
	if !(p >= 0 && p <= 1) {
		return BinomialDist{}, fmt.Errorf("%w: success probability %v outside [0, 1]", ErrBadParam, p)
	}
	return BinomialDist{N: n, P: p}, nil
}

// PMF is the probability of getting exactly int(k) successes in d.N
// independent Bernoulli trials with probability d.P.
func (d BinomialDist) PMF(k float64) float64 {
	ki := int(math.Floor(k))
	if ki < 0 || ki > d.N {
		return 0
	}
	return mathx.Choose(d.N, ki) * math.Pow(d.P, float64(ki)) * math.Pow(1-d.P, float64(d.N-ki))
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P. It is derived
// from the PMF by summation.
func (d BinomialDist) CDF(k float64) float64 {
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}
	return CDFSum(d, k)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Step() float64 {
	return 1
}

func (d BinomialDist) Mean() (float64, bool) {
	return float64(d.N) * d.P, true
}

func (d BinomialDist) Variance() (float64, bool) {
	return float64(d.N) * d.P * (1 - d.P), true
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	mean, _ := d.Mean()
	variance, _ := d.Variance()
	return NormalDist{Mu: mean, Sigma: math.Sqrt(variance)}
}
