// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

var (
	_ Dist         = ExponentialDist{}
	_ Dist         = NormalDist{}
	_ DiscreteDist = GeometricDist{}
	_ DiscreteDist = BinomialDist{}
)

func TestMomentHelpers(t *testing.T) {
	check := func(name string, f func(DistCommon) (float64, bool), dist DistCommon, want float64, wantOK bool) {
		t.Helper()
		got, ok := f(dist)
		if ok != wantOK || (ok && !aeq(want, got)) {
			t.Errorf("want %s(%+v)=%v,%v, got %v,%v", name, dist, want, wantOK, got, ok)
		}
	}

	// ExponentialDist reports Mean and Variance; StdDev is
	// derived as the square root.
	e := ExponentialDist{Rate: 4}
	check("Mean", Mean, e, 0.25, true)
	check("Variance", Variance, e, 0.0625, true)
	check("StdDev", StdDev, e, 0.25, true)

	// NormalDist reports Mean and StdDev; Variance is derived by
	// squaring.
	n := NormalDist{Mu: 2, Sigma: 3}
	check("Mean", Mean, n, 2, true)
	check("StdDev", StdDev, n, 3, true)
	check("Variance", Variance, n, 9, true)

	// GeometricDist with P=0 has no mean, so the whole
	// mean/variance/stddev trio must be reported absent,
	// including the derived one.
	g := GeometricDist{P: 0}
	check("Mean", Mean, g, 0, false)
	check("Variance", Variance, g, 0, false)
	check("StdDev", StdDev, g, 0, false)

	// plateauDist reports no moments at all.
	check("Mean", Mean, plateauDist{}, 0, false)
	check("Variance", Variance, plateauDist{}, 0, false)
	check("StdDev", StdDev, plateauDist{}, 0, false)
}

func TestComplCDF(t *testing.T) {
	// GeometricDist does not override ComplCDF, so the generic
	// 1-CDF fallback applies.
	g := GeometricDist{P: 0.3}
	for _, x := range []float64{-1, 0.5, 1, 2.5, 7} {
		if want, got := 1-g.CDF(x), ComplCDF(g, x); want != got {
			t.Errorf("want ComplCDF(%v)=%v, got %v", x, want, got)
		}
	}

	// ExponentialDist overrides ComplCDF with the exact upper
	// tail. Deep in the tail the fallback underflows to 0 while
	// the override keeps the true magnitude.
	e := ExponentialDist{Rate: 1}
	if want, got := math.Exp(-2), ComplCDF(e, 2); !aeq(want, got) {
		t.Errorf("want ComplCDF(2)=%v, got %v", want, got)
	}
	if fallback := 1 - e.CDF(50); fallback != 0 {
		t.Fatalf("want the generic tail to underflow at x=50, got %v", fallback)
	}
	if got := ComplCDF(e, 50); !aeqTol(math.Exp(-50), got, 1e-30) || got == 0 {
		t.Errorf("want ComplCDF(50)=%v, got %v", math.Exp(-50), got)
	}
}

func TestInvCDFNative(t *testing.T) {
	// A distribution with its own InvCDF method keeps it.
	e := ExponentialDist{Rate: 2}
	inv := InvCDF(e)
	for _, p := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if want, got := e.InvCDF(p), inv(p); want != got {
			t.Errorf("want InvCDF(%v)=%v, got %v", p, want, got)
		}
	}
}

func TestInvCDFContinuous(t *testing.T) {
	// plateauDist has a density but no InvCDF method, so the
	// generic inversion runs the Newton/bisection root finder.
	inv := InvCDF(plateauDist{})
	if got := inv(0.7); !aeqTol(1.7, got, 1e-9) {
		t.Errorf("want InvCDF(0.7)=1.7, got %v", got)
	}
	if got := inv(0.25); !aeqTol(0.25, got, 1e-9) {
		t.Errorf("want InvCDF(0.25)=0.25, got %v", got)
	}

	// Finite support: probability 0 and 1 map to the exact
	// bounds.
	if got := inv(0); got != 0 {
		t.Errorf("want InvCDF(0)=0, got %v", got)
	}
	if got := inv(1); got != 2 {
		t.Errorf("want InvCDF(1)=2, got %v", got)
	}
}

func TestInvCDFDiscrete(t *testing.T) {
	// GeometricDist has no density, so the generic inversion
	// bisects on the CDF alone. CDF(x)=0.5 for x in [1, 2) and
	// 0.75 at 2, so the smallest x with CDF(x) >= 0.6 is 2.
	g := GeometricDist{P: 0.5}
	inv := InvCDF(g)
	if got := inv(0.6); !aeq(2, got) {
		t.Errorf("want InvCDF(0.6)=2, got %v", got)
	}
	if got := inv(0.5); !aeq(1, got) {
		t.Errorf("want InvCDF(0.5)=1, got %v", got)
	}
}

func TestInvCDFDomain(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("want %s to panic", name)
			}
		}()
		f()
	}

	inv := InvCDF(plateauDist{})
	mustPanic("InvCDF(-0.1)", func() { inv(-0.1) })
	mustPanic("InvCDF(1.1)", func() { inv(1.1) })
	mustPanic("ExponentialDist.InvCDF(-0.1)", func() { ExponentialDist{Rate: 1}.InvCDF(-0.1) })
	mustPanic("ExponentialDist.InvCDF(2)", func() { ExponentialDist{Rate: 1}.InvCDF(2) })
	mustPanic("NormalDist.InvCDF(1.5)", func() { StdNormal.InvCDF(1.5) })
}
