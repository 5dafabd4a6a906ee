// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) <= tol
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
}

// testDiscreteCDF checks that dist's CDF is consistent with the
// running sum of its PMF over its support, including at points
// between and outside the defined outcomes.
func testDiscreteCDF(t *testing.T, name string, dist DiscreteDist) {
	t.Helper()
	lo, hi := dist.Bounds()
	step := dist.Step()

	if got := dist.CDF(lo - step); got != 0 {
		t.Errorf("want %s(%v)=0 below the support, got %v", name, lo-step, got)
	}
	want := 0.0
	for x := lo; x <= hi; x += step {
		if got := dist.CDF(x - step/2); !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x-step/2, want, got)
		}
		want += dist.PMF(x)
		if got := dist.CDF(x); !aeq(want, got) {
			t.Errorf("want %s(%v)=%v, got %v", name, x, want, got)
		}
	}
	if got := dist.CDF(hi + step); !aeq(1, got) {
		t.Errorf("want %s(%v)=1 above the support, got %v", name, hi+step, got)
	}
}
