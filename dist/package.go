// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides probability distribution abstractions: composable
// capability interfaces for distributions, generic CDF inversion
// built on hybrid Newton-Raphson/bisection root finding, and a small
// set of concrete distributions.
package dist // import "github.com/probmath/go-probdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
