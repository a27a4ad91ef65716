// Copyright 2025 The RegViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package penalty provides the public API for regularization penalties.
//
// Example:
//
//	pen := penalty.L1{Lambda: 2}
//	fmt.Println(pen.Eval(3, -2)) // 2 * (|3| + |-2|) = 10
package penalty

import "github.com/regviz-ml/regviz/internal/penalty"

// Penalty is a regularization term over a two-weight vector.
type Penalty = penalty.Penalty

// None is the absence of regularization.
type None = penalty.None

// L1 is the lasso penalty: Lambda * (|w1| + |w2|).
type L1 = penalty.L1

// L2 is the ridge (Tikhonov) penalty: Lambda * (w1² + w2²).
type L2 = penalty.L2

// ElasticNet combines an L1 and an L2 term with independent weights.
type ElasticNet = penalty.ElasticNet
