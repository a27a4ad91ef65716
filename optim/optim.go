// Copyright 2025 The RegViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for gradient-based parameter
// updates.
//
// Example:
//
//	sgd := optim.NewSGD([]*autodiff.Value{w1, w2}, optim.SGDConfig{
//	    LR:       0.1,
//	    Momentum: 0.9,
//	})
package optim

import (
	"github.com/regviz-ml/regviz/internal/optim"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Optimizer is the base interface for parameter update algorithms.
type Optimizer = optim.Optimizer

// SGD implements gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*scalar.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
