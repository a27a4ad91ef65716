// Copyright 2025 The RegViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package descent provides the public API for running gradient descent on
// the toy two-weight problems and recording trajectories.
//
// Example:
//
//	traj, err := descent.Run(
//	    descent.Problem{Loss: descent.NewBowl(), Penalty: penalty.L2{Lambda: 1}},
//	    descent.Config{Start: [2]float64{-1.5, 4}, LR: 0.1, Steps: 200},
//	)
package descent

import (
	"github.com/regviz-ml/regviz/internal/descent"
	"github.com/regviz-ml/regviz/internal/loss"
)

// Surface is a differentiable two-weight function.
type Surface = descent.Surface

// Problem pairs a loss surface with a regularization penalty.
type Problem = descent.Problem

// Config holds the hyperparameters of a single descent run.
type Config = descent.Config

// Trajectory is the record of one descent run.
type Trajectory = descent.Trajectory

// Quadratic is an axis-aligned convex bowl loss.
type Quadratic = loss.Quadratic

// NewBowl returns the default demonstration bowl with minimum (3, 2).
func NewBowl() Quadratic {
	return loss.NewBowl()
}

// NewSparseBowl returns the sparsity-demonstration bowl with minimum
// (3, 0.15).
func NewSparseBowl() Quadratic {
	return loss.NewSparseBowl()
}

// Run performs gradient descent on the problem and returns the trajectory.
func Run(p Problem, cfg Config) (*Trajectory, error) {
	return descent.Run(p, cfg)
}
