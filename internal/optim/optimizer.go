// Package optim implements gradient-based parameter updates for the descent
// demonstrations.
//
// This package provides:
//   - Optimizer interface: base interface for parameter updaters
//   - SGD: gradient descent with optional momentum
//
// Example usage:
//
//	optimizer := optim.NewSGD([]*scalar.Value{w1, w2}, optim.SGDConfig{
//	    LR: 0.1,
//	})
//
//	for step := 0; step < steps; step++ {
//	    ctx.Tape().Clear()
//	    total := objective(ctx, w1, w2)
//	    grads := ctx.Backward(total)
//	    optimizer.Step(grads)
//	}
package optim

import "github.com/regviz-ml/regviz/internal/scalar"

// Optimizer is the base interface for parameter update algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// Takes the gradient map from Backward. Parameters absent from the map
	// (not part of the computation graph) are skipped.
	Step(grads map[*scalar.Value]float64)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float64)
}
