// Package ops defines the differentiable operations recorded by the gradient
// tape.
//
// Each operation captures its input and output values during the forward
// pass and computes input gradients during the backward pass:
//   - AddOp: a + b (d/da = 1, d/db = 1)
//   - SubOp: a - b (d/da = 1, d/db = -1)
//   - MulOp: a * b (d/da = b, d/db = a)
//   - NegOp: -a
//   - ScaleOp: k * a for a constant k
//   - SquareOp: a² (d/da = 2a)
//   - AbsOp: |a| (d/da = sign(a), subgradient 0 at a = 0)
package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass and
// computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for the inputs given the output gradient.
	// The returned slice is parallel to Inputs().
	Backward(outputGrad float64) []float64

	// Inputs returns the input values of this operation.
	Inputs() []*scalar.Value

	// Output returns the value produced by this operation.
	Output() *scalar.Value
}
