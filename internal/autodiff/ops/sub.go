package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// SubOp represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct {
	inputs []*scalar.Value // [a, b]
	output *scalar.Value   // a - b
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *scalar.Value) *SubOp {
	return &SubOp{
		inputs: []*scalar.Value{a, b},
		output: output,
	}
}

// Backward computes input gradients for subtraction.
func (op *SubOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad, -outputGrad}
}

// Inputs returns the input values [a, b].
func (op *SubOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value a - b.
func (op *SubOp) Output() *scalar.Value { return op.output }
