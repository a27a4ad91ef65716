package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
//
// Input payloads are read at backward time; the descent loop guarantees the
// backward pass runs before the optimizer mutates any leaf.
type MulOp struct {
	inputs []*scalar.Value // [a, b]
	output *scalar.Value   // a * b
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *scalar.Value) *MulOp {
	return &MulOp{
		inputs: []*scalar.Value{a, b},
		output: output,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp) Backward(outputGrad float64) []float64 {
	a, b := op.inputs[0], op.inputs[1]
	return []float64{outputGrad * b.Data(), outputGrad * a.Data()}
}

// Inputs returns the input values [a, b].
func (op *MulOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value a * b.
func (op *MulOp) Output() *scalar.Value { return op.output }
