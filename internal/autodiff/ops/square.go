package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// SquareOp represents scalar squaring: output = a².
type SquareOp struct {
	inputs []*scalar.Value // [a]
	output *scalar.Value   // a²
}

// NewSquareOp creates a new SquareOp.
func NewSquareOp(a, output *scalar.Value) *SquareOp {
	return &SquareOp{
		inputs: []*scalar.Value{a},
		output: output,
	}
}

// Backward computes the input gradient for squaring: d(a²)/da = 2a.
//
// The gradient reads the input's current data, so the op must be replayed on
// a fresh tape after the parameter moves.
func (op *SquareOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * 2 * op.inputs[0].Data()}
}

// Inputs returns the input value [a].
func (op *SquareOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value a².
func (op *SquareOp) Output() *scalar.Value { return op.output }
