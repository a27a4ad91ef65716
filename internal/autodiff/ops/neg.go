package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// NegOp represents scalar negation: output = -a.
type NegOp struct {
	inputs []*scalar.Value // [a]
	output *scalar.Value   // -a
}

// NewNegOp creates a new NegOp.
func NewNegOp(a, output *scalar.Value) *NegOp {
	return &NegOp{
		inputs: []*scalar.Value{a},
		output: output,
	}
}

// Backward computes the input gradient for negation: d(-a)/da = -1.
func (op *NegOp) Backward(outputGrad float64) []float64 {
	return []float64{-outputGrad}
}

// Inputs returns the input value [a].
func (op *NegOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value -a.
func (op *NegOp) Output() *scalar.Value { return op.output }
