package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// AbsOp represents the absolute value: output = |a|.
//
// At the kink a = 0 the subgradient set is [-1, 1]; we pick 0. Gradient
// descent still oscillates around the kink because finite steps overshoot
// it, not because the backward pass returns a discontinuous force at zero.
type AbsOp struct {
	inputs []*scalar.Value // [a]
	output *scalar.Value   // |a|
}

// NewAbsOp creates a new AbsOp.
func NewAbsOp(a, output *scalar.Value) *AbsOp {
	return &AbsOp{
		inputs: []*scalar.Value{a},
		output: output,
	}
}

// Backward computes the input subgradient: sign(a), with 0 at a = 0.
func (op *AbsOp) Backward(outputGrad float64) []float64 {
	a := op.inputs[0].Data()
	switch {
	case a > 0:
		return []float64{outputGrad}
	case a < 0:
		return []float64{-outputGrad}
	default:
		return []float64{0}
	}
}

// Inputs returns the input value [a].
func (op *AbsOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value |a|.
func (op *AbsOp) Output() *scalar.Value { return op.output }
