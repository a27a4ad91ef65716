package ops

import "github.com/regviz-ml/regviz/internal/scalar"

// ScaleOp represents multiplication by a constant: output = k * a.
//
// The constant is not a graph node, so no gradient flows to it. This keeps
// penalty weights (lambda) and loss curvatures out of the gradient map.
type ScaleOp struct {
	inputs []*scalar.Value // [a]
	output *scalar.Value   // k * a
	k      float64
}

// NewScaleOp creates a new ScaleOp.
func NewScaleOp(a *scalar.Value, k float64, output *scalar.Value) *ScaleOp {
	return &ScaleOp{
		inputs: []*scalar.Value{a},
		output: output,
		k:      k,
	}
}

// Backward computes the input gradient: d(k*a)/da = k.
func (op *ScaleOp) Backward(outputGrad float64) []float64 {
	return []float64{outputGrad * op.k}
}

// Inputs returns the input value [a].
func (op *ScaleOp) Inputs() []*scalar.Value { return op.inputs }

// Output returns the output value k * a.
func (op *ScaleOp) Output() *scalar.Value { return op.output }
