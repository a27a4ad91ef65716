// Package autodiff implements reverse-mode automatic differentiation over
// scalar values using a gradient tape.
//
// Architecture:
//   - Context: builds scalar expressions and records each operation
//   - Tape: records operations during the forward pass
//   - ops.Operation: each op (Add, Mul, Square, Abs, ...) implements its
//     backward pass
//   - Backward: walks the tape in reverse applying the chain rule
//
// Usage:
//
//	ctx := autodiff.New()
//	ctx.Tape().StartRecording()
//
//	w := ctx.Variable("w", 2.0)
//	y := ctx.Square(w) // y = w²
//
//	grads := ctx.Backward(y)
//	fmt.Println(grads[w]) // dy/dw = 2w = 4.0
package autodiff

import (
	"github.com/regviz-ml/regviz/internal/autodiff/ops"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Context builds scalar expressions and records them on a gradient tape.
//
// Leaves are created with Variable or Const; every other method performs the
// forward computation immediately and, while the tape is recording, appends
// the corresponding operation for the backward pass.
type Context struct {
	tape *Tape
}

// New creates a Context with an empty tape. Recording starts off; call
// Tape().StartRecording() before building expressions that need gradients.
func New() *Context {
	return &Context{tape: NewTape()}
}

// Tape returns the gradient tape for manual control: starting and stopping
// recording, clearing between iterations, inspecting recorded operations.
func (c *Context) Tape() *Tape { return c.tape }

// Variable creates a named leaf value. Leaves are never recorded; gradients
// reach them through the operations that consume them.
func (c *Context) Variable(name string, x float64) *scalar.Value {
	return scalar.New(name, x)
}

// Const creates an anonymous leaf. Constants receive gradients like any
// other leaf; callers simply ignore them.
func (c *Context) Const(x float64) *scalar.Value {
	return scalar.New("", x)
}

// Add computes a + b and records the operation.
func (c *Context) Add(a, b *scalar.Value) *scalar.Value {
	out := scalar.New("", a.Data()+b.Data())
	c.tape.Record(ops.NewAddOp(a, b, out))
	return out
}

// Sub computes a - b and records the operation.
func (c *Context) Sub(a, b *scalar.Value) *scalar.Value {
	out := scalar.New("", a.Data()-b.Data())
	c.tape.Record(ops.NewSubOp(a, b, out))
	return out
}

// Mul computes a * b and records the operation.
func (c *Context) Mul(a, b *scalar.Value) *scalar.Value {
	out := scalar.New("", a.Data()*b.Data())
	c.tape.Record(ops.NewMulOp(a, b, out))
	return out
}

// Neg computes -a and records the operation.
func (c *Context) Neg(a *scalar.Value) *scalar.Value {
	out := scalar.New("", -a.Data())
	c.tape.Record(ops.NewNegOp(a, out))
	return out
}

// Scale computes k * a for a constant k and records the operation.
// No gradient flows to k.
func (c *Context) Scale(a *scalar.Value, k float64) *scalar.Value {
	out := scalar.New("", k*a.Data())
	c.tape.Record(ops.NewScaleOp(a, k, out))
	return out
}

// Square computes a² and records the operation.
func (c *Context) Square(a *scalar.Value) *scalar.Value {
	out := scalar.New("", a.Data()*a.Data())
	c.tape.Record(ops.NewSquareOp(a, out))
	return out
}

// Abs computes |a| and records the operation. The backward pass uses the
// subgradient, with 0 at a = 0.
func (c *Context) Abs(a *scalar.Value) *scalar.Value {
	x := a.Data()
	if x < 0 {
		x = -x
	}
	out := scalar.New("", x)
	c.tape.Record(ops.NewAbsOp(a, out))
	return out
}

// Backward computes gradients of output with respect to every value on the
// tape. Shorthand for Tape().Backward(output).
func (c *Context) Backward(output *scalar.Value) map[*scalar.Value]float64 {
	return c.tape.Backward(output)
}
