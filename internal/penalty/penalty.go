// Package penalty implements the regularization penalties overlaid on the
// loss surface and added to the descent objective.
//
// Each penalty exposes both a closed-form view (Eval, Grad) for contour
// grids and tests, and a Forward method that builds the same expression on
// the autodiff graph so the descent loop differentiates loss and penalty
// together.
package penalty

import (
	"math"

	"github.com/regviz-ml/regviz/internal/autodiff"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Penalty is a regularization term over a two-weight vector.
type Penalty interface {
	// Eval computes the penalty value at (w1, w2).
	Eval(w1, w2 float64) float64

	// Grad computes the (sub)gradient of the penalty at (w1, w2).
	Grad(w1, w2 float64) (g1, g2 float64)

	// Forward builds the penalty expression on the autodiff graph.
	Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value

	// Name identifies the penalty in legends, filenames, and exports.
	Name() string
}

// None is the absence of regularization.
type None struct{}

func (None) Eval(w1, w2 float64) float64            { return 0 }
func (None) Grad(w1, w2 float64) (float64, float64) { return 0, 0 }
func (None) Name() string                           { return "none" }

// Forward contributes a zero constant so the objective graph has the same
// shape with and without regularization.
func (None) Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value {
	return ctx.Const(0)
}

// L1 is the lasso penalty: Lambda * (|w1| + |w2|).
type L1 struct {
	Lambda float64
}

func (p L1) Eval(w1, w2 float64) float64 {
	return p.Lambda * (math.Abs(w1) + math.Abs(w2))
}

// Grad returns the subgradient, with 0 at a zero coordinate (matching the
// autodiff AbsOp).
func (p L1) Grad(w1, w2 float64) (float64, float64) {
	return p.Lambda * sign(w1), p.Lambda * sign(w2)
}

func (p L1) Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value {
	return ctx.Scale(ctx.Add(ctx.Abs(w1), ctx.Abs(w2)), p.Lambda)
}

func (p L1) Name() string { return "l1" }

// L2 is the ridge (Tikhonov) penalty: Lambda * (w1² + w2²).
type L2 struct {
	Lambda float64
}

func (p L2) Eval(w1, w2 float64) float64 {
	return p.Lambda * (w1*w1 + w2*w2)
}

func (p L2) Grad(w1, w2 float64) (float64, float64) {
	return 2 * p.Lambda * w1, 2 * p.Lambda * w2
}

func (p L2) Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value {
	return ctx.Scale(ctx.Add(ctx.Square(w1), ctx.Square(w2)), p.Lambda)
}

func (p L2) Name() string { return "l2" }

// ElasticNet combines an L1 and an L2 term with independent weights.
type ElasticNet struct {
	L1Lambda float64
	L2Lambda float64
}

func (p ElasticNet) Eval(w1, w2 float64) float64 {
	return L1{p.L1Lambda}.Eval(w1, w2) + L2{p.L2Lambda}.Eval(w1, w2)
}

func (p ElasticNet) Grad(w1, w2 float64) (float64, float64) {
	g1a, g2a := L1{p.L1Lambda}.Grad(w1, w2)
	g1b, g2b := L2{p.L2Lambda}.Grad(w1, w2)
	return g1a + g1b, g2a + g2b
}

func (p ElasticNet) Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value {
	return ctx.Add(
		L1{p.L1Lambda}.Forward(ctx, w1, w2),
		L2{p.L2Lambda}.Forward(ctx, w1, w2),
	)
}

func (p ElasticNet) Name() string { return "elastic_net" }

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
