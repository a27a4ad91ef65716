// Package loss defines the toy convex loss surfaces the demonstrations
// descend on.
package loss

import (
	"fmt"

	"github.com/regviz-ml/regviz/internal/autodiff"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Quadratic is an axis-aligned convex bowl:
//
//	L(w1, w2) = AX*(w1-CX)² + AY*(w2-CY)²
//
// Its unique minimum is (CX, CY). AX and AY control the curvature along each
// axis; unequal values give elliptic contours.
type Quadratic struct {
	CX, CY float64 // Minimum location
	AX, AY float64 // Per-axis curvature, must be positive
}

// NewBowl returns the default demonstration bowl: minimum at (3, 2) with
// elliptic contours (steeper along w2).
func NewBowl() Quadratic {
	return Quadratic{CX: 3, CY: 2, AX: 1, AY: 2}
}

// NewSparseBowl returns the bowl used by the sparsity demonstration: the
// unregularized optimum of w2 sits near zero at (3, 0.15), so an L1 penalty
// of modest weight drags the iterate across the kink.
func NewSparseBowl() Quadratic {
	return Quadratic{CX: 3, CY: 0.15, AX: 1, AY: 1}
}

// Validate checks that the bowl is convex.
func (q Quadratic) Validate() error {
	if q.AX <= 0 || q.AY <= 0 {
		return fmt.Errorf("loss: curvatures must be positive, got ax=%v ay=%v", q.AX, q.AY)
	}
	return nil
}

// Eval computes the loss at (w1, w2).
func (q Quadratic) Eval(w1, w2 float64) float64 {
	dx := w1 - q.CX
	dy := w2 - q.CY
	return q.AX*dx*dx + q.AY*dy*dy
}

// Grad computes the closed-form gradient at (w1, w2). Used by tests to check
// the autodiff graph and by callers that only need numbers, not a graph.
func (q Quadratic) Grad(w1, w2 float64) (g1, g2 float64) {
	return 2 * q.AX * (w1 - q.CX), 2 * q.AY * (w2 - q.CY)
}

// Minimum returns the analytic minimizer (CX, CY).
func (q Quadratic) Minimum() (w1, w2 float64) {
	return q.CX, q.CY
}

// Forward builds the loss expression on the autodiff graph so gradients flow
// back to the weight leaves.
func (q Quadratic) Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value {
	dx := ctx.Sub(w1, ctx.Const(q.CX))
	dy := ctx.Sub(w2, ctx.Const(q.CY))
	return ctx.Add(
		ctx.Scale(ctx.Square(dx), q.AX),
		ctx.Scale(ctx.Square(dy), q.AY),
	)
}
