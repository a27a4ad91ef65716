package autodiff_test

import (
	"math"
	"testing"

	"github.com/regviz-ml/regviz/internal/autodiff"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// numericalGradient computes the central finite-difference gradient of f
// at x.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// checkGradient compares the tape gradient of a single-variable expression
// against finite differences at the given points.
func checkGradient(t *testing.T, name string,
	build func(ctx *autodiff.Context, w *scalar.Value) *scalar.Value,
	eval func(float64) float64,
	points []float64,
) {
	t.Helper()
	for _, x := range points {
		ctx := autodiff.New()
		ctx.Tape().StartRecording()

		w := ctx.Variable("w", x)
		out := build(ctx, w)
		grads := ctx.Backward(out)

		want := numericalGradient(eval, x, 1e-6)
		got := grads[w]
		if math.Abs(got-want) > 1e-4 {
			t.Errorf("%s at x=%v: autodiff gradient = %v, numerical = %v", name, x, got, want)
		}
	}
}

func TestGradientCheck_Square(t *testing.T) {
	checkGradient(t, "x²",
		func(ctx *autodiff.Context, w *scalar.Value) *scalar.Value {
			return ctx.Square(w)
		},
		func(x float64) float64 { return x * x },
		[]float64{-3, -0.5, 0.25, 2, 7},
	)
}

func TestGradientCheck_Abs(t *testing.T) {
	// Stay away from the kink; the subgradient there is checked separately.
	checkGradient(t, "|x|",
		func(ctx *autodiff.Context, w *scalar.Value) *scalar.Value {
			return ctx.Abs(w)
		},
		math.Abs,
		[]float64{-2, -0.1, 0.1, 3},
	)
}

func TestGradientCheck_ShiftedSquare(t *testing.T) {
	// 2*(x-3)², the building block of the bowl loss.
	checkGradient(t, "2(x-3)²",
		func(ctx *autodiff.Context, w *scalar.Value) *scalar.Value {
			return ctx.Scale(ctx.Square(ctx.Sub(w, ctx.Const(3))), 2)
		},
		func(x float64) float64 { return 2 * (x - 3) * (x - 3) },
		[]float64{-1, 0, 2.5, 3, 5},
	)
}

func TestGradientCheck_PenalizedObjective(t *testing.T) {
	// (x-3)² + 0.5*|x|, the shape of a single coordinate of an L1-penalized
	// bowl.
	checkGradient(t, "(x-3)²+0.5|x|",
		func(ctx *autodiff.Context, w *scalar.Value) *scalar.Value {
			bowl := ctx.Square(ctx.Sub(w, ctx.Const(3)))
			return ctx.Add(bowl, ctx.Scale(ctx.Abs(w), 0.5))
		},
		func(x float64) float64 { return (x-3)*(x-3) + 0.5*math.Abs(x) },
		[]float64{-2, -0.3, 0.4, 1, 6},
	)
}

func TestGradientCheck_TwoVariables(t *testing.T) {
	// L(a, b) = a*b + a², grad_a = b + 2a, grad_b = a.
	ctx := autodiff.New()
	ctx.Tape().StartRecording()

	a := ctx.Variable("a", 2)
	b := ctx.Variable("b", -3)
	out := ctx.Add(ctx.Mul(a, b), ctx.Square(a))
	grads := ctx.Backward(out)

	if math.Abs(grads[a]-1) > 1e-12 {
		t.Errorf("grad_a = %v, want 1", grads[a])
	}
	if math.Abs(grads[b]-2) > 1e-12 {
		t.Errorf("grad_b = %v, want 2", grads[b])
	}
}

func TestGradientCheck_AbsSubgradientAtZero(t *testing.T) {
	ctx := autodiff.New()
	ctx.Tape().StartRecording()

	w := ctx.Variable("w", 0)
	out := ctx.Abs(w)
	grads := ctx.Backward(out)

	if grads[w] != 0 {
		t.Errorf("subgradient of |x| at 0 = %v, want 0", grads[w])
	}
}
