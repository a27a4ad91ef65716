package autodiff_test

import (
	"math"
	"testing"

	"github.com/regviz-ml/regviz/internal/autodiff"
)

func TestTape_NotRecording(t *testing.T) {
	ctx := autodiff.New()
	// Recording never started: forward values are computed but nothing is
	// taped, so Backward returns an empty map.
	w := ctx.Variable("w", 2)
	y := ctx.Square(w)

	if y.Data() != 4 {
		t.Errorf("forward value = %v, want 4", y.Data())
	}
	if ctx.Tape().NumOps() != 0 {
		t.Errorf("tape recorded %d ops while not recording", ctx.Tape().NumOps())
	}
	if grads := ctx.Backward(y); len(grads) != 0 {
		t.Errorf("Backward on empty tape returned %d gradients, want 0", len(grads))
	}
}

func TestTape_Clear(t *testing.T) {
	ctx := autodiff.New()
	tape := ctx.Tape()
	tape.StartRecording()

	w := ctx.Variable("w", 2)
	ctx.Square(w)
	if tape.NumOps() != 1 {
		t.Fatalf("NumOps = %d, want 1", tape.NumOps())
	}

	tape.Clear()
	if tape.NumOps() != 0 {
		t.Errorf("NumOps after Clear = %d, want 0", tape.NumOps())
	}
	if !tape.IsRecording() {
		t.Error("Clear should preserve recording state")
	}
}

func TestTape_GradientAccumulation(t *testing.T) {
	// y = w + w²: w feeds two operations, gradients must accumulate.
	ctx := autodiff.New()
	ctx.Tape().StartRecording()

	w := ctx.Variable("w", 3)
	y := ctx.Add(w, ctx.Square(w))
	grads := ctx.Backward(y)

	// dy/dw = 1 + 2w = 7
	if math.Abs(grads[w]-7) > 1e-12 {
		t.Errorf("accumulated gradient = %v, want 7", grads[w])
	}
}

func TestTape_StopRecording(t *testing.T) {
	ctx := autodiff.New()
	tape := ctx.Tape()
	tape.StartRecording()

	w := ctx.Variable("w", 2)
	ctx.Square(w)

	tape.StopRecording()
	ctx.Square(w)

	if tape.NumOps() != 1 {
		t.Errorf("NumOps = %d, want 1 (second op built while stopped)", tape.NumOps())
	}
}

func TestTape_OpForwardValues(t *testing.T) {
	ctx := autodiff.New()
	ctx.Tape().StartRecording()

	a := ctx.Variable("a", 5)
	b := ctx.Variable("b", -2)

	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"Add", ctx.Add(a, b).Data(), 3},
		{"Sub", ctx.Sub(a, b).Data(), 7},
		{"Mul", ctx.Mul(a, b).Data(), -10},
		{"Neg", ctx.Neg(b).Data(), 2},
		{"Scale", ctx.Scale(a, 3).Data(), 15},
		{"Square", ctx.Square(b).Data(), 4},
		{"Abs", ctx.Abs(b).Data(), 2},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s forward = %v, want %v", c.name, c.got, c.want)
		}
	}
}
