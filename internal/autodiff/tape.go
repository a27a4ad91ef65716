package autodiff

import (
	"github.com/regviz-ml/regviz/internal/autodiff/ops"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Tape records operations during the forward pass and computes gradients
// during the backward pass using reverse-mode automatic differentiation.
//
// Usage:
//
//	tape := NewTape()
//	tape.StartRecording()
//	// ... build expressions through a Context ...
//	grads := tape.Backward(output)
type Tape struct {
	operations []ops.Operation // Recorded operations (in execution order)
	recording  bool            // Whether the tape is currently recording
}

// NewTape creates a new gradient tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 16), // A step graph is a handful of ops
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() { t.recording = true }

// StopRecording disables operation recording.
func (t *Tape) StopRecording() { t.recording = false }

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool { return t.recording }

// Record adds an operation to the tape. Only records if the tape is
// currently recording.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations. Recording state
// is preserved; the descent loop calls Clear at the top of every step.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int { return len(t.operations) }

// Backward computes gradients of output with respect to every value that
// contributed to it, by walking the tape in reverse.
//
// Algorithm:
//  1. Seed d(output)/d(output) = 1
//  2. Walk operations in reverse order
//  3. For each operation whose output has a gradient, apply the chain rule
//  4. Accumulate gradients when the same value feeds multiple operations
//
// Returns a map from value to accumulated gradient. The map is empty if the
// tape recorded nothing.
func (t *Tape) Backward(output *scalar.Value) map[*scalar.Value]float64 {
	grads := make(map[*scalar.Value]float64)
	if len(t.operations) == 0 {
		return grads
	}

	grads[output] = 1

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outGrad, ok := grads[op.Output()]
		if !ok {
			// No gradient flows through this operation.
			continue
		}
		inputGrads := op.Backward(outGrad)
		for j, input := range op.Inputs() {
			if j >= len(inputGrads) {
				break
			}
			grads[input] += inputGrads[j]
		}
	}

	return grads
}
