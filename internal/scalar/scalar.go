// Package scalar defines the scalar value node shared by the autodiff tape,
// the optimizer, and the descent loop.
//
// A Value is the scalar analogue of a tensor: leaves are created once and
// mutated in place by the optimizer, intermediates are created fresh on every
// forward pass. The autodiff tape keys gradients by *Value identity, so the
// same pointer must flow through graph construction, Backward, and the
// optimizer update.
package scalar

import "math"

// Value is a named scalar participating in automatic differentiation.
type Value struct {
	name string
	data float64
}

// New creates a scalar value. The name is used for diagnostics only and may
// be empty for intermediates.
func New(name string, x float64) *Value {
	return &Value{name: name, data: x}
}

// Name returns the diagnostic name of the value.
func (v *Value) Name() string { return v.name }

// Data returns the current scalar payload.
func (v *Value) Data() float64 { return v.data }

// Set overwrites the scalar payload in place. Used by optimizers so the
// graph built on the next forward pass sees the updated weight.
func (v *Value) Set(x float64) { v.data = x }

// IsFinite reports whether the payload is neither NaN nor infinite.
func (v *Value) IsFinite() bool {
	return !math.IsNaN(v.data) && !math.IsInf(v.data, 0)
}
