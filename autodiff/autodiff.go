// Copyright 2025 The RegViz Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides the public API for reverse-mode automatic
// differentiation over scalar values.
//
// Example:
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
	"github.com/regviz-ml/regviz/internal/autodiff"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Value is a named scalar participating in automatic differentiation.
type Value = scalar.Value

// Context builds scalar expressions and records them on a gradient tape.
type Context = autodiff.Context

// Tape records operations during the forward pass and computes gradients
// during the backward pass.
type Tape = autodiff.Tape

// New creates a Context with an empty tape.
func New() *Context {
	return autodiff.New()
}

// NewTape creates a standalone gradient tape.
func NewTape() *Tape {
	return autodiff.NewTape()
}
