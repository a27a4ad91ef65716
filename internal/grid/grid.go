// Package grid evaluates two-weight functions over dense rectangular grids
// for contour rendering.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/regviz-ml/regviz/internal/parallel"
)

// Window is the axis-aligned region of weight space covered by a grid.
type Window struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Validate checks that the window is non-empty.
func (w Window) Validate() error {
	if w.XMin >= w.XMax || w.YMin >= w.YMax {
		return fmt.Errorf("grid: window [%v,%v]x[%v,%v] is empty or inverted",
			w.XMin, w.XMax, w.YMin, w.YMax)
	}
	return nil
}

// Grid is a dense evaluation of a function over a window. Values live in a
// row-major ny×nx matrix: row j holds the values for y = ys[j].
//
// Grid satisfies the column/row accessor shape contour renderers expect:
// Dims, X(i), Y(j), Z(i, j).
type Grid struct {
	xs []float64
	ys []float64
	z  *mat.Dense // ny rows, nx columns
}

// Evaluate computes f over an nx×ny grid spanning the window. Rows are
// fanned out through the parallel helper; f must therefore be safe for
// concurrent calls (the loss and penalty types are plain values).
func Evaluate(f func(x, y float64) float64, win Window, nx, ny int, cfg parallel.Config) (*Grid, error) {
	if err := win.Validate(); err != nil {
		return nil, err
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("grid: resolution must be at least 2x2, got %dx%d", nx, ny)
	}

	xs := make([]float64, nx)
	ys := make([]float64, ny)
	floats.Span(xs, win.XMin, win.XMax)
	floats.Span(ys, win.YMin, win.YMax)

	z := mat.NewDense(ny, nx, nil)
	parallel.ForRows(ny, nx, func(j, i int) {
		z.Set(j, i, f(xs[i], ys[j]))
	}, cfg)

	return &Grid{xs: xs, ys: ys, z: z}, nil
}

// Dims returns the number of columns and rows.
func (g *Grid) Dims() (c, r int) { return len(g.xs), len(g.ys) }

// X returns the x coordinate of column i.
func (g *Grid) X(i int) float64 { return g.xs[i] }

// Y returns the y coordinate of row j.
func (g *Grid) Y(j int) float64 { return g.ys[j] }

// Z returns the value at column i, row j.
func (g *Grid) Z(i, j int) float64 { return g.z.At(j, i) }

// MinMax returns the smallest and largest values on the grid.
func (g *Grid) MinMax() (zmin, zmax float64) {
	zmin = math.Inf(1)
	zmax = math.Inf(-1)
	r, c := g.z.Dims()
	for j := 0; j < r; j++ {
		for i := 0; i < c; i++ {
			v := g.z.At(j, i)
			zmin = math.Min(zmin, v)
			zmax = math.Max(zmax, v)
		}
	}
	return zmin, zmax
}

// Levels returns n contour levels spaced quadratically between the grid's
// min and max. Quadratic spacing concentrates levels near the bowl floor,
// where the interesting geometry is.
func (g *Grid) Levels(n int) []float64 {
	zmin, zmax := g.MinMax()
	levels := make([]float64, n)
	for k := 0; k < n; k++ {
		t := float64(k+1) / float64(n+1)
		levels[k] = zmin + (zmax-zmin)*t*t
	}
	return levels
}
