package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regviz-ml/regviz/internal/grid"
	"github.com/regviz-ml/regviz/internal/parallel"
)

func paraboloid(x, y float64) float64 { return x*x + y*y }

func TestEvaluate_DimsAndAxes(t *testing.T) {
	win := grid.Window{XMin: -2, XMax: 2, YMin: -1, YMax: 3}
	g, err := grid.Evaluate(paraboloid, win, 5, 9, parallel.Sequential())
	require.NoError(t, err)

	c, r := g.Dims()
	assert.Equal(t, 5, c)
	assert.Equal(t, 9, r)

	// Axis endpoints and spacing.
	assert.Equal(t, -2.0, g.X(0))
	assert.Equal(t, 2.0, g.X(4))
	assert.InDelta(t, -1.0, g.X(1), 1e-12)
	assert.Equal(t, -1.0, g.Y(0))
	assert.Equal(t, 3.0, g.Y(8))
}

func TestEvaluate_Values(t *testing.T) {
	win := grid.Window{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	g, err := grid.Evaluate(paraboloid, win, 5, 5, parallel.Sequential())
	require.NoError(t, err)

	// Corners and center.
	assert.InDelta(t, 8.0, g.Z(0, 0), 1e-12)
	assert.InDelta(t, 8.0, g.Z(4, 4), 1e-12)
	assert.InDelta(t, 0.0, g.Z(2, 2), 1e-12)

	zmin, zmax := g.MinMax()
	assert.InDelta(t, 0.0, zmin, 1e-12)
	assert.InDelta(t, 8.0, zmax, 1e-12)
}

// TestEvaluate_ParallelMatchesSequential checks that the parallel fan-out
// fills exactly the same grid as the sequential loop.
func TestEvaluate_ParallelMatchesSequential(t *testing.T) {
	win := grid.Window{XMin: -3, XMax: 3, YMin: -3, YMax: 3}
	par := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}

	seq, err := grid.Evaluate(paraboloid, win, 64, 64, parallel.Sequential())
	require.NoError(t, err)
	conc, err := grid.Evaluate(paraboloid, win, 64, 64, par)
	require.NoError(t, err)

	for j := 0; j < 64; j++ {
		for i := 0; i < 64; i++ {
			assert.Equal(t, seq.Z(i, j), conc.Z(i, j), "cell (%d, %d)", i, j)
		}
	}
}

func TestEvaluate_Errors(t *testing.T) {
	ok := grid.Window{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	_, err := grid.Evaluate(paraboloid, grid.Window{XMin: 1, XMax: 0, YMin: 0, YMax: 1}, 4, 4, parallel.Sequential())
	assert.Error(t, err, "inverted window")

	_, err = grid.Evaluate(paraboloid, ok, 1, 4, parallel.Sequential())
	assert.Error(t, err, "nx too small")

	_, err = grid.Evaluate(paraboloid, ok, 4, 0, parallel.Sequential())
	assert.Error(t, err, "ny too small")
}

func TestLevels(t *testing.T) {
	win := grid.Window{XMin: -2, XMax: 2, YMin: -2, YMax: 2}
	g, err := grid.Evaluate(paraboloid, win, 21, 21, parallel.Sequential())
	require.NoError(t, err)

	levels := g.Levels(8)
	require.Len(t, levels, 8)

	zmin, zmax := g.MinMax()
	prev := zmin
	for _, l := range levels {
		assert.Greater(t, l, prev, "levels strictly increasing")
		assert.Less(t, l, zmax)
		prev = l
	}
}
