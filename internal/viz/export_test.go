package viz_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regviz-ml/regviz/internal/descent"
	"github.com/regviz-ml/regviz/internal/grid"
	"github.com/regviz-ml/regviz/internal/loss"
	"github.com/regviz-ml/regviz/internal/parallel"
	"github.com/regviz-ml/regviz/internal/viz"
)

func shortRun(t *testing.T) *descent.Trajectory {
	t.Helper()
	traj, err := descent.Run(
		descent.Problem{Loss: loss.NewBowl()},
		descent.Config{Start: [2]float64{-1, 3}, LR: 0.1, Steps: 20},
	)
	require.NoError(t, err)
	return traj
}

func TestNewPlotData(t *testing.T) {
	d := viz.NewPlotData(viz.DescentTrajectory, "test")

	assert.Equal(t, viz.DescentTrajectory, d.PlotType)
	assert.Equal(t, "test", d.Title)
	assert.False(t, d.Timestamp.IsZero())
	_, err := uuid.Parse(d.RunID)
	assert.NoError(t, err, "RunID should be a valid uuid")
	assert.True(t, d.Config.ShowLegend)
}

func TestPlotData_AddSeries(t *testing.T) {
	traj := shortRun(t)
	d := viz.NewPlotData(viz.DescentTrajectory, "test")

	d.AddTrajectory("run", traj)
	require.Len(t, d.Series, 1)
	assert.Equal(t, "line", d.Series[0].Type)
	assert.Len(t, d.Series[0].Data, traj.Len())
	assert.Equal(t, traj.Points[0][0], d.Series[0].Data[0].X)
	assert.Equal(t, traj.Points[0][1], d.Series[0].Data[0].Y)

	d.AddTrace("w2", traj, 1)
	require.Len(t, d.Series, 2)
	assert.Equal(t, 0.0, d.Series[1].Data[0].X, "trace x axis is the step index")
	assert.Equal(t, traj.Points[0][1], d.Series[1].Data[0].Y)

	g, err := grid.Evaluate(func(x, y float64) float64 { return x + y },
		grid.Window{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, 3, 4, parallel.Sequential())
	require.NoError(t, err)
	d.AddGrid("loss", g)
	require.Len(t, d.Series, 3)
	assert.Equal(t, "heatmap", d.Series[2].Type)
	assert.Len(t, d.Series[2].Data, 12)
	require.NotNil(t, d.Series[2].Data[0].Z)
}

func TestPlotData_WriteRoundTrip(t *testing.T) {
	traj := shortRun(t)
	d := viz.NewPlotData(viz.SparsityTrace, "sparsity")
	d.AddTrace("λ=4", traj, 1)
	d.SetMetric("final_w2", traj.Final()[1])

	path := filepath.Join(t.TempDir(), "sparsity.json")
	require.NoError(t, d.Write(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var back viz.PlotData
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.PlotType, back.PlotType)
	assert.Equal(t, d.RunID, back.RunID)
	require.Len(t, back.Series, 1)
	assert.Len(t, back.Series[0].Data, traj.Len())
	assert.Contains(t, back.Metrics, "final_w2")
}
