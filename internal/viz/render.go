// Package viz renders contour diagrams and trajectory overlays, and exports
// the same data as plot-spec JSON for external dashboards.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/regviz-ml/regviz/internal/descent"
	"github.com/regviz-ml/regviz/internal/grid"
)

// DefaultSize is the rendered edge length of square plots.
const DefaultSize = 6 * vg.Inch

// Overlay is an extra contour layer drawn on top of the loss surface,
// typically the constant-penalty balls of an L1 or L2 regularizer.
type Overlay struct {
	Name   string
	Grid   *grid.Grid
	Levels []float64
}

// TrajectorySeries is one descent run to draw on a contour diagram.
type TrajectorySeries struct {
	Name       string
	Trajectory *descent.Trajectory
}

// ContourPlot renders a filled-level contour of the loss grid with optional
// penalty-ball overlays.
func ContourPlot(title string, lossGrid *grid.Grid, overlays []Overlay) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "w1"
	p.Y.Label.Text = "w2"

	lossLevels := lossGrid.Levels(12)
	p.Add(plotter.NewContour(lossGrid, lossLevels, palette.Heat(len(lossLevels), 1)))

	for _, ov := range overlays {
		levels := ov.Levels
		if len(levels) == 0 {
			levels = ov.Grid.Levels(4)
		}
		c := plotter.NewContour(ov.Grid, levels,
			palette.Rainbow(len(levels), palette.Blue, palette.Cyan, 1, 1, 1))
		p.Add(c)
	}

	return p, nil
}

// TrajectoryPlot renders descent trajectories over the loss contour, with a
// start marker per run and a cross on the analytic minimum.
func TrajectoryPlot(title string, lossGrid *grid.Grid, minimum [2]float64, runs []TrajectorySeries) (*plot.Plot, error) {
	p, err := ContourPlot(title, lossGrid, nil)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, 2*len(runs))
	for _, run := range runs {
		args = append(args, run.Name, trajectoryXYs(run.Trajectory))
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return nil, fmt.Errorf("viz: adding trajectories: %w", err)
	}

	for _, run := range runs {
		start, err := marker(run.Trajectory.Points[0], draw.PyramidGlyph{}, color.Black)
		if err != nil {
			return nil, err
		}
		p.Add(start)
	}

	min, err := marker(minimum, draw.CrossGlyph{}, color.Black)
	if err != nil {
		return nil, err
	}
	p.Add(min)
	p.Legend.Top = true

	return p, nil
}

// TracePlot renders one weight coordinate against the step index for each
// run, with a horizontal zero line. Used by the sparsity demonstration to
// show the L1 iterate oscillating around zero.
func TracePlot(title, weightLabel string, runs []TrajectorySeries, coord int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "step"
	p.Y.Label.Text = weightLabel

	maxLen := 0
	args := make([]interface{}, 0, 2*len(runs))
	for _, run := range runs {
		history := run.Trajectory.Weight(coord)
		if len(history) > maxLen {
			maxLen = len(history)
		}
		xys := make(plotter.XYs, len(history))
		for i, v := range history {
			xys[i].X = float64(i)
			xys[i].Y = v
		}
		args = append(args, run.Name, xys)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, fmt.Errorf("viz: adding traces: %w", err)
	}

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: float64(maxLen - 1), Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("viz: zero line: %w", err)
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zero)
	p.Legend.Top = true

	return p, nil
}

// Save writes the plot to path; the extension selects the format (.png,
// .svg, .pdf).
func Save(p *plot.Plot, path string) error {
	if err := p.Save(DefaultSize, DefaultSize, path); err != nil {
		return fmt.Errorf("viz: saving %s: %w", path, err)
	}
	return nil
}

func trajectoryXYs(t *descent.Trajectory) plotter.XYs {
	xys := make(plotter.XYs, len(t.Points))
	for i, pt := range t.Points {
		xys[i].X = pt[0]
		xys[i].Y = pt[1]
	}
	return xys
}

func marker(pt [2]float64, shape draw.GlyphDrawer, c color.Color) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(plotter.XYs{{X: pt[0], Y: pt[1]}})
	if err != nil {
		return nil, fmt.Errorf("viz: marker: %w", err)
	}
	s.GlyphStyle.Shape = shape
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(5)
	return s, nil
}
