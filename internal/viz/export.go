package viz

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/regviz-ml/regviz/internal/descent"
	"github.com/regviz-ml/regviz/internal/grid"
)

// PlotType identifies the kind of plot a PlotData document describes.
type PlotType string

const (
	LossSurface       PlotType = "loss_surface"
	PenaltySurface    PlotType = "penalty_surface"
	DescentTrajectory PlotType = "descent_trajectory"
	SparsityTrace     PlotType = "sparsity_trace"
)

// PlotData is the JSON plot-spec consumed by external plotting dashboards.
// It carries the same series the renderer draws, so a notebook or sidecar
// service can re-render interactively.
type PlotData struct {
	PlotType  PlotType  `json:"plot_type"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`

	Series []SeriesData `json:"series"`
	Config PlotConfig   `json:"config"`

	Metrics map[string]interface{} `json:"metrics,omitempty"`
}

// SeriesData is a single data series in a plot.
type SeriesData struct {
	Name  string                 `json:"name"`
	Type  string                 `json:"type"` // "line", "scatter", "heatmap"
	Data  []DataPoint            `json:"data"`
	Style map[string]interface{} `json:"style,omitempty"`
}

// DataPoint is one sample in a series. Z is used by heatmap series only.
type DataPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// PlotConfig carries axis and layout settings.
type PlotConfig struct {
	XAxisLabel string `json:"x_axis_label"`
	YAxisLabel string `json:"y_axis_label"`
	ShowLegend bool   `json:"show_legend"`
	ShowGrid   bool   `json:"show_grid"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// NewPlotData creates a PlotData document with a fresh run ID and timestamp
// and the default square layout.
func NewPlotData(pt PlotType, title string) *PlotData {
	return &PlotData{
		PlotType:  pt,
		Title:     title,
		Timestamp: time.Now().UTC(),
		RunID:     uuid.NewString(),
		Config: PlotConfig{
			XAxisLabel: "w1",
			YAxisLabel: "w2",
			ShowLegend: true,
			ShowGrid:   true,
			Width:      800,
			Height:     800,
		},
	}
}

// AddTrajectory appends a descent trajectory as a line series.
func (d *PlotData) AddTrajectory(name string, t *descent.Trajectory) {
	data := make([]DataPoint, len(t.Points))
	for i, pt := range t.Points {
		data[i] = DataPoint{X: pt[0], Y: pt[1]}
	}
	d.Series = append(d.Series, SeriesData{Name: name, Type: "line", Data: data})
}

// AddTrace appends the history of one weight coordinate as a line series
// with the step index on the x axis.
func (d *PlotData) AddTrace(name string, t *descent.Trajectory, coord int) {
	history := t.Weight(coord)
	data := make([]DataPoint, len(history))
	for i, v := range history {
		data[i] = DataPoint{X: float64(i), Y: v}
	}
	d.Series = append(d.Series, SeriesData{Name: name, Type: "line", Data: data})
}

// AddGrid appends a dense grid as a heatmap series.
func (d *PlotData) AddGrid(name string, g *grid.Grid) {
	nx, ny := g.Dims()
	data := make([]DataPoint, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			z := g.Z(i, j)
			data = append(data, DataPoint{X: g.X(i), Y: g.Y(j), Z: &z})
		}
	}
	d.Series = append(d.Series, SeriesData{Name: name, Type: "heatmap", Data: data})
}

// SetMetric records a named metric (final weights, lambda values, ...).
func (d *PlotData) SetMetric(key string, value interface{}) {
	if d.Metrics == nil {
		d.Metrics = make(map[string]interface{})
	}
	d.Metrics[key] = value
}

// Write marshals the document as indented JSON to path.
func (d *PlotData) Write(path string) error {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("viz: marshaling plot data: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("viz: writing %s: %w", path, err)
	}
	return nil
}
