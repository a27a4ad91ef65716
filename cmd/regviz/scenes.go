package main

import (
	"fmt"
	"path/filepath"

	"github.com/regviz-ml/regviz/internal/config"
	"github.com/regviz-ml/regviz/internal/descent"
	"github.com/regviz-ml/regviz/internal/grid"
	"github.com/regviz-ml/regviz/internal/parallel"
	"github.com/regviz-ml/regviz/internal/penalty"
	"github.com/regviz-ml/regviz/internal/viz"
)

func parallelConfig(cfg *config.Config) parallel.Config {
	if cfg.Parallel {
		return parallel.DefaultConfig()
	}
	return parallel.Sequential()
}

func outPath(cfg *config.Config, name, ext string) string {
	return filepath.Join(cfg.OutDir, name+"."+ext)
}

// sceneSurface draws the loss contour with L1 and L2 unit-ball overlays, the
// first "cell" of the demonstration.
func sceneSurface(cfg *config.Config) error {
	bowl := cfg.Bowl.Quadratic()
	win := cfg.Surface.Window()
	par := parallelConfig(cfg)

	lossGrid, err := grid.Evaluate(bowl.Eval, win, cfg.Surface.NX, cfg.Surface.NY, par)
	if err != nil {
		return err
	}
	l1Grid, err := grid.Evaluate(penalty.L1{Lambda: 1}.Eval, win, cfg.Surface.NX, cfg.Surface.NY, par)
	if err != nil {
		return err
	}
	l2Grid, err := grid.Evaluate(penalty.L2{Lambda: 1}.Eval, win, cfg.Surface.NX, cfg.Surface.NY, par)
	if err != nil {
		return err
	}

	overlays := []viz.Overlay{
		{Name: "l1 ball", Grid: l1Grid, Levels: []float64{1, 2, 3}},
		{Name: "l2 ball", Grid: l2Grid, Levels: []float64{1, 4, 9}},
	}
	p, err := viz.ContourPlot("Loss surface with L1/L2 penalty balls", lossGrid, overlays)
	if err != nil {
		return err
	}
	img := outPath(cfg, "loss_surface", cfg.Format)
	if err := viz.Save(p, img); err != nil {
		return err
	}
	fmt.Printf("surface: wrote %s\n", img)

	export := viz.NewPlotData(viz.LossSurface, "Loss surface with L1/L2 penalty balls")
	export.AddGrid("loss", lossGrid)
	minX, minY := bowl.Minimum()
	export.SetMetric("minimum", []float64{minX, minY})
	spec := outPath(cfg, "loss_surface", "json")
	if err := export.Write(spec); err != nil {
		return err
	}
	fmt.Printf("surface: wrote %s\n", spec)

	penExport := viz.NewPlotData(viz.PenaltySurface, "L1/L2 penalty surfaces")
	penExport.AddGrid("l1", l1Grid)
	penExport.AddGrid("l2", l2Grid)
	spec = outPath(cfg, "penalty_surface", "json")
	if err := penExport.Write(spec); err != nil {
		return err
	}
	fmt.Printf("surface: wrote %s\n", spec)
	return nil
}

// sceneDescend runs the configured descents and draws their trajectories on
// the loss contour.
func sceneDescend(cfg *config.Config) error {
	bowl := cfg.Bowl.Quadratic()
	win := cfg.Surface.Window()

	lossGrid, err := grid.Evaluate(bowl.Eval, win, cfg.Surface.NX, cfg.Surface.NY, parallelConfig(cfg))
	if err != nil {
		return err
	}

	export := viz.NewPlotData(viz.DescentTrajectory, "Gradient descent with and without regularization")
	series := make([]viz.TrajectorySeries, 0, len(cfg.Runs))
	for _, run := range cfg.Runs {
		pen, err := run.Build()
		if err != nil {
			return err
		}
		traj, err := descent.Run(
			descent.Problem{Loss: bowl, Penalty: pen},
			descent.Config{Start: run.Start, LR: run.LR, Momentum: run.Momentum, Steps: run.Steps},
		)
		if err != nil {
			return fmt.Errorf("run %q: %w", run.Name, err)
		}
		final := traj.Final()
		fmt.Printf("descend: %-16s -> (%.4f, %.4f) after %d steps\n",
			run.Name, final[0], final[1], run.Steps)

		series = append(series, viz.TrajectorySeries{Name: run.Name, Trajectory: traj})
		export.AddTrajectory(run.Name, traj)
		export.SetMetric("final."+run.Name, []float64{final[0], final[1]})
	}

	minX, minY := bowl.Minimum()
	p, err := viz.TrajectoryPlot("Descent trajectories", lossGrid, [2]float64{minX, minY}, series)
	if err != nil {
		return err
	}
	img := outPath(cfg, "trajectories", cfg.Format)
	if err := viz.Save(p, img); err != nil {
		return err
	}
	fmt.Printf("descend: wrote %s\n", img)

	spec := outPath(cfg, "trajectories", "json")
	if err := export.Write(spec); err != nil {
		return err
	}
	fmt.Printf("descend: wrote %s\n", spec)
	return nil
}

// sceneSparsity sweeps the L1 weight on the sparse bowl and traces the
// near-zero coordinate: larger lambdas pull it toward zero, and past the
// critical weight the iterate oscillates around the kink instead of
// settling.
func sceneSparsity(cfg *config.Config) error {
	bowl := cfg.Sparse.Quadratic()
	win := cfg.Surface.Window()

	lossGrid, err := grid.Evaluate(bowl.Eval, win, cfg.Surface.NX, cfg.Surface.NY, parallelConfig(cfg))
	if err != nil {
		return err
	}

	export := viz.NewPlotData(viz.SparsityTrace, "L1 sweep on a near-zero coordinate")
	series := make([]viz.TrajectorySeries, 0, len(cfg.Sparsity.Lambdas))
	for _, lambda := range cfg.Sparsity.Lambdas {
		traj, err := descent.Run(
			descent.Problem{Loss: bowl, Penalty: penalty.L1{Lambda: lambda}},
			descent.Config{
				Start: cfg.Sparsity.Start,
				LR:    cfg.Sparsity.LR,
				Steps: cfg.Sparsity.Steps,
			},
		)
		if err != nil {
			return fmt.Errorf("lambda %v: %w", lambda, err)
		}
		name := fmt.Sprintf("λ=%g", lambda)
		final := traj.Final()
		fmt.Printf("sparsity: %-8s -> w2 = %+.4f\n", name, final[1])

		series = append(series, viz.TrajectorySeries{Name: name, Trajectory: traj})
		export.AddTrace(name, traj, 1)
		export.SetMetric("final_w2."+name, final[1])
	}

	minX, minY := bowl.Minimum()
	p, err := viz.TrajectoryPlot("L1 trajectories on the sparse bowl", lossGrid, [2]float64{minX, minY}, series)
	if err != nil {
		return err
	}
	img := outPath(cfg, "sparsity_trajectories", cfg.Format)
	if err := viz.Save(p, img); err != nil {
		return err
	}
	fmt.Printf("sparsity: wrote %s\n", img)

	trace, err := viz.TracePlot("w2 under increasing L1 weight", "w2", series, 1)
	if err != nil {
		return err
	}
	img = outPath(cfg, "sparsity_trace", cfg.Format)
	if err := viz.Save(trace, img); err != nil {
		return err
	}
	fmt.Printf("sparsity: wrote %s\n", img)

	spec := outPath(cfg, "sparsity_trace", "json")
	if err := export.Write(spec); err != nil {
		return err
	}
	fmt.Printf("sparsity: wrote %s\n", spec)
	return nil
}

// sceneAll runs the whole demonstration top to bottom.
func sceneAll(cfg *config.Config) error {
	if err := sceneSurface(cfg); err != nil {
		return err
	}
	if err := sceneDescend(cfg); err != nil {
		return err
	}
	return sceneSparsity(cfg)
}
