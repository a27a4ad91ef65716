// Package descent runs gradient descent on a two-weight objective and
// records the trajectory for plotting.
//
// Each step rebuilds the objective graph on a cleared tape, backpropagates
// through it, and applies an SGD update:
//
//	problem := descent.Problem{Loss: loss.NewBowl(), Penalty: penalty.L2{Lambda: 1}}
//	traj, err := descent.Run(problem, descent.Config{
//	    Start: [2]float64{-1.5, 3.5},
//	    LR:    0.1,
//	    Steps: 200,
//	})
package descent

import (
	"fmt"
	"math"

	"github.com/regviz-ml/regviz/internal/autodiff"
	"github.com/regviz-ml/regviz/internal/optim"
	"github.com/regviz-ml/regviz/internal/penalty"
	"github.com/regviz-ml/regviz/internal/scalar"
)

// Surface is a differentiable two-weight function: the loss bowls implement
// it, and so does every penalty.
type Surface interface {
	Eval(w1, w2 float64) float64
	Forward(ctx *autodiff.Context, w1, w2 *scalar.Value) *scalar.Value
}

// Problem pairs a loss surface with a regularization penalty. A nil Penalty
// means unregularized descent.
type Problem struct {
	Loss    Surface
	Penalty penalty.Penalty
}

// Config holds the hyperparameters of a single descent run.
type Config struct {
	Start    [2]float64 // Initial weights
	LR       float64    // Learning rate, must be positive
	Momentum float64    // Momentum factor in [0, 1)
	Steps    int        // Number of gradient steps, at least 1
}

func (c Config) validate() error {
	if c.Steps < 1 {
		return fmt.Errorf("descent: steps must be at least 1, got %d", c.Steps)
	}
	if c.LR <= 0 {
		return fmt.Errorf("descent: learning rate must be positive, got %v", c.LR)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("descent: momentum must be in [0, 1), got %v", c.Momentum)
	}
	return nil
}

// Trajectory is the record of one descent run: the starting point plus one
// snapshot per step, and the penalized objective value at each point.
type Trajectory struct {
	Points [][2]float64 // len = Steps + 1
	Losses []float64    // Objective at the corresponding point
}

// Len returns the number of recorded points.
func (t *Trajectory) Len() int { return len(t.Points) }

// Final returns the last weight snapshot.
func (t *Trajectory) Final() [2]float64 {
	return t.Points[len(t.Points)-1]
}

// Weight returns the history of a single coordinate (0 or 1), one value per
// recorded point. Used by the sparsity trace plot.
func (t *Trajectory) Weight(i int) []float64 {
	history := make([]float64, len(t.Points))
	for j, p := range t.Points {
		history[j] = p[i]
	}
	return history
}

// Run performs gradient descent on the problem and returns the trajectory.
//
// The run aborts with an error if the objective or a weight becomes
// non-finite, which on these convex bowls only happens when the learning
// rate exceeds the stable step size.
func Run(p Problem, cfg Config) (*Trajectory, error) {
	if p.Loss == nil {
		return nil, fmt.Errorf("descent: problem has no loss surface")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	pen := p.Penalty
	if pen == nil {
		pen = penalty.None{}
	}

	ctx := autodiff.New()
	ctx.Tape().StartRecording()

	w1 := ctx.Variable("w1", cfg.Start[0])
	w2 := ctx.Variable("w2", cfg.Start[1])

	sgd := optim.NewSGD([]*scalar.Value{w1, w2}, optim.SGDConfig{
		LR:       cfg.LR,
		Momentum: cfg.Momentum,
	})

	objective := func(x, y float64) float64 {
		return p.Loss.Eval(x, y) + pen.Eval(x, y)
	}

	traj := &Trajectory{
		Points: make([][2]float64, 0, cfg.Steps+1),
		Losses: make([]float64, 0, cfg.Steps+1),
	}
	start := objective(cfg.Start[0], cfg.Start[1])
	if !isFinite(start) {
		return nil, fmt.Errorf("descent: objective is not finite at the starting point %v", cfg.Start)
	}
	traj.Points = append(traj.Points, cfg.Start)
	traj.Losses = append(traj.Losses, start)

	for step := 0; step < cfg.Steps; step++ {
		ctx.Tape().Clear()

		total := ctx.Add(pen.Forward(ctx, w1, w2), p.Loss.Forward(ctx, w1, w2))
		if !isFinite(total.Data()) {
			return nil, fmt.Errorf("descent: objective diverged at step %d (lr=%v)", step, cfg.LR)
		}

		grads := ctx.Backward(total)
		sgd.Step(grads)

		if !w1.IsFinite() || !w2.IsFinite() {
			return nil, fmt.Errorf("descent: weights diverged at step %d (lr=%v)", step, cfg.LR)
		}

		// The weights can stay finite while the objective overflows, so the
		// snapshot itself is checked before it is recorded. Without this the
		// last step of a run could return an Inf loss with a nil error.
		point := [2]float64{w1.Data(), w2.Data()}
		obj := objective(point[0], point[1])
		if !isFinite(obj) {
			return nil, fmt.Errorf("descent: objective diverged at step %d (lr=%v)", step, cfg.LR)
		}
		traj.Points = append(traj.Points, point)
		traj.Losses = append(traj.Losses, obj)
	}

	return traj, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
