// Package config defines the YAML scene file that drives the CLI: the
// surface window and resolution, the loss bowls, and the descent runs to
// draw.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/regviz-ml/regviz/internal/grid"
	"github.com/regviz-ml/regviz/internal/loss"
	"github.com/regviz-ml/regviz/internal/penalty"
)

// Penalty kinds accepted in run definitions.
const (
	PenaltyNone    = "none"
	PenaltyL1      = "l1"
	PenaltyL2      = "l2"
	PenaltyElastic = "elastic_net"
)

// Run describes one descent run to draw on the trajectory diagram.
type Run struct {
	Name     string     `yaml:"name"`
	Penalty  string     `yaml:"penalty"` // none | l1 | l2 | elastic_net
	Lambda   float64    `yaml:"lambda"`
	L2Lambda float64    `yaml:"l2_lambda"` // elastic_net only
	LR       float64    `yaml:"lr"`
	Momentum float64    `yaml:"momentum"`
	Steps    int        `yaml:"steps"`
	Start    [2]float64 `yaml:"start"`
}

// Build constructs the penalty the run asks for.
func (r Run) Build() (penalty.Penalty, error) {
	switch r.Penalty {
	case PenaltyNone, "":
		return penalty.None{}, nil
	case PenaltyL1:
		return penalty.L1{Lambda: r.Lambda}, nil
	case PenaltyL2:
		return penalty.L2{Lambda: r.Lambda}, nil
	case PenaltyElastic:
		return penalty.ElasticNet{L1Lambda: r.Lambda, L2Lambda: r.L2Lambda}, nil
	default:
		return nil, fmt.Errorf("config: unknown penalty kind %q", r.Penalty)
	}
}

// Surface describes the plotted region and its grid resolution.
type Surface struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	NX   int     `yaml:"nx"`
	NY   int     `yaml:"ny"`
}

// Window converts the surface section to a grid window.
func (s Surface) Window() grid.Window {
	return grid.Window{XMin: s.XMin, XMax: s.XMax, YMin: s.YMin, YMax: s.YMax}
}

// Bowl describes a quadratic loss in the scene file.
type Bowl struct {
	CX float64 `yaml:"cx"`
	CY float64 `yaml:"cy"`
	AX float64 `yaml:"ax"`
	AY float64 `yaml:"ay"`
}

// Quadratic converts the section to a loss surface.
func (b Bowl) Quadratic() loss.Quadratic {
	return loss.Quadratic{CX: b.CX, CY: b.CY, AX: b.AX, AY: b.AY}
}

func bowlOf(q loss.Quadratic) Bowl {
	return Bowl{CX: q.CX, CY: q.CY, AX: q.AX, AY: q.AY}
}

// Sparsity describes the L1 sweep on the sparse bowl.
type Sparsity struct {
	Lambdas []float64  `yaml:"lambdas"`
	LR      float64    `yaml:"lr"`
	Steps   int        `yaml:"steps"`
	Start   [2]float64 `yaml:"start"`
}

// Config is the full scene file.
type Config struct {
	OutDir   string   `yaml:"out_dir"`
	Format   string   `yaml:"format"` // png | svg
	Parallel bool     `yaml:"parallel"`
	Surface  Surface  `yaml:"surface"`
	Bowl     Bowl     `yaml:"bowl"`
	Sparse   Bowl     `yaml:"sparse_bowl"`
	Runs     []Run    `yaml:"runs"`
	Sparsity Sparsity `yaml:"sparsity"`
}

// Default returns the canonical demonstration: the (3, 2) bowl with an
// unregularized run, a ridge run, and a lasso run, plus an L1 sweep on the
// sparse bowl.
func Default() *Config {
	return &Config{
		OutDir:   "out",
		Format:   "png",
		Parallel: true,
		Surface:  Surface{XMin: -2, XMax: 6, YMin: -2, YMax: 5, NX: 200, NY: 200},
		Bowl:     bowlOf(loss.NewBowl()),
		Sparse:   bowlOf(loss.NewSparseBowl()),
		Runs: []Run{
			{Name: "unregularized", Penalty: PenaltyNone, LR: 0.1, Steps: 200, Start: [2]float64{-1.5, 4.0}},
			{Name: "l2 λ=1", Penalty: PenaltyL2, Lambda: 1, LR: 0.1, Steps: 200, Start: [2]float64{-1.5, 4.0}},
			{Name: "l1 λ=2", Penalty: PenaltyL1, Lambda: 2, LR: 0.1, Steps: 200, Start: [2]float64{-1.5, 4.0}},
		},
		Sparsity: Sparsity{
			Lambdas: []float64{0, 0.2, 1, 4},
			LR:      0.05,
			Steps:   400,
			Start:   [2]float64{-1.5, 2.5},
		},
	}
}

// Load reads and validates a scene file. Fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the scene for values the downstream packages would reject
// or silently misdraw.
func (c *Config) Validate() error {
	if c.Format != "png" && c.Format != "svg" {
		return fmt.Errorf("config: format must be png or svg, got %q", c.Format)
	}
	if err := c.Surface.Window().Validate(); err != nil {
		return err
	}
	if c.Surface.NX < 2 || c.Surface.NY < 2 {
		return fmt.Errorf("config: surface resolution must be at least 2x2, got %dx%d",
			c.Surface.NX, c.Surface.NY)
	}
	if err := c.Bowl.Quadratic().Validate(); err != nil {
		return err
	}
	if err := c.Sparse.Quadratic().Validate(); err != nil {
		return err
	}
	for _, r := range c.Runs {
		if _, err := r.Build(); err != nil {
			return err
		}
		if r.Lambda < 0 || r.L2Lambda < 0 {
			return fmt.Errorf("config: run %q has a negative penalty weight", r.Name)
		}
		if r.LR <= 0 {
			return fmt.Errorf("config: run %q needs a positive learning rate", r.Name)
		}
		if r.Steps < 1 {
			return fmt.Errorf("config: run %q needs at least one step", r.Name)
		}
		if r.Momentum < 0 || r.Momentum >= 1 {
			return fmt.Errorf("config: run %q momentum must be in [0, 1)", r.Name)
		}
	}
	if len(c.Sparsity.Lambdas) == 0 {
		return fmt.Errorf("config: sparsity sweep needs at least one lambda")
	}
	for _, l := range c.Sparsity.Lambdas {
		if l < 0 {
			return fmt.Errorf("config: sparsity lambdas must be non-negative, got %v", l)
		}
	}
	if c.Sparsity.LR <= 0 || c.Sparsity.Steps < 1 {
		return fmt.Errorf("config: sparsity sweep needs a positive lr and at least one step")
	}
	return nil
}
