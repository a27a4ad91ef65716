// Package main provides the RegViz CLI.
//
// RegViz renders the effect of L1 and L2 regularization on a toy two-weight
// optimization problem: loss and penalty contour diagrams, gradient-descent
// trajectories, and a sparsity-oscillation trace.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/regviz-ml/regviz/internal/config"
)

const version = "v0.1.0"

func usage() {
	fmt.Println("RegViz - L1/L2 regularization geometry visualizer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Usage: regviz [flags] <command>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  surface    Loss contour with L1/L2 penalty-ball overlays")
	fmt.Println("  descend    Gradient-descent trajectories on the loss contour")
	fmt.Println("  sparsity   L1 sweep on the sparse bowl with a weight trace")
	fmt.Println("  all        Run every scene (default)")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "Scene file (YAML); defaults to the built-in demonstration")
	outDir := flag.String("out", "", "Output directory (overrides the scene file)")
	format := flag.String("format", "", "Image format: png or svg (overrides the scene file)")
	flag.Usage = usage
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "all"
	}
	if command == "version" {
		fmt.Printf("RegViz %s\n", version)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.OutDir = *outDir
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fatal(fmt.Errorf("creating output directory: %w", err))
	}

	var err error
	switch command {
	case "surface":
		err = sceneSurface(cfg)
	case "descend":
		err = sceneDescend(cfg)
	case "sparsity":
		err = sceneSparsity(cfg)
	case "all":
		err = sceneAll(cfg)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "regviz: %v\n", err)
	os.Exit(1)
}
