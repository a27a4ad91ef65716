package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regviz-ml/regviz/internal/config"
	"github.com/regviz-ml/regviz/internal/viz"
)

func testScene(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutDir = t.TempDir()
	cfg.Surface.NX = 20
	cfg.Surface.NY = 20
	require.NoError(t, cfg.Validate())
	return cfg
}

func readPlotData(t *testing.T, path string) viz.PlotData {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc viz.PlotData
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

// TestSceneSurface_Exports checks the surface scene writes one document per
// plot type: the loss grid under loss_surface and both penalty grids under
// penalty_surface.
func TestSceneSurface_Exports(t *testing.T) {
	cfg := testScene(t)
	require.NoError(t, sceneSurface(cfg))

	lossDoc := readPlotData(t, filepath.Join(cfg.OutDir, "loss_surface.json"))
	assert.Equal(t, viz.LossSurface, lossDoc.PlotType)
	require.Len(t, lossDoc.Series, 1)
	assert.Equal(t, "loss", lossDoc.Series[0].Name)
	assert.Contains(t, lossDoc.Metrics, "minimum")

	penDoc := readPlotData(t, filepath.Join(cfg.OutDir, "penalty_surface.json"))
	assert.Equal(t, viz.PenaltySurface, penDoc.PlotType)
	require.Len(t, penDoc.Series, 2)
	assert.Equal(t, "l1", penDoc.Series[0].Name)
	assert.Equal(t, "l2", penDoc.Series[1].Name)

	img, err := os.Stat(filepath.Join(cfg.OutDir, "loss_surface.png"))
	require.NoError(t, err)
	assert.Greater(t, img.Size(), int64(0))
}
