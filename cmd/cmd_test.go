package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/section"
)

const beamJSON = `{"name":"B1","units":"Imperial/US","fc":4000,"fy":60000,
  "shapes":[{"vertices":[{"x":0,"y":0},{"x":12,"y":0},{"x":12,"y":20},{"x":0,"y":20},{"x":0,"y":0}]}],
  "reinforcement":[{"x":3,"y":2.5,"size":8},{"x":9,"y":2.5,"size":8}]}`

func writeBeam(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beam.json")
	require.NoError(t, os.WriteFile(path, []byte(beamJSON), 0o644))
	return path
}

func analyseBeam(t *testing.T) (*capacity.Result, capacity.Model) {
	t.Helper()
	sec, err := section.Parse([]byte(beamJSON), ".json", material.Imperial)
	require.NoError(t, err)
	params, err := capacity.ParamsFromSection(sec, 0)
	require.NoError(t, err)
	m, err := capacity.NewModel("whitney", params)
	require.NoError(t, err)
	res, err := capacity.Analyze(sec, capacity.Input{Model: m, Depth: 5})
	require.NoError(t, err)
	return res, m
}

func TestLayers(t *testing.T) {
	res, m := analyseBeam(t)
	data := layers(res, m, 11)
	require.Len(t, data.Layers, 11)

	top := data.Layers[0]
	assert.InDelta(t, 20, top.Y, 1e-12)
	assert.InDelta(t, 0.003, top.Strain, 1e-12)
	assert.InDelta(t, 12, top.Width, 1e-12)
	assert.InDelta(t, 0.85*4000, top.Stress, 1e-9)

	assert.True(t, data.Layers[9].Bar, "bars at y = 2.5 fall in the y = 2 row")
	assert.False(t, data.Layers[5].Bar)
	assert.Less(t, data.Layers[10].Strain, 0.0)
	assert.Zero(t, data.Layers[10].Stress)
}

func TestPlotData(t *testing.T) {
	res, _ := analyseBeam(t)
	data := plotData(res)
	assert.Contains(t, data.Title, "B1")
	require.Len(t, data.Outlines, 1)
	assert.False(t, data.Outlines[0].Void)
	assert.Len(t, data.Bars, 2)
	assert.Equal(t, res.Yna, data.Yna)
	require.NotNil(t, data.Resultant)
}

func TestCommands(t *testing.T) {
	t.Chdir(t.TempDir())
	beam := writeBeam(t)
	dir := filepath.Dir(beam)

	tests := []struct {
		name  string
		args  []string
		files []string
	}{
		{"props", []string{"section", "props", "-f", beam}, nil},
		{"analyze", []string{"section", "analyze", "-f", beam, "--depth", "5", "--model", "ec2", "--diagram",
			"-o", filepath.Join(dir, "block.png"), "--pdf", filepath.Join(dir, "report.pdf")},
			[]string{"block.png", "report.pdf"}},
		{"solve", []string{"section", "solve", "-f", beam, "--load", "100000"}, nil},
		{"solve combinations", []string{"section", "solve", "-f", beam, "--dead", "50000", "--live", "30000", "--all"}, nil},
		{"sweep", []string{"section", "sweep", "-f", beam, "--steps", "8", "--xlsx", filepath.Join(dir, "sweep.xlsx"),
			"--plot", filepath.Join(dir, "pm.svg"), "--plastic"},
			[]string{"sweep.xlsx", "pm.svg"}},
		{"curve", []string{"curve", "--model", "pca", "-o", filepath.Join(dir, "pca.png")}, []string{"pca.png"}},
		{"steel curve", []string{"curve", "--model", "steel"}, nil},
		{"rebar", []string{"rebar", "--size", "8", "--convert"}, nil},
		{"version", []string{"version"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			require.NoError(t, rootCmd.Execute())
			for _, f := range tt.files {
				assert.FileExists(t, filepath.Join(dir, f))
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	beam := writeBeam(t)

	rootCmd.SetArgs([]string{"section", "analyze", "-f", beam, "--depth", "5", "--model", "bogus"})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"section", "props", "-f", "missing.json"})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"rebar", "--size", "12"})
	assert.Error(t, rootCmd.Execute())
}
