package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/plotter"

	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

func sampleLayers() SectionDiagramData {
	data := SectionDiagramData{Depth: 4, Eu: 0.003, EpsilonT: 0.006, EpsilonY: 0.00207, StressUnit: "psi", LengthUnit: "in"}
	for y := 10.0; y >= 0; y-- {
		strain := 0.003 * (y - 6) / 4
		var stress float64
		if strain > 0 {
			stress = 3400
		}
		data.Layers = append(data.Layers, Layer{Y: y, Width: 12, Strain: strain, Stress: stress, Bar: y == 2})
	}
	return data
}

func TestDrawASCIISectionDiagram(t *testing.T) {
	out := DrawASCIISectionDiagram(sampleLayers())
	assert.Contains(t, out, "◄NA")
	assert.Equal(t, 1, strings.Count(out, "◄NA"))
	assert.Contains(t, out, "●●")
	assert.Contains(t, out, "3400.0 psi")
	assert.Contains(t, out, "c = 4.000 in")

	assert.Empty(t, DrawASCIISectionDiagram(SectionDiagramData{}))
}

func TestDrawStrainDiagram(t *testing.T) {
	out := DrawStrainDiagram(sampleLayers())
	assert.Contains(t, out, "εcu=0.0030")
	assert.Contains(t, out, "N.A.")
	assert.Contains(t, out, "✓yields")
	assert.Contains(t, out, "Bottom")
}

func TestDrawCurve(t *testing.T) {
	pts := stressstrain.Sample(stressstrain.PCALaw{Fc: 4000, Eu: 0.003, Ec: 3.6e6}, 0, 0.003, 30)
	out := DrawCurve(pts, "pca")
	assert.Contains(t, out, "pca")
	assert.Greater(t, strings.Count(out, "\n"), 10)
	assert.Empty(t, DrawCurve(nil, "x"))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("RESULTS", []string{"P = 1.0", "a much longer line of text"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	w := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, w, len([]rune(l)))
	}
}

func TestClipAbove(t *testing.T) {
	sq := []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}
	pts := clipAbove(sq, 1)
	require.NotEmpty(t, pts)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Y, 1.0)
	}
	assert.Contains(t, pts, plotter.XY{X: 4, Y: 1})
	assert.Nil(t, clipAbove(sq[:2], 1))
}

func TestExports(t *testing.T) {
	dir := t.TempDir()
	sq := []r2.Vec{{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 20}, {X: 0, Y: 20}, {X: 0, Y: 0}}
	hole := []r2.Vec{{X: 4, Y: 14}, {X: 4, Y: 18}, {X: 8, Y: 18}, {X: 8, Y: 14}, {X: 4, Y: 14}}
	res := r2.Vec{X: 6, Y: 17}

	path, err := ExportStressBlock(PlotData{
		Outlines:   []Outline{{Vertices: sq}, {Vertices: hole, Void: true}},
		Bars:       []BarMark{{Position: r2.Vec{X: 3, Y: 2.5}, Strain: -0.004}, {Position: r2.Vec{X: 3, Y: 17.5}, Strain: 0.002}},
		Yna:        12,
		Ymax:       20,
		Bounds:     []float64{12, 15, 20},
		Resultant:  &res,
		LengthUnit: "in",
	}, filepath.Join(dir, "sub", "block"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.FileExists(t, path)

	_, err = ExportStressBlock(PlotData{}, filepath.Join(dir, "empty.png"))
	assert.Error(t, err)

	pts := stressstrain.Sample(stressstrain.CollinsLaw{Fc: 4000, Eu: 0.003}, 0, 0.003, 20)
	path, err = ExportCurve(pts, "collins", "psi", filepath.Join(dir, "curve.svg"))
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	path, err = ExportInteraction([]r2.Vec{{X: 0, Y: 900}, {X: 300, Y: 500}, {X: 200, Y: 0}}, "P-M", "kip", "kip-in", filepath.Join(dir, "pm.pdf"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}
