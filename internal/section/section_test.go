package section

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/material"
)

func boxWithHole(t *testing.T) *Section {
	t.Helper()
	s := &Section{
		Name:  "hollow",
		Units: material.Imperial,
		Fc:    5000,
		Fy:    60000,
		Shapes: []Shape{
			Rectangle(10, 10),
			{Name: "hole", Role: "void", Vertices: []Point{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}},
		},
		Reinforcement: []Bar{{X: 2, Y: 2, Size: 8}, {X: 8, Y: 2, Area: 0.79}},
	}
	require.NoError(t, s.Recompute())
	return s
}

func TestRecomputeOrientsShapes(t *testing.T) {
	s := boxWithHole(t)
	polys := s.Polygons()
	require.Len(t, polys, 2)
	assert.Greater(t, geometry.SignedArea(polys[0].Vertices), 0.0)
	assert.Less(t, geometry.SignedArea(polys[1].Vertices), 0.0)
	assert.Empty(t, s.Warnings)

	p, err := s.Properties()
	require.NoError(t, err)
	assert.InDelta(t, 96, p.Area, 1e-9)
	assert.InDelta(t, 5, p.Cy, 1e-9)
	assert.InDelta(t, p.Ixx/5, p.SxxTop, 1e-9)

	assert.Len(t, s.Segments(), 8)
	assert.InDelta(t, 1.58, s.SteelArea(), 1e-12, "size 8 resolved from the table")
	assert.InDelta(t, 8, s.WidthAtY(5), 1e-12)
	assert.InDelta(t, 10, s.WidthAtY(2), 1e-12)
}

func TestRecomputeWarnsButDoesNotFail(t *testing.T) {
	s := &Section{
		Units:  material.Imperial,
		Fc:     4000,
		Shapes: []Shape{{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}, {2, 2}}}},
	}
	require.NoError(t, s.Recompute())
	assert.NotEmpty(t, s.Warnings)
	_, err := s.Properties()
	assert.True(t, errors.Is(err, geometry.ErrDegenerate))
}

func TestRecomputeClosesOpenShapes(t *testing.T) {
	s := &Section{
		Units:  material.Imperial,
		Fc:     4000,
		Shapes: []Shape{{Vertices: []Point{{0, 0}, {0, 2}, {3, 2}, {3, 0}}}},
	}
	require.NoError(t, s.Recompute())
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "closed")
	assert.True(t, geometry.IsClosed(s.Polygons()[0].Vertices))
	assert.Greater(t, geometry.SignedArea(s.Polygons()[0].Vertices), 0.0, "clockwise input reversed")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sec  Section
	}{
		{"no shapes", Section{Units: material.Metric, Fc: 28}},
		{"bad units", Section{Units: "x", Fc: 28, Shapes: []Shape{Rectangle(1, 1)}}},
		{"bad role", Section{Units: material.Metric, Fc: 28, Shapes: []Shape{{Role: "hole", Vertices: Rectangle(1, 1).Vertices}}}},
		{"no fc", Section{Units: material.Metric, Shapes: []Shape{Rectangle(1, 1)}}},
		{"bar without fy", Section{Units: material.Metric, Fc: 28, Shapes: []Shape{Rectangle(1, 1)}, Reinforcement: []Bar{{Area: 1}}}},
		{"bar without area", Section{Units: material.Metric, Fc: 28, Fy: 420, Shapes: []Shape{Rectangle(1, 1)}, Reinforcement: []Bar{{}}}},
		{"zero radius", Section{Units: material.Metric, Fc: 28, Circles: []Circle{{R: 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verr *ValidationError
			assert.True(t, errors.As(tt.sec.Recompute(), &verr))
		})
	}
}

func TestUnknownBarSize(t *testing.T) {
	s := &Section{
		Units: material.Imperial, Fc: 4000, Fy: 60000,
		Shapes:        []Shape{Rectangle(10, 10)},
		Reinforcement: []Bar{{X: 1, Y: 1, Size: 12}},
	}
	assert.True(t, errors.Is(s.Recompute(), material.ErrUnknownRebar))
}

func TestCircleSection(t *testing.T) {
	s := &Section{Units: material.Imperial, Fc: 4000, Circles: []Circle{{R: 6}}}
	require.NoError(t, s.Recompute())

	p, err := s.Properties()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*36, p.Area, 1e-9)
	assert.InDelta(t, math.Pi*math.Pow(6, 4)/4, p.Ixx, 1e-9)

	require.Len(t, s.Polygons(), 1)
	assert.Len(t, s.Polygons()[0].Vertices, DefaultCircleSides+1)
	lo, hi := s.Bounds()
	assert.InDelta(t, 12, hi.X-lo.X, 1e-9)
}

func TestTransformsReturnNewSection(t *testing.T) {
	s := boxWithHole(t)

	moved, err := s.Translate(r2.Vec{X: -5, Y: -5})
	require.NoError(t, err)
	p, _ := moved.Properties()
	assert.InDelta(t, 0, p.Cx, 1e-9)
	assert.InDelta(t, 0, p.Cy, 1e-9)
	assert.Equal(t, 2.0, s.Reinforcement[0].X, "original untouched")
	assert.Equal(t, -3.0, moved.Reinforcement[0].X)

	turned, err := s.Rotate(r2.Vec{X: 5, Y: 5}, Radians(90))
	require.NoError(t, err)
	back, err := turned.Rotate(r2.Vec{X: 5, Y: 5}, Radians(-90))
	require.NoError(t, err)
	for i, v := range s.Shapes[0].Vertices {
		assert.InDelta(t, v.X, back.Shapes[0].Vertices[i].X, 1e-9)
		assert.InDelta(t, v.Y, back.Shapes[0].Vertices[i].Y, 1e-9)
	}

	local, err := s.Transform(r2.Vec{X: 5, Y: 5}, Radians(30))
	require.NoError(t, err)
	lp, _ := local.Properties()
	op, _ := s.Properties()
	assert.InDelta(t, op.Area, lp.Area, 1e-9)
	assert.InDelta(t, 0, lp.Cx, 1e-9)
	assert.InDelta(t, 0, lp.Cy, 1e-9)
}

func TestConvertTo(t *testing.T) {
	s := boxWithHole(t)
	m, err := s.ConvertTo(material.Metric)
	require.NoError(t, err)

	assert.Equal(t, material.Metric, m.Units)
	p, _ := m.Properties()
	assert.InDelta(t, 96*25.4*25.4, p.Area, 1e-6)
	assert.InDelta(t, 5000/material.PsiPerMPa, m.Fc, 1e-9)
	assert.Equal(t, 25, m.Reinforcement[0].Size)
	assert.Equal(t, 510.0, m.Reinforcement[0].Area)
	assert.InDelta(t, 0.79*25.4*25.4, m.Reinforcement[1].Area, 1e-9)

	same, err := s.ConvertTo(material.Imperial)
	require.NoError(t, err)
	assert.Equal(t, s.Shapes, same.Shapes)

	_, err = s.ConvertTo("x")
	assert.True(t, errors.Is(err, material.ErrUnknownUnits))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	js := `{"name":"beam","fc":4000,"fy":60000,
	  "shapes":[{"vertices":[{"x":0,"y":0},{"x":12,"y":0},{"x":12,"y":20},{"x":0,"y":20},{"x":0,"y":0}]}],
	  "reinforcement":[{"x":3,"y":2.5,"size":9},{"x":9,"y":2.5,"size":9}]}`
	jsPath := filepath.Join(dir, "beam.json")
	require.NoError(t, os.WriteFile(jsPath, []byte(js), 0o644))

	s, err := LoadFromFile(jsPath, material.Imperial)
	require.NoError(t, err)
	assert.Equal(t, "beam", s.Name)
	assert.Equal(t, material.Imperial, s.Units)
	assert.InDelta(t, 2.0, s.SteelArea(), 1e-12)

	yml := `name: column
units: Metric
fc: 28
circles:
  - center: {x: 0, y: 0}
    r: 250
`
	ymlPath := filepath.Join(dir, "column.yaml")
	require.NoError(t, os.WriteFile(ymlPath, []byte(yml), 0o644))

	c, err := LoadFromFile(ymlPath, material.Imperial)
	require.NoError(t, err)
	assert.Equal(t, material.Metric, c.Units)
	p, err := c.Properties()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*250*250, p.Area, 1e-6)

	_, err = LoadFromFile(filepath.Join(dir, "missing.json"), material.Imperial)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = Parse([]byte(`{"fc":1,"units":"x","shapes":[]}`), ".json", material.Imperial)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestConcretePreset(t *testing.T) {
	s := &Section{Units: material.Imperial, Fc: 4000}
	c, err := s.Concrete()
	require.NoError(t, err)
	assert.Equal(t, 4000.0, c.Fc)
	assert.Equal(t, 145.0, c.Density)
	assert.Equal(t, material.ACIImperial(4, 0), c)

	s = &Section{Units: material.Metric, Fc: 28, Density: 2400}
	c, err = s.Concrete()
	require.NoError(t, err)
	assert.Equal(t, material.ACIMetric(28, 2400), c)

	s.Units = material.Units("cubits")
	_, err = s.Concrete()
	assert.True(t, errors.Is(err, material.ErrUnknownUnits))
}
