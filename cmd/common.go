package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/capacity"
	"github.com/alexiusacademia/gorcx/internal/diagram"
	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/logger"
	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

const rule = "───────────────────────────────────────────────────────────────"

// strainPlane holds the flags shared by commands that analyse a section.
type strainPlane struct {
	file   string
	model  string
	angle  float64
	ox, oy float64
	bands  int
}

func (sp *strainPlane) register(flags *pflag.FlagSet) {
	flags.StringVarP(&sp.file, "file", "f", "", "Path to section JSON or YAML file [required]")
	flags.StringVar(&sp.model, "model", "whitney", "Concrete model: ec2, pca, whitney, desayi, collins")
	flags.Float64Var(&sp.angle, "angle", 0, "Bending axis angle (degrees, counter-clockwise)")
	flags.Float64Var(&sp.ox, "ox", 0, "Rotation origin x")
	flags.Float64Var(&sp.oy, "oy", 0, "Rotation origin y")
	flags.IntVar(&sp.bands, "bands", 0, "Sub-bands for sampled models (default from GORCX_BANDS)")
}

// load reads the section and builds the analysis input.
func (sp *strainPlane) load() (*section.Section, capacity.Input, error) {
	sec, err := loadSection(sp.file)
	if err != nil {
		return nil, capacity.Input{}, err
	}
	bands := sp.bands
	if bands <= 0 {
		bands = cfg.Bands
	}
	params, err := capacity.ParamsFromSection(sec, bands)
	if err != nil {
		return nil, capacity.Input{}, err
	}
	m, err := capacity.NewModel(sp.model, params)
	if err != nil {
		return nil, capacity.Input{}, err
	}
	in := capacity.Input{
		Model:  m,
		Angle:  section.Radians(sp.angle),
		Origin: r2.Vec{X: sp.ox, Y: sp.oy},
	}
	logger.L().Debug("section loaded", "file", sp.file, "model", m.Name(), "units", sec.Units, "bars", len(sec.Reinforcement))
	return sec, in, nil
}

func loadSection(path string) (*section.Section, error) {
	if path == "" {
		return nil, fmt.Errorf("no section file given")
	}
	sec, err := section.LoadFromFile(path, cfg.Units)
	if err != nil {
		return nil, fmt.Errorf("loading section: %w", err)
	}
	for _, w := range sec.Warnings {
		logger.L().Warn(w, "file", path)
	}
	return sec, nil
}

// layers samples the analysed section into text diagram rows from the top
// fibre down.
func layers(res *capacity.Result, m capacity.Model, rowsPerSection int) diagram.SectionDiagramData {
	sec := res.Section
	lo, hi := sec.Bounds()
	data := diagram.SectionDiagramData{
		Depth:      res.Depth,
		Eu:         m.UltimateStrain(),
		EpsilonT:   res.EpsilonT,
		EpsilonY:   sec.YieldStrain(),
		StressUnit: sec.Units.Stress(),
		LengthUnit: sec.Units.Length(),
	}
	if rowsPerSection < 2 {
		rowsPerSection = 2
	}
	step := (hi.Y - lo.Y) / float64(rowsPerSection-1)
	for i := 0; i < rowsPerSection; i++ {
		y := hi.Y - float64(i)*step
		// Sample just inside the section at the top and bottom fibres.
		probe := math.Min(math.Max(y, lo.Y+step/100), hi.Y-step/100)
		strain := stressstrain.StrainAtElevation(data.Eu, res.Yna, res.Ymax, y)
		var stress float64
		if strain > 0 {
			stress = m.Stress(strain)
		}
		bar := false
		for _, b := range res.Bars {
			if math.Abs(b.Local.Y-y) <= step/2 {
				bar = true
				break
			}
		}
		data.Layers = append(data.Layers, diagram.Layer{
			Y:      y,
			Width:  sec.WidthAtY(probe),
			Strain: strain,
			Stress: stress,
			Bar:    bar,
		})
	}
	return data
}

// plotData lays out the analysed section for the stress block plot.
func plotData(res *capacity.Result) diagram.PlotData {
	data := diagram.PlotData{
		Title:      fmt.Sprintf("%s stress block, c = %.3f", res.Model, res.Depth),
		Yna:        res.Yna,
		Ymax:       res.Ymax,
		LengthUnit: res.Section.Units.Length(),
	}
	if res.Section.Name != "" {
		data.Title = res.Section.Name + ": " + data.Title
	}
	for _, p := range res.Section.Polygons() {
		data.Outlines = append(data.Outlines, diagram.Outline{Vertices: p.Vertices, Void: p.Role == geometry.Void})
	}
	for _, b := range res.Bars {
		data.Bars = append(data.Bars, diagram.BarMark{Position: b.Local, Strain: b.Strain})
	}
	for _, b := range res.Bands {
		data.Bounds = append(data.Bounds, b.Lo)
	}
	if res.CentroidErr == nil {
		c := res.Centroid
		data.Resultant = &c
	}
	return data
}
