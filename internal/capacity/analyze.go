package capacity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressblock"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

// Input selects the model and the strain plane for one analysis.
type Input struct {
	Model Model

	// Depth is the neutral axis depth c below the extreme compression fibre.
	Depth float64

	// Angle turns the bending axes counter-clockwise (radians) about Origin
	// before the section is analysed; 0 bends about the global x-axis with
	// compression at the top.
	Angle  float64
	Origin r2.Vec
}

// BandResult is the integrated concrete force of one elevation band.
type BandResult struct {
	Lo        float64
	Hi        float64
	Regime    string
	Resultant stressblock.Resultant
}

// BarResult holds analysis results for each reinforcing bar
type BarResult struct {
	Bar       section.Bar
	Local     r2.Vec  // position in the bending axes
	Strain    float64 // compression positive
	Stress    float64
	Displaced float64 // concrete stress removed where the bar sits in the block
	Force     float64
	Yielded   bool
}

// Result holds the results of one strain plane. Forces are compression
// positive; moments are about the local axes of Section.
type Result struct {
	Model string
	Depth float64
	Yna   float64
	Ymax  float64

	Concrete stressblock.Resultant
	Steel    stressblock.Resultant
	Total    stressblock.Resultant

	Bands []BandResult
	Bars  []BarResult

	// Point of application of Total; CentroidErr is
	// stressblock.ErrUndefinedCentroid when the net force vanishes.
	Centroid    r2.Vec
	CentroidErr error

	// Strength reduction from the extreme tension bar
	EpsilonT       float64
	Phi            float64
	Classification string

	// Section is the section in the bending axes.
	Section *section.Section
}

// MomentsAbout returns the total moments transferred to point p.
func (r *Result) MomentsAbout(p r2.Vec) (mx, my float64) {
	return r.Total.Mx - r.Total.P*p.Y, r.Total.My - r.Total.P*p.X
}

// Analyze integrates concrete and steel stresses for one neutral axis depth.
func Analyze(sec *section.Section, in Input) (*Result, error) {
	if in.Model == nil {
		return nil, fmt.Errorf("%w: none given", ErrUnknownModel)
	}
	local, err := sec.Transform(in.Origin, in.Angle)
	if err != nil {
		return nil, err
	}

	c := in.Depth
	if c <= 0 {
		c = stressstrain.MinDepth
	}
	_, hi := local.Bounds()
	res := &Result{
		Model:   in.Model.Name(),
		Depth:   c,
		Ymax:    hi.Y,
		Yna:     hi.Y - c,
		Section: local,
	}

	plan := in.Model.Plan(res.Yna, res.Ymax)
	bands := stressblock.Slice(local.Segments(), plan.Bounds)
	for i, b := range bands {
		r := plan.Regimes[i].Integrate(b.Segments)
		res.Bands = append(res.Bands, BandResult{Lo: b.Lo, Hi: b.Hi, Regime: regimeName(plan.Regimes[i]), Resultant: r})
		res.Concrete = res.Concrete.Add(r)
	}

	res.analyzeBars(local, in.Model)

	res.Total = stressblock.Resultant{
		P:  res.Concrete.P + res.Steel.P,
		Mx: res.Concrete.Mx + res.Steel.Mx,
		My: res.Concrete.My + res.Steel.My,
	}
	res.Centroid, res.CentroidErr = res.Total.Centroid()
	return res, nil
}

func (res *Result) analyzeBars(local *section.Section, m Model) {
	if len(local.Reinforcement) == 0 {
		res.Classification = "plain"
		return
	}
	eu := m.UltimateStrain()
	fy, es := local.Fy, local.SteelModulus()
	ey := local.YieldStrain()

	minStrain := math.Inf(1)
	for _, b := range local.Reinforcement {
		pos := b.Position()
		strain := stressstrain.StrainAtElevation(eu, res.Yna, res.Ymax, pos.Y)
		stress := stressstrain.Steel(fy, ey, es, strain)

		var displaced float64
		if strain > 0 {
			displaced = m.Stress(strain)
		}
		force := b.Area * (stress - displaced)

		res.Bars = append(res.Bars, BarResult{
			Bar:       b,
			Local:     pos,
			Strain:    strain,
			Stress:    stress,
			Displaced: displaced,
			Force:     force,
			Yielded:   math.Abs(strain) >= ey,
		})
		res.Steel.P += force
		res.Steel.Mx += force * pos.Y
		res.Steel.My += force * pos.X
		minStrain = math.Min(minStrain, strain)
	}

	res.EpsilonT = math.Max(-minStrain, 0)
	res.Phi = material.Phi(res.EpsilonT, ey, false)
	res.Classification = material.Classify(res.EpsilonT, ey)
}

func regimeName(r stressblock.Regime) string {
	switch r.(type) {
	case stressblock.Tension:
		return "tension"
	case stressblock.ConstantStress:
		return "constant"
	case stressblock.LinearStress:
		return "linear"
	case stressblock.EC2Parabola:
		return "parabolic"
	}
	return fmt.Sprintf("%T", r)
}
