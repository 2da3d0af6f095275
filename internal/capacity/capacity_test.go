package capacity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressblock"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

func rect(t *testing.T, b, h float64, bars ...section.Bar) *section.Section {
	t.Helper()
	s := &section.Section{
		Name:          "rect",
		Units:         material.Imperial,
		Fc:            4000,
		Fy:            60000,
		Es:            29000000,
		Shapes:        []section.Shape{section.Rectangle(b, h)},
		Reinforcement: bars,
	}
	require.NoError(t, s.Recompute())
	return s
}

func whitney() Model {
	return WhitneyModel{Fc: 4000, Eu: 0.003, Beta1: 0.85}
}

func TestAnalyzeWhitneyPlainConcrete(t *testing.T) {
	res, err := Analyze(rect(t, 12, 20), Input{Model: whitney(), Depth: 10})
	require.NoError(t, err)

	assert.InDelta(t, 0.85*4000*12*8.5, res.Total.P, 1e-6)
	require.NoError(t, res.CentroidErr)
	assert.InDelta(t, 6, res.Centroid.X, 1e-9)
	assert.InDelta(t, 20-8.5/2, res.Centroid.Y, 1e-9)
	assert.Equal(t, "plain", res.Classification)
	assert.Equal(t, 10.0, res.Yna)

	require.Len(t, res.Bands, 2)
	assert.Equal(t, "tension", res.Bands[0].Regime)
	assert.Equal(t, "constant", res.Bands[1].Regime)
	assert.Equal(t, 0.0, res.Bands[0].Resultant.P)
}

func TestAnalyzeWhitneyWithBars(t *testing.T) {
	sec := rect(t, 12, 20, section.Bar{X: 3, Y: 2.5, Area: 1}, section.Bar{X: 9, Y: 2.5, Area: 1})
	res, err := Analyze(sec, Input{Model: whitney(), Depth: 10})
	require.NoError(t, err)

	require.Len(t, res.Bars, 2)
	b := res.Bars[0]
	assert.InDelta(t, -0.00225, b.Strain, 1e-12)
	assert.Equal(t, -60000.0, b.Stress)
	assert.True(t, b.Yielded)
	assert.Equal(t, 0.0, b.Displaced)

	assert.InDelta(t, -120000, res.Steel.P, 1e-9)
	assert.InDelta(t, 346800-120000, res.Total.P, 1e-6)
	assert.InDelta(t, 0.00225, res.EpsilonT, 1e-12)
	assert.Equal(t, "transition", res.Classification)
	assert.Greater(t, res.Phi, material.PhiCompression)
	assert.Less(t, res.Phi, material.PhiTension)

	// Moment about the mid-height equals concrete couple plus steel couple.
	mx, _ := res.MomentsAbout(r2.Vec{X: 6, Y: 10})
	assert.InDelta(t, 346800*(15.75-10)+120000*(10-2.5), mx, 1e-6)
}

func TestAnalyzeDisplacedConcrete(t *testing.T) {
	sec := rect(t, 12, 20, section.Bar{X: 6, Y: 17.5, Area: 1})
	res, err := Analyze(sec, Input{Model: whitney(), Depth: 10})
	require.NoError(t, err)

	b := res.Bars[0]
	assert.InDelta(t, 0.00225, b.Strain, 1e-12)
	assert.Equal(t, 3400.0, b.Displaced)
	assert.InDelta(t, 60000-3400, b.Force, 1e-9)
}

func TestAnalyzeEC2Rectangle(t *testing.T) {
	m := EC2Model{Fcd: 4250, Ec2: 0.002, Eu: 0.0035, N: 2}
	sec := rect(t, 20, 20)
	res, err := Analyze(sec, Input{Model: m, Depth: 9.468})
	require.NoError(t, err)

	require.Len(t, res.Bands, 2)
	assert.Equal(t, "parabolic", res.Bands[0].Regime)
	assert.InDelta(t, 306582.8559285714, res.Bands[0].Resultant.P, 1e-2)
	assert.InDelta(t, 651488.5714285714, res.Total.P, 1e-4)
	assert.InDelta(t, 10, res.Centroid.X, 1e-9)

	// The closed form agrees with band-wise sampling of the same law.
	law := stressstrain.EC2Law{Fcd: 4250, Ec2: 0.002, Eu: 0.0035, N: 2}
	sampled, err := Analyze(sec, Input{Model: SampledModel{Law: law, Bands: 200, Scale: 1}, Depth: 9.468})
	require.NoError(t, err)
	assert.InEpsilon(t, res.Total.P, sampled.Total.P, 1e-3)
	assert.InEpsilon(t, res.Total.Mx, sampled.Total.Mx, 1e-3)
}

func TestPCAMatchesSampledLaw(t *testing.T) {
	sec := rect(t, 12, 20)
	pca := NewPCAModel(4000, 0.003, 3605000)
	closed, err := Analyze(sec, Input{Model: pca, Depth: 8})
	require.NoError(t, err)

	law := stressstrain.PCALaw{Fc: 4000, Eu: 0.003, Ec: 3605000}
	sampled, err := Analyze(sec, Input{Model: SampledModel{Law: law, Bands: 200, Scale: 1}, Depth: 8})
	require.NoError(t, err)
	assert.InEpsilon(t, closed.Total.P, sampled.Total.P, 1e-3)
	assert.Greater(t, closed.Total.P, 0.0)
}

func TestPCAPeakBeyondUltimate(t *testing.T) {
	// A low modulus pushes eo past eu: the whole block is parabolic.
	m := NewPCAModel(4000, 0.003, 1000000)
	plan := m.Plan(0, 10)
	assert.Equal(t, []float64{0, 10}, plan.Bounds)
	require.Len(t, plan.Regimes, 1)
}

func TestAnalyzeRotatedAxes(t *testing.T) {
	// A 12 wide, 20 tall rectangle bent about the turned axes is 20 wide and
	// 12 deep.
	res, err := Analyze(rect(t, 12, 20), Input{Model: whitney(), Depth: 6, Angle: math.Pi / 2})
	require.NoError(t, err)
	assert.InDelta(t, 3400*20*0.85*6, res.Total.P, 1e-6)
	lo, hi := res.Section.Bounds()
	assert.InDelta(t, 20, hi.X-lo.X, 1e-9)
	assert.InDelta(t, 12, hi.Y-lo.Y, 1e-9)
}

// tSection is a flanged T; turned maps (x, y) to (y, -x), the local
// coordinates of bending about axes turned a quarter turn.
func tSection(t *testing.T, turned bool) *section.Section {
	t.Helper()
	xs := []float64{0, 12, 12, 84, 84, -16, -16, 0, 0}
	ys := []float64{0, 0, 16, 16, 24, 24, 16, 16, 0}
	vs := make([]section.Point, len(xs))
	for i := range xs {
		vs[i] = section.Point{X: xs[i], Y: ys[i]}
		if turned {
			vs[i] = section.Point{X: ys[i], Y: -xs[i]}
		}
	}
	s := &section.Section{Name: "tee", Units: material.Imperial, Fc: 4000, Fy: 60000, Shapes: []section.Shape{{Vertices: vs}}}
	require.NoError(t, s.Recompute())
	return s
}

func TestAnalyzeQuarterTurnMatchesTurnedSection(t *testing.T) {
	models := []Model{
		EC2Model{Fcd: 3400, Ec2: 0.002, Eu: 0.0035, N: 2},
		EC2Model{Fcd: 3400, Ec2: 0.0022, Eu: 0.003, N: 1.75},
		NewPCAModel(4000, 0.003, 3605000),
		NewPCAModel(4000, 0.003, 1000000),
	}
	tee, turned := tSection(t, false), tSection(t, true)
	for _, m := range models {
		for _, c := range []float64{20, 40, 60} {
			// Just off a quarter turn the vertical edges pick up a rise of
			// rounding size.
			for _, angle := range []float64{math.Pi / 2, math.Pi/2 + 1e-9} {
				got, err := Analyze(tee, Input{Model: m, Depth: c, Angle: angle})
				require.NoError(t, err)
				want, err := Analyze(turned, Input{Model: m, Depth: c})
				require.NoError(t, err)

				for _, v := range []float64{got.Total.P, got.Total.Mx, got.Total.My} {
					require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "%s c=%v", m.Name(), c)
				}
				assert.InEpsilon(t, want.Total.P, got.Total.P, 1e-6, "%s c=%v", m.Name(), c)
				arm := 1e-5 * math.Abs(want.Total.P)
				assert.InDelta(t, want.Total.Mx, got.Total.Mx, arm, "%s c=%v", m.Name(), c)
				assert.InDelta(t, want.Total.My, got.Total.My, arm, "%s c=%v", m.Name(), c)
			}
		}
	}
}

func TestAnalyzeWithVoid(t *testing.T) {
	sec := &section.Section{
		Units: material.Imperial,
		Fc:    4000,
		Shapes: []section.Shape{
			section.Rectangle(10, 10),
			{Role: "void", Vertices: []section.Point{{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 4}}},
		},
	}
	require.NoError(t, sec.Recompute())
	res, err := Analyze(sec, Input{Model: whitney(), Depth: 10})
	require.NoError(t, err)
	assert.InDelta(t, 3400*(85-4), res.Total.P, 1e-6)
}

func TestAnalyzeZeroDepthIsClamped(t *testing.T) {
	res, err := Analyze(rect(t, 12, 20), Input{Model: whitney(), Depth: 0})
	require.NoError(t, err)
	assert.Equal(t, stressstrain.MinDepth, res.Depth)
	assert.False(t, math.IsNaN(res.Total.P))
}

func TestAnalyzeUndefinedCentroid(t *testing.T) {
	res, err := Analyze(rect(t, 12, 20), Input{Model: WhitneyModel{Eu: 0.003, Beta1: 0.85}, Depth: 10})
	require.NoError(t, err)
	assert.True(t, errors.Is(res.CentroidErr, stressblock.ErrUndefinedCentroid))
}

func TestAnalyzeNeedsModel(t *testing.T) {
	_, err := Analyze(rect(t, 1, 1), Input{Depth: 1})
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestSolveDepth(t *testing.T) {
	sec := rect(t, 12, 20, section.Bar{X: 3, Y: 2.5, Area: 1}, section.Bar{X: 9, Y: 2.5, Area: 1})
	res, err := SolveDepth(sec, Input{Model: whitney()}, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.4602076124567476, res.Depth, 1e-6)
	assert.InDelta(t, 0, res.Total.P, 1e-2)
	assert.Equal(t, "tension-controlled", res.Classification)

	_, err = SolveDepth(sec, Input{Model: whitney()}, 1e9)
	assert.True(t, errors.Is(err, ErrNoSolution))
	_, err = SolveDepth(sec, Input{Model: whitney()}, -1e9)
	assert.True(t, errors.Is(err, ErrNoSolution))
}

func TestSweepKeepsDepthOrder(t *testing.T) {
	sec := rect(t, 12, 20, section.Bar{X: 6, Y: 2.5, Area: 2})
	depths := DepthRange(sec, 16, 1.2)
	require.Len(t, depths, 16)
	assert.InDelta(t, 0.4, depths[0], 1e-12)
	assert.InDelta(t, 24, depths[15], 1e-12)

	results, err := Sweep(sec, Input{Model: whitney()}, depths, 4)
	require.NoError(t, err)
	require.Len(t, results, len(depths))
	for i, r := range results {
		want, err := Analyze(sec, Input{Model: whitney(), Depth: depths[i]})
		require.NoError(t, err)
		assert.Equal(t, depths[i], r.Depth)
		assert.InDelta(t, want.Total.P, r.Total.P, 1e-9)
		if i > 0 {
			assert.Greater(t, r.Total.P, results[i-1].Total.P)
		}
	}

	pts := Interaction(results, 6, 10)
	assert.Len(t, pts, len(results))
	assert.Equal(t, results[3].Total.P, pts[3].P)
}

func TestSweepReturnsError(t *testing.T) {
	_, err := Sweep(rect(t, 1, 1), Input{}, []float64{1, 2}, 0)
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestPlasticCentroid(t *testing.T) {
	bars := []section.Bar{{X: 6, Y: 2.5, Area: 2}}
	pc, r, err := PlasticCentroid(240, r2.Vec{X: 6, Y: 10}, 3400, bars, 60000)
	require.NoError(t, err)
	assert.InDelta(t, 929200, r.P, 1e-9)
	assert.InDelta(t, 6, pc.X, 1e-12)
	assert.InDelta(t, 9.086310804993543, pc.Y, 1e-9)

	sec := rect(t, 12, 20, bars...)
	spc, _, err := SectionPlasticCentroid(sec)
	require.NoError(t, err)
	assert.InDelta(t, pc.Y, spc.Y, 1e-9)

	_, _, err = PlasticCentroid(0, r2.Vec{}, 0, nil, 0)
	assert.True(t, errors.Is(err, stressblock.ErrUndefinedCentroid))
}

func TestNewModel(t *testing.T) {
	sec := rect(t, 12, 20)
	p, err := ParamsFromSection(sec, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultBands, p.Bands)
	assert.InDelta(t, 3400, p.Fcd, 1e-9)
	assert.Equal(t, 0.85, p.Beta1)
	assert.Equal(t, 0.002, p.Ec2)

	for _, name := range Models {
		m, err := NewModel(name, p)
		require.NoError(t, err, name)
		assert.Equal(t, name, m.Name())
		if name == "ec2" {
			assert.Equal(t, 0.0035, m.UltimateStrain())
		} else {
			assert.Equal(t, material.EpsilonCU, m.UltimateStrain())
		}

		res, err := Analyze(sec, Input{Model: m, Depth: 8})
		require.NoError(t, err, name)
		assert.Greater(t, res.Total.P, 0.0, name)
		assert.Less(t, res.Total.P, 4000*12*8.0, name)
	}

	_, err = NewModel("hognestad", p)
	assert.True(t, errors.Is(err, ErrUnknownModel))
}

func TestCollinsMetricScale(t *testing.T) {
	sec := &section.Section{Units: material.Metric, Fc: 40, Shapes: []section.Shape{section.Rectangle(300, 500)}}
	require.NoError(t, sec.Recompute())
	p, err := ParamsFromSection(sec, 12)
	require.NoError(t, err)
	m, err := NewModel("collins", p)
	require.NoError(t, err)

	s := m.Stress(0.002)
	assert.Greater(t, s, 0.0)
	assert.Less(t, s, 40.0, "stress reported in MPa")
}

func TestEC2ParamsFollowStrengthClass(t *testing.T) {
	for _, fck := range []float64{30, 50, 70, 90} {
		sec := &section.Section{Units: material.Metric, Fc: fck, Shapes: []section.Shape{section.Rectangle(300, 500)}}
		require.NoError(t, sec.Recompute())
		p, err := ParamsFromSection(sec, 0)
		require.NoError(t, err)
		m, err := NewModel("ec2", p)
		require.NoError(t, err)

		want := material.EC2(fck)
		assert.Equal(t, want.Ecu2, m.UltimateStrain(), "fck %v", fck)
		assert.Equal(t, want.Ec2, p.Ec2, "fck %v", fck)
		assert.Equal(t, want.N, p.N, "fck %v", fck)
		assert.InDelta(t, 0.85*fck, p.Fcd, 1e-12, "fck %v", fck)
		assert.Equal(t, material.EpsilonCU, p.Eu, "ACI laws keep 0.003")
	}
	assert.Less(t, material.EC2(70).Ecu2, 0.0035)

	// Imperial f'c goes through MPa for the table and comes back in psi.
	p, err := ParamsFromSection(rect(t, 12, 20), 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0035, p.Ecu2)
	assert.InDelta(t, 3400, p.Fcd, 1e-9)
}

func TestParamsNeedKnownUnits(t *testing.T) {
	sec := rect(t, 12, 20)
	sec.Units = material.Units("furlongs")
	_, err := ParamsFromSection(sec, 0)
	assert.True(t, errors.Is(err, material.ErrUnknownUnits))
}
