// Package capacity runs the stress-block pipeline on a section: transform to
// the bending axes, place the neutral axis, slice the boundary into stress
// regimes, integrate each band, and add the reinforcement.
package capacity

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gorcx/internal/material"
	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressblock"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

// ErrUnknownModel is returned by NewModel for an unsupported model name.
var ErrUnknownModel = errors.New("unknown concrete model")

// DefaultBands is the number of linear sub-bands used to integrate laws that
// have no closed-form stress block.
const DefaultBands = 24

// Models lists the names accepted by NewModel.
var Models = []string{"ec2", "pca", "whitney", "desayi", "collins"}

// Model is a concrete stress-strain law arranged for integration: it splits
// the compression depth into elevation bands and gives each band a regime.
type Model interface {
	Name() string
	UltimateStrain() float64
	// Plan returns ascending band bounds starting at yna and ending at ymax,
	// and one regime per band.
	Plan(yna, ymax float64) Plan
	// Stress is the concrete stress at a strain, used for concrete displaced
	// by bars.
	Stress(strain float64) float64
}

// Plan is the band layout of a model for one neutral axis position.
type Plan struct {
	Bounds  []float64
	Regimes []stressblock.Regime
}

// Params carries the material values the models are built from. Stresses
// are in the section's stress unit unless noted.
type Params struct {
	Fc    float64
	FcPsi float64 // f'c in psi, for laws regressed in psi
	Ec    float64
	Eu    float64

	// EC2 parabola-rectangle
	Fcd  float64
	Ec2  float64
	Ecu2 float64
	N    float64

	K     float64 // Desayi-Krishnan stress ratio at eu
	Beta1 float64 // Whitney depth factor
	Bands int     // sub-bands for sampled laws

	// toSection converts a psi stress back to the section's stress unit
	toSection float64
}

// ParamsFromSection derives model parameters from the section's concrete:
// ACI modulus, beta1 and ultimate strain, and the EN 1992 Table 3.1 parabola
// with fcd = 0.85 f'c and its own ultimate strain ecu2.
func ParamsFromSection(sec *section.Section, bands int) (Params, error) {
	conc, err := sec.Concrete()
	if err != nil {
		return Params{}, err
	}
	fckMPa := conc.Fc
	if sec.Units != material.Metric {
		fckMPa = conc.Fc / material.PsiPerMPa
	}
	ec2 := material.EC2(fckMPa)
	fcd := ec2.Fcd(material.Alpha1, 1)
	if sec.Units != material.Metric {
		fcd *= material.PsiPerMPa
	}
	if bands <= 0 {
		bands = DefaultBands
	}
	return Params{
		Fc:        sec.Fc,
		FcPsi:     conc.FcPsi(),
		Ec:        conc.Ec,
		Eu:        conc.Eu,
		Fcd:       fcd,
		Ec2:       ec2.Ec2,
		Ecu2:      ec2.Ecu2,
		N:         ec2.N,
		K:         0.85,
		Beta1:     conc.Beta1(),
		Bands:     bands,
		toSection: sec.Fc / conc.FcPsi(),
	}, nil
}

// NewModel builds a named model from p.
func NewModel(name string, p Params) (Model, error) {
	scale := p.toSection
	if scale == 0 {
		scale = 1
	}
	switch name {
	case "ec2":
		return EC2Model{Fcd: p.Fcd, Ec2: p.Ec2, Eu: p.Ecu2, N: p.N}, nil
	case "pca":
		return NewPCAModel(p.Fc, p.Eu, p.Ec), nil
	case "whitney":
		return WhitneyModel{Fc: p.Fc, Eu: p.Eu, Beta1: p.Beta1}, nil
	case "desayi":
		law := stressstrain.DesayiKrishnanLaw{Fc: p.Fc, Eu: p.Eu, K: p.K}
		return SampledModel{Law: law, Bands: p.Bands, Scale: 1}, nil
	case "collins":
		law := stressstrain.CollinsLaw{Fc: p.FcPsi, Eu: p.Eu}
		return SampledModel{Law: law, Bands: p.Bands, Scale: scale}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// EC2Model is the parabola-rectangle law integrated in closed form.
type EC2Model struct {
	Fcd float64
	Ec2 float64
	Eu  float64
	N   float64
}

func (m EC2Model) Name() string            { return "ec2" }
func (m EC2Model) UltimateStrain() float64 { return m.Eu }

func (m EC2Model) Stress(strain float64) float64 {
	return stressstrain.EC2(m.Fcd, m.Ec2, m.Eu, m.N, strain)
}

// Plan places the parabola between the neutral axis and the elevation where
// the strain reaches ec2, and the plateau above it.
func (m EC2Model) Plan(yna, ymax float64) Plan {
	return parabolaPlan(m.Fcd, m.N, m.Eu/m.Ec2, yna, ymax)
}

func parabolaPlan(fcd, n, k, yna, ymax float64) Plan {
	c := ymax - yna
	if c <= 0 {
		c = stressstrain.MinDepth
	}
	para := stressblock.EC2Parabola{Fcd: fcd, N: n, K: k, C: c, Yna: yna}
	top := para.Top()
	if top >= ymax {
		return Plan{Bounds: []float64{yna, ymax}, Regimes: []stressblock.Regime{para}}
	}
	return Plan{
		Bounds:  []float64{yna, top, ymax},
		Regimes: []stressblock.Regime{para, stressblock.ConstantStress{F: fcd}},
	}
}

// PCAModel is the PCA parabola: the EC2 form with n = 2, ec2 = eo and a
// 0.85 f'c plateau.
type PCAModel struct {
	Fc float64
	Eu float64
	Ec float64
}

// NewPCAModel builds the PCA model.
func NewPCAModel(fc, eu, ec float64) PCAModel { return PCAModel{Fc: fc, Eu: eu, Ec: ec} }

func (m PCAModel) Name() string            { return "pca" }
func (m PCAModel) UltimateStrain() float64 { return m.Eu }

func (m PCAModel) Stress(strain float64) float64 {
	return stressstrain.PCA(m.Fc, m.Eu, m.Ec, strain)
}

func (m PCAModel) Plan(yna, ymax float64) Plan {
	eo := stressstrain.PCAPeakStrain(m.Fc, m.Ec)
	return parabolaPlan(0.85*m.Fc, 2, m.Eu/eo, yna, ymax)
}

// WhitneyModel is the ACI equivalent rectangular block of depth Beta1*c.
type WhitneyModel struct {
	Fc    float64
	Eu    float64
	Beta1 float64
}

func (m WhitneyModel) Name() string            { return "whitney" }
func (m WhitneyModel) UltimateStrain() float64 { return m.Eu }

func (m WhitneyModel) Stress(strain float64) float64 {
	if strain <= m.Eu-m.Eu*m.Beta1 || strain > m.Eu {
		return 0
	}
	return 0.85 * m.Fc
}

func (m WhitneyModel) Plan(yna, ymax float64) Plan {
	c := ymax - yna
	return Plan{
		Bounds:  []float64{yna, ymax - m.Beta1*c, ymax},
		Regimes: []stressblock.Regime{stressblock.Tension{}, stressblock.ConstantStress{F: 0.85 * m.Fc}},
	}
}

// SampledModel integrates any law by splitting the compression depth into
// Bands equal sub-bands with a linear stress across each. Scale converts the
// law's stress unit to the section's.
type SampledModel struct {
	Law   stressstrain.Law
	Bands int
	Scale float64
}

func (m SampledModel) Name() string            { return m.Law.Name() }
func (m SampledModel) UltimateStrain() float64 { return m.Law.UltimateStrain() }

func (m SampledModel) Stress(strain float64) float64 {
	return m.Scale * m.Law.Stress(strain)
}

func (m SampledModel) Plan(yna, ymax float64) Plan {
	n := m.Bands
	if n < 1 {
		n = DefaultBands
	}
	eu := m.UltimateStrain()
	bounds := make([]float64, n+1)
	for i := range bounds {
		bounds[i] = yna + (ymax-yna)*float64(i)/float64(n)
	}
	bounds[n] = ymax

	regimes := make([]stressblock.Regime, n)
	for i := 0; i < n; i++ {
		lo, hi := bounds[i], bounds[i+1]
		regimes[i] = stressblock.LinearStress{
			Q1: m.Stress(stressstrain.StrainAtElevation(eu, yna, ymax, lo)),
			Y1: lo,
			Q2: m.Stress(stressstrain.StrainAtElevation(eu, yna, ymax, hi)),
			Y2: hi,
		}
	}
	return Plan{Bounds: bounds, Regimes: regimes}
}
