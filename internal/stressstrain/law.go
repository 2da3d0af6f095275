package stressstrain

import "gonum.org/v1/gonum/floats"

// Law is a stress-strain relationship bound to its material parameters.
type Law interface {
	Name() string
	Stress(strain float64) float64
	UltimateStrain() float64
}

// EC2Law binds the parabola-rectangle parameters.
type EC2Law struct {
	Fcd float64 // design peak stress
	Ec2 float64 // strain at the end of the parabola
	Eu  float64 // ultimate strain
	N   float64 // parabola exponent
}

func (l EC2Law) Name() string                  { return "ec2" }
func (l EC2Law) Stress(strain float64) float64 { return EC2(l.Fcd, l.Ec2, l.Eu, l.N, strain) }
func (l EC2Law) UltimateStrain() float64       { return l.Eu }

// PCALaw binds the PCA parabola parameters.
type PCALaw struct {
	Fc float64
	Eu float64
	Ec float64 // concrete modulus
}

func (l PCALaw) Name() string                  { return "pca" }
func (l PCALaw) Stress(strain float64) float64 { return PCA(l.Fc, l.Eu, l.Ec, strain) }
func (l PCALaw) UltimateStrain() float64       { return l.Eu }

// PeakStrain is the strain at which the plateau starts.
func (l PCALaw) PeakStrain() float64 { return PCAPeakStrain(l.Fc, l.Ec) }

// DesayiKrishnanLaw binds the Desayi-Krishnan parameters.
type DesayiKrishnanLaw struct {
	Fc float64
	Eu float64
	K  float64
}

func (l DesayiKrishnanLaw) Name() string { return "desayi" }
func (l DesayiKrishnanLaw) Stress(strain float64) float64 {
	return DesayiKrishnan(l.Fc, l.Eu, l.K, strain)
}
func (l DesayiKrishnanLaw) UltimateStrain() float64 { return l.Eu }

// CollinsLaw binds the Collins-Mitchell-MacGregor parameters (psi).
type CollinsLaw struct {
	Fc float64
	Eu float64
}

func (l CollinsLaw) Name() string                  { return "collins" }
func (l CollinsLaw) Stress(strain float64) float64 { return Collins(l.Fc, l.Eu, strain) }
func (l CollinsLaw) UltimateStrain() float64       { return l.Eu }

// WhitneyLaw binds the ACI rectangular block parameters (psi).
type WhitneyLaw struct {
	Fc float64
	Eu float64
}

func (l WhitneyLaw) Name() string { return "whitney" }
func (l WhitneyLaw) Stress(strain float64) float64 {
	s, _ := Whitney(l.Fc, l.Eu, strain)
	return s
}
func (l WhitneyLaw) UltimateStrain() float64 { return l.Eu }

// Beta1 is the block depth factor.
func (l WhitneyLaw) Beta1() float64 { return WhitneyBeta1(l.Fc) }

// SteelLaw binds the bilinear steel parameters.
type SteelLaw struct {
	Fy float64
	Ey float64 // yield strain
	Es float64 // modulus, 0 for the strain-only form
}

func (l SteelLaw) Name() string                  { return "steel" }
func (l SteelLaw) Stress(strain float64) float64 { return Steel(l.Fy, l.Ey, l.Es, strain) }

// UltimateStrain returns twice the yield strain; steel has no crushing limit,
// the value only sets a plotting range.
func (l SteelLaw) UltimateStrain() float64 { return 2 * l.Ey }

// Point is one sampled (strain, stress) pair.
type Point struct {
	Strain float64
	Stress float64
}

// Sample evaluates law at n evenly spaced strains in [lo, hi].
func Sample(law Law, lo, hi float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	strains := floats.Span(make([]float64, n), lo, hi)
	out := make([]Point, n)
	for i, e := range strains {
		out[i] = Point{Strain: e, Stress: law.Stress(e)}
	}
	return out
}
