package material

import "math"

// Concrete holds the parameters the concrete laws need. Fc and Ec are in the
// stress unit of Units.
type Concrete struct {
	Fc      float64
	Ec      float64
	Density float64 // pcf or kg/m3
	Eu      float64 // ultimate strain
	Units   Units
}

// ACIImperial builds normal-weight concrete from f'c in ksi and unit weight in
// pcf: Ec = w^1.5 * 33 * sqrt(f'c) psi (ACI 318-14 19.2.2.1).
func ACIImperial(fcKsi, densityPcf float64) Concrete {
	if densityPcf == 0 {
		densityPcf = 145
	}
	fc := fcKsi * 1000
	return Concrete{
		Fc:      fc,
		Ec:      math.Pow(densityPcf, 1.5) * 33 * math.Sqrt(fc),
		Density: densityPcf,
		Eu:      EpsilonCU,
		Units:   Imperial,
	}
}

// ACIMetric builds concrete from f'c in MPa and density in kg/m3:
// Ec = wc^1.5 * 0.043 * sqrt(f'c) MPa.
func ACIMetric(fcMPa, densityKgM3 float64) Concrete {
	if densityKgM3 == 0 {
		densityKgM3 = 2320
	}
	return Concrete{
		Fc:      fcMPa,
		Ec:      math.Pow(densityKgM3, 1.5) * 0.043 * math.Sqrt(fcMPa),
		Density: densityKgM3,
		Eu:      EpsilonCU,
		Units:   Metric,
	}
}

// NewConcrete picks the ACI preset for the unit system. fc is in ksi for
// Imperial/US and MPa for Metric.
func NewConcrete(units Units, fc, density float64) (Concrete, error) {
	switch units {
	case Imperial:
		return ACIImperial(fc, density), nil
	case Metric:
		return ACIMetric(fc, density), nil
	}
	return Concrete{}, units.validate()
}

// FcPsi returns f'c in psi regardless of the unit system.
func (c Concrete) FcPsi() float64 { return c.Units.StressToPsi(c.Fc) }

// Beta1 returns the ACI block depth factor for this concrete.
func (c Concrete) Beta1() float64 {
	if c.Units == Metric {
		return Beta1(c.Fc)
	}
	return Beta1Psi(c.Fc)
}
