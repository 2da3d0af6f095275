package material

import "math"

// EC2Concrete holds the parabola-rectangle parameters of EN 1992-1-1
// Table 3.1 for a characteristic strength fck in MPa.
type EC2Concrete struct {
	Fck  float64
	Ec2  float64 // strain at reaching the maximum strength
	Ecu2 float64 // ultimate strain
	N    float64 // exponent
}

// EC2 returns the Table 3.1 parameters for fck in MPa.
func EC2(fck float64) EC2Concrete {
	c := EC2Concrete{Fck: fck, Ec2: 0.002, Ecu2: 0.0035, N: 2}
	if fck <= 50 {
		return c
	}
	r := math.Pow((90-fck)/100, 4)
	c.Ec2 = (2.0 + 0.085*math.Pow(fck-50, 0.53)) / 1000
	c.Ecu2 = (2.6 + 35*r) / 1000
	c.N = 1.4 + 23.4*r
	return c
}

// Fcd is the design strength alphaCC*fck/gammaC.
func (c EC2Concrete) Fcd(alphaCC, gammaC float64) float64 {
	if gammaC == 0 {
		gammaC = 1
	}
	return alphaCC * c.Fck / gammaC
}
