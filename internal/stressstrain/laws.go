// Package stressstrain maps a scalar strain to a scalar stress for the
// supported concrete and steel models. Compression strain is positive. Every
// law returns exactly zero outside its valid strain domain.
package stressstrain

import "math"

// MinDepth replaces a zero neutral-axis depth in strain calculations.
const MinDepth = 1e-6

// EC2 is the EN 1992-1-1 parabola-rectangle law (eq. 3.17 and 3.18).
func EC2(fcd, ec2, eu, n, strain float64) float64 {
	e := strain
	switch {
	case e < 0:
		return 0
	case e <= ec2:
		return fcd * (1 - math.Pow(1-e/ec2, n))
	case e <= eu:
		return fcd
	default:
		return 0
	}
}

// PCAPeakStrain is eo = 2*0.85*f'c/Ec.
func PCAPeakStrain(fc, ec float64) float64 {
	return 2 * 0.85 * fc / ec
}

// PCA is the parabolic law from the PCA notes to ACI 318-05.
func PCA(fc, eu, ec, strain float64) float64 {
	e := strain
	eo := PCAPeakStrain(fc, ec)
	switch {
	case e <= 0:
		return 0
	case e <= eo:
		r := e / eo
		return 0.85 * fc * (2*r - r*r)
	case e <= eu:
		return 0.85 * fc
	default:
		return 0
	}
}

// DesayiKrishnanPeakStrain solves for eo, the strain at f'c, given the stress
// ratio k at the ultimate strain eu. Of the two roots the smaller is used.
func DesayiKrishnanPeakStrain(eu, k float64) float64 {
	root := math.Sqrt(-(k*k - 1) * eu * eu)
	eo1 := (eu - root) / k
	eo2 := (root + eu) / k
	return math.Min(eo1, eo2)
}

// DesayiKrishnan is the Desayi and Krishnan (1964) curve, scaled by 0.85.
// k is the ratio of stress at eu to f'c, 0 < k <= 1.
func DesayiKrishnan(fc, eu, k, strain float64) float64 {
	if strain <= 0 || strain > eu {
		return 0
	}
	eo := DesayiKrishnanPeakStrain(eu, k)
	e := 2 * fc / eo
	r := strain / eo
	return 0.85 * (e * strain) / (1 + r*r)
}

// CollinsParameters returns k, n and Ec regressed from f'c in psi.
func CollinsParameters(fc float64) (k, n, ec float64) {
	k = 0.67 + fc/9000.0
	n = 0.8 + fc/2500.0
	ec = 40000*math.Sqrt(fc) + 1000000
	return k, n, ec
}

// Collins is the Collins, Mitchell and MacGregor (1993) curve for high
// strength concrete, scaled by 0.85. f'c is in psi.
func Collins(fc, eu, strain float64) float64 {
	if strain <= 0 || strain > eu {
		return 0
	}
	k, n, ec := CollinsParameters(fc)
	ecp := (fc / ec) * (n / (n - 1))
	r := strain / ecp

	exp := n
	if r > 1 {
		exp = n * k
	}
	return 0.85 * r * (n / (n - 1 + math.Pow(r, exp))) * fc
}

// WhitneyBeta1 is the ACI 318 block depth factor for f'c in psi.
func WhitneyBeta1(fc float64) float64 {
	switch {
	case fc <= 4000:
		return 0.85
	case fc <= 8000:
		return 0.85 - 0.05*(fc-4000)/1000
	default:
		return 0.65
	}
}

// Whitney is the ACI 318 equivalent rectangular block. It returns the stress
// and the beta1 used to place the block boundary.
func Whitney(fc, eu, strain float64) (stress, beta1 float64) {
	beta1 = WhitneyBeta1(fc)
	switch {
	case strain <= eu-eu*beta1:
		return 0, beta1
	case strain <= eu:
		return 0.85 * fc, beta1
	default:
		return 0, beta1
	}
}

// Steel is the bilinear elastic-perfectly-plastic law, symmetric in tension and
// compression. With es == 0 the elastic branch is drawn from the origin to
// (ey, fy) instead.
func Steel(fy, ey, es, strain float64) float64 {
	if strain == 0 {
		return 0
	}
	sign := strain / math.Abs(strain)
	if es == 0 {
		if math.Abs(strain) >= ey {
			return sign * fy
		}
		return strain * fy / ey
	}
	if math.Abs(strain)*es >= ey*es {
		return sign * fy
	}
	return strain * es
}

// StrainAtDepth returns the strain at depth d below the extreme compression
// fibre for a neutral axis at depth c. Positive above the neutral axis.
func StrainAtDepth(eu, c, d float64) float64 {
	if c == 0 {
		c = MinDepth
	}
	return (c - d) / c * eu
}

// StrainAtElevation returns e(y) = (eu/c)*(y - yna) with c = ymax - yna.
func StrainAtElevation(eu, yna, ymax, y float64) float64 {
	return StrainAtDepth(eu, ymax-yna, ymax-y)
}
