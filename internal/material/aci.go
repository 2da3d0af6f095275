// Package material holds the material parameters the stress-strain laws are
// evaluated with: code constants, concrete presets, and rebar tables.
package material

import "math"

// ACI 318 / NSCP 2015 constants

const (
	// Beta1 factors for the equivalent rectangular stress block
	// ACI 318-14 Table 22.2.2.4.3
	Beta1Max = 0.85 // f'c <= 28 MPa (4000 psi)
	Beta1Min = 0.65

	// Ultimate concrete strain (ACI 318-14 22.2.2.1)
	EpsilonCU = 0.003

	// Strength reduction factors (ACI 318-14 Table 21.2.2)
	PhiTension     = 0.90 // tension-controlled
	PhiCompression = 0.65 // compression-controlled, tied
	PhiSpiral      = 0.75 // compression-controlled, spiral

	// Modulus of elasticity of reinforcement
	EsMPa = 200000.0
	EsPsi = 29000000.0

	// Stress block intensity factor
	Alpha1 = 0.85
)

// Beta1 returns the stress block depth factor for f'c in MPa.
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Beta1Psi returns the stress block depth factor for f'c in psi.
func Beta1Psi(fc float64) float64 {
	if fc <= 4000 {
		return Beta1Max
	}
	beta1 := Beta1Max - 0.05*(fc-4000)/1000
	return math.Max(beta1, Beta1Min)
}

// Phi returns the strength reduction factor for the net tensile strain in
// the extreme tension steel. ey is the yield strain fy/Es.
func Phi(epsilonT, ey float64, spiral bool) float64 {
	phiC := PhiCompression
	if spiral {
		phiC = PhiSpiral
	}
	if epsilonT >= ey+0.003 {
		return PhiTension
	} else if epsilonT <= ey {
		return phiC
	}
	// Transition zone
	return phiC + (PhiTension-phiC)*(epsilonT-ey)/0.003
}

// Classify names the strain regime used by Phi.
func Classify(epsilonT, ey float64) string {
	switch {
	case epsilonT >= ey+0.003:
		return "tension-controlled"
	case epsilonT <= ey:
		return "compression-controlled"
	default:
		return "transition"
	}
}
