package capacity

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressblock"
)

// PlasticCentroid returns the point of application of the squash load: the
// concrete area at concreteStress plus every bar at fy, less the concrete
// each bar displaces. The Resultant carries the squash load and its
// moments about the origin.
func PlasticCentroid(concreteArea float64, concreteCentroid r2.Vec, concreteStress float64, bars []section.Bar, fy float64) (r2.Vec, stressblock.Resultant, error) {
	cc := concreteStress * concreteArea
	r := stressblock.Resultant{
		P:  cc,
		Mx: cc * concreteCentroid.Y,
		My: cc * concreteCentroid.X,
	}
	for _, b := range bars {
		cb := b.Area * (fy - concreteStress)
		r.P += cb
		r.Mx += cb * b.Y
		r.My += cb * b.X
	}
	pc, err := r.Centroid()
	return pc, r, err
}

// SectionPlasticCentroid evaluates PlasticCentroid with the section's
// properties, 0.85 f'c and fy.
func SectionPlasticCentroid(sec *section.Section) (r2.Vec, stressblock.Resultant, error) {
	props, err := sec.Properties()
	if err != nil {
		return r2.Vec{}, stressblock.Resultant{}, err
	}
	return PlasticCentroid(props.Area, r2.Vec{X: props.Cx, Y: props.Cy}, 0.85*sec.Fc, sec.Reinforcement, sec.Fy)
}
