package stressblock

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/geometry"
)

// Epsilon is the smallest axial force magnitude for which a point of
// application is reported.
const Epsilon = 1e-9

// ErrUndefinedCentroid is returned by Resultant.Centroid when the net axial
// force is zero and My/P, Mx/P are undefined.
var ErrUndefinedCentroid = errors.New("stressblock: undefined point of application, net axial force is zero")

// SegmentForce is the contribution of one boundary segment.
type SegmentForce struct {
	Segment geometry.Segment
	P       float64
	Mx      float64
	My      float64
}

// Resultant is the integrated axial force and the moments about the x and y
// axes of the coordinate system the segments are expressed in.
type Resultant struct {
	P       float64
	Mx      float64
	My      float64
	Details []SegmentForce
}

// Centroid returns the point of application (My/P, Mx/P).
func (r Resultant) Centroid() (r2.Vec, error) {
	if math.Abs(r.P) < Epsilon {
		return r2.Vec{}, ErrUndefinedCentroid
	}
	return r2.Vec{X: r.My / r.P, Y: r.Mx / r.P}, nil
}

// Add sums two resultants and concatenates their details.
func (r Resultant) Add(o Resultant) Resultant {
	details := make([]SegmentForce, 0, len(r.Details)+len(o.Details))
	details = append(details, r.Details...)
	details = append(details, o.Details...)
	return Resultant{P: r.P + o.P, Mx: r.Mx + o.Mx, My: r.My + o.My, Details: details}
}

func (r *Resultant) add(s geometry.Segment, p, mx, my float64) {
	r.P += p
	r.Mx += mx
	r.My += my
	r.Details = append(r.Details, SegmentForce{Segment: s, P: p, Mx: mx, My: my})
}

// Regime integrates the stress field of one band over its segments.
type Regime interface {
	Integrate(segs []geometry.Segment) Resultant
}

// Tension is the zero-stress regime below the neutral axis.
type Tension struct{}

func (Tension) Integrate([]geometry.Segment) Resultant { return Resultant{} }

// ConstantStress is a uniform stress F.
type ConstantStress struct {
	F float64
}

func (c ConstantStress) Integrate(segs []geometry.Segment) Resultant { return Constant(segs, c.F) }

// Constant integrates a uniform stress f.
func Constant(segs []geometry.Segment, f float64) Resultant {
	var r Resultant
	for _, s := range segs {
		x1, y1 := s.Start.X, s.Start.Y
		x2, y2 := s.End.X, s.End.Y

		p := -0.5 * f * (x1 + x2) * (y1 - y2)
		mx := f / 6 * (y2 - y1) * (x1*(2*y1+y2) + x2*(y1+2*y2))
		my := f / 6 * (x1*x1 + x1*x2 + x2*x2) * (y2 - y1)
		r.add(s, p, mx, my)
	}
	return r
}

// LinearStress varies linearly with elevation from Q1 at Y1 to Q2 at Y2.
type LinearStress struct {
	Q1 float64
	Y1 float64
	Q2 float64
	Y2 float64
}

// At returns the stress at elevation y.
func (l LinearStress) At(y float64) float64 {
	if l.Y1 == l.Y2 {
		return l.Q1
	}
	return l.Q1 + (l.Q2-l.Q1)*(y-l.Y1)/(l.Y2-l.Y1)
}

func (l LinearStress) Integrate(segs []geometry.Segment) Resultant { return Linear(segs, l) }

// Linear integrates a stress that varies linearly with elevation. The end
// stresses of each segment are taken from the field at the segment's end
// elevations, so a segment spanning the whole interval gets Q1 and Q2.
func Linear(segs []geometry.Segment, l LinearStress) Resultant {
	var r Resultant
	for _, s := range segs {
		x1, y1 := s.Start.X, s.Start.Y
		x2, y2 := s.End.X, s.End.Y
		qs, qe := l.At(y1), l.At(y2)

		p := (y2 - y1) / 6 * (qs*(2*x1+x2) + qe*(x1+2*x2))
		mx := (y2 - y1) / 12 * (qs*x1*(3*y1+y2) + qs*x2*(y1+y2) + qe*x1*(y1+y2) + qe*x2*(y1+3*y2))
		my := -(y1 - y2) / 24 * (x1*x1*(3*qs+qe) + 2*x1*x2*(qs+qe) + x2*x2*(qs+3*qe))
		r.add(s, p, mx, my)
	}
	return r
}

// EC2Parabola is the parabolic branch of the EN 1992 law expressed over
// elevation: stress(y) = Fcd*(1 - (1 - K*(y-Yna)/C)^N), valid from the neutral
// axis up to y = Yna + C/K, where K = eu/ec2 and C is the neutral axis depth.
type EC2Parabola struct {
	Fcd float64
	N   float64
	K   float64
	C   float64
	Yna float64
}

// Top is the elevation where the parabola meets the plateau.
func (e EC2Parabola) Top() float64 { return e.Yna + e.C/e.K }

func (e EC2Parabola) Integrate(segs []geometry.Segment) Resultant { return EC2Parabolic(segs, e) }

// EC2Parabolic integrates the parabolic stress field directly. Each segment is
// cut at Yna and Top: the part below the neutral axis carries nothing and the
// part above Top carries the plateau Fcd. The parabolic part is parametrized
// as x = A + (B-A)t, y = D + (E-D)t and the antiderivatives are evaluated at
// t = 1 and t = 0. Segments running downwards are integrated upwards and
// negated; horizontal and nearly horizontal segments contribute nothing.
func EC2Parabolic(segs []geometry.Segment, e EC2Parabola) Resultant {
	var r Resultant
	top := e.Top()
	for _, s := range segs {
		if e.flat(s) {
			r.add(s, 0, 0, 0)
			continue
		}
		var p, mx, my float64
		if piece, ok := clip(s, e.Yna, top); ok {
			p, mx, my = e.parabola(piece)
		}
		if piece, ok := clip(s, top, math.Inf(1)); ok {
			c := Constant([]geometry.Segment{piece}, e.Fcd)
			p, mx, my = p+c.P, mx+c.Mx, my+c.My
		}
		r.add(s, p, mx, my)
	}
	return r
}

// flat reports a segment whose rise is lost in rounding against its run or
// the depth of the block.
func (e EC2Parabola) flat(s geometry.Segment) bool {
	dx, dy := s.End.X-s.Start.X, s.End.Y-s.Start.Y
	return math.Abs(dy) <= flatRise*math.Max(math.Abs(dx), e.C)
}

const flatRise = 1e-12

// Below slowDrift relative change of u along a segment the closed form
// cancels badly and the segment is integrated by quadrature instead.
const (
	slowDrift   = 1e-3
	gaussPoints = 8
)

// parabola integrates a segment lying within [Yna, Top].
func (e EC2Parabola) parabola(s geometry.Segment) (p, mx, my float64) {
	sign := 1.0
	if s.Start.Y > s.End.Y {
		s = s.Reversed()
		sign = -1
	}
	u0, u1 := e.u(s, 0), e.u(s, 1)
	if !s.IsVertical() && math.Abs(u1-u0) <= slowDrift*math.Max(u0, u1) {
		p, mx, my = e.quadrature(s)
		return sign * p, sign * mx, sign * my
	}
	p1, mx1, my1 := e.antiderivative(s, 1)
	p0, mx0, my0 := e.antiderivative(s, 0)
	return sign * (p1 - p0), sign * (mx1 - mx0), sign * (my1 - my0)
}

// Stress is the parabolic stress at elevation y.
func (e EC2Parabola) Stress(y float64) float64 {
	u := math.Max(1-e.K*(y-e.Yna)/e.C, 0)
	return e.Fcd * (1 - math.Pow(u, e.N))
}

// quadrature integrates stress*x*{1, y, x/2} dy along s with a fixed
// Gauss-Legendre rule in t.
func (e EC2Parabola) quadrature(s geometry.Segment) (p, mx, my float64) {
	a, d := s.Start.X, s.Start.Y
	dx, dy := s.End.X-a, s.End.Y-d
	at := func(t float64) (x, y, q float64) {
		x, y = a+dx*t, d+dy*t
		return x, y, e.Stress(y) * x * dy
	}
	p = quad.Fixed(func(t float64) float64 { _, _, q := at(t); return q }, 0, 1, gaussPoints, quad.Legendre{}, 0)
	mx = quad.Fixed(func(t float64) float64 { _, y, q := at(t); return q * y }, 0, 1, gaussPoints, quad.Legendre{}, 0)
	my = quad.Fixed(func(t float64) float64 { x, _, q := at(t); return q * x / 2 }, 0, 1, gaussPoints, quad.Legendre{}, 0)
	return p, mx, my
}

// u is 1 - strain/ec2 along the segment, clamped at zero.
func (e EC2Parabola) u(s geometry.Segment, t float64) float64 {
	y := s.Start.Y + t*(s.End.Y-s.Start.Y)
	return math.Max(1-e.K*(y-e.Yna)/e.C, 0)
}

func (e EC2Parabola) antiderivative(s geometry.Segment, t float64) (p, mx, my float64) {
	a, b := s.Start.X, s.End.X
	d, ee := s.Start.Y, s.End.Y
	dx, dy := b-a, ee-d
	f, n := e.Fcd, e.N
	r := e.C / e.K

	w := e.u(s, t)
	w1 := math.Pow(w, n+1) / (n + 1)
	w2 := math.Pow(w, n+2) / (n + 2)
	w3 := math.Pow(w, n+3) / (n + 3)

	if a == b {
		p = f * (dy*a*t + r*a*w1)
		mx = f * (dy*(a*d*t+a*dy*t*t/2) + r*a*((e.Yna+r)*w1-r*w2))
		my = f * a * a / 2 * (dy*t + r*w1)
		return p, mx, my
	}

	u0, u1 := e.u(s, 0), e.u(s, 1)
	beta := dx / (u1 - u0)
	alpha := a - beta*u0
	gamma := e.Yna + r
	delta := -r
	c0 := alpha * gamma
	c1 := alpha*delta + beta*gamma
	c2 := beta * delta

	p = f * (dy*(a*t+dx*t*t/2) + r*(alpha*w1+beta*w2))
	mx = f * (dy*(a*d*t+(a*dy+d*dx)*t*t/2+dx*dy*t*t*t/3) + r*(c0*w1+c1*w2+c2*w3))
	my = f * (dy*(a*a*t+a*dx*t*t+dx*dx*t*t*t/3)/2 + r/2*(alpha*alpha*w1+2*alpha*beta*w2+beta*beta*w3))
	return p, mx, my
}
