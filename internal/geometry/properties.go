package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned when a polygon has zero signed area and its
// derived properties are undefined.
var ErrDegenerate = errors.New("geometry: zero area, verify the shape has no overlapping segments")

// Properties holds the section properties of one closed polygon. Values are
// signed: a void (clockwise) polygon reports negative area and inertia so that
// properties of composite sections add.
type Properties struct {
	Area float64

	// Centroid
	Cx float64
	Cy float64

	// About the global axes
	Ix  float64
	Iy  float64
	Ixy float64
	Jz  float64

	// About the centroidal axes
	Ixx   float64
	Iyy   float64
	Ixxyy float64
	Jzz   float64

	SxxTop    float64
	SxxBottom float64
	SyyRight  float64
	SyyLeft   float64

	Rxx float64
	Ryy float64
	Rzz float64

	// Principal axes, angles in degrees
	Iuu    float64
	Ivv    float64
	Iuuvv  float64
	Theta1 float64
	Theta2 float64
}

// ComputeProperties evaluates the closed-form polygon integrals over a closed
// vertex list.
func ComputeProperties(vs []r2.Vec) (Properties, error) {
	vs, _ = ClosePolygon(vs)

	var p Properties
	p.Area = SignedArea(vs)
	if p.Area == 0 {
		return p, ErrDegenerate
	}

	var sx, sy, ix, iy, ixy float64
	for i := 0; i < len(vs)-1; i++ {
		x0, y0 := vs[i].X, vs[i].Y
		x1, y1 := vs[i+1].X, vs[i+1].Y
		cross := x0*y1 - x1*y0
		sx += (x0 + x1) * cross
		sy += (y0 + y1) * cross
		ix += (y0*y0 + y0*y1 + y1*y1) * cross
		iy += (x0*x0 + x0*x1 + x1*x1) * cross
		ixy += (x0*y1 + 2*x0*y0 + 2*x1*y1 + x1*y0) * cross
	}
	p.Cx = sx / (6 * p.Area)
	p.Cy = sy / (6 * p.Area)
	p.Ix = ix / 12
	p.Iy = iy / 12
	p.Ixy = ixy / 24
	p.Jz = p.Ix + p.Iy

	// Parallel axis theorem: Ixx = Ix - A*d^2
	p.Ixx = p.Ix - p.Area*p.Cy*p.Cy
	p.Iyy = p.Iy - p.Area*p.Cx*p.Cx
	p.Ixxyy = p.Ixy - p.Area*p.Cx*p.Cy
	p.Jzz = p.Ixx + p.Iyy

	p = p.WithExtents(Bounds(vs))

	p.Rxx = math.Sqrt(p.Ixx / p.Area)
	p.Ryy = math.Sqrt(p.Iyy / p.Area)
	p.Rzz = math.Sqrt(p.Jzz / p.Area)

	p.principal()
	return p, nil
}

// CircleProperties returns the exact properties of a full circle.
func CircleProperties(center r2.Vec, r float64) (Properties, error) {
	var p Properties
	p.Area = math.Pi * r * r
	if p.Area == 0 {
		return p, ErrDegenerate
	}
	p.Cx, p.Cy = center.X, center.Y
	p.Ixx = math.Pi * math.Pow(r, 4) / 4
	p.Iyy = p.Ixx
	p.Jzz = p.Ixx + p.Iyy
	p.Ix = p.Ixx + p.Area*p.Cy*p.Cy
	p.Iy = p.Iyy + p.Area*p.Cx*p.Cx
	p.Ixy = p.Area * p.Cx * p.Cy
	p.Jz = p.Ix + p.Iy

	d := r2.Vec{X: r, Y: r}
	p = p.WithExtents(r2.Sub(center, d), r2.Add(center, d))
	p.Rxx = r / 2
	p.Ryy = r / 2
	p.Rzz = math.Sqrt(p.Jzz / p.Area)
	p.Iuu, p.Ivv = p.Ixx, p.Iyy
	p.Theta2 = 90
	return p, nil
}

// WithExtents returns p with the elastic section moduli measured to the
// extreme fibres of the bounding box lo, hi.
func (p Properties) WithExtents(lo, hi r2.Vec) Properties {
	p.SxxTop = safeDiv(p.Ixx, math.Abs(hi.Y-p.Cy))
	p.SxxBottom = safeDiv(p.Ixx, math.Abs(lo.Y-p.Cy))
	p.SyyRight = safeDiv(p.Iyy, math.Abs(hi.X-p.Cx))
	p.SyyLeft = safeDiv(p.Iyy, math.Abs(lo.X-p.Cx))
	return p
}

func (p *Properties) principal() {
	twoTheta := math.Atan((-2 * p.Ixxyy) / (1e-16 + (p.Ixx - p.Iyy)))
	mid := (p.Ixx + p.Iyy) / 2
	half := (p.Ixx - p.Iyy) / 2
	r := math.Sqrt(half*half + p.Ixxyy*p.Ixxyy)
	i1, i2 := mid+r, mid-r

	p.Iuu = mid + half*math.Cos(twoTheta) - p.Ixxyy*math.Sin(twoTheta)
	p.Ivv = mid - half*math.Cos(twoTheta) + p.Ixxyy*math.Sin(twoTheta)
	p.Iuuvv = half*math.Sin(twoTheta) + p.Ixxyy*math.Cos(twoTheta)

	deg := twoTheta / 2 * 180 / math.Pi
	switch {
	case scalar.EqualWithinAbsOrRel(p.Iuu, i2, 1e-6, 1e-9) && !scalar.EqualWithinAbsOrRel(p.Iuu, i1, 1e-6, 1e-9):
		p.Theta2 = deg
		p.Theta1 = deg - 90
	default:
		p.Theta1 = deg
		p.Theta2 = deg + 90
	}
}

// ParallelAxis returns Ix, Iy and Ixy about axes through (x, y).
func (p Properties) ParallelAxis(x, y float64) (ix, iy, ixy float64) {
	if p.Area == 0 {
		return 0, 0, 0
	}
	dx := p.Cx - x
	dy := p.Cy - y
	return p.Ixx + p.Area*dy*dy, p.Iyy + p.Area*dx*dx, p.Ixxyy + p.Area*dx*dy
}

// VertexModuli returns the centroidal section moduli at every vertex.
func (p Properties) VertexModuli(vs []r2.Vec) (sx, sy []float64) {
	sx = make([]float64, len(vs))
	sy = make([]float64, len(vs))
	for i, v := range vs {
		sx[i] = safeDiv(p.Ixx, math.Abs(v.Y-p.Cy))
		sy[i] = safeDiv(p.Iyy, math.Abs(v.X-p.Cx))
	}
	return sx, sy
}

// Add sums the additive properties of two polygons (solid plus void) and
// recomputes the centroidal terms of the composite.
func (p Properties) Add(o Properties) Properties {
	var c Properties
	c.Area = p.Area + o.Area
	c.Ix = p.Ix + o.Ix
	c.Iy = p.Iy + o.Iy
	c.Ixy = p.Ixy + o.Ixy
	c.Jz = c.Ix + c.Iy
	if c.Area == 0 {
		return c
	}
	c.Cx = (p.Area*p.Cx + o.Area*o.Cx) / c.Area
	c.Cy = (p.Area*p.Cy + o.Area*o.Cy) / c.Area
	c.Ixx = c.Ix - c.Area*c.Cy*c.Cy
	c.Iyy = c.Iy - c.Area*c.Cx*c.Cx
	c.Ixxyy = c.Ixy - c.Area*c.Cx*c.Cy
	c.Jzz = c.Ixx + c.Iyy
	c.Rxx = math.Sqrt(c.Ixx / c.Area)
	c.Ryy = math.Sqrt(c.Iyy / c.Area)
	c.Rzz = math.Sqrt(c.Jzz / c.Area)
	c.principal()
	return c
}

// safeDiv returns 0 where the distance to an extreme fibre vanishes.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Negated returns the properties of the same shape acting as a void.
func (p Properties) Negated() Properties {
	n := p
	for _, f := range []*float64{
		&n.Area, &n.Ix, &n.Iy, &n.Ixy, &n.Jz, &n.Ixx, &n.Iyy, &n.Ixxyy, &n.Jzz,
		&n.SxxTop, &n.SxxBottom, &n.SyyRight, &n.SyyLeft, &n.Iuu, &n.Ivv, &n.Iuuvv,
	} {
		*f = -*f
	}
	return n
}
