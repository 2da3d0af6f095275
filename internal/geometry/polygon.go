// Package geometry holds the vertex-list utilities shared by sections and the
// stress-block engine. Vertex lists are closed: the first and last vertex
// coincide.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Role tells whether a polygon adds material (Solid) or removes it (Void).
type Role int

const (
	Solid Role = iota
	Void
)

func (r Role) String() string {
	if r == Void {
		return "void"
	}
	return "solid"
}

// ParseRole maps "solid"/"void" (or empty, meaning solid) to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "", "solid":
		return Solid, true
	case "void":
		return Void, true
	}
	return Solid, false
}

// SignedArea returns the shoelace area of a closed vertex list.
// Positive for counter-clockwise winding, negative for clockwise.
func SignedArea(vs []r2.Vec) float64 {
	if len(vs) < 3 {
		return 0
	}
	var a float64
	for i := 0; i < len(vs)-1; i++ {
		a += vs[i].X*vs[i+1].Y - vs[i+1].X*vs[i].Y
	}
	if !IsClosed(vs) {
		n := len(vs) - 1
		a += vs[n].X*vs[0].Y - vs[0].X*vs[n].Y
	}
	return a / 2
}

// IsClosed reports whether the first and last vertex coincide.
func IsClosed(vs []r2.Vec) bool {
	return len(vs) > 0 && vs[0] == vs[len(vs)-1]
}

// ClosePolygon returns a copy of vs with the first vertex appended when the
// list is open. The bool reports whether closing was needed.
func ClosePolygon(vs []r2.Vec) ([]r2.Vec, bool) {
	out := make([]r2.Vec, len(vs), len(vs)+1)
	copy(out, vs)
	if len(vs) == 0 || IsClosed(vs) {
		return out, false
	}
	return append(out, vs[0]), true
}

// Reverse returns the vertex list in reverse order.
func Reverse(vs []r2.Vec) []r2.Vec {
	n := len(vs)
	rev := make([]r2.Vec, n)
	for i, v := range vs {
		rev[n-1-i] = v
	}
	return rev
}

// OrientFor orders vs so its signed area carries the sign of role: positive
// for Solid, negative for Void. The bool reports whether the order was
// reversed. Zero-area lists are returned unchanged.
func OrientFor(vs []r2.Vec, role Role) ([]r2.Vec, bool) {
	a := SignedArea(vs)
	if (role == Solid && a < 0) || (role == Void && a > 0) {
		return Reverse(vs), true
	}
	out := make([]r2.Vec, len(vs))
	copy(out, vs)
	return out, false
}

// OrientForSolid is OrientFor(vs, Solid).
func OrientForSolid(vs []r2.Vec) ([]r2.Vec, bool) {
	return OrientFor(vs, Solid)
}

// Rotate rotates every vertex counter-clockwise by angle (radians) about
// origin. The result stays in the caller's coordinate system.
func Rotate(vs []r2.Vec, origin r2.Vec, angle float64) []r2.Vec {
	sin, cos := sincos(angle)
	out := make([]r2.Vec, len(vs))
	for i, v := range vs {
		d := r2.Sub(v, origin)
		out[i] = r2.Add(origin, r2.Vec{X: d.X*cos - d.Y*sin, Y: d.X*sin + d.Y*cos})
	}
	return out
}

// Transform expresses the vertices in a local axis system whose origin sits at
// origin and whose x-axis is turned counter-clockwise by angle (radians):
//
//	x' =  (x-xo)cos + (y-yo)sin
//	y' = -(x-xo)sin + (y-yo)cos
//
// Bending about the local x-axis then varies strain with y' only.
func Transform(vs []r2.Vec, origin r2.Vec, angle float64) []r2.Vec {
	sin, cos := sincos(angle)
	out := make([]r2.Vec, len(vs))
	for i, v := range vs {
		d := r2.Sub(v, origin)
		out[i] = r2.Vec{X: d.X*cos + d.Y*sin, Y: -d.X*sin + d.Y*cos}
	}
	return out
}

// sincos is math.Sincos with quarter turns snapped to exact values, so edges
// parallel to an axis stay parallel to one after turning.
func sincos(angle float64) (sin, cos float64) {
	q := angle / (math.Pi / 2)
	if k := math.Round(q); math.Abs(q-k) < 1e-12 {
		switch int(math.Mod(math.Mod(k, 4)+4, 4)) {
		case 0:
			return 0, 1
		case 1:
			return 1, 0
		case 2:
			return 0, -1
		case 3:
			return -1, 0
		}
	}
	return math.Sincos(angle)
}

// Translate shifts every vertex by d.
func Translate(vs []r2.Vec, d r2.Vec) []r2.Vec {
	out := make([]r2.Vec, len(vs))
	for i, v := range vs {
		out[i] = r2.Add(v, d)
	}
	return out
}

// Scale multiplies every coordinate by f (unit conversion).
func Scale(vs []r2.Vec, f float64) []r2.Vec {
	out := make([]r2.Vec, len(vs))
	for i, v := range vs {
		out[i] = r2.Scale(f, v)
	}
	return out
}

// Bounds returns the lower-left and upper-right corners of the bounding box.
func Bounds(vs []r2.Vec) (lo, hi r2.Vec) {
	if len(vs) == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo.X = math.Min(lo.X, v.X)
		lo.Y = math.Min(lo.Y, v.Y)
		hi.X = math.Max(hi.X, v.X)
		hi.Y = math.Max(hi.Y, v.Y)
	}
	return lo, hi
}

// HasDuplicateVertices reports consecutive repeated vertices, ignoring the
// closing vertex.
func HasDuplicateVertices(vs []r2.Vec) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i] == vs[i-1] {
			return true
		}
	}
	return false
}

// RegularPolygon returns a closed counter-clockwise polygon with n sides
// inscribed in a circle of radius r about center.
func RegularPolygon(center r2.Vec, r float64, n int) []r2.Vec {
	if n < 3 {
		n = 3
	}
	vs := make([]r2.Vec, 0, n+1)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		vs = append(vs, r2.Vec{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)})
	}
	return append(vs, vs[0])
}
