package section

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/material"
)

// Recompute rebuilds the oriented polygons, resolves bar areas and caches the
// composite properties. Every transform calls it on the section it returns.
// Degenerate shapes are reported in Warnings and leave the properties
// undefined; they are not an error.
func (s *Section) Recompute() error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.Warnings = nil
	s.polygons = nil

	for i, sh := range s.Shapes {
		role, _ := geometry.ParseRole(sh.Role)
		name := sh.Name
		if name == "" {
			name = fmt.Sprintf("shape %d", i+1)
		}
		vs := make([]r2.Vec, len(sh.Vertices))
		for j, p := range sh.Vertices {
			vs[j] = p.Vec()
		}
		if geometry.HasDuplicateVertices(vs) {
			s.warnf("%s: consecutive duplicate vertices", name)
		}
		vs, closed := geometry.ClosePolygon(vs)
		if closed {
			s.warnf("%s: first vertex not repeated at the end, polygon closed", name)
		}
		vs, _ = geometry.OrientFor(vs, role)
		s.polygons = append(s.polygons, Polygon{Name: name, Role: role, Vertices: vs})
	}
	for i, c := range s.Circles {
		role, _ := geometry.ParseRole(c.Role)
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("circle %d", i+1)
		}
		sides := c.Sides
		if sides < 3 {
			sides = DefaultCircleSides
		}
		vs, _ := geometry.OrientFor(geometry.RegularPolygon(c.Center.Vec(), c.R, sides), role)
		s.polygons = append(s.polygons, Polygon{Name: name, Role: role, Vertices: vs})
	}

	for i, b := range s.Reinforcement {
		if b.Area > 0 {
			continue
		}
		bar, err := material.LookupBar(s.Units, b.Size)
		if err != nil {
			return fmt.Errorf("bar %d: %w", i+1, err)
		}
		s.Reinforcement[i].Area = bar.Area
	}

	s.computeBounds()
	s.props, s.propsErr = s.compositeProperties()
	if s.propsErr != nil {
		s.warnf("section properties undefined: %v", s.propsErr)
	}
	return nil
}

func (s *Section) warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *Section) computeBounds() {
	var all []r2.Vec
	for _, p := range s.polygons {
		all = append(all, p.Vertices...)
	}
	s.lo, s.hi = geometry.Bounds(all)
}

func (s *Section) compositeProperties() (geometry.Properties, error) {
	var total geometry.Properties
	first := true
	add := func(p geometry.Properties) {
		if first {
			total, first = p, false
			return
		}
		total = total.Add(p)
	}

	for _, p := range s.polygons[:len(s.Shapes)] {
		props, err := geometry.ComputeProperties(p.Vertices)
		if err != nil {
			s.warnf("%s: %v", p.Name, err)
			continue
		}
		add(props)
	}
	for _, c := range s.Circles {
		props, err := geometry.CircleProperties(c.Center.Vec(), c.R)
		if err != nil {
			continue
		}
		if role, _ := geometry.ParseRole(c.Role); role == geometry.Void {
			props = props.Negated()
		}
		add(props)
	}

	if first || math.Abs(total.Area) == 0 {
		return geometry.Properties{}, geometry.ErrDegenerate
	}
	return total.WithExtents(s.lo, s.hi), nil
}

// Properties returns the cached composite properties, or ErrDegenerate when
// the net area is zero.
func (s *Section) Properties() (geometry.Properties, error) {
	return s.props, s.propsErr
}

// Polygons returns the oriented polygons, solids and voids, including circle
// approximations.
func (s *Section) Polygons() []Polygon {
	return s.polygons
}

// Segments returns the boundary segments of every polygon in winding order.
func (s *Section) Segments() []geometry.Segment {
	var segs []geometry.Segment
	for _, p := range s.polygons {
		segs = append(segs, geometry.Segments(p.Vertices)...)
	}
	return segs
}

// Bounds returns the bounding box of all polygons.
func (s *Section) Bounds() (lo, hi r2.Vec) {
	return s.lo, s.hi
}

// Height is the vertical extent of the section.
func (s *Section) Height() float64 { return s.hi.Y - s.lo.Y }

// Width is the horizontal extent of the section.
func (s *Section) Width() float64 { return s.hi.X - s.lo.X }

// SteelArea is the total reinforcement area.
func (s *Section) SteelArea() float64 {
	var as float64
	for _, b := range s.Reinforcement {
		as += b.Area
	}
	return as
}

// SteelModulus returns Es, defaulting to the unit system's value.
func (s *Section) SteelModulus() float64 {
	if s.Es > 0 {
		return s.Es
	}
	return s.Units.SteelModulus()
}

// YieldStrain is fy/Es.
func (s *Section) YieldStrain() float64 {
	return s.Fy / s.SteelModulus()
}

// Concrete returns the ACI preset for the section's f'c and density.
func (s *Section) Concrete() (material.Concrete, error) {
	fc := s.Fc
	if s.Units == material.Imperial {
		fc /= 1000
	}
	return material.NewConcrete(s.Units, fc, s.Density)
}

// WidthAtY returns the net width of the section cut by a horizontal line at
// y, voids subtracted.
func (s *Section) WidthAtY(y float64) float64 {
	var total float64
	for _, p := range s.polygons {
		w := widthAtY(p.Vertices, y)
		if p.Role == geometry.Void {
			w = -w
		}
		total += w
	}
	return math.Max(total, 0)
}

// widthAtY calculates the width of one closed polygon at a specific Y
func widthAtY(vs []r2.Vec, y float64) float64 {
	intersections := intersectionsAtY(vs, y)
	if len(intersections) < 2 {
		return 0
	}

	// Sort intersections by X coordinate
	sort.Float64s(intersections)

	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}
	return totalWidth
}

// intersectionsAtY finds the X coordinates where a horizontal line at y
// crosses the polygon edges.
func intersectionsAtY(vs []r2.Vec, y float64) []float64 {
	var intersections []float64
	for i := 0; i+1 < len(vs); i++ {
		v1, v2 := vs[i], vs[i+1]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			intersections = append(intersections, v1.X+t*(v2.X-v1.X))
		}
	}
	return intersections
}
