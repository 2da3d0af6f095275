package section

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/material"
)

// Clone returns a deep copy of the definition with derived state rebuilt.
func (s *Section) Clone() (*Section, error) {
	c := &Section{
		Name:          s.Name,
		Description:   s.Description,
		Units:         s.Units,
		Fc:            s.Fc,
		Fy:            s.Fy,
		Es:            s.Es,
		Density:       s.Density,
		Shapes:        make([]Shape, len(s.Shapes)),
		Circles:       append([]Circle(nil), s.Circles...),
		Reinforcement: append([]Bar(nil), s.Reinforcement...),
	}
	for i, sh := range s.Shapes {
		c.Shapes[i] = Shape{Name: sh.Name, Role: sh.Role, Vertices: append([]Point(nil), sh.Vertices...)}
	}
	if err := c.Recompute(); err != nil {
		return nil, err
	}
	return c, nil
}

// mapPoints returns a recomputed copy with f applied to every coordinate:
// shape vertices, circle centers and bar positions.
func (s *Section) mapPoints(f func(r2.Vec) r2.Vec) (*Section, error) {
	c, err := s.Clone()
	if err != nil {
		return nil, err
	}
	for i := range c.Shapes {
		for j, p := range c.Shapes[i].Vertices {
			c.Shapes[i].Vertices[j] = PointOf(f(p.Vec()))
		}
	}
	for i := range c.Circles {
		c.Circles[i].Center = PointOf(f(c.Circles[i].Center.Vec()))
	}
	for i, b := range c.Reinforcement {
		p := f(b.Position())
		c.Reinforcement[i].X, c.Reinforcement[i].Y = p.X, p.Y
	}
	if err := c.Recompute(); err != nil {
		return nil, err
	}
	return c, nil
}

// Rotate returns the section rotated counter-clockwise by angle (radians)
// about origin.
func (s *Section) Rotate(origin r2.Vec, angle float64) (*Section, error) {
	return s.mapPoints(func(v r2.Vec) r2.Vec { return geometry.Rotate([]r2.Vec{v}, origin, angle)[0] })
}

// Transform returns the section expressed in local axes with origin at
// origin and the x-axis turned counter-clockwise by angle (radians). Bending
// about the local x-axis then varies strain with y only.
func (s *Section) Transform(origin r2.Vec, angle float64) (*Section, error) {
	return s.mapPoints(func(v r2.Vec) r2.Vec { return geometry.Transform([]r2.Vec{v}, origin, angle)[0] })
}

// Translate returns the section shifted by d.
func (s *Section) Translate(d r2.Vec) (*Section, error) {
	return s.mapPoints(func(v r2.Vec) r2.Vec { return r2.Add(v, d) })
}

// ConvertTo returns the section in another unit system. Lengths scale by
// 25.4, stresses by the psi/MPa ratio, and sized bars map to the equivalent
// ASTM size of the other table.
func (s *Section) ConvertTo(to material.Units) (*Section, error) {
	f, err := s.Units.LengthFactor(to)
	if err != nil {
		return nil, err
	}
	if f == 1 {
		return s.Clone()
	}
	c, err := s.mapPoints(func(v r2.Vec) r2.Vec { return r2.Scale(f, v) })
	if err != nil {
		return nil, err
	}
	for i := range c.Circles {
		c.Circles[i].R *= f
	}

	stress := 1 / material.PsiPerMPa
	if to == material.Imperial {
		stress = material.PsiPerMPa
	}
	c.Fc *= stress
	c.Fy *= stress
	c.Es *= stress
	if c.Density > 0 {
		// pcf <-> kg/m3
		const kgm3PerPcf = 16.0185
		if to == material.Metric {
			c.Density *= kgm3PerPcf
		} else {
			c.Density /= kgm3PerPcf
		}
	}

	for i, b := range c.Reinforcement {
		if b.Size == 0 {
			c.Reinforcement[i].Area = b.Area * f * f
			continue
		}
		bar, err := material.Bar{Size: b.Size, Units: s.Units}.Convert(to)
		if err != nil {
			return nil, err
		}
		c.Reinforcement[i].Size = bar.Size
		c.Reinforcement[i].Area = bar.Area
	}

	c.Units = to
	if err := c.Recompute(); err != nil {
		return nil, err
	}
	return c, nil
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
