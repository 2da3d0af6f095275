// Package section holds the caller-side section object: concrete shapes,
// reinforcement, the unit system, and the geometric properties derived from
// them. Derived state is rebuilt by Recompute after every transform.
package section

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/alexiusacademia/gorcx/internal/geometry"
	"github.com/alexiusacademia/gorcx/internal/material"
)

// DefaultCircleSides is the polygon resolution used to integrate circles.
const DefaultCircleSides = 72

// Section is a reinforced concrete cross section. Coordinates use:
// - Y-axis pointing upward (compression at the top for positive bending)
// - X-axis pointing to the right
// - any convenient origin
type Section struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Units       material.Units `json:"units" yaml:"units"`

	// Material properties, in the stress unit of Units
	Fc      float64 `json:"fc" yaml:"fc"`
	Fy      float64 `json:"fy,omitempty" yaml:"fy,omitempty"`
	Es      float64 `json:"es,omitempty" yaml:"es,omitempty"`
	Density float64 `json:"density,omitempty" yaml:"density,omitempty"`

	Shapes        []Shape  `json:"shapes" yaml:"shapes"`
	Circles       []Circle `json:"circles,omitempty" yaml:"circles,omitempty"`
	Reinforcement []Bar    `json:"reinforcement,omitempty" yaml:"reinforcement,omitempty"`

	// Warnings collects non-fatal geometry findings from the last Recompute.
	Warnings []string `json:"-" yaml:"-"`

	polygons []Polygon
	props    geometry.Properties
	propsErr error
	lo, hi   r2.Vec
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec converts p to a gonum vector.
func (p Point) Vec() r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// PointOf converts a gonum vector back to a Point.
func PointOf(v r2.Vec) Point { return Point{X: v.X, Y: v.Y} }

// Shape is one polygon of the section. Role is "solid" (default) or "void".
type Shape struct {
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Role     string  `json:"role,omitempty" yaml:"role,omitempty"`
	Vertices []Point `json:"vertices" yaml:"vertices"`
}

// Circle is a circular shape. Sides sets the polygon resolution used for
// stress-block integration; properties are exact.
type Circle struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Role   string  `json:"role,omitempty" yaml:"role,omitempty"`
	Center Point   `json:"center" yaml:"center"`
	R      float64 `json:"r" yaml:"r"`
	Sides  int     `json:"sides,omitempty" yaml:"sides,omitempty"`
}

// Bar is one reinforcing bar. Either Area or an ASTM Size is given; a Size
// alone is resolved from the table for the section's unit system.
type Bar struct {
	X           float64 `json:"x" yaml:"x"`
	Y           float64 `json:"y" yaml:"y"`
	Area        float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Size        int     `json:"size,omitempty" yaml:"size,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Position returns the bar location as a vector.
func (b Bar) Position() r2.Vec { return r2.Vec{X: b.X, Y: b.Y} }

// Polygon is a closed, oriented vertex list ready for integration: solids
// wind counter-clockwise, voids clockwise.
type Polygon struct {
	Name     string
	Role     geometry.Role
	Vertices []r2.Vec
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if _, err := material.ParseUnits(string(s.Units)); err != nil {
		return &ValidationError{msg: err.Error()}
	}
	if len(s.Shapes) == 0 && len(s.Circles) == 0 {
		return &ValidationError{"section must have at least one shape or circle"}
	}
	for i, sh := range s.Shapes {
		if len(sh.Vertices) < 3 {
			return &ValidationError{msg: fmt.Sprintf("shape %d must have at least 3 vertices", i+1)}
		}
		if _, ok := geometry.ParseRole(sh.Role); !ok {
			return &ValidationError{msg: fmt.Sprintf("shape %d: unknown role %q", i+1, sh.Role)}
		}
	}
	for i, c := range s.Circles {
		if c.R <= 0 {
			return &ValidationError{msg: fmt.Sprintf("circle %d must have a positive radius", i+1)}
		}
		if _, ok := geometry.ParseRole(c.Role); !ok {
			return &ValidationError{msg: fmt.Sprintf("circle %d: unknown role %q", i+1, c.Role)}
		}
	}
	if s.Fc <= 0 {
		return &ValidationError{"f'c must be positive"}
	}
	if len(s.Reinforcement) > 0 && s.Fy <= 0 {
		return &ValidationError{"fy must be positive when reinforcement is given"}
	}
	for i, b := range s.Reinforcement {
		if b.Area <= 0 && b.Size == 0 {
			return &ValidationError{msg: fmt.Sprintf("bar %d needs a positive area or a size", i+1)}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
