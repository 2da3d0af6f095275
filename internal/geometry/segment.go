package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Segment is one directed edge, or part of an edge, of a polygon boundary.
// Start and End follow the polygon's winding so that boundary line integrals
// keep their sign.
type Segment struct {
	Start r2.Vec
	End   r2.Vec
}

// Seg builds a segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: r2.Vec{X: x1, Y: y1}, End: r2.Vec{X: x2, Y: y2}}
}

// IsVertical reports equal x coordinates.
func (s Segment) IsVertical() bool { return s.Start.X == s.End.X }

// IsHorizontal reports equal y coordinates.
func (s Segment) IsHorizontal() bool { return s.Start.Y == s.End.Y }

// IsDegenerate reports a zero-length segment.
func (s Segment) IsDegenerate() bool { return s.Start == s.End }

// Reversed returns the segment traversed the other way.
func (s Segment) Reversed() Segment { return Segment{Start: s.End, End: s.Start} }

// Segments decomposes a closed vertex list into consecutive pairs.
// The result has len(vs)-1 entries.
func Segments(vs []r2.Vec) []Segment {
	if len(vs) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(vs)-1)
	for i := 1; i < len(vs); i++ {
		segs = append(segs, Segment{Start: vs[i-1], End: vs[i]})
	}
	return segs
}
