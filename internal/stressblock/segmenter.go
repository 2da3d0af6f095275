// Package stressblock integrates concrete stress over the compression region of
// a polygon boundary. The boundary is first sliced into elevation bands, one
// per stress regime, and each band is integrated with closed-form Green's
// theorem line integrals.
package stressblock

import (
	"math"

	"github.com/alexiusacademia/gorcx/internal/geometry"
)

// Band is one elevation interval and the boundary pieces that lie inside it.
type Band struct {
	Lo       float64
	Hi       float64
	Segments []geometry.Segment
}

// Slice splits the boundary segments into the bands delimited by bounds.
// bounds must be ascending; bounds[0] is the neutral axis elevation and
// nothing at or below it is emitted.
//
// Sloped and vertical segments are clipped to each band and keep their
// direction of travel. Horizontal segments above the neutral axis are emitted
// whole, larger-x point first, into the band whose interval (Lo, Hi] holds
// their elevation.
func Slice(segs []geometry.Segment, bounds []float64) []Band {
	if len(bounds) < 2 {
		return nil
	}
	bands := make([]Band, len(bounds)-1)
	for i := range bands {
		bands[i] = Band{Lo: bounds[i], Hi: bounds[i+1]}
	}
	yna := bounds[0]

	for _, s := range segs {
		if s.IsDegenerate() {
			continue
		}
		x1, y1 := s.Start.X, s.Start.Y
		x2, y2 := s.End.X, s.End.Y
		if math.Max(y1, y2) <= yna {
			continue
		}

		if s.IsHorizontal() {
			h := s
			if x2 > x1 {
				h = s.Reversed()
			}
			for i := range bands {
				if y1 > bands[i].Lo && y1 <= bands[i].Hi {
					bands[i].Segments = append(bands[i].Segments, h)
					break
				}
			}
			continue
		}

		for i := range bands {
			if pa, ok := clip(s, bands[i].Lo, bands[i].Hi); ok {
				bands[i].Segments = append(bands[i].Segments, pa)
			}
		}
	}
	return bands
}

// clip returns the part of a non-horizontal segment between elevations lo
// and hi, in the segment's direction of travel.
func clip(s geometry.Segment, lo, hi float64) (geometry.Segment, bool) {
	y1, y2 := s.Start.Y, s.End.Y
	a := math.Max(lo, math.Min(y1, y2))
	b := math.Min(hi, math.Max(y1, y2))
	if b <= a {
		return geometry.Segment{}, false
	}
	pa := geometry.Seg(xAt(s, a), a, xAt(s, b), b)
	if y2 < y1 {
		pa = pa.Reversed()
	}
	return pa, true
}

// xAt interpolates the x coordinate of s at elevation y. Endpoints are
// returned exactly.
func xAt(s geometry.Segment, y float64) float64 {
	switch {
	case y == s.Start.Y:
		return s.Start.X
	case y == s.End.Y:
		return s.End.X
	case s.IsVertical():
		return s.Start.X
	}
	m := (s.End.Y - s.Start.Y) / (s.End.X - s.Start.X)
	return (y-s.Start.Y)/m + s.Start.X
}

// Segments returns every segment of every band, in band order.
func Segments(bands []Band) []geometry.Segment {
	var out []geometry.Segment
	for _, b := range bands {
		out = append(out, b.Segments...)
	}
	return out
}
