package material

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRebar is returned for a bar size missing from the tables.
var ErrUnknownRebar = errors.New("unknown rebar size")

type barRow struct {
	Diameter float64
	Area     float64
	Weight   float64
	Other    int // equivalent size in the other unit system
}

// ASTM A615 bar tables. Imperial: in, in2, lb/ft. Metric: mm, mm2, kg/m.
var astmImperial = map[int]barRow{
	3:  {0.375, 0.11, 0.376, 10},
	4:  {0.5, 0.2, 0.668, 13},
	5:  {0.625, 0.31, 1.043, 16},
	6:  {0.75, 0.44, 1.502, 19},
	7:  {0.875, 0.60, 2.044, 22},
	8:  {1, 0.79, 2.67, 25},
	9:  {1.128, 1, 3.4, 29},
	10: {1.27, 1.27, 4.303, 32},
	11: {1.41, 1.56, 5.313, 36},
	14: {1.693, 2.25, 7.65, 43},
	18: {2.257, 4.0, 13.6, 57},
}

var astmMetric = map[int]barRow{
	10: {9.5, 71.0, 0.56, 3},
	13: {12.7, 129.0, 0.994, 4},
	16: {15.9, 199.0, 1.552, 5},
	19: {19.1, 284.0, 2.235, 6},
	22: {22.2, 387.0, 3.042, 7},
	25: {25.4, 510.0, 3.973, 8},
	29: {28.7, 645.0, 5.06, 9},
	32: {32.3, 819.0, 6.404, 10},
	36: {35.8, 1006.0, 7.907, 11},
	43: {43.0, 1452.0, 11.38, 14},
	57: {57.3, 2581.0, 20.24, 18},
}

// Bar is one ASTM bar size.
type Bar struct {
	Size     int
	Diameter float64
	Area     float64
	Weight   float64 // per unit length
	Units    Units
}

func table(units Units) (map[int]barRow, error) {
	switch units {
	case Imperial:
		return astmImperial, nil
	case Metric:
		return astmMetric, nil
	}
	return nil, units.validate()
}

// LookupBar returns the tabulated properties of an ASTM bar.
func LookupBar(units Units, size int) (Bar, error) {
	t, err := table(units)
	if err != nil {
		return Bar{}, err
	}
	row, ok := t[size]
	if !ok {
		return Bar{}, fmt.Errorf("%w: %s #%d", ErrUnknownRebar, units, size)
	}
	return Bar{Size: size, Diameter: row.Diameter, Area: row.Area, Weight: row.Weight, Units: units}, nil
}

// Convert returns the equivalent bar in the other unit system.
func (b Bar) Convert(to Units) (Bar, error) {
	if b.Units == to {
		return b, nil
	}
	t, err := table(b.Units)
	if err != nil {
		return Bar{}, err
	}
	row, ok := t[b.Size]
	if !ok {
		return Bar{}, fmt.Errorf("%w: %s #%d", ErrUnknownRebar, b.Units, b.Size)
	}
	return LookupBar(to, row.Other)
}

// Sizes lists the tabulated sizes in ascending order.
func Sizes(units Units) ([]int, error) {
	t, err := table(units)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, 0, len(t))
	for s := range t {
		sizes = append(sizes, s)
	}
	sort.Ints(sizes)
	return sizes, nil
}
