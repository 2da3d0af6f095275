package material

import (
	"errors"
	"fmt"
)

// ErrUnknownUnits is returned for a unit system other than Metric or
// Imperial/US.
var ErrUnknownUnits = errors.New("unknown unit system")

// Units is a unit system name. Lengths are mm (Metric) or in (Imperial/US).
type Units string

const (
	Metric   Units = "Metric"
	Imperial Units = "Imperial/US"
)

// MMPerInch converts lengths between the two systems.
const MMPerInch = 25.4

// PsiPerMPa converts stresses between the two systems.
const PsiPerMPa = 145.0377377

// ParseUnits accepts "Metric" or "Imperial/US" (and the short forms "SI",
// "US", "Imperial").
func ParseUnits(s string) (Units, error) {
	switch s {
	case "Metric", "metric", "SI", "si":
		return Metric, nil
	case "Imperial/US", "Imperial", "imperial", "US", "us":
		return Imperial, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnits, s)
}

// Length returns the length unit label.
func (u Units) Length() string {
	if u == Metric {
		return "mm"
	}
	return "in"
}

// Stress returns the stress unit label.
func (u Units) Stress() string {
	if u == Metric {
		return "MPa"
	}
	return "psi"
}

// Force returns the force unit label (stress times area).
func (u Units) Force() string {
	if u == Metric {
		return "N"
	}
	return "lb"
}

// Moment returns the moment unit label.
func (u Units) Moment() string {
	if u == Metric {
		return "N-mm"
	}
	return "lb-in"
}

// SteelModulus returns Es in the stress unit of u.
func (u Units) SteelModulus() float64 {
	if u == Metric {
		return EsMPa
	}
	return EsPsi
}

// LengthFactor returns the multiplier that converts lengths from u to to.
func (u Units) LengthFactor(to Units) (float64, error) {
	if err := u.validate(); err != nil {
		return 0, err
	}
	if err := to.validate(); err != nil {
		return 0, err
	}
	switch {
	case u == to:
		return 1, nil
	case to == Metric:
		return MMPerInch, nil
	default:
		return 1 / MMPerInch, nil
	}
}

// StressToPsi converts a stress in u to psi.
func (u Units) StressToPsi(s float64) float64 {
	if u == Metric {
		return s * PsiPerMPa
	}
	return s
}

func (u Units) validate() error {
	if u != Metric && u != Imperial {
		return fmt.Errorf("%w: %q", ErrUnknownUnits, string(u))
	}
	return nil
}
