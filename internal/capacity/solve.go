package capacity

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcx/internal/section"
	"github.com/alexiusacademia/gorcx/internal/stressstrain"
)

// ErrNoSolution is returned when no neutral axis depth produces the target
// axial force.
var ErrNoSolution = errors.New("no neutral axis depth reaches the target axial force")

// MaxDepthFactor bounds the depth search at this multiple of the section
// height, where the section is practically in uniform compression.
const MaxDepthFactor = 100

// SolveDepth finds the neutral axis depth whose net axial force equals
// target, by bisection between a vanishing depth (pure tension side) and
// MaxDepthFactor section heights. in.Depth is ignored.
func SolveDepth(sec *section.Section, in Input, target float64) (*Result, error) {
	h := sec.Height()
	if h <= 0 {
		return nil, fmt.Errorf("%w: section has no height", ErrNoSolution)
	}

	eval := func(c float64) (*Result, error) {
		trial := in
		trial.Depth = c
		return Analyze(sec, trial)
	}

	lo, hi := stressstrain.MinDepth, MaxDepthFactor*h
	rlo, err := eval(lo)
	if err != nil {
		return nil, err
	}
	rhi, err := eval(hi)
	if err != nil {
		return nil, err
	}
	flo, fhi := rlo.Total.P-target, rhi.Total.P-target
	switch {
	case flo == 0:
		return rlo, nil
	case fhi == 0:
		return rhi, nil
	case flo > 0 || fhi < 0:
		return nil, fmt.Errorf("%w: target %g outside [%g, %g]", ErrNoSolution, target, rlo.Total.P, rhi.Total.P)
	}

	tol := 1e-9 * math.Max(math.Abs(rhi.Total.P-rlo.Total.P), 1)
	best := rlo
	for iter := 0; iter < 200; iter++ {
		mid := (lo + hi) / 2
		r, err := eval(mid)
		if err != nil {
			return nil, err
		}
		best = r
		f := r.Total.P - target
		if math.Abs(f) <= tol || hi-lo < 1e-12*h {
			break
		}
		if f < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return best, nil
}
