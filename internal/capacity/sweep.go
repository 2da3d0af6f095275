package capacity

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gorcx/internal/section"
)

// DepthRange returns n neutral axis depths spread evenly from 2% of the
// section height to hiFactor times the height.
func DepthRange(sec *section.Section, n int, hiFactor float64) []float64 {
	if n < 2 {
		n = 2
	}
	h := sec.Height()
	return floats.Span(make([]float64, n), 0.02*h, hiFactor*h)
}

// Sweep analyses every depth concurrently with up to workers goroutines and
// returns the results in depth order. The first error stops collection and
// is returned.
func Sweep(sec *section.Section, in Input, depths []float64, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(depths) {
		workers = len(depths)
	}

	results := make([]*Result, len(depths))
	errs := make([]error, len(depths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				trial := in
				trial.Depth = depths[i]
				results[i], errs[i] = Analyze(sec, trial)
			}
		}()
	}
	for i := range depths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// Point is one point of an interaction diagram.
type Point struct {
	Depth float64
	P     float64
	Mx    float64
	My    float64
	Phi   float64
}

// Interaction reduces sweep results to (P, M) pairs with the moments taken
// about pivot in the bending axes.
func Interaction(results []*Result, pivotX, pivotY float64) []Point {
	pts := make([]Point, len(results))
	for i, r := range results {
		mx := r.Total.Mx - r.Total.P*pivotY
		my := r.Total.My - r.Total.P*pivotX
		pts[i] = Point{Depth: r.Depth, P: r.Total.P, Mx: mx, My: my, Phi: r.Phi}
	}
	return pts
}
