package material

// LoadCombination is one strength design combination.
// ACI 318-14 Table 5.3.1 / NSCP 2015 Section 203.3.1
type LoadCombination struct {
	ID          string
	Description string
	Dead        float64
	Live        float64
	Roof        float64
	Wind        float64
	Earthquake  float64
	Rain        float64
}

// LoadCombinations are the basic strength combinations.
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// Loads holds unfactored effects of one kind (axial forces or moments) per
// load type.
type Loads struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factored applies the combination factors to l.
func (lc LoadCombination) Factored(l Loads) float64 {
	return lc.Dead*l.Dead +
		lc.Live*l.Live +
		lc.Roof*l.Roof +
		lc.Wind*l.Wind +
		lc.Earthquake*l.Earthquake +
		lc.Rain*l.Rain
}

// Governing returns the largest factored effect over combinations and the
// combination that produced it.
func Governing(l Loads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxEffect float64
	var governing LoadCombination

	for i, combo := range combinations {
		u := combo.Factored(l)
		if i == 0 || u > maxEffect {
			maxEffect = u
			governing = combo
		}
	}

	return maxEffect, governing
}
