package ecosystem

import "math"

// Balance rates how close the food chain is to its ideal ratios, from 0 to 100.
// Ideal herbivores are plants/5 and ideal predators are herbivores/3.
func Balance(s State) int {
	idealHerbivores := float64(s.Plants) / 5
	idealPredators := float64(s.Herbivores) / 3

	devHerb := math.Abs(float64(s.Herbivores)-idealHerbivores) / nonZero(idealHerbivores)
	devPred := math.Abs(float64(s.Predators)-idealPredators) / nonZero(idealPredators)

	balance := 100 - math.Min((devHerb+devPred)/2*100, 100)
	return max(int(math.Round(balance)), 0)
}

// nonZero substitutes 1 for a zero denominator.
func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
