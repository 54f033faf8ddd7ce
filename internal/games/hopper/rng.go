package hopper

import "math/rand"

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func pickDir(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func pickInt(rng *rand.Rand, choices []int) int {
	if len(choices) == 1 {
		return choices[0]
	}
	return choices[rng.Intn(len(choices))]
}
