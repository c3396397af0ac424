package game

import "math"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// noteFrequency raises base by a whole tone per step.
func noteFrequency(base float64, step int) float64 {
	return base * math.Pow(2, float64(2*step)/12)
}
