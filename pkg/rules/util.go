package rules

import "math"

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64) float64 {
	return math.Sqrt(variance(xs))
}

// coefficientOfVariation returns σ/μ, or 0 when μ is 0 (undefined, treated
// as perfectly uniform rather than infinite).
func coefficientOfVariation(xs []float64) float64 {
	m := mean(xs)
	if m == 0 {
		return 0
	}
	return stddev(xs) / m
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// gaussian is the repeated "Gaussian centered at μ*, width σ*" mapping
// used throughout §4.D: exp(-(x-mu)²/(2·sigma²)).
func gaussian(x, mu, sigma float64) float64 {
	d := x - mu
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

// uniformityScore implements the repeated "1 − min(cv/√(n−1), 1)" shape
// used by treasure/monster distribution and geometric balance.
func uniformityScore(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 1
	}
	cv := coefficientOfVariation(xs)
	return clamp01(1 - math.Min(cv/math.Sqrt(float64(n-1)), 1))
}

// geometricMean returns exp(mean(log(f))) over the positive values in fs,
// skipping non-positive ones (§4.D.8: "excluding zeros").
func geometricMean(fs ...float64) float64 {
	var logs []float64
	for _, f := range fs {
		if f > 0 {
			logs = append(logs, math.Log(f))
		}
	}
	if len(logs) == 0 {
		return 0
	}
	return math.Exp(mean(logs))
}
