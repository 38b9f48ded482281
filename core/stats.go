package core

import "math"

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev returns the sample standard deviation (Bessel's correction,
// n-1 denominator) of values around avg. With fewer than two points the
// deviation is undefined; this returns 0 so callers can treat the series as
// having no measurable spread.
func sampleStdDev(values []float64, avg float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		d := v - avg
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// round3 rounds v to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
