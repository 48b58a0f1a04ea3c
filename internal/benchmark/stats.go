// internal/benchmark/stats.go
package benchmark

import (
	"math"
	"sort"
	"time"
)

func durationMS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

func summarize(samples []float64) TimingStats {
	if len(samples) == 0 {
		return TimingStats{}
	}
	minV, maxV := samples[0], samples[0]
	for _, s := range samples[1:] {
		minV = math.Min(minV, s)
		maxV = math.Max(maxV, s)
	}
	return TimingStats{
		MeanMS:     mean(samples),
		MedianMS:   median(samples),
		MinMS:      minV,
		MaxMS:      maxV,
		StdDevMS:   stdDev(samples),
		Iterations: len(samples),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// median averages the two middle values for even-length input.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// stdDev is the sample standard deviation; fewer than two values yield 0.
func stdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1))
}
