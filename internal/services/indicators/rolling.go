package indicators

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Rolling-window primitives. Every function returns a slice of the input
// length with NaN in positions where the window has not yet filled, matching
// the warm-up semantics the engine trims on.

func rollingMean(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i, x := range xs {
		if math.IsNaN(x) {
			// A NaN poisons every window containing it.
			return rollingMeanSlow(xs, window)
		}
		sum += x
		if i >= window {
			sum -= xs[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}

// rollingMeanSlow handles inputs with NaN warm-up prefixes (e.g. deltas).
func rollingMeanSlow(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	for i := window - 1; i < len(xs); i++ {
		w := xs[i-window+1 : i+1]
		if hasNaN(w) {
			continue
		}
		out[i] = stat.Mean(w, nil)
	}
	return out
}

func rollingStd(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 1 {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		w := xs[i-window+1 : i+1]
		if hasNaN(w) {
			continue
		}
		out[i] = stat.StdDev(w, nil)
	}
	return out
}

func rollingMax(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	for i := window - 1; i < len(xs); i++ {
		m := xs[i]
		for j := i - window + 1; j < i; j++ {
			if xs[j] > m {
				m = xs[j]
			}
		}
		out[i] = m
	}
	return out
}

func rollingMin(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	for i := window - 1; i < len(xs); i++ {
		m := xs[i]
		for j := i - window + 1; j < i; j++ {
			if xs[j] < m {
				m = xs[j]
			}
		}
		out[i] = m
	}
	return out
}

// ema computes a recursive exponential moving average seeded with the first
// value, alpha = 2/(span+1). Defined from the first row on.
func ema(xs []float64, span int) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}

// shift returns xs delayed by n rows, NaN for the first n.
func shift(xs []float64, n int) []float64 {
	out := nanSlice(len(xs))
	for i := n; i < len(xs); i++ {
		out[i] = xs[i-n]
	}
	return out
}

// diff returns one-row differences, NaN in the first row.
func diff(xs []float64) []float64 {
	out := nanSlice(len(xs))
	for i := 1; i < len(xs); i++ {
		out[i] = xs[i] - xs[i-1]
	}
	return out
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	nan := math.NaN()
	for i := range out {
		out[i] = nan
	}
	return out
}

func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
