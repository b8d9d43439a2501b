package indicators

import (
	"fmt"
	"math"
	"time"

	"StockCast/internal/domain/models"
)

// Standard periods used across the indicator set.
var maWindows = []int{5, 10, 20, 50, 100, 200}

const (
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
	rsiPeriod  = 14
	stochLook  = 14
	stochSmth  = 3
	atrPeriod  = 14
	volumeSMA  = 20
	obvEMASpan = 20
)

var momentumHorizons = []int{1, 5, 10, 20}
var volatilityWindows = []int{20, 50}
var bollingerWindows = []int{20, 50}
var lagOffsets = []int{1, 2, 3, 5, 7}

// Compute derives the full indicator table from a daily price series. It is
// a pure function of its input: every column uses only current and prior
// rows, and rows with any undefined value (the warm-up prefix, 199 rows for
// the 200-period SMA) are dropped before returning.
func Compute(bars []models.Bar) (*Table, error) {
	n := len(bars)
	if n == 0 {
		return nil, fmt.Errorf("empty price series")
	}

	dates := make([]time.Time, n)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)
	volume := make([]float64, n)
	for i, b := range bars {
		dates[i] = b.Date
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		closes[i] = b.Close
		volume[i] = b.Volume
	}

	b := newBuilder(n)
	b.add("Open", open)
	b.add("High", high)
	b.add("Low", low)
	b.add("Close", closes)
	b.add("Volume", volume)

	// Moving averages
	for _, w := range maWindows {
		b.add(fmt.Sprintf("SMA_%d", w), rollingMean(closes, w))
	}
	for _, w := range maWindows {
		b.add(fmt.Sprintf("EMA_%d", w), ema(closes, w))
	}

	// MACD
	ema12 := ema(closes, macdFast)
	ema26 := ema(closes, macdSlow)
	macd := sub(ema12, ema26)
	signal := ema(macd, macdSignal)
	b.add("EMA_12", ema12)
	b.add("EMA_26", ema26)
	b.add("MACD", macd)
	b.add("MACD_Signal", signal)
	b.add("MACD_Hist", sub(macd, signal))

	// RSI: simple rolling means of signed deltas, then smoothed by its own SMA.
	rsi := computeRSI(closes, rsiPeriod)
	b.add("RSI", rsi)
	b.add("RSI_Smooth", rollingMeanSlow(rsi, rsiPeriod))

	// Bollinger Bands
	for _, w := range bollingerWindows {
		middle := rollingMean(closes, w)
		std := rollingStd(closes, w)
		upper := make([]float64, n)
		lower := make([]float64, n)
		width := make([]float64, n)
		position := make([]float64, n)
		for i := 0; i < n; i++ {
			upper[i] = middle[i] + 2*std[i]
			lower[i] = middle[i] - 2*std[i]
			width[i] = upper[i] - lower[i]
			if width[i] == 0 {
				position[i] = 0.5
			} else {
				position[i] = (closes[i] - lower[i]) / width[i]
			}
		}
		b.add(fmt.Sprintf("BB_Middle_%d", w), middle)
		b.add(fmt.Sprintf("BB_Upper_%d", w), upper)
		b.add(fmt.Sprintf("BB_Lower_%d", w), lower)
		b.add(fmt.Sprintf("BB_Width_%d", w), width)
		b.add(fmt.Sprintf("BB_Position_%d", w), position)
	}

	// Stochastic oscillator
	ll := rollingMin(low, stochLook)
	hh := rollingMax(high, stochLook)
	stochK := make([]float64, n)
	for i := 0; i < n; i++ {
		denom := hh[i] - ll[i]
		switch {
		case math.IsNaN(denom):
			stochK[i] = math.NaN()
		case denom == 0:
			stochK[i] = 50
		default:
			stochK[i] = 100 * (closes[i] - ll[i]) / denom
		}
	}
	b.add("Stoch_K", stochK)
	b.add("Stoch_D", rollingMeanSlow(stochK, stochSmth))

	// Average True Range
	b.add("ATR", rollingMean(trueRange(high, low, closes), atrPeriod))

	// Volume
	volSMA := rollingMean(volume, volumeSMA)
	volRatio := make([]float64, n)
	for i := 0; i < n; i++ {
		if volSMA[i] == 0 {
			volRatio[i] = 1
		} else {
			volRatio[i] = volume[i] / volSMA[i]
		}
	}
	b.add("Volume_SMA", volSMA)
	b.add("Volume_Ratio", volRatio)
	b.add("Volume_Change", pctChange(volume, 1))

	// On-Balance Volume: cumulative volume signed by the day's price change.
	obv := make([]float64, n)
	for i := 1; i < n; i++ {
		switch {
		case closes[i] > closes[i-1]:
			obv[i] = obv[i-1] + volume[i]
		case closes[i] < closes[i-1]:
			obv[i] = obv[i-1] - volume[i]
		default:
			obv[i] = obv[i-1]
		}
	}
	b.add("OBV", obv)
	b.add("OBV_EMA", ema(obv, obvEMASpan))

	// Returns and momentum
	for _, h := range momentumHorizons {
		b.add(fmt.Sprintf("Return_%d", h), pctChange(closes, h))
	}
	for _, h := range momentumHorizons {
		b.add(fmt.Sprintf("Momentum_%d", h), sub(closes, shift(closes, h)))
	}

	// Volatility: rolling stdev of one-day returns
	ret1 := pctChange(closes, 1)
	for _, w := range volatilityWindows {
		b.add(fmt.Sprintf("Volatility_%d", w), rollingStd(ret1, w))
	}

	// Range and candle shadows
	dailyRange := sub(high, low)
	rangeRatio := make([]float64, n)
	upperShadow := make([]float64, n)
	lowerShadow := make([]float64, n)
	for i := 0; i < n; i++ {
		rangeRatio[i] = dailyRange[i] / closes[i]
		upperShadow[i] = high[i] - math.Max(open[i], closes[i])
		lowerShadow[i] = math.Min(open[i], closes[i]) - low[i]
	}
	b.add("Daily_Range", dailyRange)
	b.add("Range_Ratio", rangeRatio)
	b.add("Upper_Shadow", upperShadow)
	b.add("Lower_Shadow", lowerShadow)

	// Trend flags relative to the medium/long SMAs
	for _, w := range []int{20, 50} {
		sma := b.cols[fmt.Sprintf("SMA_%d", w)]
		trend := make([]float64, n)
		for i := 0; i < n; i++ {
			switch {
			case math.IsNaN(sma[i]):
				trend[i] = math.NaN()
			case closes[i] > sma[i]:
				trend[i] = 1
			default:
				trend[i] = -1
			}
		}
		b.add(fmt.Sprintf("Trend_%d", w), trend)
	}

	// Lagged closes
	for _, lag := range lagOffsets {
		b.add(fmt.Sprintf("Close_Lag_%d", lag), shift(closes, lag))
	}

	return b.trim(dates), nil
}

// computeRSI maps the ratio of average gains to average losses (both simple
// rolling means over the period) through 100 - 100/(1+RS).
func computeRSI(closes []float64, period int) []float64 {
	n := len(closes)
	deltas := diff(closes)
	gains := nanSlice(n)
	losses := nanSlice(n)
	for i := 1; i < n; i++ {
		if deltas[i] > 0 {
			gains[i] = deltas[i]
			losses[i] = 0
		} else {
			gains[i] = 0
			losses[i] = -deltas[i]
		}
	}
	avgGain := rollingMeanSlow(gains, period)
	avgLoss := rollingMeanSlow(losses, period)

	rsi := nanSlice(n)
	for i := 0; i < n; i++ {
		switch {
		case math.IsNaN(avgGain[i]) || math.IsNaN(avgLoss[i]):
		case avgLoss[i] == 0:
			rsi[i] = 100
		default:
			rs := avgGain[i] / avgLoss[i]
			rsi[i] = 100 - 100/(1+rs)
		}
	}
	return rsi
}

// trueRange is max(high-low, |high-prevClose|, |low-prevClose|); the first
// row has no previous close and uses the plain high-low range.
func trueRange(high, low, closes []float64) []float64 {
	n := len(high)
	tr := make([]float64, n)
	if n == 0 {
		return tr
	}
	tr[0] = high[0] - low[0]
	for i := 1; i < n; i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - closes[i-1])
		lc := math.Abs(low[i] - closes[i-1])
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}
	return tr
}

func pctChange(xs []float64, n int) []float64 {
	out := nanSlice(len(xs))
	for i := n; i < len(xs); i++ {
		if xs[i-n] != 0 {
			out[i] = (xs[i] - xs[i-n]) / xs[i-n]
		} else {
			out[i] = 0
		}
	}
	return out
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// builder accumulates full-length columns and trims the warm-up prefix once.
type builder struct {
	n     int
	order []string
	cols  map[string][]float64
}

func newBuilder(n int) *builder {
	return &builder{n: n, cols: make(map[string][]float64)}
}

func (b *builder) add(name string, col []float64) {
	b.order = append(b.order, name)
	b.cols[name] = col
}

// trim drops every leading row that has an undefined value in any column.
// The result is contiguous: columns are defined everywhere past their
// warm-up window, so only the prefix is removed.
func (b *builder) trim(dates []time.Time) *Table {
	first := 0
	for _, name := range b.order {
		col := b.cols[name]
		idx := b.n
		for i, v := range col {
			if !math.IsNaN(v) {
				idx = i
				break
			}
		}
		if idx > first {
			first = idx
		}
	}

	t := &Table{
		dates: dates[first:],
		order: b.order,
		cols:  make(map[string][]float64, len(b.order)),
	}
	for _, name := range b.order {
		t.cols[name] = b.cols[name][first:]
	}
	return t
}
