package marketdata

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"StockCast/internal/domain/models"
)

// Synthetic series parameters: a gentle upward drift with realistic daily
// noise, matching typical large-cap behavior.
const (
	driftMean  = 0.0005
	driftStdev = 0.015
	volumeMin  = 1_000_000
	volumeMax  = 15_000_000
)

// GenerateSynthetic builds a deterministic daily OHLCV series for a symbol.
// The generator is seeded from a hash of the symbol, so repeated calls for
// the same symbol yield an identical series, and different symbols get
// different base prices and paths.
func GenerateSynthetic(symbol string, days int, end time.Time) []models.Bar {
	seed := symbolHash(symbol)
	rng := rand.New(rand.NewSource(int64(seed % 10000)))

	basePrice := 1000 + float64(seed%3000)

	// Geometric random walk of daily returns compounded into a price path.
	prices := make([]float64, days)
	price := basePrice
	for i := 0; i < days; i++ {
		ret := rng.NormFloat64()*driftStdev + driftMean
		price *= 1 + ret
		prices[i] = price
	}

	end = end.Truncate(24 * time.Hour)
	bars := make([]models.Bar, days)
	for i := 0; i < days; i++ {
		p := prices[i]
		open := p * (1 + uniform(rng, -0.01, 0.01))
		high := p * (1 + uniform(rng, 0, 0.025))
		low := p * (1 - uniform(rng, 0, 0.025))
		bars[i] = models.Bar{
			Date:   end.AddDate(0, 0, i-days+1),
			Open:   open,
			High:   math.Max(high, math.Max(open, p)),
			Low:    math.Min(low, math.Min(open, p)),
			Close:  p,
			Volume: float64(volumeMin + rng.Int63n(volumeMax-volumeMin)),
		}
	}
	return bars
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func symbolHash(symbol string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	return h.Sum64()
}
