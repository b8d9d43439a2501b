package models

import "time"

// Bar represents one daily OHLCV record, the unit of the price history the
// pipeline trains on. Bars are kept ascending by date with no duplicates.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the closing prices of a series.
func Closes(bars []Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}
