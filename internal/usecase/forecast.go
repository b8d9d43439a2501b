package usecase

import (
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/services/ml"
)

// projectForecast walks the ensemble forward day by day. The same scaled
// snapshot of the last observed feature row feeds every day: features are
// not rolled forward from earlier projected days, so day 2..N are repeated
// reads of the latest market state, not a chained multi-step forecast. This
// is a known simplification inherited from the training setup.
func projectForecast(ens *ml.Ensemble, lastScaled []float64, currentPrice float64, days int, now time.Time) []models.ForecastPoint {
	points := make([]models.ForecastPoint, 0, days)
	for day := 1; day <= days; day++ {
		price := ens.Predict(lastScaled)
		change := price - currentPrice
		points = append(points, models.ForecastPoint{
			Day:            day,
			Date:           now.AddDate(0, 0, day).Format("2006-01-02"),
			PredictedPrice: round2(price),
			Change:         round2(change),
			ChangePercent:  round2(change / currentPrice * 100),
		})
	}
	return points
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
