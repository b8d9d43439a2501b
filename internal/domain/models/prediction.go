package models

// ForecastPoint is one projected day of the forecast trajectory.
type ForecastPoint struct {
	Day            int     `json:"day"`
	Date           string  `json:"date"`
	PredictedPrice float64 `json:"predicted_price"`
	Change         float64 `json:"change"`
	ChangePercent  float64 `json:"change_percent"`
}

// Summary condenses the trajectory into headline numbers.
type Summary struct {
	PredictedPrice     float64 `json:"predicted_price"`
	TotalChange        float64 `json:"total_change"`
	TotalChangePercent float64 `json:"total_change_percent"`
	Trend              string  `json:"trend"`
	Confidence         float64 `json:"confidence"`
	TargetDays         int     `json:"target_days"`
}

// ModelPerformance reports how the per-request ensemble scored on the
// held-out test split.
type ModelPerformance struct {
	ModelScores  map[string]float64 `json:"model_scores"`
	AvgScore     float64            `json:"avg_score"`
	MAPE         float64            `json:"mape"`
	Method       string             `json:"method"`
	FeaturesUsed int                `json:"features_used"`
	ModelsUsed   int                `json:"models_used"`
}

// TechnicalAnalysis is a snapshot of the latest indicator values.
type TechnicalAnalysis struct {
	CurrentRSI  float64 `json:"current_rsi"`
	CurrentMACD float64 `json:"current_macd"`
	Volatility  float64 `json:"volatility"`
	ATR         float64 `json:"atr"`
	StochasticK float64 `json:"stochastic_k"`
}

// PredictionResult is the full response for one prediction request.
type PredictionResult struct {
	Success           bool              `json:"success"`
	Symbol            string            `json:"symbol"`
	CurrentPrice      float64           `json:"current_price"`
	DataSource        string            `json:"data_source"`
	Predictions       []ForecastPoint   `json:"predictions"`
	Summary           Summary           `json:"summary"`
	ModelPerformance  ModelPerformance  `json:"model_performance"`
	TechnicalAnalysis TechnicalAnalysis `json:"technical_analysis"`
	Timestamp         string            `json:"timestamp"`
	Exchange          string            `json:"exchange"`
}
