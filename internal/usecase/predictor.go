package usecase

import (
	"context"
	"math"
	"time"

	"StockCast/internal/domain/models"
	"StockCast/internal/services/features"
	"StockCast/internal/services/indicators"
	"StockCast/internal/services/marketdata"
	"StockCast/internal/services/ml"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	xlogger "StockCast/pkg/logger"
	"StockCast/pkg/metrics"
)

const (
	methodLabel   = "Weighted Ensemble (Random Forest + Gradient Boosting + Ridge)"
	exchangeLabel = "NSE/BSE"
)

// Predictor runs the full forecasting pipeline for one request: price
// history, indicator table, feature assembly, ensemble training and forward
// projection. It keeps no state between calls; every request trains its own
// scaler and models.
type Predictor struct {
	source  *marketdata.Source
	logger  *xlogger.Logger
	metrics *metrics.Recorder
	cfg     *config.Config
	now     func() time.Time
}

// NewPredictor creates the pipeline use case.
func NewPredictor(source *marketdata.Source, logger *xlogger.Logger, rec *metrics.Recorder, cfg *config.Config) *Predictor {
	return &Predictor{
		source:  source,
		logger:  logger,
		metrics: rec,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Predict produces a multi-day forecast for a symbol. Domain failures
// (insufficient history) come back as 400-class AppErrors; anything
// unexpected is a 500-class AppError with the raw message.
func (p *Predictor) Predict(ctx context.Context, symbol string, days int) (*models.PredictionResult, error) {
	start := p.now()

	res, err := p.run(ctx, symbol, days)
	if err != nil {
		p.metrics.RecordPrediction("failure")
		return nil, err
	}

	p.metrics.RecordPrediction("success")
	p.metrics.RecordStage("pipeline", time.Since(start).Seconds())
	return res, nil
}

func (p *Predictor) run(ctx context.Context, symbol string, days int) (*models.PredictionResult, error) {
	bars, source := p.source.Fetch(ctx, symbol)
	p.metrics.RecordDataSource(source)

	if len(bars) < p.cfg.Forecast.MinHistory {
		return nil, xhttp.BadRequestErrorf("need at least %d days of data for %s, got %d",
			p.cfg.Forecast.MinHistory, symbol, len(bars))
	}

	stageStart := p.now()
	table, err := indicators.Compute(bars)
	if err != nil {
		return nil, xhttp.InternalErrorf("indicator computation failed: %v", err)
	}
	p.metrics.RecordStage("indicators", time.Since(stageStart).Seconds())

	if table.Len() < p.cfg.Forecast.MinTrained {
		return nil, xhttp.BadRequestErrorf("insufficient data after indicator warm-up: %d rows", table.Len())
	}

	X, y, err := features.Assemble(table)
	if err != nil {
		return nil, xhttp.InternalErrorf("feature assembly failed: %v", err)
	}

	stageStart = p.now()
	ens, scaler, err := ml.TrainEnsemble(X, y, ml.TrainConfig{
		TrainSplit: p.cfg.Forecast.TrainSplit,
		Seed:       p.cfg.Forecast.Seed,
	})
	if err != nil {
		return nil, xhttp.InternalErrorf("model training failed: %v", err)
	}
	p.metrics.RecordStage("training", time.Since(stageStart).Seconds())

	for m, model := range ens.Models {
		p.metrics.RecordModelScore(model.Name(), ens.Scores[m])
	}
	p.logger.Info("ensemble trained",
		xlogger.String("symbol", symbol),
		xlogger.Float64("mean_score", ens.MeanScore),
		xlogger.Float64("mape", ens.MAPE),
		xlogger.Any("weights", ens.Weights),
	)

	currentPrice := y[len(y)-1]
	lastScaled := scaler.TransformRow(X[len(X)-1])
	now := p.now()

	points := projectForecast(ens, lastScaled, currentPrice, days, now)

	return p.compose(symbol, source, currentPrice, points, ens, table, days, now), nil
}

// compose packages the forecast into the response shape. No business logic
// beyond field copying and rounding.
func (p *Predictor) compose(
	symbol, source string,
	currentPrice float64,
	points []models.ForecastPoint,
	ens *ml.Ensemble,
	table *indicators.Table,
	days int,
	now time.Time,
) *models.PredictionResult {
	final := points[len(points)-1]

	avgChange := 0.0
	for _, pt := range points {
		avgChange += pt.Change
	}
	avgChange /= float64(len(points))
	trend := "DOWNWARD"
	if avgChange > 0 {
		trend = "UPWARD"
	}

	confidence := clamp(ens.MeanScore*100-ens.MAPE/2,
		p.cfg.Forecast.ConfidenceFloor, p.cfg.Forecast.ConfidenceCeiling)

	modelScores := make(map[string]float64, len(ens.Models))
	for m, model := range ens.Models {
		modelScores[model.Name()] = round3(ens.Scores[m])
	}

	return &models.PredictionResult{
		Success:      true,
		Symbol:       symbol,
		CurrentPrice: round2(currentPrice),
		DataSource:   source,
		Predictions:  points,
		Summary: models.Summary{
			PredictedPrice:     final.PredictedPrice,
			TotalChange:        final.Change,
			TotalChangePercent: final.ChangePercent,
			Trend:              trend,
			Confidence:         round1(confidence),
			TargetDays:         days,
		},
		ModelPerformance: models.ModelPerformance{
			ModelScores:  modelScores,
			AvgScore:     round3(ens.MeanScore),
			MAPE:         round2(ens.MAPE),
			Method:       methodLabel,
			FeaturesUsed: len(features.Columns),
			ModelsUsed:   len(ens.Models),
		},
		TechnicalAnalysis: models.TechnicalAnalysis{
			CurrentRSI:  round2(table.Last("RSI")),
			CurrentMACD: round2(table.Last("MACD")),
			Volatility:  round2(table.Last("Volatility_20") * 100),
			ATR:         round2(table.Last("ATR")),
			StochasticK: round2(table.Last("Stoch_K")),
		},
		Timestamp: now.Format(time.RFC3339),
		Exchange:  exchangeLabel,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
