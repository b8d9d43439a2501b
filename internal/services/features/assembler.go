package features

import (
	"fmt"

	"StockCast/internal/services/indicators"
)

// Columns is the fixed feature vector, in training order. Inference reuses
// this exact list, so the order must never depend on table internals.
var Columns = []string{
	"Open", "High", "Low", "Volume",
	"SMA_5", "SMA_10", "SMA_20", "SMA_50", "SMA_100", "SMA_200",
	"EMA_5", "EMA_10", "EMA_20", "EMA_50", "EMA_100", "EMA_200",
	"EMA_12", "EMA_26", "MACD", "MACD_Signal", "MACD_Hist",
	"RSI", "RSI_Smooth",
	"BB_Middle_20", "BB_Upper_20", "BB_Lower_20", "BB_Width_20", "BB_Position_20",
	"BB_Middle_50", "BB_Upper_50", "BB_Lower_50", "BB_Width_50", "BB_Position_50",
	"Stoch_K", "Stoch_D", "ATR",
	"Volume_SMA", "Volume_Ratio", "Volume_Change",
	"OBV", "OBV_EMA",
	"Return_1", "Return_5", "Return_10", "Return_20",
	"Momentum_1", "Momentum_5", "Momentum_10", "Momentum_20",
	"Volatility_20", "Volatility_50",
	"Daily_Range", "Range_Ratio", "Upper_Shadow", "Lower_Shadow",
	"Trend_20", "Trend_50",
	"Close_Lag_1", "Close_Lag_2", "Close_Lag_3", "Close_Lag_5", "Close_Lag_7",
}

// Target is the prediction target column: the raw closing price.
const Target = "Close"

// Assemble selects the feature matrix and target vector from an indicator
// table, row-aligned with the table's date index.
func Assemble(table *indicators.Table) ([][]float64, []float64, error) {
	for _, name := range Columns {
		if table.Column(name) == nil {
			return nil, nil, fmt.Errorf("missing feature column %q", name)
		}
	}
	target := table.Column(Target)
	if target == nil {
		return nil, nil, fmt.Errorf("missing target column %q", Target)
	}

	n := table.Len()
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = table.Row(i, Columns)
		y[i] = target[i]
	}
	return X, y, nil
}
