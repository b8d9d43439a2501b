package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Regressor is a model that can be fit on a feature matrix and queried one
// row at a time.
type Regressor interface {
	Fit(X [][]float64, y []float64) error
	Predict(x []float64) float64
	Name() string
}

// TrainConfig controls the ensemble training recipe.
type TrainConfig struct {
	TrainSplit float64 // chronological train fraction, e.g. 0.8
	Seed       int64   // fixes every stochastic model component
}

// Ensemble is a performance-weighted combination of independently trained
// regressors, plus the diagnostics collected on the held-out test split.
type Ensemble struct {
	Models    []Regressor
	Scores    []float64 // per-model R² on the test split
	Weights   []float64 // normalized, sum to 1
	MeanScore float64
	MAPE      float64
}

// TrainEnsemble splits the rows chronologically, fits a robust scaler on the
// training block only, trains a bagged forest, a boosted ensemble and a
// ridge regressor on the scaled block, and weights them by their held-out
// scores. If any model fails to fit, the whole training step fails.
func TrainEnsemble(X [][]float64, y []float64, cfg TrainConfig) (*Ensemble, *RobustScaler, error) {
	n := len(X)
	split := int(cfg.TrainSplit * float64(n))
	if split < 2 || n-split < 2 {
		return nil, nil, fmt.Errorf("not enough rows for a train/test split: %d", n)
	}

	XTrain, XTest := X[:split], X[split:]
	yTrain, yTest := y[:split], y[split:]

	scaler := &RobustScaler{}
	if err := scaler.Fit(XTrain); err != nil {
		return nil, nil, err
	}
	XTrainScaled := scaler.Transform(XTrain)
	XTestScaled := scaler.Transform(XTest)

	models := []Regressor{
		NewRandomForest(cfg.Seed),
		NewGradientBoosting(),
		NewRidge(1.0),
	}

	scores := make([]float64, len(models))
	testPreds := make([][]float64, len(models))
	for m, model := range models {
		if err := model.Fit(XTrainScaled, yTrain); err != nil {
			return nil, nil, fmt.Errorf("fit %s: %w", model.Name(), err)
		}
		preds := make([]float64, len(XTestScaled))
		for i, x := range XTestScaled {
			preds[i] = model.Predict(x)
		}
		testPreds[m] = preds
		scores[m] = stat.RSquaredFrom(preds, yTest, nil)
	}

	weights := scoreWeights(scores)

	// Ensemble error on the held-out block
	mape := 0.0
	counted := 0
	for i, truth := range yTest {
		if truth == 0 {
			continue
		}
		combined := 0.0
		for m := range models {
			combined += weights[m] * testPreds[m][i]
		}
		mape += math.Abs((truth - combined) / truth)
		counted++
	}
	if counted > 0 {
		mape = mape / float64(counted) * 100
	}

	return &Ensemble{
		Models:    models,
		Scores:    scores,
		Weights:   weights,
		MeanScore: stat.Mean(scores, nil),
		MAPE:      mape,
	}, scaler, nil
}

// scoreWeights normalizes test scores into ensemble weights. R² can go
// negative for a badly fit model; negative scores are clamped to zero so a
// bad model is excluded instead of subtracting from the ensemble. When every
// score clamps to zero the models share equal weight.
func scoreWeights(scores []float64) []float64 {
	weights := make([]float64, len(scores))
	total := 0.0
	for i, s := range scores {
		if s > 0 {
			weights[i] = s
			total += s
		}
	}
	if total == 0 {
		for i := range weights {
			weights[i] = 1 / float64(len(weights))
		}
		return weights
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}

// Predict combines the model outputs for one scaled feature vector.
func (e *Ensemble) Predict(x []float64) float64 {
	out := 0.0
	for m, model := range e.Models {
		out += e.Weights[m] * model.Predict(x)
	}
	return out
}
