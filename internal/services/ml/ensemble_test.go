package ml

import (
	"math"
	"testing"
)

// linearDataset builds a noise-free y = 3*x0 - 2*x1 + 5 dataset with enough
// spread for every model to learn it.
func linearDataset(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x0 := float64(i)
		x1 := float64(i%7) - 3
		X[i] = []float64{x0, x1}
		y[i] = 3*x0 - 2*x1 + 5
	}
	return X, y
}

func TestRobustScaler(t *testing.T) {
	X := [][]float64{
		{1, 10},
		{2, 10},
		{3, 10},
		{4, 10},
		{5, 10},
	}
	s := &RobustScaler{}
	if err := s.Fit(X); err != nil {
		t.Fatalf("fit: %v", err)
	}

	row := s.TransformRow([]float64{5, 10})
	if row[0] != 1 {
		t.Fatalf("expected (5-median)/iqr = 1, got %v", row[0])
	}
	// constant column: centered, scale falls back to 1
	if row[1] != 0 {
		t.Fatalf("constant column should center to 0, got %v", row[1])
	}

	out := s.Transform(X)
	if len(out) != len(X) || len(out[0]) != 2 {
		t.Fatalf("transform changed dimensions: %dx%d", len(out), len(out[0]))
	}
}

func TestRobustScalerEmpty(t *testing.T) {
	s := &RobustScaler{}
	if err := s.Fit(nil); err == nil {
		t.Fatal("expected error on empty matrix")
	}
}

func TestRidgeRecoversLinear(t *testing.T) {
	X, y := linearDataset(60)
	r := NewRidge(0.001)
	if err := r.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}

	for i, x := range X {
		got := r.Predict(x)
		if math.Abs(got-y[i]) > 0.5 {
			t.Fatalf("row %d: predicted %v, want %v", i, got, y[i])
		}
	}
}

func TestRandomForestDeterministic(t *testing.T) {
	X, y := linearDataset(80)

	a := NewRandomForest(42)
	b := NewRandomForest(42)
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}

	for _, x := range X {
		if a.Predict(x) != b.Predict(x) {
			t.Fatal("same seed produced different forests")
		}
	}
}

func TestRandomForestFitsTrainingData(t *testing.T) {
	X, y := linearDataset(80)
	f := NewRandomForest(42)
	if err := f.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}

	// interior points should be close; bagged trees interpolate well here
	for i := 10; i < 70; i++ {
		got := f.Predict(X[i])
		if math.Abs(got-y[i]) > 15 {
			t.Fatalf("row %d: predicted %v, want %v", i, got, y[i])
		}
	}
}

func TestGradientBoostingBeatsMeanBaseline(t *testing.T) {
	X, y := linearDataset(80)
	g := NewGradientBoosting()
	if err := g.Fit(X, y); err != nil {
		t.Fatalf("fit: %v", err)
	}

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	var sseModel, sseMean float64
	for i, x := range X {
		dm := g.Predict(x) - y[i]
		db := mean - y[i]
		sseModel += dm * dm
		sseMean += db * db
	}
	if sseModel >= sseMean {
		t.Fatalf("boosting no better than mean baseline: %v vs %v", sseModel, sseMean)
	}
}

func TestScoreWeights(t *testing.T) {
	w := scoreWeights([]float64{0.8, 0.2, -0.5})
	if w[2] != 0 {
		t.Fatalf("negative score should clamp to zero weight, got %v", w[2])
	}
	sum := w[0] + w[1] + w[2]
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("weights sum to %v", sum)
	}
	if math.Abs(w[0]-0.8) > 1e-12 || math.Abs(w[1]-0.2) > 1e-12 {
		t.Fatalf("unexpected weights: %v", w)
	}
}

func TestScoreWeightsAllNonPositive(t *testing.T) {
	w := scoreWeights([]float64{-1, 0, -0.3})
	for i, v := range w {
		if math.Abs(v-1.0/3) > 1e-12 {
			t.Fatalf("weight %d should fall back to equal share, got %v", i, v)
		}
	}
}

func TestTrainEnsemble(t *testing.T) {
	X, y := linearDataset(100)
	ens, scaler, err := TrainEnsemble(X, y, TrainConfig{TrainSplit: 0.8, Seed: 42})
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if scaler == nil {
		t.Fatal("expected a fitted scaler")
	}
	if len(ens.Models) != 3 || len(ens.Scores) != 3 || len(ens.Weights) != 3 {
		t.Fatalf("expected 3 models with scores and weights, got %d/%d/%d",
			len(ens.Models), len(ens.Scores), len(ens.Weights))
	}

	sum := 0.0
	for _, w := range ens.Weights {
		if w < 0 {
			t.Fatalf("negative weight: %v", w)
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights sum to %v", sum)
	}
	if ens.MAPE < 0 {
		t.Fatalf("negative MAPE: %v", ens.MAPE)
	}

	pred := ens.Predict(scaler.TransformRow(X[len(X)-1]))
	if math.IsNaN(pred) || math.IsInf(pred, 0) {
		t.Fatalf("undefined ensemble prediction: %v", pred)
	}
}

func TestTrainEnsembleTooFewRows(t *testing.T) {
	X, y := linearDataset(3)
	if _, _, err := TrainEnsemble(X, y, TrainConfig{TrainSplit: 0.8, Seed: 42}); err == nil {
		t.Fatal("expected error with too few rows for a split")
	}
}

type constantModel struct{ v float64 }

func (m constantModel) Fit([][]float64, []float64) error { return nil }
func (m constantModel) Predict([]float64) float64        { return m.v }
func (m constantModel) Name() string                     { return "constant" }

func TestEnsemblePredictWeighting(t *testing.T) {
	ens := &Ensemble{
		Models:  []Regressor{constantModel{v: 10}, constantModel{v: 20}},
		Weights: []float64{0.25, 0.75},
	}
	got := ens.Predict([]float64{0})
	if math.Abs(got-17.5) > 1e-12 {
		t.Fatalf("expected weighted mean 17.5, got %v", got)
	}
}
