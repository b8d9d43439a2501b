package ml

import (
	"fmt"
	"math/rand"
)

// RandomForest is a bagged ensemble of regression trees: each tree fits a
// bootstrap resample of the training rows and predictions are averaged. The
// seed fixes every resample, so fitting is deterministic.
type RandomForest struct {
	NTrees          int
	MaxDepth        int
	MinSamplesSplit int
	MinSamplesLeaf  int
	Seed            int64

	trees []*treeNode
}

// NewRandomForest creates a forest with the default training recipe.
func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NTrees:          100,
		MaxDepth:        15,
		MinSamplesSplit: 5,
		MinSamplesLeaf:  2,
		Seed:            seed,
	}
}

func (f *RandomForest) Name() string { return "random_forest" }

func (f *RandomForest) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("random forest: empty training data")
	}

	cfg := treeConfig{
		maxDepth:        f.MaxDepth,
		minSamplesSplit: f.MinSamplesSplit,
		minSamplesLeaf:  f.MinSamplesLeaf,
	}

	f.trees = make([]*treeNode, f.NTrees)
	for t := 0; t < f.NTrees; t++ {
		rng := rand.New(rand.NewSource(f.Seed + int64(t)))
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}
		f.trees[t] = buildTree(X, y, idx, 0, cfg)
	}
	return nil
}

func (f *RandomForest) Predict(x []float64) float64 {
	sum := 0.0
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees))
}
