package ml

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// GradientBoosting fits shallow regression trees to the residuals of the
// running prediction, shrunk by the learning rate. With a squared-error
// objective and full-sample stages the fit is fully deterministic.
type GradientBoosting struct {
	NEstimators  int
	LearningRate float64
	MaxDepth     int

	base  float64
	trees []*treeNode
}

// NewGradientBoosting creates a boosted ensemble with the default recipe.
func NewGradientBoosting() *GradientBoosting {
	return &GradientBoosting{
		NEstimators:  100,
		LearningRate: 0.1,
		MaxDepth:     3,
	}
}

func (g *GradientBoosting) Name() string { return "gradient_boosting" }

func (g *GradientBoosting) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("gradient boosting: empty training data")
	}

	cfg := treeConfig{
		maxDepth:        g.MaxDepth,
		minSamplesSplit: 2,
		minSamplesLeaf:  1,
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	g.base = stat.Mean(y, nil)
	pred := make([]float64, n)
	for i := range pred {
		pred[i] = g.base
	}
	residual := make([]float64, n)

	g.trees = make([]*treeNode, g.NEstimators)
	for t := 0; t < g.NEstimators; t++ {
		for i := range residual {
			residual[i] = y[i] - pred[i]
		}
		tree := buildTree(X, residual, idx, 0, cfg)
		g.trees[t] = tree
		for i := range pred {
			pred[i] += g.LearningRate * tree.predict(X[i])
		}
	}
	return nil
}

func (g *GradientBoosting) Predict(x []float64) float64 {
	out := g.base
	for _, t := range g.trees {
		out += g.LearningRate * t.predict(x)
	}
	return out
}
