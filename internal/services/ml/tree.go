package ml

import "sort"

// CART regression tree with variance-reduction splits. Shared by the bagged
// forest and the boosting stages.

type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
}

type treeNode struct {
	feature   int
	threshold float64
	value     float64
	left      *treeNode
	right     *treeNode
}

func (t *treeNode) isLeaf() bool { return t.left == nil }

func (t *treeNode) predict(x []float64) float64 {
	node := t
	for !node.isLeaf() {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

// buildTree grows a tree over the rows named by idx.
func buildTree(X [][]float64, y []float64, idx []int, depth int, cfg treeConfig) *treeNode {
	node := &treeNode{value: meanAt(y, idx)}
	if depth >= cfg.maxDepth || len(idx) < cfg.minSamplesSplit {
		return node
	}

	feature, threshold, ok := bestSplit(X, y, idx, cfg.minSamplesLeaf)
	if !ok {
		return node
	}

	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	node.feature = feature
	node.threshold = threshold
	node.left = buildTree(X, y, left, depth+1, cfg)
	node.right = buildTree(X, y, right, depth+1, cfg)
	return node
}

// bestSplit scans every feature for the threshold that minimizes the summed
// squared error of the two children, using prefix sums over rows sorted by
// the feature value.
func bestSplit(X [][]float64, y []float64, idx []int, minLeaf int) (int, float64, bool) {
	m := len(idx)
	if m < 2*minLeaf {
		return 0, 0, false
	}
	d := len(X[idx[0]])

	bestSSE := -1.0
	bestFeature := 0
	bestThreshold := 0.0
	found := false

	order := make([]int, m)
	for j := 0; j < d; j++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return X[order[a]][j] < X[order[b]][j] })

		var sumL, sumSqL float64
		sumR, sumSqR := sums(y, order)

		for k := 1; k < m; k++ {
			v := y[order[k-1]]
			sumL += v
			sumSqL += v * v
			sumR -= v
			sumSqR -= v * v

			prev := X[order[k-1]][j]
			next := X[order[k]][j]
			if prev == next {
				continue
			}
			if k < minLeaf || m-k < minLeaf {
				continue
			}

			sse := (sumSqL - sumL*sumL/float64(k)) + (sumSqR - sumR*sumR/float64(m-k))
			if !found || sse < bestSSE {
				found = true
				bestSSE = sse
				bestFeature = j
				bestThreshold = (prev + next) / 2
			}
		}
	}
	return bestFeature, bestThreshold, found
}

func sums(y []float64, idx []int) (sum, sumSq float64) {
	for _, i := range idx {
		sum += y[i]
		sumSq += y[i] * y[i]
	}
	return sum, sumSq
}

func meanAt(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}
