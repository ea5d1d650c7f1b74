package predict

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Model is the opaque regression backend contract: fit scalar features to a
// scalar target and expose per-feature importances. Any regressor satisfying
// it can back the predictor.
type Model interface {
	Fit(features [][]float64, targets []float64) error
	Predict(features []float64) (float64, error)
	FeatureImportances() []float64
}

// ForestConfig tunes the bagged regression-tree ensemble.
type ForestConfig struct {
	Trees    int
	MaxDepth int
	MinLeaf  int
	Seed     int64
}

// DefaultForestConfig mirrors the reference model: 100 trees, fixed seed.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 100, MaxDepth: 8, MinLeaf: 1, Seed: 42}
}

// Forest is a bagged ensemble of CART regression trees. Feature importances
// are the normalized total squared-error reductions attributed to each
// feature across all trees.
type Forest struct {
	cfg         ForestConfig
	trees       []*treeNode
	importances []float64
	nFeatures   int
}

func NewForest(cfg ForestConfig) *Forest {
	if cfg.Trees <= 0 {
		cfg.Trees = 100
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 8
	}
	if cfg.MinLeaf <= 0 {
		cfg.MinLeaf = 1
	}
	return &Forest{cfg: cfg}
}

func (f *Forest) Fit(features [][]float64, targets []float64) error {
	if len(features) == 0 {
		return errors.New("empty training set")
	}
	if len(features) != len(targets) {
		return fmt.Errorf("feature/target length mismatch: %d vs %d", len(features), len(targets))
	}
	nFeatures := len(features[0])
	for i, row := range features {
		if len(row) != nFeatures {
			return fmt.Errorf("row %d has %d features, want %d", i, len(row), nFeatures)
		}
	}

	rng := rand.New(rand.NewSource(f.cfg.Seed))
	f.nFeatures = nFeatures
	f.trees = make([]*treeNode, 0, f.cfg.Trees)
	f.importances = make([]float64, nFeatures)

	n := len(features)
	for t := 0; t < f.cfg.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		tree := buildTree(features, targets, sample, f.cfg.MaxDepth, f.cfg.MinLeaf, f.importances)
		f.trees = append(f.trees, tree)
	}

	var total float64
	for _, imp := range f.importances {
		total += imp
	}
	if total > 0 {
		for i := range f.importances {
			f.importances[i] /= total
		}
	}
	return nil
}

func (f *Forest) Predict(features []float64) (float64, error) {
	if len(f.trees) == 0 {
		return 0, errors.New("model is not fitted")
	}
	if len(features) != f.nFeatures {
		return 0, fmt.Errorf("got %d features, want %d", len(features), f.nFeatures)
	}
	var sum float64
	for _, tree := range f.trees {
		sum += tree.predict(features)
	}
	return sum / float64(len(f.trees)), nil
}

func (f *Forest) FeatureImportances() []float64 {
	out := make([]float64, len(f.importances))
	copy(out, f.importances)
	return out
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

func (n *treeNode) predict(features []float64) float64 {
	for !n.leaf {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// buildTree grows one CART regression tree over the sampled row indices,
// accumulating each split's squared-error reduction into importances.
func buildTree(features [][]float64, targets []float64, rows []int, depth, minLeaf int, importances []float64) *treeNode {
	mean, sse := meanSSE(targets, rows)
	if depth == 0 || len(rows) < 2*minLeaf || sse == 0 {
		return &treeNode{leaf: true, value: mean}
	}

	feature, threshold, gain, ok := bestSplit(features, targets, rows, minLeaf, sse)
	if !ok {
		return &treeNode{leaf: true, value: mean}
	}
	importances[feature] += gain

	var left, right []int
	for _, r := range rows {
		if features[r][feature] <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      buildTree(features, targets, left, depth-1, minLeaf, importances),
		right:     buildTree(features, targets, right, depth-1, minLeaf, importances),
	}
}

func meanSSE(targets []float64, rows []int) (mean, sse float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	for _, r := range rows {
		mean += targets[r]
	}
	mean /= float64(len(rows))
	for _, r := range rows {
		d := targets[r] - mean
		sse += d * d
	}
	return mean, sse
}

// bestSplit scans every feature and every midpoint between adjacent distinct
// values, minimizing the summed squared error of the two halves.
func bestSplit(features [][]float64, targets []float64, rows []int, minLeaf int, parentSSE float64) (feature int, threshold, gain float64, ok bool) {
	bestSSE := parentSSE
	nFeatures := len(features[rows[0]])

	order := make([]int, len(rows))
	for fi := 0; fi < nFeatures; fi++ {
		copy(order, rows)
		sort.Slice(order, func(a, b int) bool {
			return features[order[a]][fi] < features[order[b]][fi]
		})

		var leftSum, leftSq float64
		rightSum, rightSq := sums(targets, order)

		for i := 0; i < len(order)-1; i++ {
			y := targets[order[i]]
			leftSum += y
			leftSq += y * y
			rightSum -= y
			rightSq -= y * y

			a, b := features[order[i]][fi], features[order[i+1]][fi]
			if a == b {
				continue
			}
			nLeft, nRight := i+1, len(order)-i-1
			if nLeft < minLeaf || nRight < minLeaf {
				continue
			}

			splitSSE := (leftSq - leftSum*leftSum/float64(nLeft)) +
				(rightSq - rightSum*rightSum/float64(nRight))
			if splitSSE < bestSSE-1e-12 {
				bestSSE = splitSSE
				feature = fi
				threshold = (a + b) / 2
				ok = true
			}
		}
	}

	if !ok {
		return 0, 0, 0, false
	}
	return feature, threshold, parentSSE - bestSSE, true
}

func sums(targets []float64, rows []int) (sum, sq float64) {
	for _, r := range rows {
		sum += targets[r]
		sq += targets[r] * targets[r]
	}
	return sum, sq
}
