// Package validation produces held-out predictions for ensembling: KFold and
// Holdout split row positions, and Model fits a fresh estimator per fold.
package validation

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// Fold holds the row positions of one train/test split.
type Fold struct {
	Train []int
	Test  []int
}

// Splitter partitions n rows into folds.
type Splitter interface {
	Split(n int) ([]Fold, error)
}

// KFold splits rows into NSplits consecutive test folds. The first n % NSplits
// folds get one extra row.
type KFold struct {
	NSplits int
	Shuffle bool
	Seed    uint64
}

// NewKFold creates a KFold splitter.
func NewKFold(nSplits int, shuffle bool, seed uint64) *KFold {
	return &KFold{NSplits: nSplits, Shuffle: shuffle, Seed: seed}
}

// Split implements Splitter.
func (kf *KFold) Split(n int) ([]Fold, error) {
	if kf.NSplits < 2 {
		return nil, errors.NewValidationError("k", "KFold needs at least 2 splits", kf.NSplits)
	}
	if kf.NSplits > n {
		return nil, errors.NewValidationError("k", fmt.Sprintf("cannot have more splits than the %d samples", n), kf.NSplits)
	}

	indices := permutation(n, kf.Shuffle, kf.Seed)
	foldSize := n / kf.NSplits
	remainder := n % kf.NSplits

	folds := make([]Fold, kf.NSplits)
	current := 0
	for i := range folds {
		size := foldSize
		if i < remainder {
			size++
		}
		test := append([]int(nil), indices[current:current+size]...)
		train := make([]int, 0, n-size)
		train = append(train, indices[:current]...)
		train = append(train, indices[current+size:]...)
		folds[i] = Fold{Train: train, Test: test}
		current += size
	}
	return folds, nil
}

// Holdout holds out ceil(n*TestSize) rows for testing: the last rows, or a
// random subset when Shuffle is set.
type Holdout struct {
	TestSize float64
	Shuffle  bool
	Seed     uint64
}

// Split implements Splitter. It always returns exactly one fold.
func (h *Holdout) Split(n int) ([]Fold, error) {
	if h.TestSize <= 0 || h.TestSize >= 1 {
		return nil, errors.NewValidationError("test_size", "must be in (0, 1)", h.TestSize)
	}
	nTest := int(math.Ceil(float64(n) * h.TestSize))
	if nTest >= n {
		return nil, errors.NewValidationError("test_size",
			fmt.Sprintf("leaves no training rows out of %d samples", n), h.TestSize)
	}

	indices := permutation(n, h.Shuffle, h.Seed)
	cut := n - nTest
	return []Fold{{
		Train: append([]int(nil), indices[:cut]...),
		Test:  append([]int(nil), indices[cut:]...),
	}}, nil
}

// NewSplitter returns a Holdout for k == 1 and a KFold for k >= 2.
func NewSplitter(k int, testSize float64, shuffle bool, seed uint64) (Splitter, error) {
	switch {
	case k == 1:
		return &Holdout{TestSize: testSize, Shuffle: shuffle, Seed: seed}, nil
	case k >= 2:
		return NewKFold(k, shuffle, seed), nil
	}
	return nil, errors.NewValidationError("k", "must be at least 1", k)
}

func permutation(n int, shuffle bool, seed uint64) []int {
	indices := lo.Range(n)
	if shuffle {
		r := rand.New(rand.NewPCG(seed, seed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}
	return indices
}
