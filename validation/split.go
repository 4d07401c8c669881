// Package validation implements the data-splitting procedures the catalog
// describes: holdout train/test splits and k-fold cross-validation.
//
// Splits are index-based so they apply to any dataset representation, and
// deterministic for a fixed seed so experiments can be reproduced.
package validation

import (
	"math/rand"

	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Split is a holdout partition of sample indices 0..n-1 into a training
// set and a test set. The two sets are disjoint and together cover every
// index exactly once.
type Split struct {
	TrainIndices []int
	TestIndices  []int
}

// Fold is one round of k-fold cross-validation: the model trains on
// TrainIndices (k-1 folds) and is evaluated on TestIndices (the held-out
// fold).
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// TrainTestSplit partitions n sample indices into train and test sets.
// testFraction must lie in (0, 1); the test set always receives at least
// one sample, as does the training set. The shuffle is deterministic for
// a fixed seed.
func TrainTestSplit(n int, testFraction float64, seed int64) (Split, error) {
	if n < 2 {
		return Split{}, errors.NewValueError("TrainTestSplit", "need at least 2 samples to split")
	}
	if testFraction <= 0 || testFraction >= 1 {
		return Split{}, errors.NewValueError("TrainTestSplit", "testFraction must be in (0, 1)")
	}

	testSize := int(float64(n) * testFraction)
	if testSize == 0 {
		testSize = 1
	}
	if testSize == n {
		testSize = n - 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return Split{
		TestIndices:  perm[:testSize:testSize],
		TrainIndices: perm[testSize:],
	}, nil
}

// KFold partitions n sample indices into k cross-validation folds.
// Every index appears in exactly one test set; fold sizes differ by at
// most one, with the first n%k folds receiving the extra sample. k must
// satisfy 2 <= k <= n. The shuffle is deterministic for a fixed seed.
func KFold(n, k int, seed int64) ([]Fold, error) {
	if n < 2 {
		return nil, errors.NewValueError("KFold", "need at least 2 samples to split")
	}
	if k < 2 {
		return nil, errors.NewValueError("KFold", "k must be at least 2")
	}
	if k > n {
		return nil, errors.NewValueError("KFold", "k cannot exceed the number of samples")
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	folds := make([]Fold, k)
	base := n / k
	extra := n % k

	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		test := perm[start : start+size]

		train := make([]int, 0, n-size)
		train = append(train, perm[:start]...)
		train = append(train, perm[start+size:]...)

		folds[i] = Fold{
			TrainIndices: train,
			TestIndices:  test[:len(test):len(test)],
		}
		start += size
	}
	return folds, nil
}
