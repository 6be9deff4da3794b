// Package model_selection partitions a dataset into training and
// held-out row groups: a randomized train/test split by fraction, and
// randomized k-fold partitioning without replacement.
//
// Both strategies draw from an explicit *rand.Rand so that a run seeded
// once at the start is exactly reproducible; no process-global random
// state is consulted.
package model_selection

import (
	"math/rand"

	"github.com/statfit/statfit/dataset"
	"github.com/statfit/statfit/pkg/errors"
)

// TrainTestSplit partitions ds into a training and a test set.
//
// Rows are drawn uniformly at random, without replacement, from a
// shrinking working copy into the training set while
// len(train) < fraction×total; the rows left over form the test set.
// With the strict < comparison the training size is the smallest integer
// not below fraction×total, i.e. ceil(fraction×total) except when the
// product is already integral, where it stops exactly there.
//
// Source rows are never mutated; the returned sets share row storage
// with ds.
func TrainTestSplit(ds dataset.Dataset, fraction float64, rng *rand.Rand) (train, test dataset.Dataset, err error) {
	if err := ds.Validate(); err != nil {
		return nil, nil, err
	}

	n := ds.NumRows()
	target := fraction * float64(n)

	work := make(dataset.Dataset, n)
	copy(work, ds)

	train = make(dataset.Dataset, 0, n)
	for float64(len(train)) < target && len(work) > 0 {
		idx := rng.Intn(len(work))
		train = append(train, work[idx])
		work = append(work[:idx], work[idx+1:]...)
	}
	test = work

	if len(train) == 0 || len(test) == 0 {
		return nil, nil, errors.NewEmptyPartitionError("TrainTestSplit", n, 2)
	}
	return train, test, nil
}

// KFoldSplit partitions ds into nFolds groups of floor(total/nFolds)
// rows each, drawn uniformly without replacement from a shrinking
// working copy.
//
// When the row count is not evenly divisible by nFolds the remainder
// rows are dropped. This is intentional lossy behavior: every retained
// fold has exactly equal size, matching the per-fold accuracy
// denominator.
func KFoldSplit(ds dataset.Dataset, nFolds int, rng *rand.Rand) ([]dataset.Dataset, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	n := ds.NumRows()
	if nFolds < 2 {
		return nil, errors.NewValueError("KFoldSplit", "nFolds must be at least 2")
	}
	foldSize := n / nFolds
	if foldSize == 0 {
		return nil, errors.NewEmptyPartitionError("KFoldSplit", n, nFolds)
	}

	work := make(dataset.Dataset, n)
	copy(work, ds)

	folds := make([]dataset.Dataset, nFolds)
	for f := 0; f < nFolds; f++ {
		fold := make(dataset.Dataset, 0, foldSize)
		for len(fold) < foldSize {
			idx := rng.Intn(len(work))
			fold = append(fold, work[idx])
			work = append(work[:idx], work[idx+1:]...)
		}
		folds[f] = fold
	}
	return folds, nil
}
