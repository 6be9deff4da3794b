package model_selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statfit/statfit/dataset"
)

func makeDataset(n int) dataset.Dataset {
	ds := make(dataset.Dataset, n)
	for i := range ds {
		ds[i] = []float64{float64(i), float64(2 * i)}
	}
	return ds
}

// rowKey identifies a row by its feature value, which is unique in the
// fixtures built by makeDataset.
func rowKey(row []float64) float64 {
	return row[0]
}

func TestTrainTestSplitSizes(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		fraction  float64
		wantTrain int
	}{
		{name: "exact threshold stops at product", n: 10, fraction: 0.6, wantTrain: 6},
		{name: "fractional product rounds up", n: 10, fraction: 0.65, wantTrain: 7},
		{name: "small fraction", n: 5, fraction: 0.2, wantTrain: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			train, test, err := TrainTestSplit(makeDataset(tt.n), tt.fraction, rng)
			require.NoError(t, err)
			assert.Len(t, train, tt.wantTrain)
			assert.Len(t, test, tt.n-tt.wantTrain)
		})
	}
}

func TestTrainTestSplitIsAPartition(t *testing.T) {
	ds := makeDataset(20)
	rng := rand.New(rand.NewSource(7))

	train, test, err := TrainTestSplit(ds, 0.6, rng)
	require.NoError(t, err)

	seen := make(map[float64]int)
	for _, row := range train {
		seen[rowKey(row)]++
	}
	for _, row := range test {
		seen[rowKey(row)]++
	}

	assert.Len(t, seen, 20, "every row appears")
	for k, count := range seen {
		assert.Equal(t, 1, count, "row %v duplicated", k)
	}
}

func TestTrainTestSplitReproducible(t *testing.T) {
	ds := makeDataset(30)

	a, _, err := TrainTestSplit(ds, 0.6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, _, err := TrainTestSplit(ds, 0.6, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must yield the same split")
}

func TestTrainTestSplitDoesNotMutateSource(t *testing.T) {
	ds := makeDataset(10)
	orig := ds.Clone()

	_, _, err := TrainTestSplit(ds, 0.5, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, orig, ds)
}

func TestTrainTestSplitEmptyPartitions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, _, err := TrainTestSplit(makeDataset(4), 0, rng)
	assert.Error(t, err, "fraction 0 leaves the training set empty")

	_, _, err = TrainTestSplit(makeDataset(4), 1, rng)
	assert.Error(t, err, "fraction 1 leaves the test set empty")
}

func TestKFoldSplitSizesAndRemainder(t *testing.T) {
	// 10 rows into 3 folds: foldSize 3, one remainder row dropped.
	folds, err := KFoldSplit(makeDataset(10), 3, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Len(t, folds, 3)

	seen := make(map[float64]int)
	for _, fold := range folds {
		assert.Len(t, fold, 3)
		for _, row := range fold {
			seen[rowKey(row)]++
		}
	}

	assert.Len(t, seen, 9, "exactly one remainder row is dropped")
	for k, count := range seen {
		assert.Equal(t, 1, count, "row %v appears in more than one fold", k)
	}
}

func TestKFoldSplitEvenDivision(t *testing.T) {
	folds, err := KFoldSplit(makeDataset(12), 4, rand.New(rand.NewSource(9)))
	require.NoError(t, err)

	total := 0
	for _, fold := range folds {
		total += fold.NumRows()
	}
	assert.Equal(t, 12, total, "no rows dropped when evenly divisible")
}

func TestKFoldSplitReproducible(t *testing.T) {
	ds := makeDataset(15)

	a, err := KFoldSplit(ds, 3, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	b, err := KFoldSplit(ds, 3, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestKFoldSplitErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := KFoldSplit(makeDataset(3), 5, rng)
	assert.Error(t, err, "nFolds exceeding row count is an empty partition")

	_, err = KFoldSplit(makeDataset(3), 1, rng)
	assert.Error(t, err, "a single fold is not a partition")
}
