package evaluation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statfit/statfit/dataset"
	"github.com/statfit/statfit/linear"
	"github.com/statfit/statfit/pkg/errors"
)

// regressionData is y = 3 + 2x plus a small deterministic perturbation
// so that different splits produce different holdout errors.
func regressionData(n int) dataset.Dataset {
	ds := make(dataset.Dataset, n)
	for i := range ds {
		x := float64(i)
		noise := 0.1 * math.Sin(float64(i)*1.7)
		ds[i] = []float64{x, 3 + 2*x + noise}
	}
	return ds
}

// classificationData is two well-separated single-feature clusters with
// 0/1 labels, pre-scaled to [0, 1].
func classificationData(n int) dataset.Dataset {
	ds := make(dataset.Dataset, n)
	for i := range ds {
		if i%2 == 0 {
			ds[i] = []float64{0.1 + 0.01*float64(i%10), 0}
		} else {
			ds[i] = []float64{0.9 - 0.01*float64(i%10), 1}
		}
	}
	return ds
}

func TestHoldoutRMSEReproducible(t *testing.T) {
	ds := regressionData(25)

	a, err := HoldoutRMSE(ds, 0.6, rand.New(rand.NewSource(42)), linear.NewSimpleLinearRegression())
	require.NoError(t, err)
	b, err := HoldoutRMSE(ds, 0.6, rand.New(rand.NewSource(42)), linear.NewSimpleLinearRegression())
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed must yield identical RMSE")

	c, err := HoldoutRMSE(ds, 0.6, rand.New(rand.NewSource(7)), linear.NewSimpleLinearRegression())
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "distinct seeds should split differently")
}

func TestHoldoutRMSEFitsWellOnNearLinearData(t *testing.T) {
	ds := regressionData(40)

	rmse, err := HoldoutRMSE(ds, 0.6, rand.New(rand.NewSource(1)), linear.NewSimpleLinearRegression())
	require.NoError(t, err)

	// The perturbation amplitude bounds the achievable error.
	assert.Less(t, rmse, 0.2)
	assert.GreaterOrEqual(t, rmse, 0.0)
}

func TestHoldoutRMSEPropagatesDegenerateInput(t *testing.T) {
	// Constant feature column: the closed-form fit must fail, and the
	// harness must propagate rather than score garbage.
	ds := make(dataset.Dataset, 10)
	for i := range ds {
		ds[i] = []float64{5, float64(i)}
	}

	_, err := HoldoutRMSE(ds, 0.6, rand.New(rand.NewSource(1)), linear.NewSimpleLinearRegression())
	require.Error(t, err)

	var de *errors.DegenerateInputError
	assert.True(t, errors.As(err, &de), "got %v", err)
}

func TestCrossValidateAccuracy(t *testing.T) {
	ds := classificationData(30)
	est := linear.NewLogisticRegression(linear.WithLearningRate(0.3), linear.WithEpochs(200))

	scores, err := CrossValidateAccuracy(ds, 5, rand.New(rand.NewSource(42)), est)
	require.NoError(t, err)
	require.Len(t, scores, 5, "one score per fold, in fold order")

	for f, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "fold %d", f)
		assert.LessOrEqual(t, score, 100.0, "fold %d", f)
	}

	// The clusters are cleanly separable, so accuracy should be high.
	mean, err := MeanScore(scores)
	require.NoError(t, err)
	assert.Greater(t, mean, 90.0)
}

func TestCrossValidateAccuracyReproducible(t *testing.T) {
	ds := classificationData(24)

	a, err := CrossValidateAccuracy(ds, 4, rand.New(rand.NewSource(3)),
		linear.NewLogisticRegression(linear.WithEpochs(50)))
	require.NoError(t, err)
	b, err := CrossValidateAccuracy(ds, 4, rand.New(rand.NewSource(3)),
		linear.NewLogisticRegression(linear.WithEpochs(50)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCrossValidateAccuracyEmptyPartition(t *testing.T) {
	ds := classificationData(4)

	_, err := CrossValidateAccuracy(ds, 10, rand.New(rand.NewSource(1)),
		linear.NewLogisticRegression())
	require.Error(t, err)

	var pe *errors.EmptyPartitionError
	assert.True(t, errors.As(err, &pe), "got %v", err)
}

func TestMeanScore(t *testing.T) {
	mean, err := MeanScore([]float64{80, 90, 100})
	require.NoError(t, err)
	assert.InDelta(t, 90.0, mean, 1e-12)

	_, err = MeanScore(nil)
	assert.Error(t, err)
}
