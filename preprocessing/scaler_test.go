package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMinMaxScalerTransformsToUnitRange(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		0, 10,
		5, 20,
		10, 30,
		2.5, 15,
	})

	scaler := NewMinMaxScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	r, c := scaled.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := scaled.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	// Column extremes map exactly to the range edges.
	assert.InDelta(t, 0.0, scaled.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, scaled.At(2, 0), 1e-12)
	assert.InDelta(t, 0.25, scaled.At(3, 1), 1e-12)
}

func TestMinMaxScalerConstantColumn(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewMinMaxScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	// A constant column maps to zero rather than dividing by zero.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.0, scaled.At(i, 0), 1e-12)
	}
}

func TestMinMaxScalerInverseRoundTrip(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, -5,
		4, 0,
		9, 5,
	})

	scaler := NewMinMaxScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	back, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)

	r, c := X.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, X.At(i, j), back.At(i, j), 1e-10)
		}
	}
}

func TestMinMaxScalerNotFitted(t *testing.T) {
	scaler := NewMinMaxScaler()
	_, err := scaler.Transform(mat.NewDense(1, 1, []float64{1}))
	assert.Error(t, err)
}

func TestMinMaxScalerFeatureMismatch(t *testing.T) {
	scaler := NewMinMaxScaler()
	require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))

	_, err := scaler.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.Error(t, err)
}
