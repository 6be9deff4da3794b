// Package metrics provides the evaluation metrics the harness scores
// predictions with: squared-error metrics for continuous targets and
// accuracy for binary targets.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/pkg/errors"
)

// MSE computes the mean squared error between two prediction vectors.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between two prediction
// vectors: sqrt(mean((yPred_i − yTrue_i)²)).
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}
