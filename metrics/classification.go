package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/pkg/errors"
)

// AccuracyPercentage computes 100 × (#exact matches) / n between two
// label vectors. Labels are compared with ==, which is exact for the
// 0/1 values the logistic estimator emits.
func AccuracyPercentage(yTrue, yPred *mat.VecDense) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError("AccuracyPercentage", "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("AccuracyPercentage", n, yPred.Len(), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return 100 * float64(correct) / float64(n), nil
}
