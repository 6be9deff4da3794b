// Package stats provides the statistics primitives behind the
// closed-form regression fit: mean, variance and covariance.
//
// Variance and Covariance are sums of deviations, deliberately not
// normalized by the sequence length, because they are consumed as a
// ratio in the coefficient formula b1 = cov/var where the counts cancel.
package stats

import (
	"gonum.org/v1/gonum/floats"

	"github.com/statfit/statfit/pkg/errors"
)

// Mean returns the arithmetic mean of values. An empty sequence is a
// ValueError rather than a NaN from dividing by zero.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.NewValueError("Mean", "empty sequence")
	}
	return floats.Sum(values) / float64(len(values)), nil
}

// Variance returns the sum of squared deviations of values from mean.
// It is zero for constant sequences and never negative.
func Variance(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum
}

// Covariance returns the sum of paired cross-deviations
// Σ (x_i − meanX)(y_i − meanY). The sequences must have equal length.
func Covariance(x []float64, meanX float64, y []float64, meanY float64) (float64, error) {
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("Covariance", len(x), len(y), 0)
	}
	var sum float64
	for i := range x {
		sum += (x[i] - meanX) * (y[i] - meanY)
	}
	return sum, nil
}
