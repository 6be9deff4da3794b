// Package linear implements the two linear-family estimators: a
// closed-form single-feature least-squares regression and a binary
// logistic regression trained by stochastic gradient descent.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/core/model"
	"github.com/statfit/statfit/pkg/errors"
	"github.com/statfit/statfit/stats"
)

// SimpleLinearRegression fits y = b0 + b1·x on a single feature column
// using the closed-form least-squares estimates
//
//	b1 = cov(x, y) / var(x)
//	b0 = mean(y) − b1·mean(x)
//
// where var and cov are sums of deviations (the normalization cancels
// in the ratio).
type SimpleLinearRegression struct {
	model.BaseEstimator

	intercept float64
	slope     float64
}

// NewSimpleLinearRegression creates an untrained simple regression model.
func NewSimpleLinearRegression() *SimpleLinearRegression {
	return &SimpleLinearRegression{}
}

// Fit estimates intercept and slope from the n×1 feature matrix X and
// the n-element target vector y. A feature column with zero variance is
// a DegenerateInputError: the coefficient formula would divide by zero,
// and no fallback value is produced.
func (lr *SimpleLinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 {
		return errors.Wrap(errors.ErrEmptyData, "SimpleLinearRegression.Fit")
	}
	if c != 1 {
		return errors.NewDimensionError("SimpleLinearRegression.Fit", 1, c, 1)
	}
	if ry != r {
		return errors.NewDimensionError("SimpleLinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("SimpleLinearRegression.Fit", "y must be a column vector")
	}

	xs := make([]float64, r)
	ys := make([]float64, r)
	for i := 0; i < r; i++ {
		xs[i] = X.At(i, 0)
		ys[i] = y.At(i, 0)
	}

	meanX, err := stats.Mean(xs)
	if err != nil {
		return errors.Wrap(err, "SimpleLinearRegression.Fit")
	}
	meanY, err := stats.Mean(ys)
	if err != nil {
		return errors.Wrap(err, "SimpleLinearRegression.Fit")
	}

	varX := stats.Variance(xs, meanX)
	if varX == 0 {
		return errors.NewDegenerateInputError("SimpleLinearRegression.Fit", "zero variance in feature column")
	}

	cov, err := stats.Covariance(xs, meanX, ys, meanY)
	if err != nil {
		return errors.Wrap(err, "SimpleLinearRegression.Fit")
	}

	lr.slope = cov / varX
	lr.intercept = meanY - lr.slope*meanX
	lr.SetFitted()
	return nil
}

// Predict returns b0 + b1·x for each row of the n×1 matrix X.
func (lr *SimpleLinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleLinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError("SimpleLinearRegression.Predict", 1, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		predictions.Set(i, 0, lr.intercept+lr.slope*X.At(i, 0))
	}
	return predictions, nil
}

// Intercept returns the fitted b0.
func (lr *SimpleLinearRegression) Intercept() float64 {
	return lr.intercept
}

// Slope returns the fitted b1.
func (lr *SimpleLinearRegression) Slope() float64 {
	return lr.slope
}
