package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/core/model"
	"github.com/statfit/statfit/pkg/errors"
)

// LogisticRegression is a binary classifier whose weights are found by
// online stochastic gradient descent: a fixed number of full passes
// over the training rows with a fixed learning rate, updating after
// every row. There is no convergence check; training always runs
// exactly nEpochs passes.
//
// The weight vector has length features+1 with the bias at index 0, and
// is re-initialized to zero by every Fit call. Row order within an
// epoch is preserved as given; any shuffling happens upstream at
// partitioning time.
//
// Features are assumed to be scaled to [0, 1] (see
// preprocessing.MinMaxScaler) for numerically stable gradient steps.
type LogisticRegression struct {
	model.BaseEstimator

	learningRate float64
	nEpochs      int

	coef      []float64
	nFeatures int
}

// NewLogisticRegression creates an untrained logistic regression model.
// The defaults (learning rate 0.1, 100 epochs) suit small min-max
// scaled datasets and can be overridden with options.
func NewLogisticRegression(opts ...Option) *LogisticRegression {
	lr := &LogisticRegression{
		learningRate: 0.1,
		nEpochs:      100,
	}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit trains the weights on the n×f feature matrix X and the n-element
// 0/1 target vector y.
func (lr *LogisticRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 {
		return errors.Wrap(errors.ErrEmptyData, "LogisticRegression.Fit")
	}
	if c < 1 {
		return errors.NewDimensionError("LogisticRegression.Fit", 1, c, 1)
	}
	if ry != r {
		return errors.NewDimensionError("LogisticRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LogisticRegression.Fit", "y must be a column vector")
	}

	lr.nFeatures = c
	coef := make([]float64, c+1)

	row := make([]float64, c)
	for epoch := 0; epoch < lr.nEpochs; epoch++ {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				row[j] = X.At(i, j)
			}
			coef = sgdStep(coef, row, y.At(i, 0), lr.learningRate)
		}
	}

	lr.coef = coef
	lr.SetFitted()
	return nil
}

// sgdStep applies one per-row gradient update and returns the new
// weight vector, leaving coef untouched:
//
//	g       = lr · (target − ŷ) · ŷ · (1 − ŷ)
//	w0     += g
//	w[i+1] += g · x[i]
func sgdStep(coef, features []float64, target, learningRate float64) []float64 {
	yhat := sigmoid(decision(coef, features))
	g := learningRate * (target - yhat) * yhat * (1 - yhat)

	next := make([]float64, len(coef))
	next[0] = coef[0] + g
	for i, x := range features {
		next[i+1] = coef[i+1] + g*x
	}
	return next
}

// decision computes coef[0] + Σ coef[i+1]·x[i].
func decision(coef, features []float64) float64 {
	z := coef[0]
	for i, x := range features {
		z += coef[i+1] * x
	}
	return z
}

// sigmoid maps a real number to the open interval (0, 1); exact 0 or 1
// occur only through floating-point saturation at extreme magnitudes.
func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// PredictProba returns the sigmoid probability for each row of X as an
// n×1 matrix.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LogisticRegression", "PredictProba")
	}

	r, c := X.Dims()
	if c != lr.nFeatures {
		return nil, errors.NewDimensionError("LogisticRegression.PredictProba", lr.nFeatures, c, 1)
	}

	probas := mat.NewDense(r, 1, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		probas.Set(i, 0, sigmoid(decision(lr.coef, row)))
	}
	return probas, nil
}

// Predict returns the 0/1 class label for each row of X. The
// probability is rounded with math.Round, i.e. half away from zero: a
// probability of exactly 0.5 maps to class 1.
func (lr *LogisticRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	probas, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}

	r, _ := probas.Dims()
	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		predictions.Set(i, 0, math.Round(probas.At(i, 0)))
	}
	return predictions, nil
}

// Coefficients returns a copy of the weight vector, bias first.
func (lr *LogisticRegression) Coefficients() []float64 {
	if lr.coef == nil {
		return nil
	}
	return append([]float64(nil), lr.coef...)
}
