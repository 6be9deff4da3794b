// Package model provides the estimator interfaces and fitted-state
// tracking shared by all statfit models.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on the feature matrix X and target vector y.
	// Each call produces fresh model state; previous coefficients are
	// discarded.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that predict on new rows.
type Predictor interface {
	// Predict returns an n×1 matrix of predictions aligned with the
	// rows of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator combines the train/predict capability set the evaluation
// harness drives. The harness is agnostic to which estimator it holds.
type Estimator interface {
	Fitter
	Predictor
}
