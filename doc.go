// Package statfit is a small statistical-learning toolkit for tabular
// numeric data. It fits two linear-family predictive models and reports
// their generalization error.
//
// # Quick Start
//
// Fitting a simple regression line:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/statfit/statfit/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewVecDense(4, []float64{5, 7, 9, 11})
//
//	    model := linear.NewSimpleLinearRegression()
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    preds, err := model.Predict(mat.NewDense(2, 1, []float64{5, 6}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(preds))
//	}
//
// # Packages
//
//   - stats: mean, variance and covariance primitives used by the
//     closed-form regression fit
//   - dataset: the row-oriented Dataset type plus a CSV loader
//   - model_selection: randomized train/test and k-fold partitioning
//     driven by an explicit random source
//   - linear: the two estimators (closed-form simple regression,
//     SGD logistic regression)
//   - preprocessing: min-max scaling to [0, 1]
//   - metrics: RMSE and accuracy
//   - evaluation: the holdout and k-fold evaluation protocols
//   - core/model: estimator interfaces and fitted-state tracking
//
// Estimators consume gonum matrices and propagate structured errors from
// pkg/errors; nothing is logged and swallowed.
package statfit
