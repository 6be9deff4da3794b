// Package evaluation drives the train/predict cycle of an estimator
// over partitioned data and scores the predictions against the held-out
// ground truth.
//
// Two protocols are provided. Holdout splits once by fraction and
// reports root-mean-squared-error, the fit for continuous targets.
// K-fold trains on the union of all other folds for each fold in turn
// and reports one accuracy percentage per fold, the fit for binary
// targets. Both are generic over the core/model.Estimator capability
// set and hide test targets structurally: only the feature columns of
// the held-out rows ever reach Predict.
package evaluation

import (
	"log/slog"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/core/model"
	"github.com/statfit/statfit/dataset"
	"github.com/statfit/statfit/metrics"
	"github.com/statfit/statfit/model_selection"
	"github.com/statfit/statfit/pkg/errors"
	"github.com/statfit/statfit/pkg/log"
	"github.com/statfit/statfit/stats"
)

// HoldoutRMSE evaluates est with the holdout protocol: ds is split once
// by fraction (the training share), the estimator is fitted on the
// training rows and queried on the held-out features, and the
// root-mean-squared-error against the hidden targets is returned.
//
// The split draws from rng, so a run seeded once is exactly
// reproducible.
func HoldoutRMSE(ds dataset.Dataset, fraction float64, rng *rand.Rand, est model.Estimator) (float64, error) {
	train, test, err := model_selection.TrainTestSplit(ds, fraction, rng)
	if err != nil {
		return 0, err
	}

	yPred, yTrue, err := fitAndPredict(est, train, test)
	if err != nil {
		return 0, err
	}

	rmse, err := metrics.RMSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}

	slog.Debug("holdout evaluation complete",
		log.ProtocolKey, "holdout",
		log.SamplesKey, ds.NumRows(),
		log.FeaturesKey, ds.NumFeatures(),
		log.RMSEKey, rmse,
	)
	return rmse, nil
}

// CrossValidateAccuracy evaluates est with the k-fold protocol: ds is
// partitioned into nFolds equal folds (remainder rows dropped), and for
// each fold in turn the estimator is trained on the union of all other
// folds and scored on the held fold. The ordered per-fold accuracy
// percentages are returned; the caller computes their mean (see
// MeanScore).
func CrossValidateAccuracy(ds dataset.Dataset, nFolds int, rng *rand.Rand, est model.Estimator) ([]float64, error) {
	folds, err := model_selection.KFoldSplit(ds, nFolds, rng)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, 0, nFolds)
	for held := range folds {
		train := make(dataset.Dataset, 0, ds.NumRows())
		for f, fold := range folds {
			if f == held {
				continue
			}
			train = append(train, fold...)
		}

		yPred, yTrue, err := fitAndPredict(est, train, folds[held])
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", held)
		}

		score, err := metrics.AccuracyPercentage(yTrue, yPred)
		if err != nil {
			return nil, errors.Wrapf(err, "fold %d", held)
		}
		scores = append(scores, score)

		slog.Debug("fold evaluated",
			log.ProtocolKey, "kfold",
			log.FoldKey, held,
			log.SamplesKey, folds[held].NumRows(),
			log.AccuracyKey, score,
		)
	}
	return scores, nil
}

// MeanScore returns the arithmetic mean of per-fold scores.
func MeanScore(scores []float64) (float64, error) {
	return stats.Mean(scores)
}

// fitAndPredict trains est on the training rows and predicts the test
// rows with their targets hidden. It returns the predictions and the
// ground-truth targets as vectors aligned with the test rows.
func fitAndPredict(est model.Estimator, train, test dataset.Dataset) (yPred, yTrue *mat.VecDense, err error) {
	XTrain, err := train.FeatureMatrix()
	if err != nil {
		return nil, nil, err
	}
	yTrain, err := train.TargetVector()
	if err != nil {
		return nil, nil, err
	}
	if err := est.Fit(XTrain, yTrain); err != nil {
		return nil, nil, err
	}

	XTest, err := test.FeatureMatrix()
	if err != nil {
		return nil, nil, err
	}
	predictions, err := est.Predict(XTest)
	if err != nil {
		return nil, nil, err
	}

	n := test.NumRows()
	yPred = mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		yPred.SetVec(i, predictions.At(i, 0))
	}

	yTrue, err = test.TargetVector()
	if err != nil {
		return nil, nil, err
	}
	return yPred, yTrue, nil
}
