// Package log defines standard attribute keys for training and
// evaluation log records, so runs can be filtered and compared by
// model, operation and data shape.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "SimpleLinearRegression", "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "evaluate"
	OperationKey = "ml.operation"

	// ProtocolKey names the evaluation protocol.
	// Values: "holdout", "kfold"
	ProtocolKey = "eval.protocol"
)

// Data shape.
const (
	// SamplesKey is the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// FoldKey is the index of the fold currently evaluated.
	FoldKey = "eval.fold"

	// SeedKey is the seed of the random stream driving partitioning.
	SeedKey = "eval.seed"
)

// Hyperparameters and results.
const (
	// LearningRateKey is the SGD learning rate.
	LearningRateKey = "train.learning_rate"

	// EpochsKey is the number of SGD passes over the training rows.
	EpochsKey = "train.epochs"

	// RMSEKey is the holdout root-mean-squared-error.
	RMSEKey = "metric.rmse"

	// AccuracyKey is a per-fold accuracy percentage.
	AccuracyKey = "metric.accuracy"
)
