package linear

// Option is a function that configures LogisticRegression.
type Option func(*LogisticRegression)

// WithLearningRate sets the fixed SGD learning rate.
func WithLearningRate(rate float64) Option {
	return func(lr *LogisticRegression) {
		lr.learningRate = rate
	}
}

// WithEpochs sets the number of full passes over the training rows.
func WithEpochs(n int) Option {
	return func(lr *LogisticRegression) {
		lr.nEpochs = n
	}
}
