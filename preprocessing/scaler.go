// Package preprocessing provides min-max normalization of feature
// columns. The logistic estimator assumes features scaled to [0, 1]
// for numerically stable gradient steps; the scaler is fitted on the
// entire dataset before any split.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/core/model"
	"github.com/statfit/statfit/pkg/errors"
)

// MinMaxScaler rescales each feature column to [0, 1] using the
// per-column minimum and maximum observed at Fit time.
type MinMaxScaler struct {
	model.BaseEstimator

	// DataMin holds the per-column minimum seen during Fit.
	DataMin []float64

	// DataMax holds the per-column maximum seen during Fit.
	DataMax []float64

	// Scale holds the per-column range max−min; constant columns get
	// scale 1 so the transform is the identity shift instead of a
	// division by zero.
	Scale []float64

	// NFeatures is the number of columns seen during Fit.
	NFeatures int
}

// NewMinMaxScaler creates an unfitted scaler targeting [0, 1].
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// Fit computes the per-column minimum and maximum of X.
func (m *MinMaxScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.Wrap(errors.ErrEmptyData, "MinMaxScaler.Fit")
	}

	m.NFeatures = c
	m.DataMin = make([]float64, c)
	m.DataMax = make([]float64, c)
	m.Scale = make([]float64, c)

	for j := 0; j < c; j++ {
		lo, hi := X.At(0, j), X.At(0, j)
		for i := 1; i < r; i++ {
			v := X.At(i, j)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		m.DataMin[j] = lo
		m.DataMax[j] = hi

		if math.Abs(hi-lo) < 1e-12 {
			m.Scale[j] = 1.0
		} else {
			m.Scale[j] = hi - lo
		}
	}

	m.SetFitted()
	return nil
}

// Transform maps each value to (v − min) / (max − min) using the
// statistics captured at Fit time.
func (m *MinMaxScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "Transform")
	}

	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.Transform", m.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-m.DataMin[j])/m.Scale[j])
		}
	}
	return result, nil
}

// FitTransform fits the scaler on X and transforms the same matrix.
func (m *MinMaxScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := m.Fit(X); err != nil {
		return nil, err
	}
	return m.Transform(X)
}

// InverseTransform maps scaled values back to the original range.
func (m *MinMaxScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !m.IsFitted() {
		return nil, errors.NewNotFittedError("MinMaxScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != m.NFeatures {
		return nil, errors.NewDimensionError("MinMaxScaler.InverseTransform", m.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, X.At(i, j)*m.Scale[j]+m.DataMin[j])
		}
	}
	return result, nil
}

// String returns a short description of the scaler.
func (m *MinMaxScaler) String() string {
	if !m.IsFitted() {
		return "MinMaxScaler(feature_range=[0.0, 1.0])"
	}
	return fmt.Sprintf("MinMaxScaler(feature_range=[0.0, 1.0], n_features=%d)", m.NFeatures)
}
