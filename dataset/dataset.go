// Package dataset defines the row-oriented tabular data the toolkit
// operates on. A Dataset is an ordered sequence of equal-length rows of
// finite real numbers; the last element of every row is the target, all
// preceding elements are features.
//
// The Dataset is owned by the caller and never mutated by the toolkit:
// partitioning and evaluation copy row headers, never edit source rows.
package dataset

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/statfit/statfit/pkg/errors"
)

// Dataset is an ordered sequence of rows. The last column is the target.
type Dataset [][]float64

// NumRows returns the number of rows.
func (d Dataset) NumRows() int {
	return len(d)
}

// NumFeatures returns the number of feature columns (row length minus
// the target column). It is zero for an empty dataset.
func (d Dataset) NumFeatures() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0]) - 1
}

// Validate checks the dataset invariants: at least one row, every row of
// identical length with at least one feature and a target, and all
// values finite.
func (d Dataset) Validate() error {
	if len(d) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "dataset.Validate")
	}
	width := len(d[0])
	if width < 2 {
		return errors.NewDimensionError("dataset.Validate", 2, width, 1)
	}
	for i, row := range d {
		if len(row) != width {
			return errors.NewDimensionError("dataset.Validate", width, len(row), 1)
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.NewValueError("dataset.Validate", "non-finite value in row "+strconv.Itoa(i))
			}
		}
	}
	return nil
}

// Clone returns a deep copy of the dataset.
func (d Dataset) Clone() Dataset {
	out := make(Dataset, len(d))
	for i, row := range d {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// FeatureMatrix returns every column except the last as an n×f dense
// matrix, the shape the estimators consume.
func (d Dataset) FeatureMatrix() (*mat.Dense, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n, f := d.NumRows(), d.NumFeatures()
	X := mat.NewDense(n, f, nil)
	for i, row := range d {
		for j := 0; j < f; j++ {
			X.Set(i, j, row[j])
		}
	}
	return X, nil
}

// TargetVector returns the last column as an n-vector.
func (d Dataset) TargetVector() (*mat.VecDense, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	n := d.NumRows()
	y := mat.NewVecDense(n, nil)
	for i, row := range d {
		y.SetVec(i, row[len(row)-1])
	}
	return y, nil
}
