/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/fentec-project/ellipsoid/internal"
	"github.com/fentec-project/ellipsoid/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a slice of Vector elements. It represents a row-major.
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewZeroMatrix returns a new rows x cols Matrix of zeros.
// All rows share one contiguous backing slice.
func NewZeroMatrix(rows, cols int) Matrix {
	backing := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return m
}

// NewRandomMatrix returns a new Matrix instance
// with random elements sampled by the provided sample.Sampler.
// Elements are sampled row by row.
// Returns an error in case of sampling failure.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) (Matrix, error) {
	m := NewZeroMatrix(rows, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := sampler.Sample()
			if err != nil {
				return nil, errors.Wrap(err, "error while sampling")
			}
			m[i][j] = v
		}
	}

	return m, nil
}

// NewMatrixFromDense copies a gonum matrix into a new Matrix.
func NewMatrixFromDense(d mat.Matrix) Matrix {
	r, c := d.Dims()
	m := NewZeroMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m[i][j] = d.At(i, j)
		}
	}

	return m
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// CheckShape checks that m is a proper two-dimensional matrix: it
// has at least one row and one column and all rows are of the
// same length. The returned error wraps internal.ErrEmpty or
// internal.ErrRagged.
func (m Matrix) CheckShape() error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return errors.Wrapf(internal.ErrEmpty, "matrix has shape (%d, %d)", m.Rows(), m.Cols())
	}
	cols := m.Cols()
	for i, row := range m {
		if len(row) != cols {
			return errors.Wrapf(internal.ErrRagged, "row %d has %d elements, expected %d", i, len(row), cols)
		}
	}

	return nil
}

// Dense copies m into a new gonum dense matrix.
// It returns an error if m is not a proper two-dimensional matrix.
func (m Matrix) Dense() (*mat.Dense, error) {
	if err := m.CheckShape(); err != nil {
		return nil, err
	}
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i, row := range m {
		d.SetRow(i, row)
	}

	return d, nil
}
