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

package ellipsoid

import (
	"reflect"

	"github.com/fentec-project/ellipsoid/data"
	"gonum.org/v1/gonum/mat"
)

// Evaluate returns, for every row x of points, the value of the
// implicit function Σᵢ ((xᵢ - cᵢ) / aᵢ)² - 1.
//
// points must be a proper matrix with one column per dimension; a
// single point is passed as a 1 x N matrix. Otherwise a
// *DimensionError is returned.
func (e *Ellipsoid) Evaluate(points data.Matrix) (data.Vector, error) {
	if err := e.checkPoints(points); err != nil {
		return nil, err
	}

	values := make(data.Vector, points.Rows())
	err := e.backend.ForEachRow(points.Rows(), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			v, err := e.implicit(points[i])
			if err != nil {
				return err
			}
			values[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// EvaluateDense is Evaluate for a gonum matrix. A nil matrix,
// including a typed nil such as (*mat.Dense)(nil), is reported as
// an empty batch.
func (e *Ellipsoid) EvaluateDense(points mat.Matrix) (data.Vector, error) {
	if isNil(points) {
		return nil, &DimensionError{Want: e.dim, Err: ErrEmpty}
	}
	r, c := points.Dims()
	if r == 0 || c == 0 {
		return nil, &DimensionError{Rows: r, Cols: c, Want: e.dim, Err: ErrEmpty}
	}
	if c != e.dim {
		return nil, &DimensionError{Rows: r, Cols: c, Want: e.dim, Err: ErrLengthMismatch}
	}

	return e.Evaluate(data.NewMatrixFromDense(points))
}

// Contains reports whether point lies inside or on the ellipsoid,
// up to the configured tolerance.
func (e *Ellipsoid) Contains(point data.Vector) (bool, error) {
	if len(point) != e.dim {
		return false, &DimensionError{Rows: 1, Cols: len(point), Want: e.dim, Err: ErrLengthMismatch}
	}
	v, err := e.implicit(point)
	if err != nil {
		return false, err
	}

	return v <= e.tolerance, nil
}

func (e *Ellipsoid) checkPoints(points data.Matrix) error {
	if err := points.CheckShape(); err != nil {
		return &DimensionError{Rows: points.Rows(), Cols: points.Cols(), Want: e.dim, Err: err}
	}
	if points.Cols() != e.dim {
		return &DimensionError{Rows: points.Rows(), Cols: points.Cols(), Want: e.dim, Err: ErrLengthMismatch}
	}

	return nil
}

// implicit evaluates the implicit function at x.
func (e *Ellipsoid) implicit(x data.Vector) (float64, error) {
	d, err := x.Sub(e.center)
	if err != nil {
		return 0, err
	}
	t, err := d.DivElem(e.semiAxes)
	if err != nil {
		return 0, err
	}
	q, err := t.Dot(t)
	if err != nil {
		return 0, err
	}

	return q - 1, nil
}

// isNil reports whether m is nil or an interface holding a nil
// pointer, on which gonum methods would panic.
func isNil(m mat.Matrix) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}

	return false
}
