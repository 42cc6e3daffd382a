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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/ellipsoid/internal"
	"github.com/fentec-project/ellipsoid/sample"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]float64, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return NewVector(vec), nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := range vec {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// MulScalar multiplies vector v by a given scalar x.
// The result is returned in a new Vector.
func (v Vector) MulScalar(x float64) Vector {
	res := v.Copy()
	floats.Scale(x, res)

	return res
}

// MulElem multiplies vectors v and other element-wise.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) MulElem(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	res := make(Vector, len(v))
	floats.MulTo(res, v, other)

	return res, nil
}

// DivElem divides vector v by other element-wise.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) DivElem(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	res := make(Vector, len(v))
	floats.DivTo(res, v, other)

	return res, nil
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	sum := make(Vector, len(v))
	floats.AddTo(sum, v, other)

	return sum, nil
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, internal.ErrLengthMismatch
	}
	sub := make(Vector, len(v))
	floats.SubTo(sub, v, other)

	return sub, nil
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	return floats.Dot(v, other), nil
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	return floats.Norm(v, 2)
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// CheckFinite returns an error wrapping internal.ErrNonFinite
// if any element of v is NaN or infinite.
func (v Vector) CheckFinite() error {
	for i, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.Wrapf(internal.ErrNonFinite, "coordinate %d is %v", i, c)
		}
	}

	return nil
}

// CheckPositive returns an error wrapping internal.ErrNonPositive
// if any element of v is not strictly greater than zero.
func (v Vector) CheckPositive() error {
	for i, c := range v {
		if !(c > 0) {
			return errors.Wrapf(internal.ErrNonPositive, "coordinate %d is %v", i, c)
		}
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, vi := range v {
		parts[i] = strconv.FormatFloat(vi, 'g', -1, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
