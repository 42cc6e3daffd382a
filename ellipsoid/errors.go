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
	"fmt"

	"github.com/fentec-project/ellipsoid/internal"
	"github.com/pkg/errors"
)

// Causes wrapped by ShapeMismatchError and DimensionError.
var (
	ErrEmpty          = internal.ErrEmpty
	ErrRagged         = internal.ErrRagged
	ErrLengthMismatch = internal.ErrLengthMismatch
	ErrNonPositive    = internal.ErrNonPositive
	ErrNonFinite      = internal.ErrNonFinite
)

// ErrInvalidBatchSize is returned by Sample when asked for
// a non-positive number of points.
var ErrInvalidBatchSize = errors.New("ellipsoid: number of points should be positive")

// ShapeMismatchError is returned by New when the center and the
// semi-axes do not describe a valid ellipsoid.
type ShapeMismatchError struct {
	CenterLen int
	AxesLen   int
	Err       error
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("ellipsoid: invalid shape (center has %d elements, semi-axes have %d): %v",
		e.CenterLen, e.AxesLen, e.Err)
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Err
}

// DimensionError is returned when a batch of points is not a
// proper two-dimensional matrix with one column per dimension
// of the ellipsoid.
type DimensionError struct {
	Rows int
	Cols int
	// Want is the dimension of the ellipsoid.
	Want int
	Err  error
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("ellipsoid: points of shape (%d, %d) do not fit dimension %d: %v",
		e.Rows, e.Cols, e.Want, e.Err)
}

func (e *DimensionError) Unwrap() error {
	return e.Err
}

// SamplingValidationError is returned by Sample when not every
// generated point lies inside the ellipsoid. No points are returned
// in that case.
type SamplingValidationError struct {
	Requested int
	Valid     int
}

func (e *SamplingValidationError) Error() string {
	return fmt.Sprintf("ellipsoid: only %d of %d sampled points lie inside the ellipsoid",
		e.Valid, e.Requested)
}
