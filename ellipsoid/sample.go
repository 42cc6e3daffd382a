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
	"math"

	"github.com/fentec-project/ellipsoid/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Sample returns numPoints points drawn from the interior of the
// ellipsoid as a numPoints x N matrix.
//
// Every batch is checked with the implicit function before it is
// returned. A point passes when its value is at most the tolerance
// plus the rounding slack of the ellipsoid, the largest increase
// that rounding of cᵢ + dᵢ can cause. This slack is negligible
// unless the center is large compared to the semi-axes. If any point
// fails, no points are returned and the error is a
// *SamplingValidationError. With the default options this does not
// happen; it signals a broken sampler or the SquaredNorm divisor.
func (e *Ellipsoid) Sample(numPoints int) (data.Matrix, error) {
	points, err := e.sample(numPoints)
	e.logger.LogSample(numPoints, e.mode, err)

	return points, err
}

// SampleDense is Sample returning the points as a gonum matrix.
func (e *Ellipsoid) SampleDense(numPoints int) (*mat.Dense, error) {
	points, err := e.Sample(numPoints)
	if err != nil {
		return nil, err
	}

	return points.Dense()
}

func (e *Ellipsoid) sample(numPoints int) (data.Matrix, error) {
	if numPoints <= 0 {
		return nil, errors.WithMessagef(ErrInvalidBatchSize, "got %d", numPoints)
	}

	points, err := e.directions(numPoints)
	if err != nil {
		return nil, err
	}
	radii, err := e.radii(numPoints)
	if err != nil {
		return nil, err
	}

	err = e.backend.ForEachRow(numPoints, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			p, err := points[i].MulScalar(radii[i]).MulElem(e.semiAxes)
			if err != nil {
				return err
			}
			if points[i], err = p.Add(e.center); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	values, err := e.Evaluate(points)
	if err != nil {
		return nil, err
	}
	limit := e.tolerance + e.slack
	valid := 0
	for _, v := range values {
		if v <= limit {
			valid++
		}
	}
	if valid != numPoints {
		return nil, &SamplingValidationError{
			Requested: numPoints,
			Valid:     valid,
		}
	}

	return points, nil
}

// radii returns the radial scale of every row.
func (e *Ellipsoid) radii(rows int) (data.Vector, error) {
	if e.mode == SharedScale {
		u, err := e.uniform.Sample()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
		return data.NewConstantVector(rows, u), nil
	}

	r, err := data.NewRandomVector(rows, e.uniform)
	if err != nil {
		return nil, err
	}
	exp := 1 / float64(e.dim)

	return r.Apply(func(u float64) float64 {
		return math.Pow(u, exp)
	}), nil
}

// roundingSlack bounds the increase of the implicit value of a
// generated point caused by rounding cᵢ + dᵢ. The sum moves by at
// most one ulp of |cᵢ| + aᵢ, which is εᵢ = ulp / aᵢ in normalized
// units; with |tᵢ| <= 1 the square grows by at most 2εᵢ + εᵢ².
// Twice the gap below m is at least the ulp at m.
func roundingSlack(center, semiAxes data.Vector) float64 {
	slack := 0.0
	for i, a := range semiAxes {
		m := math.Min(math.Abs(center[i])+a, math.MaxFloat64)
		eps := 2 * (m - math.Nextafter(m, 0)) / a
		slack += 2*eps + eps*eps
	}

	return slack
}
