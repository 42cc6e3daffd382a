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
	"github.com/fentec-project/ellipsoid/data"
	"github.com/pkg/errors"
)

// directions returns a rows x N matrix whose rows are standard
// normal vectors divided by the configured divisor. With
// EuclideanNorm every row is a uniform direction on the unit sphere.
//
// The normal values are drawn sequentially, row by row, so the
// result depends only on the sampler and not on the backend.
func (e *Ellipsoid) directions(rows int) (data.Matrix, error) {
	z, err := data.NewRandomMatrix(rows, e.dim, e.normal)
	if err != nil {
		return nil, err
	}

	// a zero row has no direction
	for _, row := range z {
		for row.Norm() == 0 {
			for j := range row {
				row[j], err = e.normal.Sample()
				if err != nil {
					return nil, errors.Wrap(err, "error while sampling")
				}
			}
		}
	}

	err = e.backend.ForEachRow(rows, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			z[i] = z[i].MulScalar(1 / e.divisorOf(z[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return z, nil
}

func (e *Ellipsoid) divisorOf(row data.Vector) float64 {
	if e.divisor == SquaredNorm {
		sq, _ := row.Dot(row)
		return sq
	}

	return row.Norm()
}
