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

// Package ellipsoid samples points uniformly from the interior of
// an axis-aligned N-dimensional ellipsoid and classifies points
// against its implicit equation
//
//	f(x) = Σᵢ ((xᵢ - cᵢ) / aᵢ)² - 1
//
// where c is the center and a holds the semi-axis lengths. f(x) is
// negative inside the ellipsoid, zero on its boundary and positive
// outside.
//
// A sample is built by drawing a direction uniformly on the unit
// sphere (a standard normal vector divided by its norm), scaling it
// by a radius, stretching it by the semi-axes and translating it by
// the center. With the default PerPoint mode every point gets its
// own radius u^(1/N), u ~ U[0, 1), which makes the points uniform
// by volume. Every batch is checked against f before it is returned.
//
// Example:
//
//	e, err := ellipsoid.New(data.Vector{0, 0}, data.Vector{2, 1})
//	if err != nil {
//		return err
//	}
//	points, err := e.Sample(100)     // 100 x 2
//	values, err := e.Evaluate(points) // all <= 0
package ellipsoid
