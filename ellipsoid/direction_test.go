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
	"testing"

	"github.com/fentec-project/ellipsoid/data"
	"github.com/fentec-project/ellipsoid/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// seqSampler returns the values of vals in order and then repeats the last one.
type seqSampler struct {
	vals []float64
	i    int
}

func (s *seqSampler) Sample() (float64, error) {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v, nil
}

func TestDirections_UnitNorm(t *testing.T) {
	for _, dim := range []int{1, 2, 3, 10} {
		e, err := New(data.NewConstantVector(dim, 0), data.NewConstantVector(dim, 1))
		require.NoError(t, err)

		z, err := e.directions(1000)
		require.NoError(t, err)
		require.Equal(t, 1000, z.Rows())
		require.Equal(t, dim, z.Cols())
		for _, row := range z {
			assert.InDelta(t, 1, floats.Norm(row, 2), 1e-12)
		}
	}
}

func TestDirections_Divisors(t *testing.T) {
	var tests = []struct {
		name    string
		divisor Divisor
		expect  data.Vector
	}{
		{name: "euclidean", divisor: EuclideanNorm, expect: data.Vector{math.Sqrt2 / 2, math.Sqrt2 / 2}},
		// (0.5, 0.5) / 0.5
		{name: "squared", divisor: SquaredNorm, expect: data.Vector{1, 1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := New(data.Vector{0, 0}, data.Vector{1, 1},
				WithDivisor(test.divisor),
				WithSamplers(&seqSampler{vals: []float64{0.5}}, nil))
			require.NoError(t, err)

			z, err := e.directions(2)
			require.NoError(t, err)
			for _, row := range z {
				assert.InDeltaSlice(t, test.expect, row, 1e-12)
			}
		})
	}
}

func TestDirections_ZeroRowRedrawn(t *testing.T) {
	e, err := New(data.Vector{0, 0}, data.Vector{1, 1},
		WithSamplers(&seqSampler{vals: []float64{0, 0, 3, 4}}, nil))
	require.NoError(t, err)

	z, err := e.directions(1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, z[0], 1e-12)
}

func TestRadii(t *testing.T) {
	uniform := &seqSampler{vals: []float64{0.125, 0.5}}
	e, err := New(data.Vector{0, 0, 0}, data.Vector{1, 1, 1}, WithSamplers(nil, uniform))
	require.NoError(t, err)

	r, err := e.radii(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r[0], 1e-12)
	assert.InDelta(t, math.Cbrt(0.5), r[1], 1e-12)

	e, err = New(data.Vector{0, 0, 0}, data.Vector{1, 1, 1},
		WithScaleMode(SharedScale),
		WithSamplers(nil, sample.NewUniform(nil)))
	require.NoError(t, err)

	r, err = e.radii(50)
	require.NoError(t, err)
	for _, v := range r {
		assert.Equal(t, r[0], v)
		assert.True(t, v >= 0 && v < 1)
	}
}

func TestRoundingSlack(t *testing.T) {
	assert.Less(t, roundingSlack(data.Vector{0, 0, 0}, data.Vector{1, 1, 1}), 1e-14)
	assert.Less(t, roundingSlack(data.Vector{-3, 5}, data.Vector{0.5, 2}), 1e-13)

	// one ulp of 1e8 is larger than the semi-axis
	assert.Greater(t, roundingSlack(data.Vector{1e8}, data.Vector{1e-8}), 1.0)
}
