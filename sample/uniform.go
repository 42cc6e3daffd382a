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

package sample

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformRange samples random values from the interval [min, max).
type UniformRange struct {
	dist distuv.Uniform
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts lower and upper bounds on the sampled values and
// the source of randomness; a nil src means NewSource.
func NewUniformRange(min, max float64, src rand.Source) (*UniformRange, error) {
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, errors.Errorf("invalid interval [%v, %v)", min, max)
	}
	if src == nil {
		src = NewSource()
	}

	return &UniformRange{
		dist: distuv.Uniform{
			Min: min,
			Max: max,
			Src: src,
		},
	}, nil
}

// NewUniform returns an instance of the UniformRange sampler
// on the interval [0, 1).
func NewUniform(src rand.Source) *UniformRange {
	u, _ := NewUniformRange(0, 1, src)
	return u
}

// Sample samples random values from the interval [min, max).
func (u *UniformRange) Sample() (float64, error) {
	return u.dist.Rand(), nil
}

// Bounds returns the interval the sampler draws from.
func (u *UniformRange) Bounds() (float64, float64) {
	return u.dist.Min, u.dist.Max
}
