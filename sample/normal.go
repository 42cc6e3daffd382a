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

// Normal samples random values from the Normal (Gaussian)
// probability distribution.
type Normal struct {
	dist distuv.Normal
}

// NewNormal returns an instance of Normal sampler with mean mu
// and standard deviation sigma. Values are drawn from src; when src
// is nil, the source returned by NewSource is used.
// It returns an error if sigma is not a positive finite number.
func NewNormal(mu, sigma float64, src rand.Source) (*Normal, error) {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return nil, errors.Errorf("standard deviation should be positive, got %v", sigma)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, errors.Errorf("mean should be finite, got %v", mu)
	}
	if src == nil {
		src = NewSource()
	}

	return &Normal{
		dist: distuv.Normal{
			Mu:    mu,
			Sigma: sigma,
			Src:   src,
		},
	}, nil
}

// NewStandardNormal returns an instance of Normal sampler
// with mean 0 and standard deviation 1.
func NewStandardNormal(src rand.Source) *Normal {
	n, _ := NewNormal(0, 1, src)
	return n
}

// Sample samples a value from the Normal distribution.
func (n *Normal) Sample() (float64, error) {
	return n.dist.Rand(), nil
}
