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

package sample_test

import (
	"testing"

	"github.com/fentec-project/ellipsoid/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// paramBounds holds the accepted intervals for the mean
// and the variance of sampled values.
type paramBounds struct {
	meanLow, meanHigh float64
	varLow, varHigh   float64
}

func drawSamples(t *testing.T, s sample.Sampler, n int) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		v, err := s.Sample()
		require.NoError(t, err)
		vec[i] = v
	}

	return vec
}

func testNormalSampler(t *testing.T, s sample.Sampler, expect paramBounds) {
	vec := drawSamples(t, s, 20000)
	me, v := stat.MeanVariance(vec, nil)

	assert.True(t, me > expect.meanLow, "mean value of the normal distribution is too small")
	assert.True(t, me < expect.meanHigh, "mean value of the normal distribution is too big")
	assert.True(t, v > expect.varLow, "variance of the normal distribution is too small")
	assert.True(t, v < expect.varHigh, "variance of the normal distribution is too big")
}

func TestNormal(t *testing.T) {
	var tests = []struct {
		name   string
		mu     float64
		sigma  float64
		expect paramBounds
	}{
		{
			name:  "Standard",
			mu:    0,
			sigma: 1,
			expect: paramBounds{
				meanLow:  -0.05,
				meanHigh: 0.05,
				varLow:   0.9,
				varHigh:  1.1,
			},
		},
		{
			name:  "Mu=5, sigma=10",
			mu:    5,
			sigma: 10,
			expect: paramBounds{
				meanLow:  4.5,
				meanHigh: 5.5,
				varLow:   90,
				varHigh:  110,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := sample.NewNormal(test.mu, test.sigma, nil)
			require.NoError(t, err)
			testNormalSampler(t, s, test.expect)
		})
	}
}

func TestNewNormal_InvalidParams(t *testing.T) {
	_, err := sample.NewNormal(0, 0, nil)
	assert.Error(t, err)

	_, err = sample.NewNormal(0, -1, nil)
	assert.Error(t, err)
}

func TestStandardNormal_DetSource(t *testing.T) {
	var key [32]byte
	key[0] = 7

	testNormalSampler(t, sample.NewStandardNormal(sample.NewDetSource(&key)), paramBounds{
		meanLow:  -0.05,
		meanHigh: 0.05,
		varLow:   0.9,
		varHigh:  1.1,
	})
}
