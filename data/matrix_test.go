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
	"errors"
	"testing"

	"github.com/fentec-project/ellipsoid/internal"
	"github.com/fentec-project/ellipsoid/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

type failingSampler struct{}

func (failingSampler) Sample() (float64, error) {
	return 0, errors.New("no randomness")
}

func TestMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler := sample.NewStandardNormal(nil)

	x, err := NewRandomMatrix(rows, cols, sampler)
	if err != nil {
		t.Fatalf("Error during random generation: %v", err)
	}

	assert.Equal(t, rows, x.Rows())
	assert.Equal(t, cols, x.Cols())
	assert.NoError(t, x.CheckShape())

	var key [32]byte
	m1, err := NewRandomMatrix(100, 100, sample.NewUniform(sample.NewDetSource(&key)))
	require.NoError(t, err)
	m2, err := NewRandomMatrix(100, 100, sample.NewUniform(sample.NewDetSource(&key)))
	require.NoError(t, err)
	assert.Equal(t, m1, m2, "the same key should give the same matrix")
}

func TestNewRandomMatrix_SamplerError(t *testing.T) {
	_, err := NewRandomMatrix(2, 2, failingSampler{})
	assert.Error(t, err)
}

func TestMatrix_Rows(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, sample.NewUniform(nil))
	assert.Equal(t, 2, m.Rows())
}

func TestMatrix_Cols(t *testing.T) {
	m, _ := NewRandomMatrix(2, 3, sample.NewUniform(nil))
	assert.Equal(t, 3, m.Cols())
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.ErrorIs(t, m.CheckShape(), internal.ErrEmpty)
	assert.ErrorIs(t, Matrix{Vector{}}.CheckShape(), internal.ErrEmpty)
}

func TestMatrix_Ragged(t *testing.T) {
	ragged := Matrix{Vector{1, 2}, Vector{3}}
	assert.ErrorIs(t, ragged.CheckShape(), internal.ErrRagged)
	assert.NoError(t, Matrix{Vector{1, 2}, Vector{3, 4}}.CheckShape())
}

func TestNewZeroMatrix_RowsIndependent(t *testing.T) {
	m := NewZeroMatrix(2, 2)
	m[0] = append(m[0], 1)
	assert.Equal(t, Vector{0, 0}, m[1], "appending to a row should not spill into the next one")
}

func TestMatrix_Dense(t *testing.T) {
	m := Matrix{
		Vector{1, 2, 3},
		Vector{4, 5, 6},
	}

	d, err := m.Dense()
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	back := NewMatrixFromDense(d)
	assert.Equal(t, m, back)

	d.Set(0, 0, 9)
	assert.Equal(t, 1.0, back[0][0], "NewMatrixFromDense should copy")

	_, err = Matrix{Vector{1}, Vector{1, 2}}.Dense()
	assert.ErrorIs(t, err, internal.ErrRagged)
}
